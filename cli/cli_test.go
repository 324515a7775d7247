package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/towzeur/go-game-implementation/goban"
	"github.com/towzeur/go-game-implementation/gobantest"
)

type scripted struct {
	actions []string
}

func (s *scripted) GetAction(g *goban.Game) Action {
	if len(s.actions) == 0 {
		return Action{Type: Quit}
	}
	a, err := ParseAction(s.actions[0])
	s.actions = s.actions[1:]
	if err != nil {
		panic(err)
	}
	return a
}

func TestParseAction(t *testing.T) {
	cases := []struct {
		in  string
		out Action
	}{
		{"D4", Action{Type: Place, Vertex: "D4"}},
		{"  q16\n", Action{Type: Place, Vertex: "q16"}},
		{"pass", Action{Type: Pass}},
		{"PASS\n", Action{Type: Pass}},
		{"undo", Action{Type: Undo, N: 1}},
		{"undo 3", Action{Type: Undo, N: 3}},
		{"handicap 4", Action{Type: Handicap, N: 4}},
		{"reset", Action{Type: Reset}},
		{"quit", Action{Type: Quit}},
		{"resign", Action{Type: Quit}},
	}
	for _, tc := range cases {
		got, err := ParseAction(tc.in)
		if assert.NoError(t, err, tc.in) {
			assert.Equal(t, tc.out, got, tc.in)
		}
	}

	for _, bad := range []string{"", "   ", "undo x", "undo 1 2", "handicap", "play D4"} {
		_, err := ParseAction(bad)
		assert.Error(t, err, bad)
	}
}

func TestPlayUntilPasses(t *testing.T) {
	var out bytes.Buffer
	black := &scripted{[]string{"D5", "F5", "E6", "E4", "pass"}}
	white := &scripted{[]string{"E5", "A1", "A2", "Z9", "A3", "pass"}}
	c := &CLI{
		Config: goban.Config{Height: 9, Width: 9},
		Out:    &out,
		Black:  black,
		White:  white,
	}
	g, res, err := c.Play()
	require.NoError(t, err)
	assert.Equal(t, ResultPasses, res)
	assert.Equal(t, "D5 E5 F5 A1 E6 A2 E4 A3 pass pass",
		goban.FormatRecords(g.Records(), g.Height()))
	c5, _ := g.GetPosition("E5")
	assert.Equal(t, goban.NoColor, c5)
	assert.Contains(t, out.String(), "illegal move:")
	assert.Contains(t, out.String(), "Both players passed")
}

func TestPlayUndoAndQuit(t *testing.T) {
	var out bytes.Buffer
	p := &scripted{[]string{"handicap 2", "C3", "E5", "D4", "undo 1", "quit"}}
	c := &CLI{
		Config: goban.Config{Height: 9, Width: 9},
		Out:    &out,
		Black:  p,
		White:  p,
	}
	g, res, err := c.Play()
	require.NoError(t, err)
	assert.Equal(t, ResultQuit, res)
	assert.Equal(t, 1, g.Ply())
	assert.Equal(t, goban.White, g.ToMove())
	assert.True(t, g.HandicapPlaced())
	assert.Equal(t, 3, g.Board().Stones(goban.Black))
	assert.Equal(t, 0, g.Board().Stones(goban.White))
	assert.Contains(t, out.String(), "illegal move:", "C3 holds a handicap stone")
}

func TestPlayBadConfig(t *testing.T) {
	c := &CLI{Config: goban.Config{Height: 9, Width: 30}}
	_, _, err := c.Play()
	assert.Error(t, err)
}

func TestRenderBoard(t *testing.T) {
	g := gobantest.Game(5, "C3 D4")
	var out bytes.Buffer
	RenderBoard(nil, &out, g)
	s := out.String()
	assert.Contains(t, s, "[black to play]")
	assert.Contains(t, s, "ply: 2 stones: B:1 W:1")

	lines := strings.Split(strings.TrimSpace(s), "\n")
	require.Len(t, lines, 1+1+5+1)
	assert.Equal(t, "  A B C D E", strings.TrimRight(lines[1], " "))
	assert.Equal(t, "4 . . . O .", strings.TrimRight(lines[3], " "))
	assert.Equal(t, "3 . . X . .", strings.TrimRight(lines[4], " "))
}

func TestCLIPlayer(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("bogus command here\nundo 2\nD4"))
	p := NewCLIPlayer(&out, in)
	g := gobantest.Game(9, "")

	assert.Equal(t, Action{Type: Undo, N: 2}, p.GetAction(g))
	assert.Contains(t, out.String(), "parse error")
	assert.Equal(t, Action{Type: Place, Vertex: "D4"}, p.GetAction(g))
	assert.Equal(t, Action{Type: Quit}, p.GetAction(g))
	assert.Contains(t, out.String(), "black> ")
}

func TestPlaySetup(t *testing.T) {
	var out bytes.Buffer
	quit := &scripted{[]string{"quit"}}
	c := &CLI{
		Config: goban.Config{Height: 9, Width: 9},
		Out:    &out,
		Black:  quit,
		White:  quit,
		Setup:  []Action{{Type: Handicap, N: 5}},
	}
	g, result, err := c.Play()
	require.NoError(t, err)
	assert.Equal(t, ResultQuit, result)
	assert.Equal(t, 5, g.Handicap())
	assert.Equal(t, 0, g.Ply())

	c.Setup = []Action{{Type: Handicap, N: 10}}
	_, _, err = c.Play()
	assert.ErrorIs(t, err, goban.ErrTooManyStones)
}
