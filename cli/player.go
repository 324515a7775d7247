package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/towzeur/go-game-implementation/goban"
)

type ActionType byte

const (
	Place ActionType = 1 + iota
	Pass
	Undo
	Handicap
	Reset
	Quit
)

// Action is one command from a player: a stone to place, or a
// request to pass, undo, place handicap stones, reset or quit.
type Action struct {
	Type   ActionType
	Vertex string
	N      int
}

func (a Action) String() string {
	switch a.Type {
	case Place:
		return a.Vertex
	case Pass:
		return "pass"
	case Undo:
		return fmt.Sprintf("undo %d", a.N)
	case Handicap:
		return fmt.Sprintf("handicap %d", a.N)
	case Reset:
		return "reset"
	case Quit:
		return "quit"
	}
	return "?"
}

// ParseAction parses one line of player input. Anything that is not a
// command is taken as a vertex; vertices are validated when played.
func ParseAction(line string) (Action, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return Action{}, fmt.Errorf("empty command")
	}
	count := func(def int) (int, error) {
		if len(words) == 1 {
			return def, nil
		}
		if len(words) > 2 {
			return 0, fmt.Errorf("%s: too many arguments", words[0])
		}
		return strconv.Atoi(words[1])
	}
	switch strings.ToLower(words[0]) {
	case "pass":
		return Action{Type: Pass}, nil
	case "undo":
		n, err := count(1)
		if err != nil {
			return Action{}, err
		}
		return Action{Type: Undo, N: n}, nil
	case "handicap":
		if len(words) != 2 {
			return Action{}, fmt.Errorf("usage: handicap N")
		}
		n, err := count(0)
		if err != nil {
			return Action{}, err
		}
		return Action{Type: Handicap, N: n}, nil
	case "reset":
		return Action{Type: Reset}, nil
	case "quit", "resign":
		return Action{Type: Quit}, nil
	}
	if len(words) != 1 {
		return Action{}, fmt.Errorf("unknown command %q", words[0])
	}
	return Action{Type: Place, Vertex: words[0]}, nil
}

func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) GetAction(g *goban.Game) Action {
	for {
		fmt.Fprintf(c.out, "%s> ", g.ToMove())
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			return Action{Type: Quit}
		}
		a, err := ParseAction(line)
		if err != nil {
			fmt.Fprintln(c.out, "parse error: ", err)
			continue
		}
		return a
	}
}
