package goban

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func place(b *Board, c Color, labels ...string) *Board {
	next := b.fork()
	for _, l := range labels {
		p, err := ParseVertex(l, b.height, b.width)
		if err != nil {
			panic(err)
		}
		next.set(p, c)
	}
	next.freeze()
	return next
}

func TestParseVertex(t *testing.T) {
	cases := []struct {
		in   string
		h, w int
		out  Point
	}{
		{"A1", 19, 19, Point{18, 0}},
		{"T19", 19, 19, Point{0, 18}},
		{"D4", 19, 19, Point{15, 3}},
		{"J9", 9, 9, Point{0, 8}},
		{"E5", 9, 9, Point{4, 4}},
		{"d4", 19, 19, Point{15, 3}},
		{" Q16 ", 19, 19, Point{3, 15}},
		{"Ｄ４", 19, 19, Point{15, 3}},
		{"H3", 3, 8, Point{0, 7}},
	}
	for _, tc := range cases {
		got, err := ParseVertex(tc.in, tc.h, tc.w)
		if !assert.NoError(t, err, "ParseVertex(%q)", tc.in) {
			continue
		}
		assert.Equal(t, tc.out, got, "ParseVertex(%q)", tc.in)
		if tc.in == "E5" || tc.in == "A1" || tc.in == "T19" {
			assert.Equal(t, tc.in, FormatVertex(got, tc.h))
		}
	}
}

func TestParseVertexErrors(t *testing.T) {
	cases := []struct {
		in   string
		h, w int
	}{
		{"", 9, 9},
		{"D", 9, 9},
		{"4D", 9, 9},
		{"I4", 19, 19},
		{"Dx", 9, 9},
		{"D0", 9, 9},
		{"D10", 9, 9},
		{"D-1", 9, 9},
		{"K1", 9, 9},
		{"Z1", 19, 24},
		{"D+4", 9, 9},
		{"D04", 9, 9},
		{"D 4", 9, 9},
	}
	for _, tc := range cases {
		_, err := ParseVertex(tc.in, tc.h, tc.w)
		assert.True(t, errors.Is(err, ErrOutOfRange), "ParseVertex(%q): %v", tc.in, err)
	}
}

func TestFormatVertexRoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{9, 9}, {19, 19}, {5, 24}} {
		h, w := dims[0], dims[1]
		for r := 0; r < h; r++ {
			for c := 0; c < w; c++ {
				p := Point{r, c}
				got, err := ParseVertex(FormatVertex(p, h), h, w)
				require.NoError(t, err)
				require.Equal(t, p, got)
			}
		}
	}
}

func TestLiberties(t *testing.T) {
	b := newBoard(9, 9)

	b = place(b, Black, "A1")
	assert.Equal(t, 2, b.Liberties(Point{8, 0}), "corner")

	b = place(b, Black, "A2")
	assert.Equal(t, 3, b.Liberties(Point{8, 0}), "edge pair")

	b = place(b, White, "B1")
	assert.Equal(t, 2, b.Liberties(Point{7, 0}), "pair next to enemy")

	l := place(newBoard(9, 9), Black, "B2", "C2", "C3")
	stones, libs := l.Group(Point{7, 1})
	assert.Len(t, stones, 3)
	assert.Equal(t, 7, libs, "B3 borders two stones but counts once")

	assert.Equal(t, 0, newBoard(9, 9).Liberties(Point{4, 4}), "empty point")
}

func TestForkSharesRows(t *testing.T) {
	b := place(newBoard(5, 5), Black, "C3")
	next := b.fork()
	next.set(Point{0, 0}, White)

	assert.Equal(t, NoColor, b.At(Point{0, 0}), "fork wrote through")
	assert.Equal(t, White, next.At(Point{0, 0}))
	assert.True(t, &b.rows[2][0] == &next.rows[2][0], "untouched row copied")
	assert.False(t, &b.rows[0][0] == &next.rows[0][0], "written row shared")
	assert.Panics(t, func() { b.set(Point{1, 1}, Black) })
}

func TestHashAndEqual(t *testing.T) {
	empty := newBoard(9, 9)
	b := place(empty, Black, "E5", "D4")
	w := place(empty, White, "E5", "D4")
	assert.NotEqual(t, empty.Hash(), b.Hash())
	assert.NotEqual(t, b.Hash(), w.Hash())
	assert.False(t, b.Equal(w))

	back := b.fork()
	back.set(Point{4, 4}, NoColor)
	back.set(Point{5, 3}, NoColor)
	back.freeze()
	assert.Equal(t, empty.Hash(), back.Hash())
	assert.True(t, empty.Equal(back))

	other := place(newBoard(9, 9), Black, "D4", "E5")
	assert.True(t, b.Equal(other), "order of placement")
	assert.False(t, b.Equal(place(newBoard(9, 10), Black, "E5", "D4")))
}

func TestCaptureWholeBoard(t *testing.T) {
	g, err := NewSquare(19)
	require.NoError(t, err)
	b := g.board.fork()
	for r := 0; r < 19; r++ {
		for c := 0; c < 19; c++ {
			if r != 0 || c != 0 {
				b.set(Point{r, c}, Black)
			}
		}
	}
	b.freeze()
	g.board = b
	g.toMove = White

	require.NoError(t, g.Play(Point{0, 0}))
	assert.Equal(t, 0, g.Board().Stones(Black))
	assert.Equal(t, 1, g.Board().Stones(White))
	assert.Equal(t, White, g.At(Point{0, 0}))
}

func TestHandicapPoints(t *testing.T) {
	assert.Len(t, HandicapPoints(9), 5)
	assert.Len(t, HandicapPoints(13), 9)
	assert.Len(t, HandicapPoints(19), 9)
	assert.Nil(t, HandicapPoints(11))

	pts := HandicapPoints(9)
	pts[0] = Point{}
	assert.Equal(t, Point{2, 6}, HandicapPoints(9)[0])
}
