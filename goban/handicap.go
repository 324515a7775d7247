package goban

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var handicapLayouts = map[int][]Point{
	9:  {{2, 6}, {6, 2}, {6, 6}, {2, 2}, {4, 4}},
	13: {{3, 9}, {9, 3}, {9, 9}, {3, 3}, {6, 6}, {6, 3}, {6, 9}, {3, 6}, {9, 6}},
	19: {{3, 15}, {15, 3}, {15, 15}, {3, 3}, {9, 9}, {9, 3}, {9, 15}, {3, 9}, {15, 9}},
}

// HandicapPoints returns the ordered handicap points for a square
// board of the given size, or nil if the size has no layout.
func HandicapPoints(size int) []Point {
	pts := handicapLayouts[size]
	if pts == nil {
		return nil
	}
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}

// HandicapStones places the first n handicap points for the first
// player. It is only allowed once, before any ply, on a 9x9, 13x13 or
// 19x19 board. The stones bypass capture checks.
func (g *Game) HandicapStones(n int) error {
	if g.Ply() != 0 {
		return errors.Wrap(ErrInvalidHandicap, "game already started")
	}
	if g.handicap {
		return errors.Wrap(ErrInvalidHandicap, "handicap already placed")
	}
	if g.board.height != g.board.width {
		return errors.Wrapf(ErrInvalidHandicap, "board is not square: %dx%d", g.board.height, g.board.width)
	}
	pts, ok := handicapLayouts[g.board.width]
	if !ok {
		return errors.Wrapf(ErrInvalidHandicap, "no handicap layout for size %d", g.board.width)
	}
	if n < 0 {
		return errors.Wrapf(ErrInvalidHandicap, "negative handicap %d", n)
	}
	if n > len(pts) {
		return errors.Wrapf(ErrTooManyStones, "%d stones, size %d allows %d", n, g.board.width, len(pts))
	}

	next := g.board.fork()
	for _, p := range pts[:n] {
		next.set(p, g.toMove)
	}
	next.freeze()
	g.board = next
	g.handicap = true
	g.stones = n
	g.log.Debug("handicap placed",
		zap.Stringer("color", g.toMove),
		zap.Int("stones", n))
	return nil
}
