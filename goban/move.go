package goban

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrOutOfRange        = errors.New("vertex is off the board")
	ErrOccupied          = errors.New("position is occupied")
	ErrSuicide           = errors.New("move leaves its own group without liberties")
	ErrKo                = errors.New("move repeats the position of two plies ago")
	ErrInvalidHandicap   = errors.New("handicap not allowed")
	ErrTooManyStones     = errors.New("too many handicap stones")
	ErrNoHistory         = errors.New("no plies to roll back")
	ErrExcessiveRollback = errors.New("rollback exceeds the number of plies")
)

// Move plays each label in turn as a full ply for whoever is to move,
// so consecutive labels alternate colors. It stops at the first
// illegal label; plies already played by the call stay committed.
func (g *Game) Move(labels ...string) error {
	for _, label := range labels {
		p, err := ParseVertex(label, g.board.height, g.board.width)
		if err != nil {
			return err
		}
		if err := g.Play(p); err != nil {
			return errors.WithMessage(err, label)
		}
	}
	return nil
}

// Play places a stone for the player to move at p, removes any enemy
// groups left without liberties and commits the result. An illegal
// move returns an error and leaves the game untouched.
func (g *Game) Play(p Point) error {
	if !g.board.Contains(p) {
		return errors.Wrapf(ErrOutOfRange, "%+v on a %dx%d board", p, g.board.height, g.board.width)
	}
	if g.board.At(p) != NoColor {
		return ErrOccupied
	}

	us, them := g.toMove, g.toMove.Flip()
	next := g.board.fork()
	next.set(p, us)

	var buf [4]Point
	captured := 0
	for _, n := range next.neighbours(p, buf[:0]) {
		// Only neighbours still holding an enemy stone are
		// candidates; empty points and groups taken by an earlier
		// neighbour are skipped.
		if next.At(n) != them {
			continue
		}
		if next.Liberties(n) == 0 {
			captured += next.removeGroup(n)
		}
	}

	if next.Liberties(p) == 0 {
		g.log.Debug("suicide rejected",
			zap.Stringer("color", us),
			zap.String("vertex", g.Vertex(p)))
		return ErrSuicide
	}
	if ply := g.Ply(); ply > 1 && next.Equal(g.history.Board(ply-2)) {
		g.log.Debug("ko rejected",
			zap.Stringer("color", us),
			zap.String("vertex", g.Vertex(p)))
		return ErrKo
	}

	next.freeze()
	g.commit(next, Record{Color: us, Point: p})
	if captured > 0 {
		g.log.Debug("captured",
			zap.Stringer("color", us),
			zap.String("vertex", g.Vertex(p)),
			zap.Int("stones", captured))
	}
	return nil
}
