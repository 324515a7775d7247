package goban

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Config struct {
	Height int
	Width  int

	// Logger receives debug events for captures and rejected
	// moves. A nil Logger discards them.
	Logger *zap.Logger
}

var (
	ErrBoardTooWide  = errors.New("board is too wide")
	ErrBadDimensions = errors.New("bad board dimensions")
)

// Game is the state of a single game: the live board, whose turn it
// is, the handicap flag and the history of committed plies.
//
// A Game is not safe for concurrent use.
type Game struct {
	cfg Config
	log *zap.Logger

	board    *Board
	toMove   Color
	handicap bool
	stones   int
	history  History
}

// New starts a game on an empty board with Black to move.
func New(cfg Config) (*Game, error) {
	if cfg.Width > MaxWidth {
		return nil, errors.Wrapf(ErrBoardTooWide, "width %d, at most %d", cfg.Width, MaxWidth)
	}
	if cfg.Height < 1 || cfg.Width < 1 {
		return nil, errors.Wrapf(ErrBadDimensions, "%dx%d", cfg.Height, cfg.Width)
	}
	return fresh(cfg), nil
}

// NewSquare is New for a size×size board.
func NewSquare(size int) (*Game, error) {
	return New(Config{Height: size, Width: size})
}

func fresh(cfg Config) *Game {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		cfg:    cfg,
		log:    log,
		board:  newBoard(cfg.Height, cfg.Width),
		toMove: Black,
	}
}

// Reset discards the game and starts over on an empty board of the
// same dimensions.
func (g *Game) Reset() {
	*g = *fresh(g.cfg)
}

func (g *Game) Height() int {
	return g.board.height
}

func (g *Game) Width() int {
	return g.board.width
}

// Board returns the live position. The returned board is never
// modified; later plies produce new boards.
func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) At(p Point) Color {
	return g.board.At(p)
}

func (g *Game) ToMove() Color {
	return g.toMove
}

// Ply returns the number of committed plies, moves and passes alike.
func (g *Game) Ply() int {
	return g.history.Len()
}

func (g *Game) HandicapPlaced() bool {
	return g.handicap
}

// Handicap returns the number of handicap stones placed.
func (g *Game) Handicap() int {
	return g.stones
}

func (g *Game) History() *History {
	return &g.history
}

// Records returns the committed plies in order.
func (g *Game) Records() []Record {
	out := make([]Record, len(g.history.records))
	copy(out, g.history.records)
	return out
}

// ConsecutivePasses returns the number of passes at the end of the
// history. The engine does not end the game; callers conventionally
// stop after two.
func (g *Game) ConsecutivePasses() int {
	n := 0
	for i := g.history.Len() - 1; i >= 0 && g.history.records[i].Pass; i-- {
		n++
	}
	return n
}

// Vertex formats p as a label for this board.
func (g *Game) Vertex(p Point) string {
	return FormatVertex(p, g.board.height)
}

// GetPosition returns the contents of the point named by label.
func (g *Game) GetPosition(label string) (Color, error) {
	p, err := ParseVertex(label, g.board.height, g.board.width)
	if err != nil {
		return NoColor, err
	}
	return g.board.At(p), nil
}

// Pass commits a ply that leaves the board unchanged.
func (g *Game) Pass() {
	g.commit(g.board, Record{Color: g.toMove, Pass: true})
}

// Rollback undoes the last n plies. Rolling back every ply leaves an
// empty board, including when handicap stones had been placed.
func (g *Game) Rollback(n int) error {
	ply := g.Ply()
	if ply == 0 {
		return ErrNoHistory
	}
	if n < 0 || n > ply {
		return errors.Wrapf(ErrExcessiveRollback, "rollback %d of %d plies", n, ply)
	}
	if n == 0 {
		return nil
	}
	g.history.truncate(ply - n)
	if last := g.history.Last(); last != nil {
		g.board = last
	} else {
		g.board = newBoard(g.board.height, g.board.width)
	}
	if n%2 == 1 {
		g.toMove = g.toMove.Flip()
	}
	g.log.Debug("rollback", zap.Int("plies", n), zap.Int("ply", g.Ply()))
	return nil
}

func (g *Game) commit(b *Board, r Record) {
	g.history.push(b, r)
	g.board = b
	g.toMove = g.toMove.Flip()
}
