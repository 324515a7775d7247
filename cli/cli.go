package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/towzeur/go-game-implementation/goban"
)

type Player interface {
	GetAction(g *goban.Game) Action
}

type Glyphs struct {
	Empty, Black, White string
}

// Result says how a game driven by CLI.Play ended.
type Result string

const (
	ResultPasses Result = "passes"
	ResultQuit   Result = "quit"
)

type CLI struct {
	g *goban.Game

	Config goban.Config
	Glyphs *Glyphs
	Out    io.Writer
	Black  Player
	White  Player
	Log    *zap.SugaredLogger

	// Setup is applied to the new game before the first prompt.
	Setup []Action
}

var DefaultGlyphs = Glyphs{
	Empty: ".",
	Black: "X",
	White: "O",
}

var UnicodeGlyphs = Glyphs{
	Empty: "┼",
	Black: "●",
	White: "○",
}

// Play runs a game until both players pass in a row or one of them
// quits. Illegal actions are reported and the same player is asked
// again.
func (c *CLI) Play() (*goban.Game, Result, error) {
	g, err := goban.New(c.Config)
	if err != nil {
		return nil, "", err
	}
	c.g = g
	if c.Log == nil {
		c.Log = zap.NewNop().Sugar()
	}
	for _, a := range c.Setup {
		if err := c.apply(a); err != nil {
			return c.g, "", errors.Wrapf(err, "setup %s", a)
		}
	}
	for {
		c.render()
		if c.g.ConsecutivePasses() >= 2 {
			fmt.Fprintln(c.Out, "Both players passed. Game over.")
			return c.g, ResultPasses, nil
		}
		var a Action
		if c.g.ToMove() == goban.Black {
			a = c.Black.GetAction(c.g)
		} else {
			a = c.White.GetAction(c.g)
		}
		if a.Type == Quit {
			return c.g, ResultQuit, nil
		}
		if err := c.apply(a); err != nil {
			c.Log.Debugw("rejected action", "action", a.String(), "error", err)
			fmt.Fprintln(c.Out, "illegal move:", err)
		}
	}
}

func (c *CLI) apply(a Action) error {
	color, ply := c.g.ToMove(), c.g.Ply()
	switch a.Type {
	case Place:
		if err := c.g.Move(a.Vertex); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "%d. %s %s\n", ply+1, color, a.Vertex)
	case Pass:
		c.g.Pass()
		fmt.Fprintf(c.Out, "%d. %s passes\n", ply+1, color)
	case Undo:
		return c.g.Rollback(a.N)
	case Handicap:
		return c.g.HandicapStones(a.N)
	case Reset:
		c.g.Reset()
	default:
		return fmt.Errorf("unknown action %v", a.Type)
	}
	return nil
}

func (c *CLI) render() {
	RenderBoard(c.Glyphs, c.Out, c.g)
}

func RenderBoard(gl *Glyphs, out io.Writer, g *goban.Game) {
	if gl == nil {
		gl = &DefaultGlyphs
	}
	b := g.Board()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s to play]\n", g.ToMove())
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	fmt.Fprintf(w, "\t")
	for x := 0; x < b.Width(); x++ {
		fmt.Fprintf(w, "%c\t", goban.ColumnLabel(x))
	}
	fmt.Fprintf(w, "\n")
	for y := 0; y < b.Height(); y++ {
		fmt.Fprintf(w, "%d\t", b.Height()-y)
		for x := 0; x < b.Width(); x++ {
			switch b.At(goban.Point{Row: y, Col: x}) {
			case goban.Black:
				fmt.Fprintf(w, "%s\t", gl.Black)
			case goban.White:
				fmt.Fprintf(w, "%s\t", gl.White)
			default:
				fmt.Fprintf(w, "%s\t", gl.Empty)
			}
		}
		fmt.Fprintf(w, "\n")
	}
	w.Flush()
	fmt.Fprintf(out, "ply: %d stones: B:%d W:%d\n",
		g.Ply(), b.Stones(goban.Black), b.Stones(goban.White))
}
