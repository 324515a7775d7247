package replay

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/pkg/errors"

	"github.com/towzeur/go-game-implementation/cli"
	"github.com/towzeur/go-game-implementation/cmd/internal/opt"
	"github.com/towzeur/go-game-implementation/goban"
)

type Command struct {
	opt.Options

	plain bool
	all   bool
}

func (*Command) Name() string     { return "replay" }
func (*Command) Synopsis() string { return "Replay a list of moves and print the result" }
func (*Command) Usage() string {
	return `replay [flags] MOVE...

Play the given vertices (or "pass") in order, alternating colors, and
print the final board. A move list may also be a single quoted,
space-separated argument.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.Options.AddFlags(flags)
	flags.BoolVar(&c.plain, "plain", false, "print the compact board only")
	flags.BoolVar(&c.all, "all", false, "print the board after every ply")
}

func (c *Command) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.Resolve(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	log := opt.NewLogger(c.Debug)
	defer log.Sync()

	var moves []string
	for _, a := range flags.Args() {
		moves = append(moves, strings.Fields(a)...)
	}
	g, err := c.replay(os.Stdout, moves)
	if err != nil {
		log.Errorw("replay", "error", err)
		if g != nil {
			c.print(os.Stdout, g)
		}
		return subcommands.ExitFailure
	}
	c.print(os.Stdout, g)
	return subcommands.ExitSuccess
}

// replay plays moves on a new game. On an illegal move the game is
// returned as it stood before that move.
func (c *Command) replay(out io.Writer, moves []string) (*goban.Game, error) {
	g, err := goban.New(c.BuildConfig(nil))
	if err != nil {
		return nil, err
	}
	if c.Handicap > 0 {
		if err := g.HandicapStones(c.Handicap); err != nil {
			return nil, err
		}
	}
	for _, m := range moves {
		if strings.EqualFold(m, "pass") {
			g.Pass()
		} else if err := g.Move(m); err != nil {
			return g, errors.Wrapf(err, "ply %d", g.Ply()+1)
		}
		if c.all {
			c.print(out, g)
		}
	}
	return g, nil
}

func (c *Command) print(out io.Writer, g *goban.Game) {
	if c.plain {
		g.Display(out)
		return
	}
	gl := &cli.DefaultGlyphs
	if c.Unicode {
		gl = &cli.UnicodeGlyphs
	}
	cli.RenderBoard(gl, out, g)
}
