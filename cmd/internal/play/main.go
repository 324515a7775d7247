package play

import (
	"bufio"
	"context"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/pkg/errors"

	"github.com/towzeur/go-game-implementation/cli"
	"github.com/towzeur/go-game-implementation/cmd/internal/opt"
	"github.com/towzeur/go-game-implementation/logs"
)

type Command struct {
	opt.Options

	white string
	black string
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Go from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play Go on the command-line. Each player is "human" or "rand[:seed]".
Enter a vertex such as D4, or one of: pass, undo [n], handicap n,
reset, quit.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.Options.AddFlags(flags)
	flags.StringVar(&c.white, "white", "human", "white player")
	flags.StringVar(&c.black, "black", "human", "black player")
}

func (c *Command) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.Resolve(flags); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		return subcommands.ExitUsageError
	}
	log := opt.NewLogger(c.Debug)
	defer log.Sync()

	in := bufio.NewReader(os.Stdin)
	black, err := parsePlayer(in, c.black)
	if err != nil {
		log.Errorw("bad player", "black", c.black, "error", err)
		return subcommands.ExitUsageError
	}
	white, err := parsePlayer(in, c.white)
	if err != nil {
		log.Errorw("bad player", "white", c.white, "error", err)
		return subcommands.ExitUsageError
	}

	st := &cli.CLI{
		Config: c.BuildConfig(log.Desugar()),
		Out:    os.Stdout,
		Black:  black,
		White:  white,
		Glyphs: glyphs(c.Unicode),
		Log:    log,
	}
	if c.Handicap > 0 {
		st.Setup = []cli.Action{{Type: cli.Handicap, N: c.Handicap}}
	}
	g, result, err := st.Play()
	if err != nil {
		log.Errorw("play", "error", err)
		return subcommands.ExitFailure
	}

	if c.DB != "" {
		repo, err := logs.Open(c.DB)
		if err != nil {
			log.Errorw("open game log", "db", c.DB, "error", err)
			return subcommands.ExitFailure
		}
		defer repo.Close()
		rec := logs.Record(g, c.black, c.white, string(result))
		if err := repo.InsertGame(rec); err != nil {
			log.Errorw("log game", "error", err)
			return subcommands.ExitFailure
		}
		log.Infow("logged game", "id", rec.ID, "plies", rec.Plies)
	}
	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

func parsePlayer(in *bufio.Reader, s string) (cli.Player, error) {
	if s == "human" {
		return cli.NewCLIPlayer(os.Stdout, in), nil
	}
	if s == "rand" {
		return cli.NewRandomPlayer(0), nil
	}
	if strings.HasPrefix(s, "rand:") {
		seed, err := strconv.ParseInt(s[len("rand:"):], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "player %s", s)
		}
		return cli.NewRandomPlayer(seed), nil
	}
	return nil, errors.Errorf("unparseable player: %s", s)
}
