package selfplay

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/pkg/errors"

	"github.com/towzeur/go-game-implementation/cmd/internal/opt"
	"github.com/towzeur/go-game-implementation/logs"
)

type Command struct {
	opt.Options

	seed     int64
	games    int
	cutoff   int
	threads  int
	passRate float64

	summary string
	verbose bool
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play random games and check the rules engine" }
func (*Command) Usage() string {
	return `selfplay [flags]

Play games of uniformly random legal moves in parallel. After every ply
the last move is undone and replayed, and the result must match.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.Options.AddFlags(flags)
	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 10, "number of games to play")
	flags.IntVar(&c.cutoff, "cutoff", 400, "cut games off after how many plies")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel threads")
	flags.Float64Var(&c.passRate, "pass-rate", 0.01, "chance of passing when a move is legal")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
}

func (c *Command) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.Resolve(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	log := opt.NewLogger(c.Debug)
	defer log.Sync()

	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}
	bc := c.BuildConfig(nil)
	cfg := &Config{
		Games:    c.games,
		Threads:  c.threads,
		Seed:     c.seed,
		Cutoff:   c.cutoff,
		Height:   bc.Height,
		Width:    bc.Width,
		Handicap: c.Handicap,
		PassRate: c.passRate,
		Verbose:  c.verbose,
		Log:      log,
	}

	start := time.Now()
	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Errorw("selfplay failed", "seed", c.seed, "error", err)
		return subcommands.ExitFailure
	}
	elapsed := time.Since(start)

	if c.DB != "" {
		if err := writeLog(c.DB, &st); err != nil {
			log.Errorw("log games", "db", c.DB, "error", err)
			return subcommands.ExitFailure
		}
	}
	if c.summary != "" {
		if err := c.writeSummary(c.summary, &st); err != nil {
			log.Errorw("writing summary", "error", err)
		}
	}

	log.Infow("done",
		"games", st.Count(),
		"seed", c.seed,
		"plies", st.Plies,
		"passed", st.Passed,
		"cutoff", st.Cutoff,
		"elapsed", elapsed,
	)
	tw := tabwriter.NewWriter(os.Stderr, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "captured\toccupied\tsuicide\tko\n")
	fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n",
		st.Captured, st.Rejected.Occupied, st.Rejected.Suicide, st.Rejected.Ko)
	tw.Flush()

	return subcommands.ExitSuccess
}

func writeLog(db string, st *Stats) error {
	repo, err := logs.Open(db)
	if err != nil {
		return err
	}
	defer repo.Close()
	gs := make([]*logs.Game, 0, len(st.Games))
	for _, r := range st.Games {
		result := "passes"
		if r.Cutoff {
			result = "cutoff"
		}
		gs = append(gs, logs.Record(r.Game, "selfplay", "selfplay", result))
	}
	return errors.Wrap(repo.InsertGames(gs), "insert games")
}

type Summary struct {
	Cmdline []string
	Seed    int64
	Height  int
	Width   int
	Stats   *Stats
}

func (c *Command) writeSummary(path string, stats *Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	bc := c.BuildConfig(nil)
	summary := Summary{
		Cmdline: os.Args,
		Seed:    c.seed,
		Height:  bc.Height,
		Width:   bc.Width,
		Stats:   stats,
	}

	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	_, err = f.Write(bs)
	return err
}
