package games

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/towzeur/go-game-implementation/cmd/internal/opt"
	"github.com/towzeur/go-game-implementation/logs"
)

type Command struct {
	opt.Options

	limit  int
	player string
	moves  bool
}

func (*Command) Name() string     { return "games" }
func (*Command) Synopsis() string { return "List games from the game log" }
func (*Command) Usage() string {
	return `games -db FILE [flags]

List the most recent logged games, or a player's results with -player.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.Options.AddFlags(flags)
	flags.IntVar(&c.limit, "n", 20, "number of games to list")
	flags.StringVar(&c.player, "player", "", "summarize results for this player")
	flags.BoolVar(&c.moves, "moves", false, "print each game's moves")
}

func (c *Command) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.Resolve(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	log := opt.NewLogger(c.Debug)
	defer log.Sync()
	if c.DB == "" {
		log.Error("games: -db is required")
		return subcommands.ExitUsageError
	}
	repo, err := logs.Open(c.DB)
	if err != nil {
		log.Errorw("open game log", "db", c.DB, "error", err)
		return subcommands.ExitFailure
	}
	defer repo.Close()

	if c.player != "" {
		res, err := repo.Results(c.player)
		if err != nil {
			log.Errorw("results", "player", c.player, "error", err)
			return subcommands.ExitFailure
		}
		writeResults(os.Stdout, res)
		return subcommands.ExitSuccess
	}

	gs, err := repo.ListGames(c.limit)
	if err != nil {
		log.Errorw("list games", "error", err)
		return subcommands.ExitFailure
	}
	writeGames(os.Stdout, gs, c.moves)
	return subcommands.ExitSuccess
}

func writeGames(out io.Writer, gs []logs.Game, moves bool) {
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "id\ttime\tsize\thandicap\tblack\twhite\tplies\tresult\n")
	for _, g := range gs {
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%d\t%s\t%s\t%d\t%s\n",
			g.ID, g.Timestamp.Format("2006-01-02 15:04"),
			g.Height, g.Width, g.Handicap,
			g.Black, g.White, g.Plies, g.Result)
		if moves {
			fmt.Fprintf(tw, "\t%s\n", g.Moves)
		}
	}
	tw.Flush()
}

func writeResults(out io.Writer, res map[string]int) {
	keys := make([]string, 0, len(res))
	for k := range res {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "result\tgames\n")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%d\n", k, res[k])
	}
	tw.Flush()
}
