package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/towzeur/go-game-implementation/cmd/internal/games"
	"github.com/towzeur/go-game-implementation/cmd/internal/play"
	"github.com/towzeur/go-game-implementation/cmd/internal/replay"
	"github.com/towzeur/go-game-implementation/cmd/internal/selfplay"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&replay.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&games.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
