package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"gpspoint-tools/gptools/config"
	"gpspoint-tools/gptools/gpspoint"
	"gpspoint-tools/gptools/terminal"

	"github.com/google/subcommands"
)

func main() {

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&listCmd{}, "")
	subcommands.Register(&catCmd{}, "")
	subcommands.Register(&statsCmd{}, "")
	subcommands.Register(&deleteCmd{}, "")

	console := terminal.New(os.Stderr)

	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		console.Error(err, "Failed to load config")
		os.Exit(int(subcommands.ExitUsageError))
	}

	gpspoint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx, cfg, console)))
}

func env(args []interface{}) (*config.Config, *terminal.Console) {
	return args[0].(*config.Config), args[1].(*terminal.Console)
}
