package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"gpspoint-tools/gptools/gpspoint"

	"github.com/google/subcommands"
)

type catCmd struct {
	outputFile string
}

func (*catCmd) Name() string     { return "cat" }
func (*catCmd) Synopsis() string { return "Parse a gpspoint file and write it back normalized." }
func (*catCmd) Usage() string {
	return `cat [-output <file>] <file>
	Read a gpspoint file and write it in canonical form.
  `
}

func (c *catCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "output", "", "output file (default stdout)")
}

func (c *catCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg, console := env(args)

	if f.NArg() != 1 {
		console.Error(nil, "Expected exactly one gpspoint file")
		return subcommands.ExitUsageError
	}
	input := f.Arg(0)

	l, found, err := loadLayer(ctx, cfg, input)
	if err != nil {
		console.Error(err, "Failed to read '%s'", input)
		return subcommands.ExitFailure
	}
	if !found {
		console.Error(nil, "No gpspoint data found in '%s'", input)
		return subcommands.ExitFailure
	}

	if c.outputFile != "" {
		o := console.NewOperation("Writing '%s'", c.outputFile)
		if err := saveLayer(ctx, cfg, c.outputFile, l); err != nil {
			o.Error(err, "Failed to write '%s'", c.outputFile)
			return subcommands.ExitFailure
		}
		o.Success("Wrote '%s'", c.outputFile)
		return subcommands.ExitSuccess
	}

	var opts []gpspoint.WriteOption
	if cfg.RelativeRefs {
		if abs, err := filepath.Abs(input); err == nil {
			opts = append(opts, gpspoint.WithRelativeTo(filepath.Dir(abs)))
		}
	}
	if err := gpspoint.NewWriter(os.Stdout, opts...).Write(l); err != nil {
		console.Error(err, "Failed to write gpspoint data")
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
