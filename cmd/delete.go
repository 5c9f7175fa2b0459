package main

import (
	"context"
	"flag"
	"fmt"

	"gpspoint-tools/gptools/layer"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	waypoint string
	track    string
	route    string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "Delete a waypoint, track or route from a gpspoint file." }
func (*deleteCmd) Usage() string {
	return `delete -waypoint|-track|-route <name> <file>
	Deletes an entry and rewrites the gpspoint file.
  `
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.waypoint, "waypoint", "", "name of the waypoint to delete")
	f.StringVar(&c.track, "track", "", "name of the track to delete")
	f.StringVar(&c.route, "route", "", "name of the route to delete")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg, console := env(args)

	if f.NArg() != 1 {
		console.Error(nil, "Expected exactly one gpspoint file")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	l, _, err := loadLayer(ctx, cfg, path)
	if err != nil {
		console.Error(err, "Failed to read '%s'", path)
		return subcommands.ExitFailure
	}

	deleted, err := c.delete(l)
	if err != nil {
		console.Error(err, "Nothing deleted")
		return subcommands.ExitUsageError
	}

	o := console.NewOperation("Deleting %s", deleted)
	if err := saveLayer(ctx, cfg, path, l); err != nil {
		o.Error(err, "Failed to delete %s", deleted)
		return subcommands.ExitFailure
	}
	o.Success("Successfully deleted %s", deleted)

	return subcommands.ExitSuccess
}

// delete removes every requested entry from the layer and describes them
func (c *deleteCmd) delete(l *layer.Layer) (string, error) {
	targets := []struct {
		kind string
		name string
		del  func(string) bool
	}{
		{"waypoint", c.waypoint, l.DeleteWaypoint},
		{"track", c.track, l.DeleteTrack},
		{"route", c.route, l.DeleteRoute},
	}

	var deleted string
	requested := false
	for _, t := range targets {
		if t.name == "" {
			continue
		}
		requested = true
		if !t.del(t.name) {
			return "", fmt.Errorf("no %s named '%s'", t.kind, t.name)
		}
		if deleted != "" {
			deleted += ", "
		}
		deleted += fmt.Sprintf("%s '%s'", t.kind, t.name)
	}
	if !requested {
		return "", fmt.Errorf("one of -waypoint, -track or -route is required")
	}

	return deleted, nil
}
