package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"gpspoint-tools/gptools/convert"
	"gpspoint-tools/gptools/gpspoint"
	"gpspoint-tools/gptools/layer"
	"gpspoint-tools/gptools/track"

	"github.com/google/subcommands"
)

// DistanceToWaypointThreshold is the default maximum distance in meters from a
// waypoint after which we consider the track to pass by it.
const DistanceToWaypointThreshold = 25

type statsCmd struct {
	threshold float64
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "Show statistics of the tracks and routes of a gpspoint file." }
func (*statsCmd) Usage() string {
	return `stats [-threshold <meters>] <file>
	Show distance, elevation and duration of every track and route,
	along with the waypoints they pass by.
  `
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.threshold, "threshold", DistanceToWaypointThreshold, "maximum distance in meters between a track and a waypoint it passes by")
}

func (c *statsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg, console := env(args)

	if f.NArg() != 1 {
		console.Error(nil, "Expected exactly one gpspoint file")
		return subcommands.ExitUsageError
	}

	l, _, err := loadLayer(ctx, cfg, f.Arg(0))
	if err != nil {
		console.Error(err, "Failed to read '%s'", f.Arg(0))
		return subcommands.ExitFailure
	}

	if len(l.Tracks()) == 0 && len(l.Routes()) == 0 {
		console.Info("No track or route in '%s'", f.Arg(0))
		return subcommands.ExitSuccess
	}

	if err := writeStats(os.Stdout, l, c.threshold, cfg.Units); err != nil {
		console.Error(err, "Failed to print statistics")
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

// waypointOnTrack is a waypoint the track passes by
type waypointOnTrack struct {
	waypoint *layer.Waypoint
	distance float64
	index    int
}

// waypointsOnTrack returns the waypoints closer than threshold meters to the track
func waypointsOnTrack(t *track.Track, waypoints []*layer.Waypoint, threshold float64) []waypointOnTrack {
	found := []waypointOnTrack{}
	if len(t.Points) == 0 {
		return found
	}
	area := t.Bounds().ExtendMeters(threshold)
	for _, wp := range waypoints {
		loc := track.Location{Waypoint: wp}
		if !area.Contains(loc) {
			continue
		}
		d := t.GetShortestDistanceFromPoint(loc)
		if d < threshold {
			_, index := t.GetClosestPoint(loc)
			found = append(found, waypointOnTrack{waypoint: wp, distance: d, index: index})
		}
	}
	return found
}

func writeStats(out io.Writer, l *layer.Layer, threshold float64, units convert.Units) error {
	w := bufio.NewWriter(out)
	for _, tracks := range [][]*layer.Track{l.Tracks(), l.Routes()} {
		for _, lt := range tracks {
			t := track.New(lt)
			s := t.Stats()

			fmt.Fprintf(w, "%s '%s': %d points, %s, +%s -%s, %s\n",
				lt.Kind(), lt.Name, s.Points, units.Distance(s.Distance),
				units.Elevation(s.ElevationGain), units.Elevation(s.ElevationLoss), convert.Duration(s.Duration))
			if s.Points > 0 {
				b := t.Bounds()
				fmt.Fprintf(w, "  bounds: (%s, %s) - (%s, %s)\n",
					gpspoint.FormatNumber(b.MinLat), gpspoint.FormatNumber(b.MinLng),
					gpspoint.FormatNumber(b.MaxLat), gpspoint.FormatNumber(b.MaxLng))
			}

			onTrack := waypointsOnTrack(t, l.Waypoints(), threshold)
			for _, wt := range onTrack {
				fmt.Fprintf(w, "  passes by '%s' at point %d (%sm away)\n", wt.waypoint.Name, wt.index, convert.Ftoan(wt.distance))
			}

			// up and down stats only make sense when the track passes by one waypoint
			if len(onTrack) == 1 {
				up, down := t.Split(onTrack[0].index)
				su, sd := up.Stats(), down.Stats()
				fmt.Fprintf(w, "  up: %s, +%s -%s, %s\n", units.Distance(su.Distance),
					units.Elevation(su.ElevationGain), units.Elevation(su.ElevationLoss), convert.Duration(su.Duration))
				fmt.Fprintf(w, "  down: %s, +%s -%s, %s\n", units.Distance(sd.Distance),
					units.Elevation(sd.ElevationGain), units.Elevation(sd.ElevationLoss), convert.Duration(sd.Duration))
			}
		}
	}

	return w.Flush()
}
