package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"gpspoint-tools/gptools/convert"
	"gpspoint-tools/gptools/gpspoint"
	"gpspoint-tools/gptools/layer"
	"gpspoint-tools/gptools/terminal"
	"gpspoint-tools/gptools/track"

	"github.com/google/subcommands"
)

type listCmd struct {
	format     string
	outputFile string
}

const (
	jsonF = "json"
	textF = "text"
	csvF  = "csv"
)

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "List waypoints, tracks and routes of a gpspoint file." }
func (*listCmd) Usage() string {
	return `list [-format text|json|csv] [-output <file>] <file>
	List the content of a gpspoint file.
  `
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "text", "format to display entries (json, text, csv)")
	f.StringVar(&c.outputFile, "output", "", "output file")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg, console := env(args)

	// validate parameters
	switch c.format {
	case jsonF, textF, csvF:
	default:
		console.Error(nil, "Invalid format '%s'", c.format)
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		console.Error(nil, "Expected exactly one gpspoint file")
		return subcommands.ExitUsageError
	}

	l, _, err := loadLayer(ctx, cfg, f.Arg(0))
	if err != nil {
		console.Error(err, "Failed to read '%s'", f.Arg(0))
		return subcommands.ExitFailure
	}

	// get a file writer if needed
	var w io.Writer = os.Stdout
	var op *terminal.Operation
	if c.outputFile != "" {
		out, err := os.Create(c.outputFile)
		if err != nil {
			console.Error(err, "Could not open file '%s'", c.outputFile)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out

		op = console.NewOperation("Exporting list to '%s' in %s format", c.outputFile, c.format)
	}

	if err := writeList(w, l, c.format, cfg.Units); err != nil {
		if op != nil {
			op.Error(err, "Failed to export list")
		} else {
			console.Error(err, "Failed to list '%s'", f.Arg(0))
		}
		return subcommands.ExitFailure
	}

	if op != nil {
		op.Success("List exported to %s", c.outputFile)
	}

	return subcommands.ExitSuccess
}

type listEntry struct {
	Kind      string   `json:"kind"`
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Altitude  *float64 `json:"altitude,omitempty"`
	Points    int      `json:"points,omitempty"`
	Distance  float64  `json:"distance,omitempty"`
	Visible   bool     `json:"visible"`
}

func listEntries(l *layer.Layer) []listEntry {
	entries := []listEntry{}
	for _, wp := range l.Waypoints() {
		ll := wp.Coord.LatLon()
		e := listEntry{
			Kind:      "waypoint",
			Name:      wp.Name,
			Latitude:  &ll.Lat,
			Longitude: &ll.Lon,
			Visible:   wp.Visible,
		}
		if wp.HasAltitude() {
			alt := wp.Altitude
			e.Altitude = &alt
		}
		entries = append(entries, e)
	}
	for _, tracks := range [][]*layer.Track{l.Tracks(), l.Routes()} {
		for _, t := range tracks {
			entries = append(entries, listEntry{
				Kind:     t.Kind(),
				Name:     t.Name,
				Points:   t.Len(),
				Distance: track.New(t).Stats().Distance,
				Visible:  t.Visible,
			})
		}
	}
	return entries
}

func writeList(w io.Writer, l *layer.Layer, format string, units convert.Units) error {
	entries := listEntries(l)

	switch format {
	case textF:
		for _, e := range entries {
			var err error
			if e.Kind == "waypoint" {
				alt := math.NaN()
				if e.Altitude != nil {
					alt = *e.Altitude
				}
				_, err = fmt.Fprintf(w, "%-8s %s (%s, %s) %s\n", e.Kind, e.Name,
					gpspoint.FormatNumber(*e.Latitude), gpspoint.FormatNumber(*e.Longitude), units.Elevation(alt))
			} else {
				_, err = fmt.Fprintf(w, "%-8s %s - %d points - %s\n", e.Kind, e.Name, e.Points, units.Distance(e.Distance))
			}
			if err != nil {
				return err
			}
		}
	case jsonF:
		jsonStr, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(jsonStr))
		return err
	case csvF:
		csvW := csv.NewWriter(w)
		csvW.Write([]string{"kind", "name", "latitude", "longitude", "altitude(m)", "points", "distance(m)", "visible"})
		for _, e := range entries {
			csvW.Write([]string{
				e.Kind,
				e.Name,
				optionalNumber(e.Latitude),
				optionalNumber(e.Longitude),
				optionalNumber(e.Altitude),
				strconv.Itoa(e.Points),
				convert.Ftoan(e.Distance),
				strconv.FormatBool(e.Visible),
			})
		}
		csvW.Flush()
		return csvW.Error()
	default:
		return fmt.Errorf("unknown format '%s'", format)
	}
	return nil
}

func optionalNumber(f *float64) string {
	if f == nil {
		return ""
	}
	return gpspoint.FormatNumber(*f)
}
