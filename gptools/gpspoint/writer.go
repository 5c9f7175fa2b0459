package gpspoint

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gpspoint-tools/gptools/fileutil"
	"gpspoint-tools/gptools/layer"
)

// Source lists the entities a Writer serializes
type Source interface {
	Waypoints() []*layer.Waypoint
	Tracks() []*layer.Track
	Routes() []*layer.Track
}

// Writer serializes waypoints, tracks and routes as gpspoint lines
type Writer struct {
	w          *bufio.Writer
	relativeTo string
	lower      cases.Caser
}

// WriteOption configures a Writer
type WriteOption func(*Writer)

// WithRelativeTo writes image paths relative to dir when possible
func WithRelativeTo(dir string) WriteOption {
	return func(w *Writer) {
		w.relativeTo = dir
	}
}

// NewWriter creates a writer on w
func NewWriter(w io.Writer, opts ...WriteOption) *Writer {
	wr := &Writer{
		w:     bufio.NewWriter(w),
		lower: cases.Lower(language.Und),
	}
	for _, o := range opts {
		o(wr)
	}
	return wr
}

// Write serializes src: the waypoint list, then every track, then every route
func (w *Writer) Write(src Source) error {
	var b strings.Builder

	w.w.WriteString("type=\"waypointlist\"\n")
	for _, wp := range src.Waypoints() {
		if wp == nil || wp.Name == "" {
			continue
		}
		b.Reset()
		w.formatWaypoint(&b, wp)
		w.w.WriteString(b.String())
	}
	w.w.WriteString("type=\"waypointlistend\"\n")

	for _, list := range [][]*layer.Track{src.Tracks(), src.Routes()} {
		for _, t := range list {
			if t == nil || t.Name == "" {
				continue
			}
			b.Reset()
			w.formatTrack(&b, t)
			w.w.WriteString(b.String())
		}
	}

	// bufio.Writer errors are sticky, Flush reports the first one
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("writing gpspoint: %w", err)
	}
	return nil
}

func (w *Writer) formatWaypoint(b *strings.Builder, wp *layer.Waypoint) {
	ll := wp.Coord.LatLon()
	b.WriteString(`type="waypoint"`)
	writeNumber(b, "latitude", ll.Lat)
	writeNumber(b, "longitude", ll.Lon)
	writeText(b, "name", wp.Name)

	if wp.HasAltitude() {
		writeNumber(b, "altitude", wp.Altitude)
	}
	if wp.HasTimestamp() {
		writeNumber(b, "unixtime", wp.Timestamp)
	}
	writeText(b, "comment", wp.Comment)
	writeText(b, "description", wp.Description)
	writeText(b, "source", wp.Source)
	writeText(b, "xtype", wp.Type)
	writeText(b, "image", w.imagePath(wp.Image))
	if wp.HasImageDirection() {
		writeNumber(b, "image_direction", wp.ImageDirection)
		writeInt(b, "image_direction_ref", int(wp.ImageDirectionRef))
	}
	// symbols are always written lowercase
	writeText(b, "symbol", w.lower.String(wp.Symbol))
	if !wp.Visible {
		b.WriteString(` visible="n"`)
	}
	b.WriteByte('\n')
}

func (w *Writer) formatTrack(b *strings.Builder, t *layer.Track) {
	kind := t.Kind()
	fmt.Fprintf(b, "type=%q", kind)
	writeText(b, "name", t.Name)
	writeText(b, "comment", t.Comment)
	writeText(b, "description", t.Description)
	writeText(b, "source", t.Source)
	writeText(b, "xtype", t.Type)
	if t.Color != nil {
		b.WriteString(" color=")
		b.WriteString(t.Color.Hex())
	}
	if t.DrawNameMode > 0 {
		writeInt(b, "draw_name_mode", t.DrawNameMode)
	}
	if t.MaxNumberDistLabels > 0 {
		writeInt(b, "number_dist_labels", t.MaxNumberDistLabels)
	}
	if !t.Visible {
		b.WriteString(` visible="n"`)
	}
	b.WriteByte('\n')

	for _, tp := range t.Points {
		if tp != nil {
			formatTrackpoint(b, kind, tp)
		}
	}
	fmt.Fprintf(b, "type=\"%send\"\n", kind)
}

func formatTrackpoint(b *strings.Builder, kind string, tp *layer.Trackpoint) {
	ll := tp.Coord.LatLon()
	fmt.Fprintf(b, "type=\"%spoint\"", kind)
	writeNumber(b, "latitude", ll.Lat)
	writeNumber(b, "longitude", ll.Lon)
	writeText(b, "name", tp.Name)

	if tp.HasAltitude() {
		writeNumber(b, "altitude", tp.Altitude)
	}
	if tp.HasTimestamp() {
		writeNumber(b, "unixtime", tp.Timestamp)
	}
	if tp.NewSegment {
		b.WriteString(` newsegment="yes"`)
	}

	if tp.HasExtended() {
		b.WriteString(` extended="yes"`)
		writeOptionalNumber(b, "speed", tp.Speed)
		writeOptionalNumber(b, "course", tp.Course)
		if tp.Sats > 0 {
			writeInt(b, "sat", tp.Sats)
		}
		if tp.FixMode > 0 {
			writeInt(b, "fix", tp.FixMode)
		}
		writeOptionalNumber(b, "hdop", tp.HDOP)
		writeOptionalNumber(b, "vdop", tp.VDOP)
		writeOptionalNumber(b, "pdop", tp.PDOP)
	}
	b.WriteByte('\n')
}

func (w *Writer) imagePath(image string) string {
	if image == "" || w.relativeTo == "" {
		return image
	}
	if rel, ok := fileutil.RelativeTo(w.relativeTo, image); ok {
		return rel
	}
	return image
}

// FormatNumber formats f so that strconv.ParseFloat gives f back, whatever the locale
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func writeText(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(Escape(value))
	b.WriteByte('"')
}

func writeNumber(b *strings.Builder, key string, f float64) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(FormatNumber(f))
	b.WriteByte('"')
}

func writeOptionalNumber(b *strings.Builder, key string, f float64) {
	if !math.IsNaN(f) {
		writeNumber(b, key, f)
	}
}

func writeInt(b *strings.Builder, key string, i int) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(strconv.Itoa(i))
	b.WriteByte('"')
}
