package gpspoint

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"gpspoint-tools/gptools/coord"
	"gpspoint-tools/gptools/fileutil"
	"gpspoint-tools/gptools/layer"
)

// EndLayerData marks the end of gpspoint data embedded in a larger file
const EndLayerData = "~EndLayerData"

// unknownName is given to tracks and routes that come without a name
const unknownName = "UNK"

// Store receives the entities built by a Reader
type Store interface {
	CoordMode() coord.Mode
	AddWaypoint(name string, wp *layer.Waypoint)
	AddTrack(name string, t *layer.Track)
	AddRoute(name string, t *layer.Track)
}

// Reader parses gpspoint text into a Store
type Reader struct {
	store Store
	dir   string
}

// ReadOption configures a Reader
type ReadOption func(*Reader)

// WithDir sets the directory relative image paths are resolved against,
// normally the directory of the file being read
func WithDir(dir string) ReadOption {
	return func(r *Reader) {
		r.dir = dir
	}
}

// NewReader creates a reader adding what it parses to store
func NewReader(store Store, opts ...ReadOption) *Reader {
	r := &Reader{store: store}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Read parses src until end of input or an EndLayerData line. Malformed
// content is skipped; the only errors are read errors from src. The boolean
// result reports whether anything of this format was found at all.
//
// When src is a *bufio.Reader, input following EndLayerData is left unread.
func (r *Reader) Read(src io.Reader) (bool, error) {
	br, ok := src.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(src)
	}

	p := parser{
		store: r.store,
		dir:   r.dir,
		mode:  r.store.CoordMode(),
		log:   Logger(),
	}
	p.line.reset()
	defer p.closeTrack()

	for {
		text, err := br.ReadString('\n')
		if text != "" {
			text = strings.TrimSuffix(text, "\n")
			text = strings.TrimSuffix(text, "\r")
			if strings.HasPrefix(text, EndLayerData) {
				return true, nil
			}
			p.parseLine(text)
		}
		if err == io.EOF {
			return p.found, nil
		}
		if err != nil {
			return p.found, fmt.Errorf("reading gpspoint line %d: %w", p.lineNo+1, err)
		}
	}
}

// parser is the state of one Read call
type parser struct {
	store Store
	dir   string
	mode  coord.Mode
	log   *slog.Logger

	line    lineState
	lineNo  int
	current *layer.Track
	found   bool
}

func (p *parser) parseLine(text string) {
	p.lineNo++
	defer p.line.reset()

	for tok := range Tokens(text) {
		tag, ok := ParseTag(tok)
		if !ok {
			p.log.Debug("gpspoint: dropping malformed token", "line", p.lineNo, "token", tok)
			continue
		}
		p.line.apply(tag)
	}

	switch p.line.typ {
	case NoRecord:
	case TrackEndRecord, RouteEndRecord:
		p.closeTrack()
	case WaypointRecord:
		if p.line.name == "" {
			p.log.Debug("gpspoint: dropping waypoint without name", "line", p.lineNo)
			return
		}
		p.closeTrack()
		p.found = true
		p.store.AddWaypoint(p.line.name, p.newWaypoint())
	case TrackRecord, RouteRecord:
		p.closeTrack()
		p.found = true
		name := p.line.name
		if name == "" {
			name = unknownName
		}
		t := p.newTrack()
		if t.IsRoute {
			p.store.AddRoute(name, t)
		} else {
			p.store.AddTrack(name, t)
		}
		p.current = t
	case TrackpointRecord, RoutepointRecord:
		if p.current == nil {
			p.log.Debug("gpspoint: dropping point outside of a track", "line", p.lineNo)
			return
		}
		p.found = true
		p.current.Points = append(p.current.Points, p.newTrackpoint())
	}
}

// closeTrack stops adding points to the open track, if any
func (p *parser) closeTrack() {
	p.current = nil
}

func (p *parser) newWaypoint() *layer.Waypoint {
	l := &p.line
	wp := layer.NewWaypoint()
	wp.Coord = coord.FromLatLon(p.mode, l.ll)
	wp.Altitude = l.altitude
	wp.Timestamp = l.timestamp
	wp.Visible = l.visible
	wp.Comment = l.comment
	wp.Description = l.description
	wp.Source = l.source
	wp.Type = l.xtype
	wp.Symbol = l.symbol
	if l.image != "" {
		wp.Image = fileutil.MakeAbsolute(l.image, p.dir)
	}
	if !math.IsNaN(l.imageDirection) {
		wp.ImageDirection = l.imageDirection
		wp.ImageDirectionRef = l.imageDirectionRef
	}
	return wp
}

func (p *parser) newTrack() *layer.Track {
	l := &p.line
	t := layer.NewTrack()
	t.IsRoute = l.typ == RouteRecord
	t.Visible = l.visible
	t.Comment = l.comment
	t.Description = l.description
	t.Source = l.source
	t.Type = l.xtype
	if l.color != "" {
		if c, ok := layer.ParseColor(l.color); ok {
			t.Color = &c
		} else {
			p.log.Debug("gpspoint: ignoring invalid color", "line", p.lineNo, "color", l.color)
		}
	}
	t.DrawNameMode = l.nameLabel
	t.MaxNumberDistLabels = l.distLabel
	return t
}

func (p *parser) newTrackpoint() *layer.Trackpoint {
	l := &p.line
	tp := layer.NewTrackpoint()
	tp.Coord = coord.FromLatLon(p.mode, l.ll)
	tp.Name = l.name
	tp.NewSegment = l.newSegment
	tp.Timestamp = l.timestamp
	tp.Altitude = l.altitude
	if l.extended {
		tp.Speed = l.speed
		tp.Course = l.course
		tp.Sats = l.sats
		tp.FixMode = l.fix
		tp.HDOP = l.hdop
		tp.VDOP = l.vdop
		tp.PDOP = l.pdop
	}
	return tp
}
