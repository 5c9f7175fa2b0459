package layer

import (
	"math"

	"gpspoint-tools/gptools/coord"
)

// Trackpoint is one point of a track or a route
type Trackpoint struct {
	Name       string
	Coord      coord.Coord
	Altitude   float64
	Timestamp  float64
	NewSegment bool

	// extended GPS data
	Speed   float64
	Course  float64
	Sats    int
	FixMode int
	HDOP    float64
	VDOP    float64
	PDOP    float64
}

// NewTrackpoint returns a point with every optional field unset
func NewTrackpoint() *Trackpoint {
	nan := math.NaN()
	return &Trackpoint{
		Altitude:  nan,
		Timestamp: nan,
		Speed:     nan,
		Course:    nan,
		HDOP:      nan,
		VDOP:      nan,
		PDOP:      nan,
	}
}

// HasAltitude reports whether the altitude is set
func (tp *Trackpoint) HasAltitude() bool {
	return !math.IsNaN(tp.Altitude)
}

// HasTimestamp reports whether the timestamp is set
func (tp *Trackpoint) HasTimestamp() bool {
	return !math.IsNaN(tp.Timestamp)
}

// HasExtended reports whether the point carries GPS receiver data worth saving
func (tp *Trackpoint) HasExtended() bool {
	return !math.IsNaN(tp.Speed) || !math.IsNaN(tp.Course) || tp.Sats > 0
}

// Track is an ordered list of points. Routes are tracks with IsRoute set.
type Track struct {
	Name    string
	Points  []*Trackpoint
	IsRoute bool
	Visible bool
	Color   *Color

	Comment     string
	Description string
	Source      string
	Type        string

	DrawNameMode        int
	MaxNumberDistLabels int
}

// NewTrack returns an empty visible track
func NewTrack() *Track {
	return &Track{Visible: true}
}

// Len returns the number of points
func (t *Track) Len() int {
	return len(t.Points)
}

// Kind returns "route" or "track"
func (t *Track) Kind() string {
	if t.IsRoute {
		return "route"
	}
	return "track"
}
