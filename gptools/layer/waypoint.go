package layer

import (
	"math"

	"gpspoint-tools/gptools/coord"
)

// DirectionRef is the reference frame of an image direction
type DirectionRef int

// Image direction references
const (
	TrueNorth DirectionRef = iota
	MagneticNorth
)

// Waypoint is a named point of interest. Unset numeric fields hold NaN,
// unset text fields are empty.
type Waypoint struct {
	Name      string
	Coord     coord.Coord
	Altitude  float64
	Timestamp float64 // seconds since epoch

	Comment     string
	Description string
	Source      string
	Type        string
	Symbol      string

	Image             string
	ImageDirection    float64 // degrees
	ImageDirectionRef DirectionRef

	Visible bool
}

// NewWaypoint returns a visible waypoint with every optional field unset
func NewWaypoint() *Waypoint {
	return &Waypoint{
		Altitude:       math.NaN(),
		Timestamp:      math.NaN(),
		ImageDirection: math.NaN(),
		Visible:        true,
	}
}

// HasAltitude reports whether the altitude is set
func (w *Waypoint) HasAltitude() bool {
	return !math.IsNaN(w.Altitude)
}

// HasTimestamp reports whether the timestamp is set
func (w *Waypoint) HasTimestamp() bool {
	return !math.IsNaN(w.Timestamp)
}

// HasImageDirection reports whether the image direction is set
func (w *Waypoint) HasImageDirection() bool {
	return !math.IsNaN(w.ImageDirection)
}
