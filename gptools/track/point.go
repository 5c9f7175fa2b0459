package track

import (
	"math"
	"time"

	"gpspoint-tools/gptools/layer"
)

// Point point in 2D coordinates, with elevation and time when known
type Point struct {
	Latitude, Longitude float64
	Elevation           float64 // NaN when unknown
	Time                time.Time
}

// FromTrackpoint converts a layer trackpoint
func FromTrackpoint(tp *layer.Trackpoint) Point {
	ll := tp.Coord.LatLon()
	p := Point{
		Latitude:  ll.Lat,
		Longitude: ll.Lon,
		Elevation: tp.Altitude,
	}
	if tp.HasTimestamp() {
		sec, frac := math.Modf(tp.Timestamp)
		p.Time = time.Unix(int64(sec), int64(frac*1e9)).UTC()
	}
	return p
}

// Lat returns the latitude in degrees
func (p Point) Lat() float64 {
	return p.Latitude
}

// Lng returns the longitude in degrees
func (p Point) Lng() float64 {
	return p.Longitude
}

// Location adapts a waypoint to LatLng
type Location struct {
	*layer.Waypoint
}

// Lat returns the latitude in degrees
func (l Location) Lat() float64 {
	return l.Coord.LatLon().Lat
}

// Lng returns the longitude in degrees
func (l Location) Lng() float64 {
	return l.Coord.LatLon().Lon
}
