package track

import (
	"math"
	"time"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/tkrajina/gpxgo/gpx"

	"gpspoint-tools/gptools/layer"
)

// Track is the geometry of a layer track or route, used to compute
// distances and statistics on the Earth.
type Track struct {
	Name   string
	Points []Point

	polyline *s2.Polyline
	segment  gpx.GPXTrackSegment
}

// LatLng latlng
type LatLng interface {
	Lat() float64
	Lng() float64
}

// Stats track statistics
type Stats struct {
	Points         int
	Duration       time.Duration
	ElevationGain  float64
	ElevationLoss  float64
	StartElevation float64
	EndElevation   float64
	Distance       float64
}

const earthRadius = 6378100
const elevationChangeThreshold = 18

// New creates the geometry of a layer track
func New(t *layer.Track) *Track {
	pts := make([]Point, len(t.Points))
	for i, tp := range t.Points {
		pts[i] = FromTrackpoint(tp)
	}
	return FromPoints(t.Name, pts)
}

// FromPoints creates a track from the given points
func FromPoints(name string, pts []Point) *Track {
	pPts := make([]s2.LatLng, len(pts))
	gPts := make([]gpx.GPXPoint, len(pts))
	for i, p := range pts {
		pPts[i] = toS2LatLng(p)
		gPts[i] = gpx.GPXPoint{
			Point: gpx.Point{
				Latitude:  p.Latitude,
				Longitude: p.Longitude,
			},
			Timestamp: p.Time,
		}
		if !math.IsNaN(p.Elevation) {
			gPts[i].Elevation = *gpx.NewNullableFloat64(p.Elevation)
		}
	}

	return &Track{
		Name:     name,
		Points:   pts,
		polyline: s2.PolylineFromLatLngs(pPts),
		segment:  gpx.GPXTrackSegment{Points: gPts},
	}
}

// GetClosestPoint returns the closest point on the track along with its index,
// or -1 for an empty track
func (t *Track) GetClosestPoint(pt LatLng) (Point, int) {
	l := len(t.Points)
	if l == 0 {
		return Point{}, -1
	}

	p := s2.PointFromLatLng(toS2LatLng(pt))
	projectedPt, index := t.polyline.Project(p)
	if index >= l {
		return t.Points[l-1], l - 1
	}

	var closestPtIndex = index - 1
	pts := *t.polyline
	if projectedPt.Distance(pts[index]) < projectedPt.Distance(pts[index-1]) {
		closestPtIndex = index
	}

	return t.Points[closestPtIndex], closestPtIndex
}

// GetShortestDistanceFromPoint returns the shortest distance in meters from the
// given point to the track, +Inf for an empty track
func (t *Track) GetShortestDistanceFromPoint(pt LatLng) float64 {
	if len(t.Points) == 0 {
		return math.Inf(1)
	}

	ptLatLng := toS2LatLng(pt)
	projectedPoint, _ := t.polyline.Project(s2.PointFromLatLng(ptLatLng))
	d := ptLatLng.Distance(s2.LatLngFromPoint(projectedPoint))

	return d.Radians() * earthRadius
}

// Stats retrieves statistics from the track. Elevations are NaN when unknown.
func (t *Track) Stats() Stats {
	if len(t.Points) == 0 {
		return Stats{StartElevation: math.NaN(), EndElevation: math.NaN()}
	}

	tb := t.segment.TimeBounds()
	gain, loss := t.elevationGainLoss(elevationChangeThreshold)

	return Stats{
		Points:         len(t.Points),
		Duration:       tb.EndTime.Sub(tb.StartTime),
		ElevationGain:  gain,
		ElevationLoss:  loss,
		StartElevation: t.Points[0].Elevation,
		EndElevation:   t.Points[len(t.Points)-1].Elevation,
		Distance:       t.segment.Length3D(),
	}
}

// Split splits the track in two tracks from the given point. Point at index `index` will remain in first part.
func (t *Track) Split(index int) (*Track, *Track) {
	if index < 0 {
		index = -1
	}
	if index >= len(t.Points) {
		index = len(t.Points) - 1
	}
	first := append([]Point(nil), t.Points[:index+1]...)
	second := append([]Point(nil), t.Points[index+1:]...)
	return FromPoints(t.Name, first), FromPoints(t.Name, second)
}

// Bounds returns the boundaries of the track
func (t *Track) Bounds() Bounds {
	b := t.segment.Bounds()
	return Bounds{
		MinLat: b.MinLatitude,
		MinLng: b.MinLongitude,
		MaxLat: b.MaxLatitude,
		MaxLng: b.MaxLongitude,
	}
}

func (t *Track) elevationGainLoss(threshold float64) (float64, float64) {
	elevations := t.segment.Elevations()
	selectedElevations := []float64{}
	i := 0
	for _, e := range elevations {
		if e.NotNull() {
			if i == 0 || math.Abs(e.Value()-selectedElevations[i-1]) > threshold {
				selectedElevations = append(selectedElevations, e.Value())
				i++
			}
		}
	}

	var gain float64
	var loss float64

	for i := 1; i < len(selectedElevations); i++ {
		d := selectedElevations[i] - selectedElevations[i-1]
		if d > 0.0 {
			gain += d
		} else {
			loss -= d
		}
	}

	return gain, loss
}

func toS2LatLng(p LatLng) s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(p.Lat()) * s1.Degree,
		Lng: s1.Angle(p.Lng()) * s1.Degree,
	}
}
