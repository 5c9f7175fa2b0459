package layer

import (
	"gpspoint-tools/gptools/coord"
)

// Layer holds the waypoints, tracks and routes of one document. Each
// collection is keyed by name and keeps registration order.
type Layer struct {
	mode coord.Mode

	waypoints collection[*Waypoint]
	tracks    collection[*Track]
	routes    collection[*Track]
}

// New creates an empty layer storing coordinates in the given mode
func New(mode coord.Mode) *Layer {
	return &Layer{mode: mode}
}

// CoordMode returns the projection used for stored coordinates
func (l *Layer) CoordMode() coord.Mode {
	return l.mode
}

// AddWaypoint registers a waypoint, replacing any waypoint with the same name
func (l *Layer) AddWaypoint(name string, wp *Waypoint) {
	wp.Name = name
	l.waypoints.put(name, wp)
}

// AddTrack registers a track, replacing any track with the same name
func (l *Layer) AddTrack(name string, t *Track) {
	t.Name = name
	l.tracks.put(name, t)
}

// AddRoute registers a route, replacing any route with the same name
func (l *Layer) AddRoute(name string, t *Track) {
	t.Name = name
	l.routes.put(name, t)
}

// Waypoints returns all waypoints in registration order
func (l *Layer) Waypoints() []*Waypoint { return l.waypoints.values() }

// Tracks returns all tracks in registration order
func (l *Layer) Tracks() []*Track { return l.tracks.values() }

// Routes returns all routes in registration order
func (l *Layer) Routes() []*Track { return l.routes.values() }

// Waypoint looks up a waypoint by name
func (l *Layer) Waypoint(name string) (*Waypoint, bool) { return l.waypoints.get(name) }

// Track looks up a track by name
func (l *Layer) Track(name string) (*Track, bool) { return l.tracks.get(name) }

// Route looks up a route by name
func (l *Layer) Route(name string) (*Track, bool) { return l.routes.get(name) }

// DeleteWaypoint removes a waypoint, returning false if it did not exist
func (l *Layer) DeleteWaypoint(name string) bool { return l.waypoints.remove(name) }

// DeleteTrack removes a track, returning false if it did not exist
func (l *Layer) DeleteTrack(name string) bool { return l.tracks.remove(name) }

// DeleteRoute removes a route, returning false if it did not exist
func (l *Layer) DeleteRoute(name string) bool { return l.routes.remove(name) }

// Empty reports whether the layer holds nothing
func (l *Layer) Empty() bool {
	return len(l.waypoints.order) == 0 && len(l.tracks.order) == 0 && len(l.routes.order) == 0
}

type collection[T any] struct {
	order []string
	items map[string]T
}

func (c *collection[T]) put(name string, v T) {
	if c.items == nil {
		c.items = map[string]T{}
	}
	if _, ok := c.items[name]; !ok {
		c.order = append(c.order, name)
	}
	c.items[name] = v
}

func (c *collection[T]) get(name string) (T, bool) {
	v, ok := c.items[name]
	return v, ok
}

func (c *collection[T]) remove(name string) bool {
	if _, ok := c.items[name]; !ok {
		return false
	}
	delete(c.items, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[T]) values() []T {
	vs := make([]T, len(c.order))
	for i, n := range c.order {
		vs[i] = c.items[n]
	}
	return vs
}
