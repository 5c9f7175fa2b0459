package coord

import (
	"fmt"
	"strings"
)

// Mode is the internal projection a layer keeps its coordinates in
type Mode int

// Supported projection modes
const (
	LatLonMode Mode = iota
	UTMMode
)

func (m Mode) String() string {
	switch m {
	case LatLonMode:
		return "latlon"
	case UTMMode:
		return "utm"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a projection mode name ("latlon" or "utm")
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "latlon", "latlong":
		return LatLonMode, nil
	case "utm":
		return UTMMode, nil
	}
	return LatLonMode, fmt.Errorf("unknown coordinate mode '%s'", s)
}

// LatLon is a geographic position in decimal degrees
type LatLon struct {
	Lat, Lon float64
}

// Coord is a position stored in one projection mode
type Coord struct {
	mode Mode
	ll   LatLon
	utm  UTM
}

// FromLatLon converts a geographic position to the given mode
func FromLatLon(mode Mode, ll LatLon) Coord {
	if mode == UTMMode {
		return Coord{mode: UTMMode, utm: LatLonToUTM(ll)}
	}
	return Coord{mode: LatLonMode, ll: ll}
}

// Mode returns the projection the coordinate is stored in
func (c Coord) Mode() Mode {
	return c.mode
}

// LatLon returns the coordinate as a geographic position
func (c Coord) LatLon() LatLon {
	if c.mode == UTMMode {
		return UTMToLatLon(c.utm)
	}
	return c.ll
}

// UTM returns the coordinate as a UTM position
func (c Coord) UTM() UTM {
	if c.mode == UTMMode {
		return c.utm
	}
	return LatLonToUTM(c.ll)
}
