package track

import "math"

// metersPerDegree is the length of one degree of latitude
const metersPerDegree = 111320

// Bounds represents track coordinate boundaries
type Bounds struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

// Extend extends boundaries from given decimal degrees of latitude and longitude
func (b Bounds) Extend(latInc, lngInc float64) Bounds {
	b.MinLat -= latInc
	b.MinLng -= lngInc
	b.MaxLat += latInc
	b.MaxLng += lngInc
	return b
}

// ExtendMeters extends boundaries by at least the given distance in meters
func (b Bounds) ExtendMeters(m float64) Bounds {
	latInc := m / metersPerDegree
	// longitude degrees shrink toward the poles, use the widest latitude
	maxAbsLat := math.Min(math.Max(math.Abs(b.MinLat), math.Abs(b.MaxLat))+latInc, 89.9)
	lngInc := m / (metersPerDegree * math.Cos(maxAbsLat*math.Pi/180))

	return b.Extend(latInc, lngInc)
}

// Contains reports whether p lies within the boundaries
func (b Bounds) Contains(p LatLng) bool {
	return p.Lat() >= b.MinLat && p.Lat() <= b.MaxLat &&
		p.Lng() >= b.MinLng && p.Lng() <= b.MaxLng
}
