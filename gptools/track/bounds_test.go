package track_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gpspoint-tools/gptools/track"
)

func TestExtendBounds(t *testing.T) {
	require := require.New(t)
	bounds := track.Bounds{
		MinLat: 48.1344333,
		MaxLat: 48.2714123,
		MinLng: -121.8064235,
		MaxLng: -121.6771830,
	}

	newBounds := bounds.Extend(0.01, 0.02)

	require.InDelta(48.1244333, newBounds.MinLat, 1e-9)
	require.InDelta(48.2814123, newBounds.MaxLat, 1e-9)
	require.InDelta(-121.8264235, newBounds.MinLng, 1e-9)
	require.InDelta(-121.6571830, newBounds.MaxLng, 1e-9)
}

func TestExtendMetersAndContains(t *testing.T) {
	require := require.New(t)
	bounds := track.Bounds{MinLat: 60, MaxLat: 60, MinLng: 10, MaxLng: 10}

	b := bounds.ExtendMeters(1113.2)
	require.InDelta(59.99, b.MinLat, 1e-9)
	require.InDelta(60.01, b.MaxLat, 1e-9)
	// a degree of longitude is about half as long at 60 degrees
	require.Less(b.MinLng, 9.98)
	require.Greater(b.MaxLng, 10.02)

	tests := map[string]struct {
		input track.Point
		want  bool
	}{
		"center":      {input: track.Point{Latitude: 60, Longitude: 10}, want: true},
		"north_edge":  {input: track.Point{Latitude: 60.0099, Longitude: 10}, want: true},
		"too_north":   {input: track.Point{Latitude: 60.02, Longitude: 10}, want: false},
		"east_inside": {input: track.Point{Latitude: 60, Longitude: 10.019}, want: true},
		"too_west":    {input: track.Point{Latitude: 60, Longitude: 9.9}, want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(tc.want, b.Contains(tc.input))
		})
	}
}
