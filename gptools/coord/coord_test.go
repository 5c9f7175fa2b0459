package coord_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"gpspoint-tools/gptools/coord"
)

func TestUTMRoundTrip(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		input  coord.LatLon
		zone   int
		letter byte
	}{
		"paris":     {input: coord.LatLon{Lat: 48.8566, Lon: 2.3522}, zone: 31, letter: 'U'},
		"seattle":   {input: coord.LatLon{Lat: 47.58358925699506, Lon: -121.95062398910524}, zone: 10, letter: 'T'},
		"sydney":    {input: coord.LatLon{Lat: -33.8688, Lon: 151.2093}, zone: 56, letter: 'H'},
		"equator":   {input: coord.LatLon{Lat: 0.5, Lon: 0.5}, zone: 31, letter: 'N'},
		"south_eq":  {input: coord.LatLon{Lat: -0.5, Lon: -0.5}, zone: 30, letter: 'M'},
		"far_north": {input: coord.LatLon{Lat: 70.1, Lon: 25.7}, zone: 35, letter: 'W'},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			u := coord.LatLonToUTM(tc.input)
			require.Equal(tc.zone, u.Zone)
			require.Equal(tc.letter, u.Letter)

			ll := coord.UTMToLatLon(u)
			require.InDelta(tc.input.Lat, ll.Lat, 1e-6)
			require.InDelta(tc.input.Lon, ll.Lon, 1e-6)
		})
	}
}

func TestKnownUTM(t *testing.T) {
	require := require.New(t)

	// Eiffel tower, zone 31U
	u := coord.LatLonToUTM(coord.LatLon{Lat: 48.858093, Lon: 2.294694})
	require.Equal(31, u.Zone)
	require.InDelta(448266, u.Easting, 15)
	require.InDelta(5411921, u.Northing, 15)
}

func TestCoordModes(t *testing.T) {
	require := require.New(t)

	ll := coord.LatLon{Lat: 48.0, Lon: 2.0}

	c := coord.FromLatLon(coord.LatLonMode, ll)
	require.Equal(coord.LatLonMode, c.Mode())
	require.Equal(ll, c.LatLon())

	u := coord.FromLatLon(coord.UTMMode, ll)
	require.Equal(coord.UTMMode, u.Mode())
	require.InDelta(48.0, u.LatLon().Lat, 1e-6)
	require.InDelta(2.0, u.LatLon().Lon, 1e-6)

	back := coord.FromLatLon(coord.LatLonMode, u.LatLon())
	require.Equal(coord.LatLonMode, back.Mode())
	require.InDelta(2.0, back.LatLon().Lon, 1e-6)
}

func TestNonFiniteToUTM(t *testing.T) {
	require := require.New(t)

	tests := map[string]coord.LatLon{
		"nan_lat":   {Lat: math.NaN(), Lon: 2},
		"nan_lon":   {Lat: 48, Lon: math.NaN()},
		"inf_lat":   {Lat: math.Inf(1), Lon: 2},
		"minus_inf": {Lat: math.Inf(-1), Lon: math.Inf(-1)},
	}

	for name, ll := range tests {
		t.Run(name, func(t *testing.T) {
			u := coord.LatLonToUTM(ll)
			require.NotZero(u.Letter)
			require.GreaterOrEqual(u.Zone, 1)
			require.LessOrEqual(u.Zone, 60)
			require.False(math.IsNaN(u.Easting))
			require.False(math.IsNaN(u.Northing))
		})
	}
}

func TestParseMode(t *testing.T) {
	require := require.New(t)

	m, err := coord.ParseMode("UTM")
	require.NoError(err)
	require.Equal(coord.UTMMode, m)

	m, err = coord.ParseMode("")
	require.NoError(err)
	require.Equal(coord.LatLonMode, m)
	require.Equal("latlon", m.String())

	_, err = coord.ParseMode("mercator")
	require.Error(err)
}
