package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gpspoint-tools/gptools/config"
	"gpspoint-tools/gptools/convert"
	"gpspoint-tools/gptools/coord"
	"gpspoint-tools/gptools/gpspoint"
	"gpspoint-tools/gptools/layer"
	"gpspoint-tools/gptools/track"
)

const sample = `type="waypoint" latitude="47.58878498470957" longitude="-121.94446563720703" name="Junction" altitude="1000"
type="waypoint" latitude="47.5733" longitude="-121.8346" name="Far" visible="n"
type="track" name="hike"
type="trackpoint" latitude="47.58358925699506" longitude="-121.95062398910524" altitude="300" unixtime="1589000000"
type="trackpoint" latitude="47.58878498470957" longitude="-121.94446563720703" altitude="1000" unixtime="1589003600"
type="trackpoint" latitude="47.58622336725498" longitude="-121.9381356239319" altitude="700" unixtime="1589005400"
type="trackpoint" latitude="47.59581793370288" longitude="-121.93571090698244" altitude="400" unixtime="1589007200"
type="trackend"
type="route" name="plan"
type="routepoint" latitude="1" longitude="2"
type="routeend"
`

func sampleLayer(t *testing.T) *layer.Layer {
	l := layer.New(coord.LatLonMode)
	found, err := gpspoint.NewReader(l).Read(strings.NewReader(sample))
	require.NoError(t, err)
	require.True(t, found)
	return l
}

func TestWriteListText(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	require.NoError(writeList(&buf, sampleLayer(t), textF, convert.Metric))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(lines, 4)
	require.Equal("waypoint Junction (47.58878498470957, -121.94446563720703) 1000m", lines[0])
	require.Equal("waypoint Far (47.5733, -121.8346) -", lines[1])
	require.True(strings.HasPrefix(lines[2], "track    hike - 4 points - "), lines[2])
	require.Equal("route    plan - 1 points - 0.00km", lines[3])

	buf.Reset()
	require.NoError(writeList(&buf, sampleLayer(t), textF, convert.Imperial))
	require.Contains(buf.String(), "3281ft")
	require.Contains(buf.String(), "0.00mi")
}

func TestWriteListJSON(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	require.NoError(writeList(&buf, sampleLayer(t), jsonF, convert.Metric))

	var entries []map[string]interface{}
	require.NoError(json.Unmarshal(buf.Bytes(), &entries))
	require.Len(entries, 4)
	require.Equal("Junction", entries[0]["name"])
	require.Equal(1000.0, entries[0]["altitude"])
	require.Equal(true, entries[0]["visible"])
	require.NotContains(entries[1], "altitude")
	require.Equal(false, entries[1]["visible"])
	require.Equal("track", entries[2]["kind"])
	require.Equal(4.0, entries[2]["points"])
	require.Equal("route", entries[3]["kind"])
}

func TestWriteListCSV(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	require.NoError(writeList(&buf, sampleLayer(t), csvF, convert.Metric))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(lines, 5)
	require.Equal("kind,name,latitude,longitude,altitude(m),points,distance(m),visible", lines[0])
	require.Equal("waypoint,Far,47.5733,-121.8346,,0,0,false", lines[2])
	require.Equal("route,plan,,,,1,0,true", lines[4])

	require.Error(writeList(&buf, sampleLayer(t), "xml", convert.Metric))
}

func TestWriteStats(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	require.NoError(writeStats(&buf, sampleLayer(t), DistanceToWaypointThreshold, convert.Metric))

	out := buf.String()
	require.Contains(out, "track 'hike': 4 points, ")
	require.Contains(out, "+700m -600m, 2h 0m")
	require.Contains(out, "bounds: (47.58358925699506, -121.95062398910524) - (47.59581793370288, -121.93571090698244)")
	require.Contains(out, "passes by 'Junction' at point 1 (0m away)")
	require.NotContains(out, "'Far'")
	require.Contains(out, "up: ")
	require.Contains(out, "+700m -0m, 1h 0m")
	require.Contains(out, "route 'plan': 1 points")
}

func TestWaypointsOnTrackThreshold(t *testing.T) {
	require := require.New(t)

	l := sampleLayer(t)
	hike, ok := l.Track("hike")
	require.True(ok)

	tr := track.New(hike)
	require.Len(waypointsOnTrack(tr, l.Waypoints(), DistanceToWaypointThreshold), 1)
	require.Len(waypointsOnTrack(tr, l.Waypoints(), 10000), 2)
}

func TestDelete(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		cmd     deleteCmd
		want    string
		wantErr bool
	}{
		"waypoint":   {cmd: deleteCmd{waypoint: "Far"}, want: "waypoint 'Far'"},
		"track":      {cmd: deleteCmd{track: "hike"}, want: "track 'hike'"},
		"both":       {cmd: deleteCmd{waypoint: "Junction", route: "plan"}, want: "waypoint 'Junction', route 'plan'"},
		"unknown":    {cmd: deleteCmd{route: "hike"}, wantErr: true},
		"no_request": {cmd: deleteCmd{}, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			deleted, err := tc.cmd.delete(sampleLayer(t))
			if tc.wantErr {
				require.Error(err)
				return
			}
			require.NoError(err)
			require.Equal(tc.want, deleted)
		})
	}
}

func TestSaveLayer(t *testing.T) {
	require := require.New(t)

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "trip.gpspoint")
	require.NoError(os.WriteFile(path, []byte(sample), 0o640))

	cfg := &config.Config{CoordMode: coord.LatLonMode, RelativeRefs: true}
	l, found, err := loadLayer(ctx, cfg, path)
	require.NoError(err)
	require.True(found)

	wp, _ := l.Waypoint("Junction")
	wp.Image = filepath.Join(dir, "photos", "junction.jpg")
	require.True(l.DeleteWaypoint("Far"))
	require.NoError(saveLayer(ctx, cfg, path, l))

	data, err := os.ReadFile(path)
	require.NoError(err)
	require.Contains(string(data), `image="`+filepath.Join("photos", "junction.jpg")+`"`)
	require.NotContains(string(data), "Far")

	fi, err := os.Stat(path)
	require.NoError(err)
	require.Equal(os.FileMode(0o640), fi.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(err)
	require.Len(entries, 1)

	l, _, err = loadLayer(ctx, cfg, path)
	require.NoError(err)
	wp, _ = l.Waypoint("Junction")
	require.Equal(filepath.Join(dir, "photos", "junction.jpg"), wp.Image)

	_, _, err = loadLayer(ctx, cfg, filepath.Join(dir, "missing.gpspoint"))
	require.Error(err)
}
