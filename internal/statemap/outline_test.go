package statemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOutline(t *testing.T) {
	o, err := LoadOutline(filepath.Join("testdata", "states.geojson"))
	require.NoError(t, err)
	require.Equal(t, 3, o.Segments())

	// The first ring is Alabama's closed box.
	first := o.segments[0]
	assert.Len(t, first.points, 5)
	assert.Equal(t, bounds{minLon: -88.5, maxLon: -84.9, minLat: 30.2, maxLat: 35.0}, first.box)
}

func TestLoadOutline_MissingFile(t *testing.T) {
	_, err := LoadOutline(filepath.Join("testdata", "nope.geojson"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open outline")
}

func TestLoadOutline_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.geojson")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadOutline(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode outline")
}

func TestLoadOutline_SkipsUnsupportedGeometry(t *testing.T) {
	const doc = `{"type":"FeatureCollection","features":[
		{"geometry":{"type":"Point","coordinates":[-100.0,40.0]}},
		{"geometry":{"type":"Polygon","coordinates":[[[-1,0],[1,0],[0,1],[-1,0]]]}}
	]}`
	path := filepath.Join(t.TempDir(), "mixed.geojson")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	o, err := LoadOutline(path)
	require.NoError(t, err)
	assert.Equal(t, 1, o.Segments())
}

func TestOutlineClip(t *testing.T) {
	o, err := LoadOutline(filepath.Join("testdata", "states.geojson"))
	require.NoError(t, err)

	// A box inside Alabama keeps Alabama and drops Wyoming and Hawaii.
	inside := bounds{minLon: -88, maxLon: -85, minLat: 31, maxLat: 34}
	kept := o.clip(inside)
	require.Len(t, kept, 1)
	assert.Equal(t, -84.9, kept[0].box.maxLon, "kept segment should be Alabama's")

	// Touching a ring's edge is enough to keep it.
	edge := bounds{minLon: -90, maxLon: -88.5, minLat: 29, maxLat: 30.5}
	assert.Len(t, o.clip(edge), 1)

	// Open water between Hawaii and the mainland matches nothing.
	none := bounds{minLon: -140, maxLon: -130, minLat: 30, maxLat: 40}
	assert.Empty(t, o.clip(none))
}

func TestPaddedBounds(t *testing.T) {
	b := bounds{minLon: -110, maxLon: -100, minLat: 40, maxLat: 42}
	p := b.padded()

	assert.Equal(t, -110.5, p.minLon)
	assert.Equal(t, -99.5, p.maxLon)
	assert.InDelta(t, 39.9, p.minLat, 1e-9)
	assert.InDelta(t, 42.1, p.maxLat, 1e-9)
}

func TestPaddedBounds_SinglePoint(t *testing.T) {
	b := bounds{minLon: -107.5, maxLon: -107.5, minLat: 43, maxLat: 43}
	p := b.padded()

	assert.Equal(t, bounds{minLon: -108, maxLon: -107, minLat: 42.5, maxLat: 43.5}, p)
}
