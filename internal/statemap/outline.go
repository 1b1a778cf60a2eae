package statemap

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// point is a position in degrees.
type point struct {
	lon, lat float64
}

// bounds is an axis-aligned box in degrees.
type bounds struct {
	minLon, maxLon float64
	minLat, maxLat float64
}

func emptyBounds() bounds {
	return bounds{
		minLon: math.Inf(1), maxLon: math.Inf(-1),
		minLat: math.Inf(1), maxLat: math.Inf(-1),
	}
}

func (b bounds) extend(pt point) bounds {
	b.minLon = min(b.minLon, pt.lon)
	b.maxLon = max(b.maxLon, pt.lon)
	b.minLat = min(b.minLat, pt.lat)
	b.maxLat = max(b.maxLat, pt.lat)
	return b
}

func (b bounds) intersects(other bounds) bool {
	return b.minLon <= other.maxLon && other.minLon <= b.maxLon &&
		b.minLat <= other.maxLat && other.minLat <= b.maxLat
}

// padded widens the box so edge points do not sit on the frame. A
// degenerate single-point range gets a fixed half-degree margin.
func (b bounds) padded() bounds {
	b.minLon, b.maxLon = padRange(b.minLon, b.maxLon)
	b.minLat, b.maxLat = padRange(b.minLat, b.maxLat)
	return b
}

func padRange(lo, hi float64) (float64, float64) {
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 0.5
	}
	return lo - pad, hi + pad
}

// segment is one boundary polyline with its precomputed bounding box.
type segment struct {
	points []point
	box    bounds
}

// Outline holds state boundary polylines read from a GeoJSON file.
type Outline struct {
	segments []segment
}

// geometry mirrors the GeoJSON geometry object. Coordinates are kept
// raw because their shape depends on Type.
type geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

type feature struct {
	Geometry geometry `json:"geometry"`
}

type featureCollection struct {
	Features []feature `json:"features"`
}

// LoadOutline reads state boundary polygons from a GeoJSON
// FeatureCollection, such as the Census Bureau cartographic boundary
// files. Polygon and MultiPolygon geometries contribute one polyline
// per ring; other geometry types are skipped.
func LoadOutline(path string) (*Outline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open outline: %w", err)
	}
	defer f.Close()

	var fc featureCollection
	if err := json.NewDecoder(f).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decode outline %s: %w", path, err)
	}

	o := &Outline{}
	for _, ft := range fc.Features {
		rings, err := geometryRings(ft.Geometry)
		if err != nil {
			return nil, fmt.Errorf("decode outline %s: %w", path, err)
		}
		for _, ring := range rings {
			o.add(ring)
		}
	}
	return o, nil
}

// Segments reports how many boundary polylines were loaded.
func (o *Outline) Segments() int { return len(o.segments) }

// clip returns the polylines whose bounding boxes intersect b. A
// segment crossing the box is kept whole; the overhang is cut off at
// the frame edge when the plot is drawn.
func (o *Outline) clip(b bounds) []segment {
	var kept []segment
	for _, seg := range o.segments {
		if seg.box.intersects(b) {
			kept = append(kept, seg)
		}
	}
	return kept
}

func (o *Outline) add(ring [][]float64) {
	seg := segment{points: make([]point, 0, len(ring)), box: emptyBounds()}
	for _, pos := range ring {
		if len(pos) < 2 {
			continue
		}
		pt := point{lon: pos[0], lat: pos[1]}
		seg.points = append(seg.points, pt)
		seg.box = seg.box.extend(pt)
	}
	if len(seg.points) < 2 {
		return
	}
	o.segments = append(o.segments, seg)
}

// geometryRings flattens a Polygon or MultiPolygon into its rings,
// each a list of [lon, lat] positions.
func geometryRings(g geometry) ([][][]float64, error) {
	switch g.Type {
	case "Polygon":
		var rings [][][]float64
		if err := json.Unmarshal(g.Coordinates, &rings); err != nil {
			return nil, err
		}
		return rings, nil
	case "MultiPolygon":
		var polys [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &polys); err != nil {
			return nil, err
		}
		var rings [][][]float64
		for _, poly := range polys {
			rings = append(rings, poly...)
		}
		return rings, nil
	default:
		return nil, nil
	}
}
