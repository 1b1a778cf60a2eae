package domain

// FARS encodes unknown coordinates as out-of-range sentinel values rather
// than empty cells. Anything above these thresholds means "not reported".
const (
	longitudeSentinel = 900.0
	latitudeSentinel  = 90.0
)

// Coord is one accident's location. Either axis may be absent: the source
// cell can be missing outright or carry a sentinel value.
type Coord struct {
	Lon *float64
	Lat *float64
}

// NewCoord builds a Coord from optional axis values, dropping sentinel
// encodings per axis. Pass nil for a cell that is missing in the source
// row. The result never aliases the arguments.
func NewCoord(lon, lat *float64) Coord {
	var c Coord
	if lon != nil && *lon <= longitudeSentinel {
		v := *lon
		c.Lon = &v
	}
	if lat != nil && *lat <= latitudeSentinel {
		v := *lat
		c.Lat = &v
	}
	return c
}

// Complete reports whether both axes are present.
func (c Coord) Complete() bool { return c.Lon != nil && c.Lat != nil }
