package statemap

import (
	"fmt"
	"image/color"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/ntbohl/fars/internal/domain"
	"github.com/ntbohl/fars/internal/observability"
	"github.com/ntbohl/fars/internal/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	mapWidth  = 8 * vg.Inch
	mapHeight = 8 * vg.Inch
)

var (
	pointColor   = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	outlineColor = color.RGBA{R: 130, G: 130, B: 130, A: 255}
)

// UnknownStateError reports a state code that does not occur in the
// loaded year's STATE column.
type UnknownStateError struct {
	Code domain.StateCode
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("invalid STATE number: %d", int(e.Code))
}

// Loader supplies one year of accident records.
type Loader interface {
	LoadYear(y domain.Year) (*table.Table, error)
}

// Plotter renders accident locations for one state and year as point
// markers over state boundary polylines.
type Plotter struct {
	loader  Loader
	outline *Outline
	logger  *slog.Logger
	metrics *observability.Metrics

	bareGridWarn sync.Once
}

// NewPlotter creates a Plotter. A nil outline is allowed: maps are then
// drawn on a bare grid.
func NewPlotter(loader Loader, outline *Outline, logger *slog.Logger, metrics *observability.Metrics) *Plotter {
	return &Plotter{
		loader:  loader,
		outline: outline,
		logger:  logger,
		metrics: metrics,
	}
}

// RenderState draws every located accident for one state and year. The
// state code must occur in the year's STATE column, else the render
// fails with an UnknownStateError.
//
// A state whose matching rows carry no usable coordinates renders
// nothing: the call logs "no accidents to plot" and returns a nil map
// with a nil error.
func (p *Plotter) RenderState(code domain.StateCode, year domain.Year) (*StateMap, error) {
	tbl, err := p.loader.LoadYear(year)
	if err != nil {
		return nil, err
	}

	states, _ := tbl.DistinctFloats("STATE")
	if !slices.Contains(states, float64(code)) {
		return nil, &UnknownStateError{Code: code}
	}

	stateCol, _ := tbl.Column("STATE")
	sub := tbl.Filter(func(row int) bool {
		v, ok := stateCol.Float(row)
		return ok && v == float64(code)
	})
	if sub.NumRows() == 0 {
		p.logger.Info("no accidents to plot", "state", code, "year", year)
		return nil, nil
	}

	coords := accidentCoords(sub)
	points := completePoints(coords)
	if len(points) == 0 {
		p.logger.Info("no accidents to plot", "state", code, "year", year)
		return nil, nil
	}

	m, err := p.render(points, coordBounds(coords).padded(), code, year)
	if err != nil {
		return nil, err
	}

	p.metrics.MapsRendered.Inc()
	p.metrics.PointsPlotted.Observe(float64(m.Points()))
	p.logger.Debug("state map rendered", "state", code, "year", year, "points", m.Points())

	return m, nil
}

func (p *Plotter) render(points plotter.XYs, b bounds, code domain.StateCode, year domain.Year) (*StateMap, error) {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Fatal accidents, state %d (%d)", int(code), int(year))
	pl.X.Label.Text = "Longitude"
	pl.Y.Label.Text = "Latitude"

	pl.Add(plotter.NewGrid())

	if p.outline == nil {
		p.bareGridWarn.Do(func() {
			p.logger.Warn("no state outline loaded, drawing on a bare grid")
		})
	} else {
		for _, seg := range p.outline.clip(b) {
			line, err := plotter.NewLine(seg.xys())
			if err != nil {
				return nil, fmt.Errorf("outline polyline: %w", err)
			}
			line.Color = outlineColor
			pl.Add(line)
		}
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, fmt.Errorf("accident points: %w", err)
	}
	scatter.GlyphStyle.Color = pointColor
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	pl.Add(scatter)

	// Add widens the axis ranges to fit every plotter it is given, so
	// the frame is pinned to the accident bounding box only after the
	// last one is in.
	pl.X.Min, pl.X.Max = b.minLon, b.maxLon
	pl.Y.Min, pl.Y.Max = b.minLat, b.maxLat

	return &StateMap{plot: pl, points: len(points), GeneratedAt: domain.Now()}, nil
}

// accidentCoords reads one Coord per row, dropping sentinel axis
// values. A missing LONGITUD or LATITUDE column leaves that axis
// absent on every row.
func accidentCoords(t *table.Table) []domain.Coord {
	lon, _ := t.Column("LONGITUD")
	lat, _ := t.Column("LATITUDE")

	coords := make([]domain.Coord, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		coords = append(coords, domain.NewCoord(floatAt(lon, i), floatAt(lat, i)))
	}
	return coords
}

func floatAt(c table.Column, i int) *float64 {
	// A zero Column from an absent header has no cells.
	if i >= c.Len() {
		return nil
	}
	v, ok := c.Float(i)
	if !ok {
		return nil
	}
	return &v
}

// completePoints keeps the coords with both axes present, in row order.
func completePoints(coords []domain.Coord) plotter.XYs {
	var xys plotter.XYs
	for _, c := range coords {
		if !c.Complete() {
			continue
		}
		xys = append(xys, plotter.XY{X: *c.Lon, Y: *c.Lat})
	}
	return xys
}

// coordBounds spans the present axis values of all coords. A row with
// one usable axis still stretches that axis of the box, matching how
// the map frame is chosen even when the row itself is not drawn.
func coordBounds(coords []domain.Coord) bounds {
	b := emptyBounds()
	for _, c := range coords {
		if c.Lon != nil {
			b.minLon = min(b.minLon, *c.Lon)
			b.maxLon = max(b.maxLon, *c.Lon)
		}
		if c.Lat != nil {
			b.minLat = min(b.minLat, *c.Lat)
			b.maxLat = max(b.maxLat, *c.Lat)
		}
	}
	return b
}

func (s segment) xys() plotter.XYs {
	xys := make(plotter.XYs, len(s.points))
	for i, pt := range s.points {
		xys[i] = plotter.XY{X: pt.lon, Y: pt.lat}
	}
	return xys
}

// StateMap is a rendered accident map, ready to be written to disk.
type StateMap struct {
	plot   *plot.Plot
	points int

	// GeneratedAt records when the map was rendered.
	GeneratedAt time.Time
}

// Points reports how many accident locations were drawn.
func (m *StateMap) Points() int { return m.points }

// Save writes the map to path. The extension picks the image format,
// e.g. .png or .svg.
func (m *StateMap) Save(path string) error {
	if err := m.plot.Save(mapWidth, mapHeight, path); err != nil {
		return fmt.Errorf("save map: %w", err)
	}
	return nil
}
