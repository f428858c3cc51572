// Package chart draws a multi-series time line chart into an svg element tree
// and tracks a pointer across it.
package chart

import (
	"time"

	"github.com/junkd0g/linechart/internal/dataset"
	"github.com/junkd0g/linechart/internal/geometry"
	"github.com/junkd0g/linechart/internal/scale"
	"github.com/junkd0g/linechart/internal/svg"
)

// Line is one drawn series together with its geometry cache.
type Line struct {
	Series   dataset.Series
	Color    string
	Group    *svg.Element
	Path     *svg.Element
	Label    *svg.Element
	Geometry *geometry.Path

	xs     []float64 // pixel x of each sample
	values []float64
}

// LegendEntry is the swatch and name drawn for a series.
type LegendEntry struct {
	Name   string
	Color  string
	Group  *svg.Element
	Swatch *svg.Element
	Text   *svg.Element
}

// Chart holds explicit references to everything Draw produced.
type Chart struct {
	Root   *svg.Element
	Plot   *svg.Element
	X      scale.Time
	Y      scale.Linear
	Colors *scale.Ordinal
	Lines  []*Line
	Legend []*LegendEntry
	XAxis  *svg.Element
	YAxis  *svg.Element

	Overlay *Overlay

	cfg  Config
	data *dataset.Dataset
}

// Draw renders data into container and returns the chart plus a teardown that
// detaches everything Draw added. A nil container draws into a detached svg.
// Callers are expected to pass a well-formed, non-empty dataset.
func Draw(container *svg.Element, data *dataset.Dataset, cfg Config) (*Chart, func()) {
	width, height := cfg.PlotWidth(), cfg.PlotHeight()

	var root *svg.Element
	if container == nil {
		root = svg.New("svg")
	} else {
		root = container.Append("svg")
	}
	root.SetAttr("xmlns", svg.Namespace).
		SetAttr("width", geometry.FormatCoord(cfg.Width)).
		SetAttr("height", geometry.FormatCoord(cfg.Height))

	plot := root.Append("g").
		SetAttr("transform", translate(cfg.Margin.Left, cfg.Margin.Top))

	t0, t1 := data.DateExtent()
	lo, hi := data.ValueDomain()

	c := &Chart{
		Root:   root,
		Plot:   plot,
		X:      scale.NewTime(t0, t1, 0, width),
		Y:      scale.NewLinear(lo, hi, height, 0),
		Colors: scale.NewOrdinal(cfg.Palette, data.Names()...),
		cfg:    cfg,
		data:   data,
	}

	series := data.AllSeries()
	c.drawLegend(series)
	c.drawAxes()
	c.drawLines(series)
	c.drawOverlay()

	return c, root.Remove
}

// Config returns the configuration the chart was drawn with.
func (c *Chart) Config() Config {
	return c.cfg
}

// Data returns the dataset the chart was drawn from.
func (c *Chart) Data() *dataset.Dataset {
	return c.data
}

func (c *Chart) drawLegend(series []dataset.Series) {
	width := c.cfg.PlotWidth()
	for i, s := range series {
		color := c.Colors.Color(s.Name)
		g := c.Plot.Append("g").SetAttr("class", "legend")
		swatch := g.Append("rect").
			SetAttr("x", geometry.FormatCoord(width-20)).
			SetAttr("y", i*20).
			SetAttr("width", 10).
			SetAttr("height", 10).
			SetStyle("fill", color)
		text := g.Append("text").
			SetAttr("x", geometry.FormatCoord(width-8)).
			SetAttr("y", i*20+9).
			SetText(s.Name)

		c.Legend = append(c.Legend, &LegendEntry{
			Name:   s.Name,
			Color:  color,
			Group:  g,
			Swatch: swatch,
			Text:   text,
		})
	}
}

func (c *Chart) drawLines(series []dataset.Series) {
	for _, s := range series {
		color := c.Colors.Color(s.Name)
		points := make([]geometry.Point, 0, len(s.Values))
		xs := make([]float64, 0, len(s.Values))
		values := make([]float64, 0, len(s.Values))
		for _, p := range s.Values {
			x := c.X.Map(p.Date)
			points = append(points, geometry.Point{X: x, Y: c.Y.Map(p.Value)})
			xs = append(xs, x)
			values = append(values, p.Value)
		}
		geom := geometry.NewPath(points)

		g := c.Plot.Append("g").SetAttr("class", "city")
		path := g.Append("path").
			SetAttr("class", "line").
			SetAttr("d", geom.D()).
			SetStyle("stroke", color)

		last := s.Values[len(s.Values)-1]
		label := g.Append("text").
			SetAttr("transform", translate(c.X.Map(last.Date), c.Y.Map(last.Value))).
			SetAttr("x", 3).
			SetAttr("dy", ".35em").
			SetText(s.Name)

		c.Lines = append(c.Lines, &Line{
			Series:   s,
			Color:    color,
			Group:    g,
			Path:     path,
			Label:    label,
			Geometry: geom,
			xs:       xs,
			values:   values,
		})
	}
}

// DateAt returns the instant under horizontal plot coordinate x.
func (c *Chart) DateAt(x float64) time.Time {
	return c.X.Invert(x)
}

func translate(x, y float64) string {
	return "translate(" + geometry.FormatCoord(x) + "," + geometry.FormatCoord(y) + ")"
}
