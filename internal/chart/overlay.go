package chart

import (
	"fmt"
	"math"
	"time"

	"github.com/junkd0g/linechart/internal/geometry"
	"github.com/junkd0g/linechart/internal/svg"
)

const markerRadius = 7

// Marker is the circle and value label that follow the pointer along one line.
type Marker struct {
	Series string
	Group  *svg.Element
	Circle *svg.Element
	Text   *svg.Element
}

// Overlay is the pointer-tracking layer: a vertical guide, one marker per line
// and a transparent rect that receives pointer events.
type Overlay struct {
	Group   *svg.Element
	Guide   *svg.Element
	Capture *svg.Element
	Markers []*Marker
	Visible bool
}

// Reading is the value of one series under the pointer.
type Reading struct {
	Series string
	Color  string
	Date   time.Time
	Value  float64
	Point  geometry.Point
	// Iterations is the number of bisection steps; zero in data tracking mode.
	Iterations int
	// Nearest indexes the recorded sample closest to the pointer.
	Nearest int
}

// Label formats the value the way the marker text shows it.
func (r Reading) Label() string {
	return fmt.Sprintf("%.2f", r.Value)
}

func (c *Chart) drawOverlay() {
	g := c.Plot.Append("g").SetAttr("class", "mouse-over-effects")

	guide := g.Append("path").
		SetAttr("class", "mouse-line").
		SetStyle("stroke", "black").
		SetStyle("stroke-width", "1px").
		SetStyle("opacity", "0")

	o := &Overlay{Group: g, Guide: guide}
	for _, line := range c.Lines {
		mg := g.Append("g").SetAttr("class", "mouse-per-line")
		circle := mg.Append("circle").
			SetAttr("r", markerRadius).
			SetStyle("stroke", line.Color).
			SetStyle("fill", "none").
			SetStyle("stroke-width", "1px").
			SetStyle("opacity", "0")
		text := mg.Append("text").
			SetAttr("transform", "translate(10,3)").
			SetStyle("opacity", "0")
		o.Markers = append(o.Markers, &Marker{
			Series: line.Series.Name,
			Group:  mg,
			Circle: circle,
			Text:   text,
		})
	}

	o.Capture = g.Append("rect").
		SetAttr("width", geometry.FormatCoord(c.cfg.PlotWidth())).
		SetAttr("height", geometry.FormatCoord(c.cfg.PlotHeight())).
		SetAttr("fill", "none").
		SetAttr("pointer-events", "all")

	c.Overlay = o
}

// PointerOver shows the guide and the markers.
func (c *Chart) PointerOver() {
	c.setOverlayOpacity("1")
	c.Overlay.Visible = true
}

// PointerOut hides the guide and the markers.
func (c *Chart) PointerOut() {
	c.setOverlayOpacity("0")
	c.Overlay.Visible = false
}

func (c *Chart) setOverlayOpacity(v string) {
	c.Overlay.Guide.SetStyle("opacity", v)
	for _, m := range c.Overlay.Markers {
		m.Circle.SetStyle("opacity", v)
		m.Text.SetStyle("opacity", v)
	}
}

// PointerMove moves the guide to plot coordinate mx, places every marker on
// its line and labels it with the value there. mx is clamped to the plot area.
func (c *Chart) PointerMove(mx float64) []Reading {
	mx = c.clampX(mx)
	c.Overlay.Guide.SetAttr("d",
		"M"+geometry.FormatCoord(mx)+","+geometry.FormatCoord(c.cfg.PlotHeight())+
			" "+geometry.FormatCoord(mx)+",0")

	readings := c.ReadingsAt(mx)
	for i, r := range readings {
		m := c.Overlay.Markers[i]
		m.Group.SetAttr("transform", translate(mx, r.Point.Y))
		m.Text.SetText(r.Label())
	}
	return readings
}

// ReadingsAt returns one reading per line at plot coordinate mx without
// touching the overlay.
func (c *Chart) ReadingsAt(mx float64) []Reading {
	mx = c.clampX(mx)
	date := c.DateAt(mx)

	readings := make([]Reading, 0, len(c.Lines))
	for _, line := range c.Lines {
		r := Reading{
			Series:  line.Series.Name,
			Color:   line.Color,
			Date:    date,
			Nearest: geometry.NearestIndex(line.xs, mx),
		}
		switch c.cfg.Tracking {
		case TrackData:
			r.Value = geometry.Interpolate(line.xs, line.values, mx)
			r.Point = geometry.Point{X: mx, Y: c.Y.Map(r.Value)}
		default:
			hit := geometry.Bisect(line.Geometry, mx, c.cfg.Search)
			r.Point = hit.Point
			r.Value = c.Y.Invert(hit.Point.Y)
			r.Iterations = hit.Iterations
		}
		readings = append(readings, r)
	}
	return readings
}

// XFor returns the plot coordinate of date.
func (c *Chart) XFor(date time.Time) float64 {
	return c.X.Map(date)
}

func (c *Chart) clampX(mx float64) float64 {
	return math.Max(0, math.Min(mx, c.cfg.PlotWidth()))
}
