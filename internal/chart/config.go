package chart

import (
	"fmt"

	"github.com/junkd0g/linechart/internal/geometry"
	"github.com/junkd0g/linechart/internal/scale"
)

// TrackingMode selects how pointer readings are computed.
type TrackingMode string

const (
	// TrackPath searches each rendered path by length (bisection).
	TrackPath TrackingMode = "path"
	// TrackData interpolates directly over the series samples.
	TrackData TrackingMode = "data"
)

// Margin is the space between the svg edge and the plot area.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Config describes the chart geometry and behaviour.
type Config struct {
	Width    float64
	Height   float64
	Margin   Margin
	YLabel   string
	Palette  []string
	Tracking TrackingMode
	Search   geometry.SearchOptions
	XTicks   int
	YTicks   int
}

// DefaultConfig returns a 900x500 chart with room for the legend on the right.
func DefaultConfig() Config {
	return Config{
		Width:    900,
		Height:   500,
		Margin:   Margin{Top: 50, Right: 80, Bottom: 30, Left: 50},
		YLabel:   "Temperature (ºF)",
		Palette:  scale.Category10,
		Tracking: TrackPath,
		Search:   geometry.DefaultSearchOptions(),
		XTicks:   10,
		YTicks:   10,
	}
}

// PlotWidth is the width of the area the lines are drawn in.
func (c Config) PlotWidth() float64 {
	return c.Width - c.Margin.Left - c.Margin.Right
}

// PlotHeight is the height of the area the lines are drawn in.
func (c Config) PlotHeight() float64 {
	return c.Height - c.Margin.Top - c.Margin.Bottom
}

// Validate reports configurations that cannot produce a plot area.
func (c Config) Validate() error {
	if c.PlotWidth() <= 0 || c.PlotHeight() <= 0 {
		return fmt.Errorf("chart: plot area %vx%v is empty", c.PlotWidth(), c.PlotHeight())
	}
	switch c.Tracking {
	case TrackPath, TrackData:
	default:
		return fmt.Errorf("chart: unknown tracking mode %q", c.Tracking)
	}
	return nil
}
