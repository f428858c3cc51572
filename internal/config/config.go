// Package config loads chart and output settings from a file, the environment
// and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/junkd0g/linechart/internal/chart"
	"github.com/junkd0g/linechart/internal/dataset"
	"github.com/junkd0g/linechart/internal/diagram"
	"github.com/junkd0g/linechart/internal/geometry"
)

// EnvPrefix prefixes environment overrides, e.g. LINECHART_CHART_WIDTH.
const EnvPrefix = "LINECHART"

// File is the on-disk configuration.
type File struct {
	Chart  ChartSection  `mapstructure:"chart"`
	Output OutputSection `mapstructure:"output"`
	Data   DataSection   `mapstructure:"data"`
}

// ChartSection holds the chart layout and pointer search settings.
type ChartSection struct {
	Width         float64 `mapstructure:"width"`
	Height        float64 `mapstructure:"height"`
	MarginTop     float64 `mapstructure:"margin_top"`
	MarginRight   float64 `mapstructure:"margin_right"`
	MarginBottom  float64 `mapstructure:"margin_bottom"`
	MarginLeft    float64 `mapstructure:"margin_left"`
	YLabel        string  `mapstructure:"y_label"`
	Tracking      string  `mapstructure:"tracking"`
	MaxIterations int     `mapstructure:"max_iterations"`
	Resolution    float64 `mapstructure:"resolution"`
}

// OutputSection holds the HTML report and terminal output settings.
type OutputSection struct {
	Title       string   `mapstructure:"title"`
	Description string   `mapstructure:"description"`
	Theme       string   `mapstructure:"theme"`
	Widgets     []string `mapstructure:"widgets"`
	TermWidth   int      `mapstructure:"term_width"`
	TermHeight  int      `mapstructure:"term_height"`
}

// DataSection names the default dataset and how to read its dates.
type DataSection struct {
	Path       string `mapstructure:"path"`
	Sheet      string `mapstructure:"sheet"`
	DateLayout string `mapstructure:"date_layout"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	c := chart.DefaultConfig()
	h := diagram.DefaultConfig()

	v.SetDefault("chart.width", c.Width)
	v.SetDefault("chart.height", c.Height)
	v.SetDefault("chart.margin_top", c.Margin.Top)
	v.SetDefault("chart.margin_right", c.Margin.Right)
	v.SetDefault("chart.margin_bottom", c.Margin.Bottom)
	v.SetDefault("chart.margin_left", c.Margin.Left)
	v.SetDefault("chart.y_label", c.YLabel)
	v.SetDefault("chart.tracking", string(c.Tracking))
	v.SetDefault("chart.max_iterations", c.Search.MaxIterations)
	v.SetDefault("chart.resolution", c.Search.Resolution)

	widgets := make([]string, 0, len(h.Widgets))
	for _, w := range h.Widgets {
		widgets = append(widgets, string(w))
	}
	v.SetDefault("output.title", h.Title)
	v.SetDefault("output.description", h.Description)
	v.SetDefault("output.theme", h.Theme)
	v.SetDefault("output.widgets", widgets)
	v.SetDefault("output.term_width", 80)
	v.SetDefault("output.term_height", 16)

	v.SetDefault("data.path", "")
	v.SetDefault("data.sheet", "")
	v.SetDefault("data.date_layout", dataset.DefaultDateLayout)
}

// New returns a viper instance with defaults and environment overrides wired.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (when not empty) on top of the defaults.
func Load(path string) (*File, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return Decode(v)
}

// Decode unmarshals and validates the settings held by v.
func Decode(v *viper.Viper) (*File, error) {
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := f.ChartConfig().Validate(); err != nil {
		return nil, err
	}
	if f.Output.Theme != "light" && f.Output.Theme != "dark" {
		return nil, errors.New("config: output.theme must be light or dark")
	}
	for _, w := range f.Output.Widgets {
		if !diagram.WidgetType(w).Valid() {
			return nil, fmt.Errorf("config: unknown output widget %q", w)
		}
	}
	return &f, nil
}

// ChartConfig converts the chart section.
func (f *File) ChartConfig() chart.Config {
	c := chart.DefaultConfig()
	c.Width = f.Chart.Width
	c.Height = f.Chart.Height
	c.Margin = chart.Margin{
		Top:    f.Chart.MarginTop,
		Right:  f.Chart.MarginRight,
		Bottom: f.Chart.MarginBottom,
		Left:   f.Chart.MarginLeft,
	}
	c.YLabel = f.Chart.YLabel
	c.Tracking = chart.TrackingMode(f.Chart.Tracking)
	c.Search = geometry.SearchOptions{
		MaxIterations: f.Chart.MaxIterations,
		Resolution:    f.Chart.Resolution,
	}
	return c
}

// HTMLConfig converts the output section.
func (f *File) HTMLConfig() diagram.HTMLConfig {
	widgets := make([]diagram.WidgetType, 0, len(f.Output.Widgets))
	for _, w := range f.Output.Widgets {
		widgets = append(widgets, diagram.WidgetType(w))
	}
	return diagram.HTMLConfig{
		Title:       f.Output.Title,
		Description: f.Output.Description,
		Theme:       f.Output.Theme,
		Widgets:     widgets,
	}
}

// DatasetOptions converts the data section.
func (f *File) DatasetOptions() dataset.Options {
	return dataset.Options{DateLayout: f.Data.DateLayout}
}
