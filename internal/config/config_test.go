package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junkd0g/linechart/internal/chart"
	"github.com/junkd0g/linechart/internal/diagram"
)

func TestLoadDefaults(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, chart.DefaultConfig(), f.ChartConfig())
	assert.Equal(t, diagram.DefaultConfig(), f.HTMLConfig())
	assert.Equal(t, "20060102", f.DatasetOptions().DateLayout)
	assert.Equal(t, 80, f.Output.TermWidth)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linechart.yaml")
	content := `
chart:
  width: 1200
  tracking: data
  max_iterations: 32
output:
  theme: dark
  widgets: [line_chart, echarts_line]
data:
  path: temps.xlsx
  sheet: Weather
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	f, err := Load(path)
	require.NoError(t, err)

	cfg := f.ChartConfig()
	assert.Equal(t, 1200.0, cfg.Width)
	assert.Equal(t, 500.0, cfg.Height)
	assert.Equal(t, chart.TrackData, cfg.Tracking)
	assert.Equal(t, 32, cfg.Search.MaxIterations)

	html := f.HTMLConfig()
	assert.Equal(t, "dark", html.Theme)
	assert.Equal(t, []diagram.WidgetType{diagram.WidgetLineChart, diagram.WidgetEChartsLine}, html.Widgets)

	assert.Equal(t, "temps.xlsx", f.Data.Path)
	assert.Equal(t, "Weather", f.Data.Sheet)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("LINECHART_CHART_Y_LABEL", "Rainfall (mm)")

	f, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Rainfall (mm)", f.ChartConfig().YLabel)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("chart:\n  tracking: nearest\n"), 0o644))
	_, err := Load(bad)
	assert.Error(t, err)

	theme := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(theme, []byte("output:\n  theme: neon\n"), 0o644))
	_, err = Load(theme)
	assert.Error(t, err)

	widget := filepath.Join(dir, "widget.yaml")
	require.NoError(t, os.WriteFile(widget, []byte("output:\n  widgets: [line_chart, pie]\n"), 0o644))
	_, err = Load(widget)
	assert.ErrorContains(t, err, `unknown output widget "pie"`)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
