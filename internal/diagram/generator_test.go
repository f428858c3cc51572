package diagram

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junkd0g/linechart/internal/chart"
	"github.com/junkd0g/linechart/internal/dataset"
)

func sampleChart(t *testing.T) *chart.Chart {
	t.Helper()
	c, _ := chart.Draw(nil, dataset.Sample(), chart.DefaultConfig())
	return c
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(b)
}

func TestGenerateSVG(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := sampleChart(t)

	require.NoError(t, GenerateSVG(fs, c, "/out/chart.svg"))

	doc := readFile(t, fs, "/out/chart.svg")
	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.Equal(t, 3, strings.Count(doc, `class="line"`))
	assert.Equal(t, 3, strings.Count(doc, `class="legend"`))
	assert.Contains(t, doc, "<style>")
	assert.Contains(t, doc, "Temperature (ºF)")
}

func TestGenerateHTML(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := sampleChart(t)

	require.NoError(t, GenerateHTML(fs, c, "/out/chart.html", DefaultConfig()))

	page := readFile(t, fs, "/out/chart.html")
	assert.Contains(t, page, `<div id="chart"><svg`)
	assert.Contains(t, page, "mouse-over-effects")
	assert.Contains(t, page, `"seriesCount":3`)
	assert.Contains(t, page, "<td>54.40</td>")
	assert.Contains(t, page, "<td>72.40</td>")
	assert.NotContains(t, page, "echarts.min.js")
	assert.Contains(t, page, "#f5f7fa")
}

func TestGenerateHTMLWithCustomWidgets(t *testing.T) {
	c := sampleChart(t)

	config := HTMLConfig{
		Title:       "Custom <Report>",
		Description: "Explorer only",
		Theme:       "dark",
		Widgets:     []WidgetType{WidgetEChartsLine},
	}
	page := RenderHTML(c, config)

	assert.Contains(t, page, "echarts.min.js")
	assert.Contains(t, page, `id="echarts-line"`)
	assert.Contains(t, page, "Custom &lt;Report&gt;")
	assert.Contains(t, page, "#16213e")
	assert.NotContains(t, page, `id="chart"`)
	assert.NotContains(t, page, "stat-card\"><div")
}

func TestReportData(t *testing.T) {
	c := sampleChart(t)
	b := &HTMLBuilder{chart: c, config: DefaultConfig()}
	data := b.buildReportData()

	require.Len(t, data.Series, 3)
	assert.Equal(t, "New York", data.Series[0].Name)
	assert.Len(t, data.Series[0].Points, 6)
	assert.Equal(t, []float64{63.4, 60.8, 62.1, 65.1, 55.6, 54.4}, data.Series[0].Values)
	assert.Equal(t, [2]float64{54.4, 72.4}, data.Plot.YDomain)
	assert.Equal(t, "2018-01-01", data.Stats.FirstDate)
	assert.Equal(t, "2018-06-01", data.Stats.LastDate)
	assert.Equal(t, 770.0, data.Plot.Width)
}

func TestGenerateDOT(t *testing.T) {
	c := sampleChart(t)
	dot := GenerateDOT(c)

	assert.True(t, strings.HasPrefix(dot, "graph LineChart {"))
	// Six samples per series joined by five edges.
	assert.Equal(t, 15, strings.Count(dot, "penwidth=2]"))
	assert.Contains(t, dot, `legend2 [shape=plaintext, fontcolor="#2ca02c", label="■ Austin"`)
	// First New York sample: x=0 lands on the left margin.
	assert.Contains(t, dot, `s0_0 [color="#1f77b4", width=0.05, pos="50,`)
	assert.Contains(t, dot, `origin [pos="50,30!"]`)
}

func TestGenerateGraphvizSVG(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := sampleChart(t)

	require.NoError(t, Generate(fs, c, "/out/static.svg"))
	assert.Contains(t, readFile(t, fs, "/out/static.svg"), "<svg")
}

func TestGenerateGraphvizPNG(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := sampleChart(t)

	require.NoError(t, Generate(fs, c, "/out/static.png"))
	assert.True(t, strings.HasPrefix(readFile(t, fs, "/out/static.png"), "\x89PNG"))
}

func TestGenerateECharts(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := sampleChart(t)

	require.NoError(t, GenerateECharts(fs, c, "/out/chart.echarts.html", "Temperatures"))
	assert.Contains(t, readFile(t, fs, "/out/chart.echarts.html"), "Austin")
}

func TestRenderECharts(t *testing.T) {
	c := sampleChart(t)

	var buf bytes.Buffer
	require.NoError(t, RenderECharts(c, &buf, "Temperatures"))

	page := buf.String()
	for _, name := range []string{"New York", "San Francisco", "Austin"} {
		assert.Contains(t, page, name)
	}
	assert.Contains(t, page, "2018-03-01")
}

func TestRenderTerminal(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := sampleChart(t)

	out := RenderTerminal(c, 60, 12)
	for _, name := range []string{"New York", "San Francisco", "Austin"} {
		assert.Contains(t, out, name)
	}

	require.NoError(t, GenerateTerminal(fs, c, "chart.txt", 60, 12))
	assert.NotEmpty(t, readFile(t, fs, "chart.txt"))
}
