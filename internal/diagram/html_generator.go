package diagram

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/spf13/afero"

	"github.com/junkd0g/linechart/internal/chart"
)

// WidgetType defines available report widgets.
type WidgetType string

const (
	WidgetStatsCards  WidgetType = "stats_cards"
	WidgetLineChart   WidgetType = "line_chart"
	WidgetSeriesTable WidgetType = "series_table"
	WidgetEChartsLine WidgetType = "echarts_line"
)

// Valid reports whether w names a known widget.
func (w WidgetType) Valid() bool {
	switch w {
	case WidgetStatsCards, WidgetLineChart, WidgetSeriesTable, WidgetEChartsLine:
		return true
	}
	return false
}

// HTMLConfig configures what to include in the HTML page.
type HTMLConfig struct {
	Title       string
	Description string
	Widgets     []WidgetType
	Theme       string // "dark" or "light"
}

// DefaultConfig returns a page with stats, the interactive chart and the table.
func DefaultConfig() HTMLConfig {
	return HTMLConfig{
		Title:       "Temperature by City",
		Description: "Move the pointer over the chart to read every series",
		Theme:       "light",
		Widgets: []WidgetType{
			WidgetStatsCards,
			WidgetLineChart,
			WidgetSeriesTable,
		},
	}
}

// HTMLBuilder builds HTML pages dynamically.
type HTMLBuilder struct {
	chart  *chart.Chart
	config HTMLConfig
	data   *ReportData
}

// ReportData holds everything the page scripts need.
type ReportData struct {
	Plot   PlotData     `json:"plot"`
	Series []SeriesData `json:"series"`
	Stats  StatsData    `json:"stats"`
}

// PlotData describes the pixel space the tracking script works in.
type PlotData struct {
	Width   float64    `json:"width"`
	Height  float64    `json:"height"`
	YDomain [2]float64 `json:"yDomain"`
	Dates   []string   `json:"dates"`
	YLabel  string     `json:"yLabel"`
}

// SeriesData is one series in pixel and value space.
type SeriesData struct {
	Name   string       `json:"name"`
	Color  string       `json:"color"`
	Points [][2]float64 `json:"points"`
	Values []float64    `json:"values"`
	Min    float64      `json:"min"`
	Max    float64      `json:"max"`
	Mean   float64      `json:"mean"`
	Last   float64      `json:"last"`
}

// StatsData summarizes the whole dataset for the stats cards.
type StatsData struct {
	SeriesCount int     `json:"seriesCount"`
	RecordCount int     `json:"recordCount"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	FirstDate   string  `json:"firstDate"`
	LastDate    string  `json:"lastDate"`
}

// GenerateHTML creates an interactive HTML page for the chart.
func GenerateHTML(fs afero.Fs, c *chart.Chart, outputPath string, config HTMLConfig) error {
	if err := writeFileBytes(fs, outputPath, []byte(RenderHTML(c, config))); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}
	return nil
}

// RenderHTML returns the page as a string.
func RenderHTML(c *chart.Chart, config HTMLConfig) string {
	builder := &HTMLBuilder{
		chart:  c,
		config: config,
	}
	builder.data = builder.buildReportData()
	return builder.render()
}

func (b *HTMLBuilder) buildReportData() *ReportData {
	cfg := b.chart.Config()
	ds := b.chart.Data()
	lo, hi := ds.ValueDomain()
	first, last := ds.DateExtent()

	data := &ReportData{
		Plot: PlotData{
			Width:   cfg.PlotWidth(),
			Height:  cfg.PlotHeight(),
			YDomain: [2]float64{lo, hi},
			YLabel:  cfg.YLabel,
		},
		Stats: StatsData{
			SeriesCount: len(ds.Names()),
			RecordCount: ds.Len(),
			Min:         lo,
			Max:         hi,
			FirstDate:   first.Format("2006-01-02"),
			LastDate:    last.Format("2006-01-02"),
		},
	}
	for _, rec := range ds.Records() {
		data.Plot.Dates = append(data.Plot.Dates, rec.Date.Format("2006-01-02"))
	}

	stats := ds.Stats()
	for i, line := range b.chart.Lines {
		sd := SeriesData{
			Name:  line.Series.Name,
			Color: line.Color,
			Min:   stats[i].Min,
			Max:   stats[i].Max,
			Mean:  stats[i].Mean,
			Last:  stats[i].Last,
		}
		for _, p := range line.Geometry.Points() {
			sd.Points = append(sd.Points, [2]float64{p.X, p.Y})
		}
		for _, v := range line.Series.Values {
			sd.Values = append(sd.Values, v.Value)
		}
		data.Series = append(data.Series, sd)
	}
	return data
}

func (b *HTMLBuilder) render() string {
	var sb strings.Builder

	sb.WriteString(b.renderHead())
	sb.WriteString(`<body><div class="container">`)
	sb.WriteString(b.renderHeader())

	for _, widget := range b.config.Widgets {
		sb.WriteString(b.renderWidget(widget))
	}

	sb.WriteString(`</div>`)
	sb.WriteString(b.renderScripts())
	sb.WriteString(`</body></html>`)

	return sb.String()
}

func (b *HTMLBuilder) renderHead() string {
	echarts := ""
	if b.hasWidget(WidgetEChartsLine) {
		echarts = `
    <script src="https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"></script>`
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>%s
    <style>%s%s</style>
</head>`, html.EscapeString(b.config.Title), echarts, b.getThemeCSS(), chartCSS)
}

func (b *HTMLBuilder) getThemeCSS() string {
	if b.config.Theme == "dark" {
		return darkThemeCSS
	}
	return lightThemeCSS
}

func (b *HTMLBuilder) hasWidget(w WidgetType) bool {
	for _, widget := range b.config.Widgets {
		if widget == w {
			return true
		}
	}
	return false
}

func (b *HTMLBuilder) renderHeader() string {
	return fmt.Sprintf(`
<header>
    <h1>%s</h1>
    <p>%s</p>
</header>`, html.EscapeString(b.config.Title), html.EscapeString(b.config.Description))
}

func (b *HTMLBuilder) renderWidget(widget WidgetType) string {
	switch widget {
	case WidgetStatsCards:
		return b.renderStatsCards()
	case WidgetLineChart:
		return b.renderLineChart()
	case WidgetSeriesTable:
		return b.renderSeriesTable()
	case WidgetEChartsLine:
		return b.renderEChartsLine()
	default:
		return ""
	}
}

func (b *HTMLBuilder) renderStatsCards() string {
	s := b.data.Stats
	return fmt.Sprintf(`
<div class="widget stats-grid">
    <div class="stat-card"><div class="number">%d</div><div class="label">Series</div></div>
    <div class="stat-card"><div class="number">%d</div><div class="label">Dates</div></div>
    <div class="stat-card"><div class="number">%.1f</div><div class="label">Lowest</div></div>
    <div class="stat-card"><div class="number">%.1f</div><div class="label">Highest</div></div>
</div>`, s.SeriesCount, s.RecordCount, s.Min, s.Max)
}

func (b *HTMLBuilder) renderLineChart() string {
	// The chart is drawn server side; the script only moves the overlay.
	return fmt.Sprintf(`
<div class="widget chart-box">
    <h3>%s, %s to %s</h3>
    <div id="chart">%s</div>
</div>`,
		html.EscapeString(b.data.Plot.YLabel), b.data.Stats.FirstDate, b.data.Stats.LastDate,
		b.chart.Root.String())
}

func (b *HTMLBuilder) renderSeriesTable() string {
	var rows strings.Builder
	for _, s := range b.data.Series {
		rows.WriteString(fmt.Sprintf(`
        <tr>
            <td><span class="swatch" style="background:%s"></span><strong>%s</strong></td>
            <td>%.2f</td>
            <td>%.2f</td>
            <td>%.2f</td>
            <td>%.2f</td>
        </tr>`,
			s.Color, html.EscapeString(s.Name), s.Min, s.Max, s.Mean, s.Last))
	}

	return fmt.Sprintf(`
<div class="widget table-box">
    <h3>Series</h3>
    <table>
        <thead>
            <tr><th>Name</th><th>Min</th><th>Max</th><th>Mean</th><th>Last</th></tr>
        </thead>
        <tbody>%s</tbody>
    </table>
</div>`, rows.String())
}

func (b *HTMLBuilder) renderEChartsLine() string {
	return `
<div class="widget chart-box">
    <h3>Explorer</h3>
    <div id="echarts-line" class="chart"></div>
</div>`
}

func (b *HTMLBuilder) renderScripts() string {
	dataJSON, _ := json.Marshal(b.data)

	var inits strings.Builder
	for _, widget := range b.config.Widgets {
		switch widget {
		case WidgetLineChart:
			inits.WriteString(trackingScript)
		case WidgetEChartsLine:
			inits.WriteString(echartsLineScript)
		}
	}

	return fmt.Sprintf(`
<script>
const data = %s;

%s
</script>`, string(dataJSON), inits.String())
}

// trackingScript mirrors chart.PointerMove: for every series it interpolates
// the pixel polyline at the pointer x and inverts y through the value scale.
var trackingScript = `
(function() {
    const root = document.getElementById('chart');
    if (!root) return;
    const overlay = root.querySelector('.mouse-over-effects');
    const capture = overlay.querySelector('rect');
    const guide = overlay.querySelector('.mouse-line');
    const markers = overlay.querySelectorAll('.mouse-per-line');
    const h = data.plot.height;
    const [lo, hi] = data.plot.yDomain;
    const invert = y => lo + (h - y) / h * (hi - lo);

    function yAt(points, x) {
        if (x <= points[0][0]) return points[0][1];
        const last = points[points.length - 1];
        if (x >= last[0]) return last[1];
        let a = 0, b = points.length - 1;
        while (b - a > 1) {
            const m = (a + b) >> 1;
            if (points[m][0] <= x) a = m; else b = m;
        }
        const t = (x - points[a][0]) / (points[b][0] - points[a][0]);
        return points[a][1] + t * (points[b][1] - points[a][1]);
    }

    function show(v) {
        guide.style.opacity = v;
        markers.forEach(m => m.querySelectorAll('circle, text').forEach(n => n.style.opacity = v));
    }

    capture.addEventListener('mouseover', () => show('1'));
    capture.addEventListener('mouseout', () => show('0'));
    capture.addEventListener('mousemove', ev => {
        const box = capture.getBoundingClientRect();
        const mx = Math.max(0, Math.min(data.plot.width, ev.clientX - box.left));
        guide.setAttribute('d', 'M' + mx + ',' + h + ' ' + mx + ',0');
        markers.forEach((m, i) => {
            const y = yAt(data.series[i].points, mx);
            m.setAttribute('transform', 'translate(' + mx + ',' + y + ')');
            m.querySelector('text').textContent = invert(y).toFixed(2);
        });
    });
})();
`

var echartsLineScript = `
(function() {
    const el = document.getElementById('echarts-line');
    if (!el) return;
    const chart = echarts.init(el);
    window.addEventListener('resize', () => chart.resize());
    chart.setOption({
        tooltip: { trigger: 'axis', valueFormatter: v => v.toFixed(2) },
        legend: { data: data.series.map(s => s.name) },
        xAxis: { type: 'category', data: data.plot.dates },
        yAxis: { type: 'value', name: data.plot.yLabel, min: data.plot.yDomain[0], max: data.plot.yDomain[1] },
        series: data.series.map(s => ({
            name: s.name,
            type: 'line',
            data: s.values,
            itemStyle: { color: s.color },
            lineStyle: { width: 1.5 }
        }))
    });
})();
`

// Theme CSS
const darkThemeCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #16213e; color: #e4e4e4; }
.container { max-width: 1000px; margin: 0 auto; padding: 20px; }
header { text-align: center; padding: 24px 0; border-bottom: 1px solid #333; margin-bottom: 24px; }
header h1 { font-size: 2rem; margin-bottom: 8px; }
header p { color: #888; }
.widget { margin-bottom: 24px; }
.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 16px; }
.stat-card { background: rgba(255,255,255,0.05); border-radius: 10px; padding: 16px; text-align: center; border: 1px solid rgba(255,255,255,0.1); }
.stat-card .number { font-size: 2rem; font-weight: bold; color: #4A90D9; }
.stat-card .label { color: #888; margin-top: 4px; }
.chart-box, .table-box { background: #fff; color: #222; border-radius: 10px; padding: 16px; }
.chart-box h3, .table-box h3 { margin-bottom: 12px; font-size: 1.1rem; }
.chart { width: 100%; height: 400px; }
table { width: 100%; border-collapse: collapse; }
th, td { padding: 10px 12px; text-align: left; border-bottom: 1px solid #eee; }
.swatch { display: inline-block; width: 10px; height: 10px; margin-right: 8px; }
`

const lightThemeCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #f5f7fa; color: #333; }
.container { max-width: 1000px; margin: 0 auto; padding: 20px; }
header { text-align: center; padding: 24px 0; border-bottom: 1px solid #ddd; margin-bottom: 24px; }
header h1 { font-size: 2rem; margin-bottom: 8px; }
header p { color: #666; }
.widget { margin-bottom: 24px; }
.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 16px; }
.stat-card { background: #fff; border-radius: 10px; padding: 16px; text-align: center; border: 1px solid #e0e0e0; }
.stat-card .number { font-size: 2rem; font-weight: bold; color: #4A90D9; }
.stat-card .label { color: #666; margin-top: 4px; }
.chart-box, .table-box { background: #fff; border-radius: 10px; padding: 16px; border: 1px solid #e0e0e0; }
.chart-box h3, .table-box h3 { margin-bottom: 12px; font-size: 1.1rem; }
.chart { width: 100%; height: 400px; }
table { width: 100%; border-collapse: collapse; }
th, td { padding: 10px 12px; text-align: left; border-bottom: 1px solid #eee; }
.swatch { display: inline-block; width: 10px; height: 10px; margin-right: 8px; }
`
