package diagram

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/afero"

	"github.com/junkd0g/linechart/internal/chart"
)

// RenderECharts writes a standalone echarts page for the chart's dataset with
// an axis tooltip that lists every series at the hovered date.
func RenderECharts(c *chart.Chart, w io.Writer, title string) error {
	cfg := c.Config()
	ds := c.Data()
	lo, hi := ds.ValueDomain()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     fmt.Sprintf("%vpx", cfg.Width),
			Height:    fmt.Sprintf("%vpx", cfg.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "5%"}),
		charts.WithYAxisOpts(opts.YAxis{Name: cfg.YLabel, Min: lo, Max: hi}),
	)

	dates := make([]string, 0, ds.Len())
	for _, rec := range ds.Records() {
		dates = append(dates, rec.Date.Format("2006-01-02"))
	}
	line.SetXAxis(dates)

	for _, l := range c.Lines {
		items := make([]opts.LineData, 0, len(l.Series.Values))
		for _, p := range l.Series.Values {
			items = append(items, opts.LineData{Value: p.Value})
		}
		line.AddSeries(l.Series.Name, items,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: l.Color}),
		)
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}))

	return line.Render(w)
}

// GenerateECharts writes the echarts page to the output path.
func GenerateECharts(fs afero.Fs, c *chart.Chart, outputPath, title string) error {
	var buf bytes.Buffer
	if err := RenderECharts(c, &buf, title); err != nil {
		return fmt.Errorf("failed to render echarts page: %w", err)
	}
	if err := writeFileBytes(fs, outputPath, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write echarts page: %w", err)
	}
	return nil
}
