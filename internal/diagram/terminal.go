package diagram

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/junkd0g/linechart/internal/chart"
)

var (
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// RenderTerminal draws the chart's dataset with braille line art for a
// terminal, followed by a color legend.
func RenderTerminal(c *chart.Chart, width, height int) string {
	ds := c.Data()
	t0, t1 := ds.DateExtent()
	lo, hi := ds.ValueDomain()

	lc := timeserieslinechart.New(width, height)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.XLabelFormatter = func(_ int, v float64) string {
		return time.Unix(int64(v), 0).UTC().Format("Jan 02")
	}
	lc.SetTimeRange(t0, t1)
	lc.SetViewTimeRange(t0, t1)
	lc.SetYRange(lo, hi)
	lc.SetViewYRange(lo, hi)

	var legend strings.Builder
	for _, line := range c.Lines {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(line.Color))
		lc.SetDataSetStyle(line.Series.Name, style)
		for _, p := range line.Series.Values {
			lc.PushDataSet(line.Series.Name, timeserieslinechart.TimePoint{Time: p.Date, Value: p.Value})
		}
		legend.WriteString("\n")
		legend.WriteString(style.Render(fmt.Sprintf("%c %s", runes.FullBlock, line.Series.Name)))
	}

	lc.DrawBrailleAll()

	return lc.View() + "\n" + legend.String() + "\n"
}

// GenerateTerminal writes the terminal rendering to the output path.
func GenerateTerminal(fs afero.Fs, c *chart.Chart, outputPath string, width, height int) error {
	if err := writeFileBytes(fs, outputPath, []byte(RenderTerminal(c, width, height))); err != nil {
		return fmt.Errorf("failed to write terminal chart: %w", err)
	}
	return nil
}
