package diagram

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/afero"

	"github.com/junkd0g/linechart/internal/chart"
	"github.com/junkd0g/linechart/internal/geometry"
	"github.com/junkd0g/linechart/internal/scale"
)

// Generate renders the chart as a static image through graphviz and saves it
// to the output path on fs. The format follows the extension: .svg, otherwise PNG.
func Generate(fs afero.Fs, c *chart.Chart, outputPath string) error {
	ctx := context.Background()

	g, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to create graphviz: %w", err)
	}
	defer g.Close()

	// Every node is pinned, neato only has to honour the positions.
	g.SetLayout(graphviz.NEATO)

	graph, err := graphviz.ParseBytes([]byte(GenerateDOT(c)))
	if err != nil {
		return fmt.Errorf("failed to parse DOT: %w", err)
	}
	defer graph.Close()

	format := graphviz.PNG
	if strings.HasSuffix(outputPath, ".svg") {
		format = graphviz.SVG
	}

	var buf bytes.Buffer
	if err := g.Render(ctx, graph, format, &buf); err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}

	if err := writeFileBytes(fs, outputPath, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// GenerateDOT lays the chart out as a graph of pinned nodes: axis corners,
// tick labels, one point per sample joined by edges, and the legend.
func GenerateDOT(c *chart.Chart) string {
	cfg := c.Config()
	width, height := cfg.PlotWidth(), cfg.PlotHeight()

	// Graphviz y grows upwards; plot y grows downwards from the top margin.
	pos := func(x, y float64) string {
		gx := cfg.Margin.Left + x
		gy := cfg.Height - (cfg.Margin.Top + y)
		return fmt.Sprintf(`"%s,%s!"`, geometry.FormatCoord(gx), geometry.FormatCoord(gy))
	}

	var sb strings.Builder

	sb.WriteString("graph LineChart {\n")
	sb.WriteString("  inputscale=72;\n")
	sb.WriteString("  notranslate=true;\n")
	sb.WriteString("  splines=line;\n")
	sb.WriteString("  outputorder=edgesfirst;\n")
	sb.WriteString("  bgcolor=white;\n")
	sb.WriteString("  pad=0.2;\n")
	sb.WriteString(fmt.Sprintf("  label=%q;\n", cfg.YLabel))
	sb.WriteString("  labelloc=t;\n")
	sb.WriteString("  fontname=\"Helvetica\";\n\n")

	sb.WriteString("  node [shape=point, width=0.01, label=\"\", fontname=\"Helvetica\", fontsize=10];\n")
	sb.WriteString("  edge [penwidth=1, color=\"#000000\"];\n\n")

	// Axes
	sb.WriteString("  // Axes\n")
	sb.WriteString(fmt.Sprintf("  origin [pos=%s];\n", pos(0, height)))
	sb.WriteString(fmt.Sprintf("  xend [pos=%s];\n", pos(width, height)))
	sb.WriteString(fmt.Sprintf("  ytop [pos=%s];\n", pos(0, 0)))
	sb.WriteString("  origin -- xend;\n")
	sb.WriteString("  origin -- ytop;\n\n")

	for i, t := range c.X.Ticks(cfg.XTicks) {
		sb.WriteString(fmt.Sprintf("  xtick%d [shape=plaintext, label=%q, pos=%s];\n",
			i, scale.FormatTick(t), pos(c.X.Map(t), height+15)))
	}
	for i, v := range c.Y.Ticks(cfg.YTicks) {
		sb.WriteString(fmt.Sprintf("  ytick%d [shape=plaintext, label=%q, pos=%s];\n",
			i, c.Y.Format(v, cfg.YTicks), pos(-20, c.Y.Map(v))))
	}
	sb.WriteString("\n")

	// Series
	for i, line := range c.Lines {
		sb.WriteString(fmt.Sprintf("  // %s\n", line.Series.Name))
		points := line.Geometry.Points()
		for j, p := range points {
			sb.WriteString(fmt.Sprintf("  s%d_%d [color=%q, width=0.05, pos=%s];\n",
				i, j, line.Color, pos(p.X, p.Y)))
		}
		for j := 1; j < len(points); j++ {
			sb.WriteString(fmt.Sprintf("  s%d_%d -- s%d_%d [color=%q, penwidth=2];\n",
				i, j-1, i, j, line.Color))
		}
		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("  // Legend\n")
	for i, entry := range c.Legend {
		sb.WriteString(fmt.Sprintf("  legend%d [shape=plaintext, fontcolor=%q, label=%q, pos=%s];\n",
			i, entry.Color, "■ "+entry.Name, pos(width+10, float64(i*20)+5)))
	}

	sb.WriteString("}\n")

	return sb.String()
}

func writeFileBytes(fs afero.Fs, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return afero.WriteFile(fs, path, data, 0o644)
}
