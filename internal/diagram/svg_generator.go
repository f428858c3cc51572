package diagram

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/junkd0g/linechart/internal/chart"
)

// chartCSS styles the chart elements. The chart itself only sets colors.
const chartCSS = `
.axis path, .axis line { fill: none; stroke: #000; shape-rendering: crispEdges; }
.axis text, .legend text, .city text, .mouse-per-line text { font: 10px sans-serif; }
.line { fill: none; stroke-width: 1.5px; }
`

// SVGDocument returns the chart as a standalone SVG document.
func SVGDocument(c *chart.Chart) string {
	doc := c.Root.String()

	// Put the stylesheet right after the opening <svg ...> tag.
	style := "  <style>" + chartCSS + "  </style>\n"
	if i := strings.Index(doc, ">\n"); i >= 0 {
		doc = doc[:i+2] + style + doc[i+2:]
	}
	return `<?xml version="1.0" encoding="UTF-8"?>` + "\n" + doc
}

// GenerateSVG writes the chart as a standalone SVG document.
func GenerateSVG(fs afero.Fs, c *chart.Chart, outputPath string) error {
	if err := writeFileBytes(fs, outputPath, []byte(SVGDocument(c))); err != nil {
		return fmt.Errorf("failed to write SVG file: %w", err)
	}
	return nil
}
