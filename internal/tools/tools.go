package tools

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"

	"github.com/junkd0g/linechart/internal/chart"
	"github.com/junkd0g/linechart/internal/config"
	"github.com/junkd0g/linechart/internal/dataset"
	"github.com/junkd0g/linechart/internal/diagram"
	"github.com/junkd0g/linechart/internal/version"
)

// Handler serves the chart tools with a fixed configuration.
type Handler struct {
	fs  afero.Fs
	cfg *config.File
}

// NewHandler returns a handler that reads datasets from and writes charts to fs.
func NewHandler(fs afero.Fs, cfg *config.File) *Handler {
	return &Handler{fs: fs, cfg: cfg}
}

// NewServer returns an MCP server reporting the build version with every
// tool registered against h.
func NewServer(h *Handler) *server.MCPServer {
	s := server.NewMCPServer("linechart", version.Version)
	Register(s, h)
	return s
}

// Register registers all tools with the MCP server.
func Register(s *server.MCPServer, h *Handler) {
	registerRenderTool(s, h)
	registerProbeTool(s, h)
}

func registerRenderTool(s *server.MCPServer, h *Handler) {
	tool := mcp.NewTool("render_line_chart",
		mcp.WithDescription("Renders a multi-series time line chart from a tab-separated or xlsx table (first column dates, one column per series). The output format follows the extension: .svg, .html (interactive), .png, .echarts.html or .txt (terminal)."),
		mcp.WithString("data_path",
			mcp.Description("Path to the .tsv/.txt or .xlsx table. Defaults to the built-in city temperature sample"),
		),
		mcp.WithString("sheet",
			mcp.Description("Workbook sheet for .xlsx input. Defaults to the first sheet"),
		),
		mcp.WithString("output_path",
			mcp.Description("Where to write the chart. Defaults to ./linechart.html"),
		),
		mcp.WithString("theme",
			mcp.Description("HTML theme: light or dark"),
		),
	)

	s.AddTool(tool, h.renderHandler)
}

func registerProbeTool(s *server.MCPServer, h *Handler) {
	tool := mcp.NewTool("probe_line_chart",
		mcp.WithDescription("Moves a pointer to a horizontal position on the chart and returns the value of every series there, interpolated along each drawn line."),
		mcp.WithString("data_path",
			mcp.Description("Path to the .tsv/.txt or .xlsx table. Defaults to the built-in city temperature sample"),
		),
		mcp.WithString("sheet",
			mcp.Description("Workbook sheet for .xlsx input"),
		),
		mcp.WithNumber("x",
			mcp.Description("Pointer position in plot pixels, from the left edge of the plot area"),
		),
		mcp.WithString("date",
			mcp.Description("Pointer position as a date (YYYY-MM-DD); used when x is absent"),
		),
	)

	s.AddTool(tool, h.probeHandler)
}

func (h *Handler) renderHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	outputPath := "linechart.html"
	if op, ok := args["output_path"].(string); ok && op != "" {
		outputPath = op
	}

	c, err := h.draw(args)
	if err != nil {
		return newToolResultError(err.Error()), nil
	}

	htmlConfig := h.cfg.HTMLConfig()
	if theme, ok := args["theme"].(string); ok && theme != "" {
		htmlConfig.Theme = theme
	}

	if err := h.write(c, outputPath, htmlConfig); err != nil {
		return newToolResultError(fmt.Sprintf("failed to render chart: %v", err)), nil
	}

	log.Info("rendered chart", "output", outputPath, "series", len(c.Lines))

	return mcp.NewToolResultText(buildSummary(c, outputPath)), nil
}

func (h *Handler) probeHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	c, err := h.draw(args)
	if err != nil {
		return newToolResultError(err.Error()), nil
	}

	var mx float64
	switch {
	case args["x"] != nil:
		x, ok := args["x"].(float64)
		if !ok {
			return newToolResultError("x must be a number"), nil
		}
		mx = x
	case args["date"] != nil:
		ds, _ := args["date"].(string)
		date, err := time.Parse("2006-01-02", ds)
		if err != nil {
			return newToolResultError(fmt.Sprintf("invalid date %q: %v", ds, err)), nil
		}
		mx = c.XFor(date)
	default:
		return newToolResultError("either x or date is required"), nil
	}

	c.PointerOver()
	readings := c.PointerMove(mx)

	return mcp.NewToolResultText(FormatReadings(readings)), nil
}

// draw loads the dataset named by the arguments and draws it.
func (h *Handler) draw(args map[string]interface{}) (*chart.Chart, error) {
	ds, err := h.load(args)
	if err != nil {
		return nil, err
	}
	c, _ := chart.Draw(nil, ds, h.cfg.ChartConfig())
	return c, nil
}

func (h *Handler) load(args map[string]interface{}) (*dataset.Dataset, error) {
	path, _ := args["data_path"].(string)
	if path == "" {
		path = h.cfg.Data.Path
	}
	if path == "" {
		return dataset.Sample(), nil
	}

	if _, err := h.fs.Stat(path); err != nil {
		return nil, fmt.Errorf("data path does not exist: %s", path)
	}

	sheet, _ := args["sheet"].(string)
	if sheet == "" {
		sheet = h.cfg.Data.Sheet
	}

	ds, err := dataset.Load(h.fs, path, sheet, h.cfg.DatasetOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return ds, nil
}

func (h *Handler) write(c *chart.Chart, outputPath string, htmlConfig diagram.HTMLConfig) error {
	lower := strings.ToLower(outputPath)
	switch {
	case strings.HasSuffix(lower, ".echarts.html"):
		return diagram.GenerateECharts(h.fs, c, outputPath, htmlConfig.Title)
	case strings.HasSuffix(lower, ".html"):
		return diagram.GenerateHTML(h.fs, c, outputPath, htmlConfig)
	case strings.HasSuffix(lower, ".png"):
		return diagram.Generate(h.fs, c, outputPath)
	case strings.HasSuffix(lower, ".txt"):
		return diagram.GenerateTerminal(h.fs, c, outputPath, h.cfg.Output.TermWidth, h.cfg.Output.TermHeight)
	case strings.HasSuffix(lower, ".svg"):
		return diagram.GenerateSVG(h.fs, c, outputPath)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(outputPath))
	}
}

// Write renders c to outputPath in the format its extension names.
func (h *Handler) Write(c *chart.Chart, outputPath string) error {
	return h.write(c, outputPath, h.cfg.HTMLConfig())
}

// Draw loads the dataset at path (the sample when empty) and draws it.
func (h *Handler) Draw(path, sheet string) (*chart.Chart, error) {
	return h.draw(map[string]interface{}{"data_path": path, "sheet": sheet})
}

// FormatReadings renders one "name: value" line per reading.
func FormatReadings(readings []chart.Reading) string {
	var sb strings.Builder
	if len(readings) > 0 {
		sb.WriteString(fmt.Sprintf("Date: %s\n", readings[0].Date.Round(time.Minute).Format("2006-01-02 15:04")))
	}
	for _, r := range readings {
		sb.WriteString(fmt.Sprintf("%s: %s\n", r.Series, r.Label()))
	}
	return sb.String()
}

func newToolResultError(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: message,
			},
		},
		IsError: true,
	}
}

func buildSummary(c *chart.Chart, outputPath string) string {
	ds := c.Data()
	first, last := ds.DateExtent()
	lo, hi := ds.ValueDomain()

	summary := fmt.Sprintf("Line chart generated successfully!\n\nOutput: %s\n\n", outputPath)
	summary += fmt.Sprintf("Dates: %s to %s (%d rows)\n", first.Format("2006-01-02"), last.Format("2006-01-02"), ds.Len())
	summary += fmt.Sprintf("Values: %.2f to %.2f\n\nSeries:\n", lo, hi)

	for _, line := range c.Lines {
		summary += fmt.Sprintf("  - %s (%s)\n", line.Series.Name, line.Color)
	}

	return summary
}
