package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		dataPath   string
		sheet      string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a line chart",
		Long:  `Render a line chart to the format named by the output extension: .svg, .html, .png, .echarts.html or .txt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, _, err := newHandler()
			if err != nil {
				return fail(err)
			}

			c, err := h.Draw(dataPath, sheet)
			if err != nil {
				return fail(err)
			}
			if err := h.Write(c, outputPath); err != nil {
				return fail(err)
			}

			log.Info("rendered chart", "output", outputPath, "series", len(c.Lines), "rows", c.Data().Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "Path to the .tsv or .xlsx table (default: built-in sample)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Workbook sheet for .xlsx input")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "linechart.html", "Output path")

	return cmd
}
