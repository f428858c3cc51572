package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/junkd0g/linechart/internal/tools"
)

func newProbeCmd() *cobra.Command {
	var (
		dataPath string
		sheet    string
		x        float64
		date     string
	)

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Print every series value under a pointer position",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, _, err := newHandler()
			if err != nil {
				return fail(err)
			}

			c, err := h.Draw(dataPath, sheet)
			if err != nil {
				return fail(err)
			}

			mx := x
			switch {
			case cmd.Flags().Changed("x"):
			case date != "":
				d, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fail(fmt.Errorf("invalid date %q: %w", date, err))
				}
				mx = c.XFor(d)
			default:
				return fail(errors.New("either --x or --date is required"))
			}

			c.PointerOver()
			fmt.Fprint(cmd.OutOrStdout(), tools.FormatReadings(c.PointerMove(mx)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "Path to the .tsv or .xlsx table (default: built-in sample)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Workbook sheet for .xlsx input")
	cmd.Flags().Float64Var(&x, "x", 0, "Pointer position in plot pixels")
	cmd.Flags().StringVar(&date, "date", "", "Pointer position as a date (YYYY-MM-DD)")

	return cmd
}
