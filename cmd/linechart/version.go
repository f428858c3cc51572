package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/junkd0g/linechart/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "linechart %s (%s)\n", version.Version, version.GitCommit)
		},
	}
}
