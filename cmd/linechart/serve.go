package main

import (
	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/junkd0g/linechart/internal/tools"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart tools over MCP on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, _, err := newHandler()
			if err != nil {
				return fail(err)
			}

			s := tools.NewServer(h)

			log.Debug("serving MCP on stdio")
			if err := server.ServeStdio(s); err != nil {
				return fail(err)
			}
			return nil
		},
	}
}
