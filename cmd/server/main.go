package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"

	"github.com/junkd0g/linechart/internal/config"
	"github.com/junkd0g/linechart/internal/tools"
)

func main() {
	cfg, err := config.Load(os.Getenv("LINECHART_CONFIG"))
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}

	s := tools.NewServer(tools.NewHandler(afero.NewOsFs(), cfg))

	if err := server.ServeStdio(s); err != nil {
		log.Fatal("server error", "err", err)
	}
}
