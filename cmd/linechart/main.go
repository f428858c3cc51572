package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/junkd0g/linechart/internal/config"
	"github.com/junkd0g/linechart/internal/tools"
)

var (
	cfgFile  string
	logLevel string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "linechart <command>",
		Short:         "Multi-series time line charts with pointer tracking",
		Long:          `Render tab-separated or xlsx time series as SVG, HTML, PNG, ECharts or terminal charts, and read series values under a pointer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", os.Getenv("LINECHART_CONFIG"), "Config file (yaml, json or toml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newProbeCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newHandler loads the configuration named by --config and binds it to the
// local filesystem.
func newHandler() (*tools.Handler, *config.File, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	return tools.NewHandler(afero.NewOsFs(), cfg), cfg, nil
}

func fail(err error) error {
	log.Error(err)
	return err
}
