// Package main provides the wellmerge CLI: merging multi-stage LAS well logs,
// inspecting files, deriving petrophysical curves, and exporting QC reports.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petrolith/wellmerge/internal/constants"
	"github.com/petrolith/wellmerge/internal/log"
	"github.com/petrolith/wellmerge/pkg/config"
)

var (
	cfgFile    string
	cfgBackend string
	debug      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "wellmerge",
		Short:   "Well-log merge toolkit for LAS files",
		Long:    "wellmerge merges partially-overlapping LAS well logs from multi-stage\nlogging campaigns into a single consistent curve set, derives petrophysical\ncurves, and exports LAS files, snapshots, and QC reports.",
		Version: constants.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to configuration source (config.yaml or config.db)")
	rootCmd.PersistentFlags().StringVar(&cfgBackend, "config-backend", "", "Configuration backend: 'yaml' or 'sqlite' (default: by file extension)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Turn on debugging output")

	rootCmd.AddCommand(
		newMergeCmd(),
		newInspectCmd(),
		newCalcCmd(),
		newReportCmd(),
		newRunsCmd(),
		newConfigConvertCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Logging.File != "" {
		return log.InitWithFile(debug || cfg.Logging.Debug, cfg.Logging.File)
	}
	return log.Init(debug || cfg.Logging.Debug)
}

// loadConfig loads the configured backend, or returns defaults when no
// -config flag was given.
func loadConfig() (*config.ConfigData, error) {
	if cfgFile == "" {
		return &config.ConfigData{}, nil
	}

	filename, _ := filepath.Abs(cfgFile)
	backend := cfgBackend
	if backend == "" {
		if ext := strings.ToLower(filepath.Ext(filename)); ext == ".db" || ext == ".sqlite" {
			backend = "sqlite"
		} else {
			backend = "yaml"
		}
	}

	var provider config.ConfigProvider
	var err error
	switch backend {
	case "yaml":
		provider = config.NewYAMLProvider(filename)
	case "sqlite":
		provider, err = config.NewSQLiteProvider(filename)
		if err != nil {
			return nil, fmt.Errorf("error creating SQLite provider: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported configuration backend: %s. Use 'yaml' or 'sqlite'", backend)
	}
	defer provider.Close()

	cfgData, err := provider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error reading config source %s: %w", filename, err)
	}
	return cfgData, nil
}
