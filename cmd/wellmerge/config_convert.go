package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petrolith/wellmerge/internal/log"
	"github.com/petrolith/wellmerge/pkg/config"
)

func newConfigConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config-convert [config.yaml] [config.db]",
		Short: "Convert a YAML configuration to the SQLite backend",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			yamlPath, dbPath := args[0], args[1]

			cfg, err := config.NewYAMLProvider(yamlPath).LoadConfig()
			if err != nil {
				return fmt.Errorf("reading %s: %w", yamlPath, err)
			}

			sp, err := config.NewSQLiteProvider(dbPath)
			if err != nil {
				return err
			}
			defer sp.Close()

			if err := sp.InitSchema(); err != nil {
				return err
			}
			if err := sp.SaveConfig(cfg); err != nil {
				return fmt.Errorf("writing %s: %w", dbPath, err)
			}

			log.Infof("converted %s to %s", yamlPath, dbPath)
			return nil
		},
	}
}
