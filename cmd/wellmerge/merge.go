package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petrolith/wellmerge/internal/catalog"
	"github.com/petrolith/wellmerge/internal/log"
	"github.com/petrolith/wellmerge/internal/merge"
	"github.com/petrolith/wellmerge/internal/report"
	"github.com/petrolith/wellmerge/internal/snapshot"
	"github.com/petrolith/wellmerge/pkg/las"
)

func newMergeCmd() *cobra.Command {
	var (
		outputPath   string
		mergedName   string
		snapshotPath string
		reportPath   string
		useCatalog   bool
	)

	cmd := &cobra.Command{
		Use:   "merge [file1.las file2.las ...]",
		Short: "Merge LAS files from a multi-stage logging campaign into one well",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			records := make([]*merge.WellRecord, 0, len(args))
			for _, path := range args {
				rec, err := readRecord(path)
				if err != nil {
					return fmt.Errorf("loading %s: %w", path, err)
				}
				log.Infow("loaded well record",
					"file", path, "well", rec.Name, "curves", rec.NumCurves())
				records = append(records, rec)
			}

			name := mergedName
			if name == "" {
				name = records[0].Name
			}

			merged, err := merge.MergeWells(records, name)
			if err != nil {
				return fmt.Errorf("merge failed: %w", err)
			}
			log.Infow("merged well records",
				"well", merged.Name,
				"sources", len(records),
				"curves", merged.NumCurves(),
				"overlapping_points", merged.Metadata.OverlapsProcessed)

			out := outputPath
			if out == "" {
				out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "_merged.las"
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			opts := writeOptions(cfg.Merge.NullValue, cfg.Merge.DepthUnit)
			if err := las.NewWriter(f, opts).Write(merged); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			log.Infof("wrote merged LAS to %s", out)

			if snapshotPath != "" {
				if err := snapshot.Save(snapshotPath, merged); err != nil {
					return fmt.Errorf("writing snapshot: %w", err)
				}
				log.Infof("wrote snapshot to %s", snapshotPath)
			}
			if reportPath != "" {
				if err := report.WriteXLSX(reportPath, merged); err != nil {
					return fmt.Errorf("writing QC report: %w", err)
				}
				log.Infof("wrote QC report to %s", reportPath)
			}
			if useCatalog {
				if cfg.Catalog == nil {
					return fmt.Errorf("--catalog requires a catalog DSN in the configuration")
				}
				client := catalog.NewClient(cfg.Catalog.DSN, log.GetSugaredLogger())
				if err := client.Connect(); err != nil {
					return err
				}
				runID, err := client.RecordMerge(merged)
				if err != nil {
					return err
				}
				fmt.Printf("catalog run: %s\n", runID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output LAS path (default: <first input>_merged.las)")
	cmd.Flags().StringVar(&mergedName, "name", "", "Merged well name (default: first input's well name)")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Also write a binary snapshot to this path")
	cmd.Flags().StringVar(&reportPath, "report", "", "Also write an XLSX QC report to this path")
	cmd.Flags().BoolVar(&useCatalog, "catalog", false, "Record the merge run in the configured catalog database")

	return cmd
}
