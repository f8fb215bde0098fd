package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petrolith/wellmerge/internal/log"
	"github.com/petrolith/wellmerge/internal/report"
)

func newReportCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "report [file.las|file.snap]",
		Short: "Write an XLSX quality-control report for a well record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := readRecord(args[0])
			if err != nil {
				return err
			}

			out := outputPath
			if out == "" {
				out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "_qc.xlsx"
			}
			if err := report.WriteXLSX(out, rec); err != nil {
				return fmt.Errorf("writing QC report: %w", err)
			}
			log.Infof("wrote QC report to %s", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output XLSX path (default: <input>_qc.xlsx)")
	return cmd
}
