package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/petrolith/wellmerge/internal/catalog"
	"github.com/petrolith/wellmerge/internal/log"
)

func newRunsCmd() *cobra.Command {
	var (
		wellName string
		limit    int
		showQC   bool
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent merge runs recorded in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Catalog == nil {
				return fmt.Errorf("no catalog DSN configured")
			}

			client := catalog.NewClient(cfg.Catalog.DSN, log.GetSugaredLogger())
			if err := client.Connect(); err != nil {
				return err
			}

			runs, err := client.RecentRuns(wellName, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RUN\tWELL\tSOURCES\tCURVES\tOVERLAPS\tMERGED AT")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
					r.RunID, r.WellName, r.SourceCount, r.CurveCount,
					r.OverlapsProcessed, r.MergedAt.Format("2006-01-02 15:04:05"))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if showQC {
				for _, r := range runs {
					rows, err := client.CurvesForRun(r.RunID)
					if err != nil {
						return err
					}
					fmt.Printf("\nrun %s:\n", r.RunID)
					qw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(qw, "  MNEMONIC\tRANGE\tVALID/SAMPLES\tMEAN")
					for _, q := range rows {
						fmt.Fprintf(qw, "  %s\t%.1f-%.1f\t%d/%d\t%.3f\n",
							q.Mnemonic, q.DepthStart, q.DepthStop,
							q.ValidCount, q.SampleCount, q.MeanValue)
					}
					if err := qw.Flush(); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&wellName, "well", "", "Only show runs for this well")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	cmd.Flags().BoolVar(&showQC, "qc", false, "Also print per-curve QC rows")
	return cmd
}
