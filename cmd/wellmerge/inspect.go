package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/petrolith/wellmerge/internal/petro"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file.las|file.snap]",
		Short: "Print the curve inventory of a LAS file or snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := readRecord(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Well:   %s\n", rec.Name)
			if rec.Source != "" {
				fmt.Printf("Source: %s\n", rec.Source)
			}
			if len(rec.Metadata.OriginalFiles) > 0 {
				fmt.Printf("Merged from %d files, %d overlapping depth points\n",
					len(rec.Metadata.OriginalFiles), rec.Metadata.OverlapsProcessed)
			}
			fmt.Println()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MNEMONIC\tUNIT\tSTART\tSTOP\tSTEP\tSAMPLES\tVALID\tMEAN")
			for _, c := range rec.Curves() {
				s := petro.CurveStats(c)
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.3f\t%d\t%d\t%.3f\n",
					c.Mnemonic, c.Unit, c.Start, c.Stop, c.Step,
					c.NumSamples(), s.Count, s.Mean)
			}
			return w.Flush()
		},
	}
}
