// Package report writes merge quality-control workbooks: one summary sheet
// with merge provenance and one row per curve with coverage and statistics.
package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/petrolith/wellmerge/internal/merge"
	"github.com/petrolith/wellmerge/internal/petro"
)

const (
	summarySheet = "Summary"
	curvesSheet  = "Curves"
)

var curveHeader = []string{
	"Mnemonic", "Unit", "Start", "Stop", "Step",
	"Samples", "Valid", "Coverage %", "Min", "Max", "Mean", "StdDev",
}

// WriteXLSX writes the QC workbook for a merged record to path.
func WriteXLSX(path string, rec *merge.WellRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(curvesSheet); err != nil {
		return fmt.Errorf("report: creating curves sheet: %w", err)
	}

	if err := writeSummary(f, rec); err != nil {
		return err
	}
	if err := writeCurves(f, rec); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: saving %s: %w", path, err)
	}
	return nil
}

func writeSummary(f *excelize.File, rec *merge.WellRecord) error {
	rows := [][]interface{}{
		{"Well", rec.Name},
		{"Curves", rec.NumCurves()},
		{"Source files", strings.Join(rec.Metadata.OriginalFiles, ", ")},
		{"Sources", len(rec.Metadata.OriginalFiles)},
		{"Overlapping depth points", rec.Metadata.OverlapsProcessed},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("report: summary row %d: %w", i+1, err)
		}
	}
	return nil
}

func writeCurves(f *excelize.File, rec *merge.WellRecord) error {
	header := make([]interface{}, len(curveHeader))
	for i, h := range curveHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(curvesSheet, "A1", &header); err != nil {
		return fmt.Errorf("report: curve header: %w", err)
	}

	for i, c := range rec.Curves() {
		s := petro.CurveStats(c)
		coverage := 0.0
		if c.NumSamples() > 0 {
			coverage = 100 * float64(s.Count) / float64(c.NumSamples())
		}
		row := []interface{}{
			c.Mnemonic, c.Unit, c.Start, c.Stop, c.Step,
			c.NumSamples(), s.Count, coverage,
			cellValue(s.Min), cellValue(s.Max), cellValue(s.Mean), cellValue(s.StdDev),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(curvesSheet, cell, &row); err != nil {
			return fmt.Errorf("report: curve row %q: %w", c.Mnemonic, err)
		}
	}
	return nil
}

// cellValue maps NaN statistics (all-null curves) to an empty cell.
func cellValue(v float64) interface{} {
	if v != v {
		return ""
	}
	return v
}
