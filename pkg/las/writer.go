package las

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/petrolith/wellmerge/internal/merge"
)

// WriteOptions configures LAS output.
type WriteOptions struct {
	// Null is the sentinel written for absent samples and declared in the
	// well-information section. Zero value selects DefaultNull.
	Null float64
	// DepthUnit labels the index curve (default "M").
	DepthUnit string
}

func (o WriteOptions) null() float64 {
	if o.Null == 0 {
		return DefaultNull
	}
	return o.Null
}

func (o WriteOptions) depthUnit() string {
	if o.DepthUnit == "" {
		return "M"
	}
	return o.DepthUnit
}

// Writer serializes a merge.WellRecord to the LAS 2.0 ASCII format.
type Writer struct {
	dst  io.Writer
	opts WriteOptions
}

// NewWriter returns a Writer targeting dst.
func NewWriter(dst io.Writer, opts WriteOptions) *Writer {
	return &Writer{dst: dst, opts: opts}
}

// WriteFile serializes rec to the file at path with default options.
func WriteFile(path string, rec *merge.WellRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := NewWriter(f, WriteOptions{}).Write(rec); err != nil {
		return err
	}
	return f.Sync()
}

// Write emits the record as a LAS 2.0 document. The data section is laid out
// on the union depth grid of all the record's curves at the finest step, one
// row per depth, one column per curve in insertion order; depths a curve does
// not cover carry the null sentinel, never a missing column.
func (w *Writer) Write(rec *merge.WellRecord) error {
	curves := rec.Curves()
	if len(curves) == 0 {
		return fmt.Errorf("%w: record %q has no curves", ErrInvalidFormat, rec.Name)
	}

	grid, err := merge.ResolveGrid(curves)
	if err != nil {
		return err
	}

	null := w.opts.null()
	unit := w.opts.depthUnit()

	bw := bufio.NewWriter(w.dst)
	fmt.Fprintf(bw, "~Version Information\n")
	fmt.Fprintf(bw, " VERS.                 2.0 : CWLS LOG ASCII STANDARD - VERSION 2.0\n")
	fmt.Fprintf(bw, " WRAP.                  NO : ONE LINE PER DEPTH STEP\n")

	fmt.Fprintf(bw, "~Well Information\n")
	fmt.Fprintf(bw, "#MNEM.UNIT %20s : DESCRIPTION\n", "DATA")
	fmt.Fprintf(bw, " STRT.%-4s %20.4f : START DEPTH\n", unit, grid.Start)
	fmt.Fprintf(bw, " STOP.%-4s %20.4f : STOP DEPTH\n", unit, grid.Stop)
	fmt.Fprintf(bw, " STEP.%-4s %20.4f : STEP\n", unit, grid.Step)
	fmt.Fprintf(bw, " NULL.     %20.4f : NULL VALUE\n", null)
	fmt.Fprintf(bw, " WELL.     %20s : WELL NAME\n", rec.Name)

	fmt.Fprintf(bw, "~Curve Information\n")
	fmt.Fprintf(bw, " DEPT.%-8s : DEPTH\n", unit)
	for _, c := range curves {
		desc := c.Description
		if desc == "" {
			desc = c.Mnemonic
		}
		fmt.Fprintf(bw, " %s.%-8s : %s\n", c.Mnemonic, c.Unit, desc)
	}

	fmt.Fprintf(bw, "~ASCII\n")
	for i := 0; i < grid.NumPoints(); i++ {
		depth := grid.Depth(i)
		fmt.Fprintf(bw, "%12.4f", depth)
		for _, c := range curves {
			v, ok := c.At(depth)
			if !ok || math.IsNaN(v) {
				v = null
			}
			fmt.Fprintf(bw, " %12.4f", v)
		}
		fmt.Fprintf(bw, "\n")
	}

	return bw.Flush()
}
