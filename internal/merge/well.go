package merge

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Metadata records merge provenance on a well record.
type Metadata struct {
	// OriginalFiles lists the source identifier of every input record, in
	// input order.
	OriginalFiles []string
	// OverlapsProcessed is the total number of depth points, summed across all
	// merged mnemonics, where two or more sources overlapped.
	OverlapsProcessed int
}

// WellRecord is a named collection of curves belonging to one physical well.
// Curves are keyed by mnemonic (unique within a record) and keep insertion
// order, so LAS column order is reproducible. Curves within a record may have
// differing depth ranges and steps; that is the normal case for multi-stage
// logging.
type WellRecord struct {
	Name string
	// Source identifies where the record came from (typically the LAS file
	// path); used for merge provenance.
	Source   string
	Metadata Metadata

	curves map[string]*Curve
	order  []string
}

// NewWellRecord creates an empty well record.
func NewWellRecord(name string) *WellRecord {
	return &WellRecord{
		Name:   name,
		curves: make(map[string]*Curve),
	}
}

// AddCurve appends a curve to the record. Mnemonics are unique within a
// record; adding a duplicate returns ErrDuplicateMnemonic.
func (w *WellRecord) AddCurve(c *Curve) error {
	if _, ok := w.curves[c.Mnemonic]; ok {
		return fmt.Errorf("%w: %q in well %q", ErrDuplicateMnemonic, c.Mnemonic, w.Name)
	}
	w.curves[c.Mnemonic] = c
	w.order = append(w.order, c.Mnemonic)
	return nil
}

// Curve returns the curve with the given mnemonic, if present. Lookup is
// case-sensitive.
func (w *WellRecord) Curve(mnemonic string) (*Curve, bool) {
	c, ok := w.curves[mnemonic]
	return c, ok
}

// Mnemonics returns the record's mnemonics in insertion order.
func (w *WellRecord) Mnemonics() []string {
	out := make([]string, len(w.order))
	copy(out, w.order)
	return out
}

// Curves returns the record's curves in insertion order.
func (w *WellRecord) Curves() []*Curve {
	out := make([]*Curve, 0, len(w.order))
	for _, m := range w.order {
		out = append(out, w.curves[m])
	}
	return out
}

// NumCurves returns the number of curves in the record.
func (w *WellRecord) NumCurves() int {
	return len(w.order)
}

// sourceID returns the provenance identifier recorded for this well in merge
// metadata: the source file when known, otherwise the well name.
func (w *WellRecord) sourceID() string {
	if w.Source != "" {
		return w.Source
	}
	return w.Name
}

// MergeWells merges two or more records describing the same physical well
// logged in stages into a single record named mergedName. Every distinct
// mnemonic found across the inputs is merged independently (records lacking a
// mnemonic simply contribute nothing to it), so inputs with fully disjoint
// curve sets concatenate cleanly. The per-mnemonic merges run concurrently;
// results are ordered by first appearance across the inputs regardless of
// completion order, so output is deterministic for a given input order.
// Returns ErrInsufficientInput for fewer than two records.
func MergeWells(records []*WellRecord, mergedName string) (*WellRecord, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientInput, len(records))
	}

	// Union of mnemonics in first-appearance order.
	var mnemonics []string
	seen := make(map[string]bool)
	for _, r := range records {
		for _, m := range r.Mnemonics() {
			if !seen[m] {
				seen[m] = true
				mnemonics = append(mnemonics, m)
			}
		}
	}

	type mergeResult struct {
		curve    *Curve
		overlaps int
	}
	results := make([]mergeResult, len(mnemonics))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, m := range mnemonics {
		g.Go(func() error {
			var sources []SourceCurve
			for _, r := range records {
				if c, ok := r.Curve(m); ok {
					sources = append(sources, SourceCurve{Curve: c, SourceID: r.sourceID()})
				}
			}
			merged, overlaps, err := MergeCurve(m, sources)
			if err != nil {
				return fmt.Errorf("merging %q: %w", m, err)
			}
			results[i] = mergeResult{curve: merged, overlaps: overlaps}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := NewWellRecord(mergedName)
	for _, res := range results {
		if err := out.AddCurve(res.curve); err != nil {
			return nil, err
		}
		out.Metadata.OverlapsProcessed += res.overlaps
	}
	for _, r := range records {
		out.Metadata.OriginalFiles = append(out.Metadata.OriginalFiles, r.sourceID())
	}
	return out, nil
}
