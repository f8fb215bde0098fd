// Package merge implements the multi-file well merge engine: depth-indexed
// curves, unified depth grid resolution, per-mnemonic curve merging, and the
// well-level merge orchestrator.
//
// Absent samples are represented in memory as NaN. On-disk null sentinels
// (conventionally -999.25) are translated at the LAS boundary, not here.
package merge

import (
	"fmt"
	"math"
)

// depthEpsilon absorbs floating-point drift when mapping depths to sample
// indices and when counting grid points.
const depthEpsilon = 1e-6

// Curve is an immutable depth-indexed sample series: a uniform depth grid
// described by Start/Stop/Step paired with one float value per grid point.
// Values[i] corresponds to depth Start + i*Step. NaN marks an absent sample.
// Transformations construct new Curve instances rather than mutating in place.
type Curve struct {
	Mnemonic    string
	Unit        string
	Description string
	Start       float64
	Stop        float64
	Step        float64

	values []float64
}

// NewCurve constructs a Curve and validates its depth geometry: Step must be
// positive and the sample count must equal round((Stop-Start)/Step)+1. Inf
// samples are rejected; NaN is the legal absent-sample marker. The values
// slice is copied.
func NewCurve(mnemonic, unit string, start, stop, step float64, values []float64) (*Curve, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: curve %q has non-positive step %v", ErrInvalidCurveData, mnemonic, step)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: curve %q has no samples", ErrInvalidCurveData, mnemonic)
	}
	want := int(math.Round((stop-start)/step)) + 1
	if want != len(values) {
		return nil, fmt.Errorf("%w: curve %q declares %d samples for range [%v,%v] step %v but holds %d",
			ErrInvalidCurveData, mnemonic, want, start, stop, step, len(values))
	}
	for i, v := range values {
		if math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: curve %q sample %d is not a finite number", ErrInvalidCurveData, mnemonic, i)
		}
	}

	vals := make([]float64, len(values))
	copy(vals, values)

	return &Curve{
		Mnemonic: mnemonic,
		Unit:     unit,
		Start:    start,
		Stop:     stop,
		Step:     step,
		values:   vals,
	}, nil
}

// NewCurveFromSamples constructs a Curve whose Stop is derived from the sample
// count, for callers that build curves incrementally (readers, mergers).
func NewCurveFromSamples(mnemonic, unit string, start, step float64, values []float64) (*Curve, error) {
	stop := start + step*float64(len(values)-1)
	return NewCurve(mnemonic, unit, start, stop, step, values)
}

// NumSamples returns the number of depth points on the curve's grid.
func (c *Curve) NumSamples() int {
	return len(c.values)
}

// Depth returns the depth of sample i.
func (c *Curve) Depth(i int) float64 {
	return c.Start + float64(i)*c.Step
}

// Value returns the sample at index i; NaN means no data at that depth.
func (c *Curve) Value(i int) float64 {
	return c.values[i]
}

// Values returns the backing sample slice. Callers must treat it as read-only.
func (c *Curve) Values() []float64 {
	return c.values
}

// At returns the curve's value at the given depth using nearest-sample lookup
// within half a step of tolerance. The second return is false when the depth
// falls outside the curve's range, no sample lies within tolerance, or the
// nearest sample is null.
func (c *Curve) At(depth float64) (float64, bool) {
	idx := int(math.Round((depth - c.Start) / c.Step))
	if idx < 0 || idx >= len(c.values) {
		return math.NaN(), false
	}
	if math.Abs(c.Depth(idx)-depth) > c.Step/2+depthEpsilon {
		return math.NaN(), false
	}
	v := c.values[idx]
	if math.IsNaN(v) {
		return math.NaN(), false
	}
	return v, true
}

// HasData reports whether the curve holds at least one non-null sample.
func (c *Curve) HasData() bool {
	for _, v := range c.values {
		if !math.IsNaN(v) {
			return true
		}
	}
	return false
}
