package merge

import "math"

// Grid describes the unified depth axis chosen for a merge: an ordered
// sequence Start, Start+Step, ..., Stop guaranteed to contain every source
// curve's depth range.
type Grid struct {
	Start float64
	Stop  float64
	Step  float64
}

// ResolveGrid computes the unified depth grid for a set of curves sharing one
// mnemonic: the union of depth ranges sampled at the finest source step.
// Sources with incompatible (non-integer-ratio) steps are permitted; the
// merger reconciles them with nearest-sample lookup rather than requiring
// exact grid alignment. Returns ErrEmptyInput when no curves are supplied.
func ResolveGrid(curves []*Curve) (Grid, error) {
	if len(curves) == 0 {
		return Grid{}, ErrEmptyInput
	}

	g := Grid{
		Start: curves[0].Start,
		Stop:  curves[0].Stop,
		Step:  curves[0].Step,
	}
	for _, c := range curves[1:] {
		g.Start = math.Min(g.Start, c.Start)
		g.Stop = math.Max(g.Stop, c.Stop)
		g.Step = math.Min(g.Step, c.Step)
	}
	return g, nil
}

// NumPoints returns the number of depth samples on the grid.
func (g Grid) NumPoints() int {
	return int(math.Round((g.Stop-g.Start)/g.Step)) + 1
}

// Depth returns the depth of grid point i.
func (g Grid) Depth(i int) float64 {
	return g.Start + float64(i)*g.Step
}
