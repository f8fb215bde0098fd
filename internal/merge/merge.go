package merge

import (
	"fmt"
	"math"
)

// SourceCurve pairs a curve with the identifier of the record it came from.
// The identifier is provenance only; it never influences numeric results.
type SourceCurve struct {
	Curve    *Curve
	SourceID string
}

// MergeCurve combines all source curves for one mnemonic onto their unified
// depth grid. At each grid point the contribution of each source is looked up
// with nearest-sample tolerance of half that source's own step. Zero
// contributors yield a null sample, one contributor passes through unchanged,
// and two or more are combined by arithmetic mean. The returned count is the
// number of grid points where two or more sources overlapped.
func MergeCurve(mnemonic string, sources []SourceCurve) (*Curve, int, error) {
	if len(sources) == 0 {
		return nil, 0, fmt.Errorf("%w: mnemonic %q", ErrEmptyInput, mnemonic)
	}

	curves := make([]*Curve, len(sources))
	for i, s := range sources {
		if s.Curve == nil {
			return nil, 0, fmt.Errorf("%w: mnemonic %q source %q is nil", ErrInvalidCurveData, mnemonic, s.SourceID)
		}
		curves[i] = s.Curve
	}

	grid, err := ResolveGrid(curves)
	if err != nil {
		return nil, 0, err
	}

	values := make([]float64, grid.NumPoints())
	overlaps := 0
	for i := range values {
		depth := grid.Depth(i)

		sum := 0.0
		contributors := 0
		for _, c := range curves {
			if v, ok := c.At(depth); ok {
				sum += v
				contributors++
			}
		}

		switch {
		case contributors == 0:
			values[i] = math.NaN()
		case contributors == 1:
			values[i] = sum
		default:
			values[i] = sum / float64(contributors)
			overlaps++
		}
	}

	merged, err := NewCurve(mnemonic, unitOf(curves), grid.Start, grid.Stop, grid.Step, values)
	if err != nil {
		return nil, 0, err
	}
	merged.Description = descriptionOf(curves)
	return merged, overlaps, nil
}

// unitOf picks the first non-empty unit among the sources. Units are
// informational; the merge does not convert between them.
func unitOf(curves []*Curve) string {
	for _, c := range curves {
		if c.Unit != "" {
			return c.Unit
		}
	}
	return ""
}

func descriptionOf(curves []*Curve) string {
	for _, c := range curves {
		if c.Description != "" {
			return c.Description
		}
	}
	return ""
}
