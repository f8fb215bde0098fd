package petro

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/petrolith/wellmerge/internal/merge"
)

// Stats summarizes the non-null samples of a curve.
type Stats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	// Count is the number of non-null samples; the remaining fields are NaN
	// when Count is zero.
	Count int
}

// CurveStats computes summary statistics over a curve's non-null samples.
func CurveStats(c *merge.Curve) Stats {
	valid := validSamples(c)
	if len(valid) == 0 {
		nan := math.NaN()
		return Stats{Min: nan, Max: nan, Mean: nan, StdDev: nan}
	}
	return Stats{
		Min:    floats.Min(valid),
		Max:    floats.Max(valid),
		Mean:   stat.Mean(valid, nil),
		StdDev: stat.StdDev(valid, nil),
		Count:  len(valid),
	}
}

// curveQuantile returns the q-th quantile (0..1) of the curve's non-null
// samples, or NaN when the curve holds no data.
func curveQuantile(c *merge.Curve, q float64) float64 {
	valid := validSamples(c)
	if len(valid) == 0 {
		return math.NaN()
	}
	sort.Float64s(valid)
	return stat.Quantile(q, stat.Empirical, valid, nil)
}

func validSamples(c *merge.Curve) []float64 {
	var out []float64
	for _, v := range c.Values() {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
