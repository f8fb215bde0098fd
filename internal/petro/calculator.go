// Package petro derives petrophysical curves (shale volume, porosity, water
// saturation, brittleness) from measured logs on a merge.WellRecord. Each
// computation consumes one or more input mnemonics and produces a new curve on
// the input's depth grid; null samples propagate as null.
package petro

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/petrolith/wellmerge/internal/merge"
)

// Calculator derives petrophysical curves from a well record's measured logs.
type Calculator struct {
	logger *zap.SugaredLogger
}

// NewCalculator creates a Calculator.
func NewCalculator(logger *zap.SugaredLogger) *Calculator {
	return &Calculator{logger: logger}
}

// requireCurve fetches a mnemonic or reports merge.ErrMissingCurve.
func requireCurve(rec *merge.WellRecord, mnemonic string) (*merge.Curve, error) {
	c, ok := rec.Curve(mnemonic)
	if !ok {
		return nil, fmt.Errorf("%w: %q in well %q", merge.ErrMissingCurve, mnemonic, rec.Name)
	}
	return c, nil
}

// mapCurve builds a derived curve by applying fn to every sample of src.
// Null samples propagate without invoking fn.
func mapCurve(src *merge.Curve, mnemonic, unit, description string, fn func(float64) float64) (*merge.Curve, error) {
	values := make([]float64, src.NumSamples())
	for i := 0; i < src.NumSamples(); i++ {
		v := src.Value(i)
		if math.IsNaN(v) {
			values[i] = math.NaN()
			continue
		}
		values[i] = fn(v)
	}
	out, err := merge.NewCurve(mnemonic, unit, src.Start, src.Stop, src.Step, values)
	if err != nil {
		return nil, err
	}
	out.Description = description
	return out, nil
}

// Vshale computes a shale-volume curve ("VCL", v/v) from gamma ray.
func (c *Calculator) Vshale(rec *merge.WellRecord, p VshaleParams) (*merge.Curve, error) {
	input := p.InputMnemonic
	if input == "" {
		input = "GR"
	}
	gr, err := requireCurve(rec, input)
	if err != nil {
		return nil, err
	}

	grMin, grMax := p.GRMin, p.GRMax
	if grMin == 0 && grMax == 0 {
		grMin = curveQuantile(gr, 0.05)
		grMax = curveQuantile(gr, 0.95)
		c.logger.Debugw("derived gamma-ray bounds from percentiles",
			"well", rec.Name, "gr_min", grMin, "gr_max", grMax)
	}
	if !(grMax > grMin) {
		return nil, fmt.Errorf("%w: gamma-ray bounds [%v,%v] are degenerate",
			merge.ErrInvalidCurveData, grMin, grMax)
	}

	transform := igrTransform(p.Method)
	return mapCurve(gr, "VCL", "V/V", "SHALE VOLUME", func(v float64) float64 {
		igr := clamp01((v - grMin) / (grMax - grMin))
		return clamp01(transform(igr))
	})
}

// igrTransform selects the gamma-ray-index transform for a method, defaulting
// to linear.
func igrTransform(m VshaleMethod) func(float64) float64 {
	switch m {
	case VshaleLarionovTertiary:
		return func(igr float64) float64 { return 0.083 * (math.Pow(2, 3.7*igr) - 1) }
	case VshaleLarionovOlder:
		return func(igr float64) float64 { return 0.33 * (math.Pow(2, 2*igr) - 1) }
	case VshaleSteiber:
		return func(igr float64) float64 { return igr / (3 - 2*igr) }
	default:
		return func(igr float64) float64 { return igr }
	}
}

// DensityPorosity computes a density-porosity curve ("PHID", v/v) from bulk
// density.
func (c *Calculator) DensityPorosity(rec *merge.WellRecord, p PorosityParams) (*merge.Curve, error) {
	input := p.InputMnemonic
	if input == "" {
		input = "RHOB"
	}
	rhob, err := requireCurve(rec, input)
	if err != nil {
		return nil, err
	}

	matrix := p.MatrixDensity
	if matrix == 0 {
		matrix = MatrixSandstone
	}
	fluid := p.FluidDensity
	if fluid == 0 {
		fluid = 1.0
	}
	if matrix <= fluid {
		return nil, fmt.Errorf("%w: matrix density %v must exceed fluid density %v",
			merge.ErrInvalidCurveData, matrix, fluid)
	}

	return mapCurve(rhob, "PHID", "V/V", "DENSITY POROSITY", func(v float64) float64 {
		return clamp01((matrix - v) / (matrix - fluid))
	})
}

// EffectivePorosity corrects total porosity for shale content:
// PHIE = PHID * (1 - VCL). Both curves must already exist on the record and
// share a depth grid.
func (c *Calculator) EffectivePorosity(rec *merge.WellRecord) (*merge.Curve, error) {
	phid, err := requireCurve(rec, "PHID")
	if err != nil {
		return nil, err
	}
	vcl, err := requireCurve(rec, "VCL")
	if err != nil {
		return nil, err
	}

	return combineCurves(phid, vcl, "PHIE", "V/V", "EFFECTIVE POROSITY",
		func(p, v float64) float64 { return clamp01(p * (1 - v)) })
}

// WaterSaturation computes an Archie water-saturation curve ("SW", v/v) from
// deep resistivity and porosity.
func (c *Calculator) WaterSaturation(rec *merge.WellRecord, p ArchieParams) (*merge.Curve, error) {
	if p.Rw <= 0 {
		return nil, fmt.Errorf("%w: formation-water resistivity must be positive", merge.ErrInvalidCurveData)
	}
	rtMnem := p.ResistivityMnemonic
	if rtMnem == "" {
		rtMnem = "RT"
	}
	phiMnem := p.PorosityMnemonic
	if phiMnem == "" {
		phiMnem = "PHID"
	}

	rt, err := requireCurve(rec, rtMnem)
	if err != nil {
		return nil, err
	}
	phi, err := requireCurve(rec, phiMnem)
	if err != nil {
		return nil, err
	}

	a, m, n := p.A, p.M, p.N
	if a == 0 {
		a = 1
	}
	if m == 0 {
		m = 2
	}
	if n == 0 {
		n = 2
	}

	return combineCurves(rt, phi, "SW", "V/V", "WATER SATURATION (ARCHIE)",
		func(rtV, phiV float64) float64 {
			if rtV <= 0 || phiV <= 0 {
				return math.NaN()
			}
			return clamp01(math.Pow(a*p.Rw/(math.Pow(phiV, m)*rtV), 1/n))
		})
}

// Brittleness computes the Rickman brittleness index ("BRIT", v/v): the
// average of Young's modulus and Poisson's ratio, each normalized to [0,1]
// over the well's own range.
func (c *Calculator) Brittleness(rec *merge.WellRecord, p BrittlenessParams) (*merge.Curve, error) {
	ymeMnem := p.YoungsMnemonic
	if ymeMnem == "" {
		ymeMnem = "YME"
	}
	prMnem := p.PoissonMnemonic
	if prMnem == "" {
		prMnem = "PR"
	}

	yme, err := requireCurve(rec, ymeMnem)
	if err != nil {
		return nil, err
	}
	pr, err := requireCurve(rec, prMnem)
	if err != nil {
		return nil, err
	}

	ys := CurveStats(yme)
	ps := CurveStats(pr)
	if ys.Count == 0 || ps.Count == 0 || ys.Max <= ys.Min || ps.Max <= ps.Min {
		return nil, fmt.Errorf("%w: brittleness inputs lack dynamic range", merge.ErrInvalidCurveData)
	}

	return combineCurves(yme, pr, "BRIT", "V/V", "BRITTLENESS INDEX (RICKMAN)",
		func(y, r float64) float64 {
			yNorm := (y - ys.Min) / (ys.Max - ys.Min)
			pNorm := (ps.Max - r) / (ps.Max - ps.Min)
			return clamp01((yNorm + pNorm) / 2)
		})
}

// combineCurves builds a derived curve from two inputs on a's grid, looking b
// up per depth. A null on either side propagates as null.
func combineCurves(a, b *merge.Curve, mnemonic, unit, description string, fn func(av, bv float64) float64) (*merge.Curve, error) {
	values := make([]float64, a.NumSamples())
	for i := 0; i < a.NumSamples(); i++ {
		av := a.Value(i)
		bv, ok := b.At(a.Depth(i))
		if math.IsNaN(av) || !ok {
			values[i] = math.NaN()
			continue
		}
		values[i] = fn(av, bv)
	}
	out, err := merge.NewCurve(mnemonic, unit, a.Start, a.Stop, a.Step, values)
	if err != nil {
		return nil, err
	}
	out.Description = description
	return out, nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
