package petro

// VshaleMethod selects the gamma-ray index to shale-volume transform.
type VshaleMethod string

const (
	// VshaleLinear uses the gamma-ray index directly.
	VshaleLinear VshaleMethod = "linear"
	// VshaleLarionovTertiary applies Larionov's correction for Tertiary rocks.
	VshaleLarionovTertiary VshaleMethod = "larionov-tertiary"
	// VshaleLarionovOlder applies Larionov's correction for older rocks.
	VshaleLarionovOlder VshaleMethod = "larionov-older"
	// VshaleSteiber applies the Steiber transform.
	VshaleSteiber VshaleMethod = "steiber"
)

// Common matrix densities in g/cm3.
const (
	MatrixSandstone = 2.65
	MatrixLimestone = 2.71
	MatrixDolomite  = 2.87
)

// VshaleParams configures the shale-volume computation.
type VshaleParams struct {
	Method VshaleMethod
	// GRMin and GRMax bound the clean-sand and pure-shale gamma-ray response.
	// When both are zero they are derived from the curve's 5th and 95th
	// percentiles.
	GRMin float64
	GRMax float64
	// InputMnemonic defaults to "GR".
	InputMnemonic string
}

// PorosityParams configures the density-porosity computation.
type PorosityParams struct {
	// MatrixDensity defaults to MatrixSandstone.
	MatrixDensity float64
	// FluidDensity defaults to 1.0 (fresh-water mud filtrate).
	FluidDensity float64
	// InputMnemonic defaults to "RHOB".
	InputMnemonic string
}

// ArchieParams configures the Archie water-saturation computation.
type ArchieParams struct {
	// A, M, and N are the tortuosity factor, cementation exponent, and
	// saturation exponent. Zero values select the classic 1/2/2.
	A float64
	M float64
	N float64
	// Rw is the formation-water resistivity (ohm.m); required.
	Rw float64
	// ResistivityMnemonic defaults to "RT"; PorosityMnemonic to "PHID".
	ResistivityMnemonic string
	PorosityMnemonic    string
}

// BrittlenessParams configures the Rickman brittleness-index computation.
type BrittlenessParams struct {
	// YoungsMnemonic defaults to "YME", PoissonMnemonic to "PR".
	YoungsMnemonic  string
	PoissonMnemonic string
}
