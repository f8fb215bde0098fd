// Package config loads wellmerge configuration from pluggable backends. Two
// providers exist: YAML files for hand-edited setups and SQLite databases for
// tool-managed ones.
package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Configuration management
	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Merge       MergeData        `json:"merge"`
	Catalog     *CatalogData     `json:"catalog,omitempty"`
	Calculators []CalculatorData `json:"calculators,omitempty"`
	Logging     LoggingData      `json:"logging,omitempty"`
}

// MergeData holds merge and LAS output settings
type MergeData struct {
	// NullValue is the LAS null sentinel written on export; 0 selects the
	// conventional -999.25.
	NullValue float64 `json:"null_value,omitempty"`
	DepthUnit string  `json:"depth_unit,omitempty"`
}

// CatalogData holds the merge-catalog database settings
type CatalogData struct {
	DSN string `json:"dsn"`
}

// CalculatorData holds the parameters of one derived-curve computation
type CalculatorData struct {
	// Type selects the computation: vshale, density-porosity,
	// effective-porosity, water-saturation, brittleness.
	Type string `json:"type"`

	// Vshale
	Method string  `json:"method,omitempty"`
	GRMin  float64 `json:"gr_min,omitempty"`
	GRMax  float64 `json:"gr_max,omitempty"`

	// Density porosity
	MatrixDensity float64 `json:"matrix_density,omitempty"`
	FluidDensity  float64 `json:"fluid_density,omitempty"`

	// Archie water saturation
	Rw float64 `json:"rw,omitempty"`
	A  float64 `json:"a,omitempty"`
	M  float64 `json:"m,omitempty"`
	N  float64 `json:"n,omitempty"`
}

// LoggingData holds logging settings
type LoggingData struct {
	Debug bool   `json:"debug,omitempty"`
	File  string `json:"file,omitempty"`
}
