package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Merge struct {
			NullValue float64 `yaml:"null_value"`
			DepthUnit string  `yaml:"depth_unit"`
		} `yaml:"merge,omitempty"`
		Catalog *struct {
			DSN string `yaml:"dsn"`
		} `yaml:"catalog,omitempty"`
		Calculators []struct {
			Type          string  `yaml:"type"`
			Method        string  `yaml:"method"`
			GRMin         float64 `yaml:"gr_min"`
			GRMax         float64 `yaml:"gr_max"`
			MatrixDensity float64 `yaml:"matrix_density"`
			FluidDensity  float64 `yaml:"fluid_density"`
			Rw            float64 `yaml:"rw"`
			A             float64 `yaml:"a"`
			M             float64 `yaml:"m"`
			N             float64 `yaml:"n"`
		} `yaml:"calculators,omitempty"`
		Logging struct {
			Debug bool   `yaml:"debug"`
			File  string `yaml:"file"`
		} `yaml:"logging,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	config := &ConfigData{
		Merge: MergeData{
			NullValue: yamlConfig.Merge.NullValue,
			DepthUnit: yamlConfig.Merge.DepthUnit,
		},
		Logging: LoggingData{
			Debug: yamlConfig.Logging.Debug,
			File:  yamlConfig.Logging.File,
		},
	}
	if yamlConfig.Catalog != nil {
		config.Catalog = &CatalogData{DSN: yamlConfig.Catalog.DSN}
	}
	for _, c := range yamlConfig.Calculators {
		config.Calculators = append(config.Calculators, CalculatorData{
			Type:          c.Type,
			Method:        c.Method,
			GRMin:         c.GRMin,
			GRMax:         c.GRMax,
			MatrixDensity: c.MatrixDensity,
			FluidDensity:  c.FluidDensity,
			Rw:            c.Rw,
			A:             c.A,
			M:             c.M,
			N:             c.N,
		})
	}

	return config, nil
}

// IsReadOnly returns true: YAML configurations are edited by hand, not by the
// tool.
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for the YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}
