package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petrolith/wellmerge/internal/log"
	"github.com/petrolith/wellmerge/internal/merge"
	"github.com/petrolith/wellmerge/internal/petro"
	"github.com/petrolith/wellmerge/pkg/config"
	"github.com/petrolith/wellmerge/pkg/las"
)

func newCalcCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "calc [file.las]",
		Short: "Derive petrophysical curves and append them to a LAS file",
		Long:  "calc runs the calculators listed in the configuration (or a default\nshale-volume + density-porosity pipeline) against the input's measured logs\nand writes a LAS file with the derived curves appended.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			rec, err := readRecord(args[0])
			if err != nil {
				return err
			}

			calculators := cfg.Calculators
			if len(calculators) == 0 {
				log.Warn("no calculators configured; running default vshale + density-porosity pipeline")
				calculators = []config.CalculatorData{
					{Type: "vshale"},
					{Type: "density-porosity"},
					{Type: "effective-porosity"},
				}
			}

			calc := petro.NewCalculator(log.GetSugaredLogger())
			for _, cd := range calculators {
				curve, err := runCalculator(calc, rec, cd)
				if err != nil {
					return fmt.Errorf("calculator %q: %w", cd.Type, err)
				}
				if err := rec.AddCurve(curve); err != nil {
					return err
				}
				log.Infow("derived curve", "mnemonic", curve.Mnemonic, "from", cd.Type)
			}

			out := outputPath
			if out == "" {
				out = args[0]
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			opts := writeOptions(cfg.Merge.NullValue, cfg.Merge.DepthUnit)
			if err := las.NewWriter(f, opts).Write(rec); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			log.Infof("wrote %s with %d curves", out, rec.NumCurves())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output LAS path (default: overwrite input)")
	return cmd
}

func runCalculator(calc *petro.Calculator, rec *merge.WellRecord, cd config.CalculatorData) (*merge.Curve, error) {
	switch cd.Type {
	case "vshale":
		return calc.Vshale(rec, petro.VshaleParams{
			Method: petro.VshaleMethod(cd.Method),
			GRMin:  cd.GRMin,
			GRMax:  cd.GRMax,
		})
	case "density-porosity":
		return calc.DensityPorosity(rec, petro.PorosityParams{
			MatrixDensity: cd.MatrixDensity,
			FluidDensity:  cd.FluidDensity,
		})
	case "effective-porosity":
		return calc.EffectivePorosity(rec)
	case "water-saturation":
		return calc.WaterSaturation(rec, petro.ArchieParams{
			Rw: cd.Rw, A: cd.A, M: cd.M, N: cd.N,
		})
	case "brittleness":
		return calc.Brittleness(rec, petro.BrittlenessParams{})
	default:
		return nil, fmt.Errorf("unknown calculator type %q", cd.Type)
	}
}
