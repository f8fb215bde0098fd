package las

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFileSample(t *testing.T) {
	rec, err := ReadFile(filepath.Join("testdata", "sample.las"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if rec.Name != "ANY ET AL OIL WELL #12" {
		t.Fatalf("Name = %q", rec.Name)
	}
	if got := rec.Mnemonics(); len(got) != 3 || got[0] != "GR" || got[1] != "RHOB" || got[2] != "NPHI" {
		t.Fatalf("mnemonics = %v", got)
	}

	gr, _ := rec.Curve("GR")
	if gr.Unit != "GAPI" {
		t.Fatalf("GR unit = %q", gr.Unit)
	}
	if math.Abs(gr.Start-1670) > 1e-9 || math.Abs(gr.Stop-1671) > 1e-9 || math.Abs(gr.Step-0.5) > 1e-9 {
		t.Fatalf("GR geometry = [%v,%v] step %v", gr.Start, gr.Stop, gr.Step)
	}
	if math.Abs(gr.Value(1)-105.0) > 1e-9 {
		t.Fatalf("GR[1] = %v, want 105.0", gr.Value(1))
	}

	// Null sentinel values become NaN.
	rhob, _ := rec.Curve("RHOB")
	if !math.IsNaN(rhob.Value(1)) {
		t.Fatalf("RHOB[1] = %v, want NaN", rhob.Value(1))
	}
	nphi, _ := rec.Curve("NPHI")
	if !math.IsNaN(nphi.Value(2)) {
		t.Fatalf("NPHI[2] = %v, want NaN", nphi.Value(2))
	}
}

func TestReadWrappedRejected(t *testing.T) {
	src := strings.Join([]string{
		"~Version Information",
		" VERS.  1.2 : OLD",
		" WRAP.  YES : WRAPPED",
		"~ASCII",
	}, "\n")

	_, err := NewReader(strings.NewReader(src)).Read()
	if !errors.Is(err, ErrWrappedFile) {
		t.Fatalf("expected ErrWrappedFile, got %v", err)
	}
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "no data section",
			src: strings.Join([]string{
				"~Version Information",
				" VERS.  2.0 : V",
				" WRAP.  NO : W",
				"~Curve Information",
				" DEPT.M : DEPTH",
				" GR.GAPI : GAMMA",
			}, "\n"),
		},
		{
			name: "column count mismatch",
			src: strings.Join([]string{
				"~Curve Information",
				" DEPT.M : DEPTH",
				" GR.GAPI : GAMMA",
				"~ASCII",
				"1000.0 50.0 99.0",
			}, "\n"),
		},
		{
			name: "non-numeric sample",
			src: strings.Join([]string{
				"~Curve Information",
				" DEPT.M : DEPTH",
				" GR.GAPI : GAMMA",
				"~ASCII",
				"1000.0 bogus",
			}, "\n"),
		},
		{
			name: "data before curve section",
			src: strings.Join([]string{
				"~ASCII",
				"1000.0 50.0",
			}, "\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(strings.NewReader(tt.src)).Read()
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("expected ErrInvalidFormat, got %v", err)
			}
		})
	}
}

func TestReadStepDerivedFromRows(t *testing.T) {
	// No STEP in the header; the step comes from the first two depth rows.
	src := strings.Join([]string{
		"~Well Information",
		" WELL.  TEST WELL : WELL NAME",
		"~Curve Information",
		" DEPT.M : DEPTH",
		" GR.GAPI : GAMMA",
		"~ASCII",
		"1000.00 10.0",
		"1000.25 20.0",
		"1000.50 30.0",
	}, "\n")

	rec, err := NewReader(strings.NewReader(src)).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	gr, _ := rec.Curve("GR")
	if math.Abs(gr.Step-0.25) > 1e-9 {
		t.Fatalf("step = %v, want 0.25", gr.Step)
	}
}

func TestReadCustomNull(t *testing.T) {
	src := strings.Join([]string{
		"~Well Information",
		" NULL.  -9999.0 : NULL VALUE",
		"~Curve Information",
		" DEPT.M : DEPTH",
		" GR.GAPI : GAMMA",
		"~ASCII",
		"1000.0 -9999.0",
		"1000.5 42.0",
	}, "\n")

	rec, err := NewReader(strings.NewReader(src)).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	gr, _ := rec.Curve("GR")
	if !math.IsNaN(gr.Value(0)) {
		t.Fatalf("GR[0] = %v, want NaN", gr.Value(0))
	}
	if math.Abs(gr.Value(1)-42) > 1e-9 {
		t.Fatalf("GR[1] = %v, want 42", gr.Value(1))
	}
}
