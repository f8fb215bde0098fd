package las

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/petrolith/wellmerge/internal/merge"
)

func testRecord(t *testing.T) *merge.WellRecord {
	t.Helper()
	rec := merge.NewWellRecord("TEST WELL")
	gr, err := merge.NewCurveFromSamples("GR", "GAPI", 1000, 0.5, []float64{55, math.NaN(), 80})
	if err != nil {
		t.Fatal(err)
	}
	rhob, err := merge.NewCurveFromSamples("RHOB", "K/M3", 1000.5, 0.5, []float64{2500, 2510})
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []*merge.Curve{gr, rhob} {
		if err := rec.AddCurve(c); err != nil {
			t.Fatal(err)
		}
	}
	return rec
}

func TestWriteHeaderSections(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, WriteOptions{}).Write(testRecord(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"~Version Information",
		"WRAP.",
		"~Well Information",
		"STRT.M",
		"STOP.M",
		"STEP.M",
		"NULL.",
		"-999.25",
		"TEST WELL",
		"~Curve Information",
		"~ASCII",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Curve columns keep insertion order after the index curve.
	ci := strings.Index(out, "~Curve Information")
	ascii := strings.Index(out, "~ASCII")
	section := out[ci:ascii]
	if !(strings.Index(section, "DEPT.") < strings.Index(section, "GR.") &&
		strings.Index(section, "GR.") < strings.Index(section, "RHOB.")) {
		t.Fatalf("curve section out of order:\n%s", section)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	rec := testRecord(t)

	var buf bytes.Buffer
	if err := NewWriter(&buf, WriteOptions{}).Write(rec); err != nil {
		t.Fatalf("Write: %v", err)
	}

	back, err := NewReader(bytes.NewReader(buf.Bytes())).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if back.Name != "TEST WELL" {
		t.Fatalf("Name = %q", back.Name)
	}

	// Both curves come back on the union grid [1000,1001.5] at step 0.5, with
	// nulls where the original curve had no coverage.
	gr, ok := back.Curve("GR")
	if !ok {
		t.Fatal("round-tripped record lacks GR")
	}
	wantGR := []float64{55, math.NaN(), 80, math.NaN()}
	if gr.NumSamples() != len(wantGR) {
		t.Fatalf("GR samples = %d, want %d", gr.NumSamples(), len(wantGR))
	}
	for i, want := range wantGR {
		got := gr.Value(i)
		if math.IsNaN(want) {
			if !math.IsNaN(got) {
				t.Errorf("GR[%d] = %v, want NaN", i, got)
			}
			continue
		}
		if math.Abs(got-want) > 1e-4 {
			t.Errorf("GR[%d] = %v, want %v", i, got, want)
		}
	}

	rhob, ok := back.Curve("RHOB")
	if !ok {
		t.Fatal("round-tripped record lacks RHOB")
	}
	wantRHOB := []float64{math.NaN(), 2500, 2510, math.NaN()}
	for i, want := range wantRHOB {
		got := rhob.Value(i)
		if math.IsNaN(want) {
			if !math.IsNaN(got) {
				t.Errorf("RHOB[%d] = %v, want NaN", i, got)
			}
			continue
		}
		if math.Abs(got-want) > 1e-4 {
			t.Errorf("RHOB[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestWriteCustomNull(t *testing.T) {
	rec := testRecord(t)

	var buf bytes.Buffer
	if err := NewWriter(&buf, WriteOptions{Null: -9999}).Write(rec); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "-999.2500") {
		t.Fatal("default null leaked into output with custom sentinel configured")
	}
	if !strings.Contains(out, "-9999.0000") {
		t.Fatal("custom null sentinel missing from output")
	}
}

func TestWriteEmptyRecord(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter(&buf, WriteOptions{}).Write(merge.NewWellRecord("EMPTY"))
	if err == nil {
		t.Fatal("expected error for record with no curves")
	}
}
