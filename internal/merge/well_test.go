package merge

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func recordWith(t *testing.T, name, source string, curves ...*Curve) *WellRecord {
	t.Helper()
	r := NewWellRecord(name)
	r.Source = source
	for _, c := range curves {
		if err := r.AddCurve(c); err != nil {
			t.Fatalf("AddCurve(%q): %v", c.Mnemonic, err)
		}
	}
	return r
}

func TestMergeWellsInsufficientInput(t *testing.T) {
	single := recordWith(t, "W-1", "w1.las",
		mustCurve(t, "GR", 1000, 0.5, []float64{1, 2, 3}))

	for _, records := range [][]*WellRecord{nil, {single}} {
		if _, err := MergeWells(records, "merged"); !errors.Is(err, ErrInsufficientInput) {
			t.Fatalf("MergeWells(%d records): expected ErrInsufficientInput, got %v", len(records), err)
		}
	}
}

func TestMergeWellsIdempotence(t *testing.T) {
	// Merging a record with itself averages pairs of equal values, so the
	// result is numerically identical wherever the record has data.
	gr := mustCurve(t, "GR", 1000, 0.5, []float64{55, math.NaN(), 80})
	a := recordWith(t, "W-1", "stage1.las", gr)

	merged, err := MergeWells([]*WellRecord{a, a}, "W-1-merged")
	if err != nil {
		t.Fatalf("MergeWells: %v", err)
	}

	got, ok := merged.Curve("GR")
	if !ok {
		t.Fatal("merged record lacks GR")
	}
	for i := 0; i < gr.NumSamples(); i++ {
		want := gr.Value(i)
		if math.IsNaN(want) {
			if !math.IsNaN(got.Value(i)) {
				t.Errorf("value[%d] = %v, want NaN", i, got.Value(i))
			}
			continue
		}
		if math.Abs(got.Value(i)-want) > 1e-9 {
			t.Errorf("value[%d] = %v, want %v", i, got.Value(i), want)
		}
	}
	// Both non-null points are contributed twice.
	if merged.Metadata.OverlapsProcessed != 2 {
		t.Fatalf("OverlapsProcessed = %d, want 2", merged.Metadata.OverlapsProcessed)
	}
}

func TestMergeWellsRangeUnion(t *testing.T) {
	a := recordWith(t, "W-1", "stage1.las",
		mustCurve(t, "GR", 1000, 0.5, filled(301, 50)),
		mustCurve(t, "RHOB", 1020, 0.5, filled(101, 2.5)))
	b := recordWith(t, "W-1", "stage2.las",
		mustCurve(t, "GR", 1100, 0.5, filled(201, 70)))

	merged, err := MergeWells([]*WellRecord{a, b}, "W-1-merged")
	if err != nil {
		t.Fatalf("MergeWells: %v", err)
	}

	gr, ok := merged.Curve("GR")
	if !ok {
		t.Fatal("merged record lacks GR")
	}
	if gr.Start > 1000+1e-9 || gr.Stop < 1200-1e-9 {
		t.Fatalf("GR range [%v,%v] does not cover union [1000,1200]", gr.Start, gr.Stop)
	}

	// A mnemonic present in only one record passes through on its own range.
	rhob, ok := merged.Curve("RHOB")
	if !ok {
		t.Fatal("merged record lacks RHOB")
	}
	if math.Abs(rhob.Start-1020) > 1e-9 || math.Abs(rhob.Stop-1070) > 1e-9 {
		t.Fatalf("RHOB range = [%v,%v], want [1020,1070]", rhob.Start, rhob.Stop)
	}
}

func TestMergeWellsDisjointMnemonics(t *testing.T) {
	// Stage 1 basic logs + stage 2 electrical logs: no shared mnemonics, so
	// the merge behaves as concatenation with zero overlaps.
	a := recordWith(t, "W-1", "basic.las",
		mustCurve(t, "GR", 1000, 0.5, filled(11, 60)),
		mustCurve(t, "SP", 1000, 0.5, filled(11, -30)))
	b := recordWith(t, "W-1", "electrical.las",
		mustCurve(t, "RT", 1000, 0.5, filled(11, 12)),
		mustCurve(t, "RES", 1000, 0.5, filled(11, 8)))

	merged, err := MergeWells([]*WellRecord{a, b}, "W-1-merged")
	if err != nil {
		t.Fatalf("MergeWells: %v", err)
	}

	wantMnemonics := []string{"GR", "SP", "RT", "RES"}
	if got := merged.Mnemonics(); !reflect.DeepEqual(got, wantMnemonics) {
		t.Fatalf("mnemonics = %v, want %v", got, wantMnemonics)
	}
	if merged.Metadata.OverlapsProcessed != 0 {
		t.Fatalf("OverlapsProcessed = %d, want 0", merged.Metadata.OverlapsProcessed)
	}
}

func TestMergeWellsProvenance(t *testing.T) {
	a := recordWith(t, "W-1", "stage1.las",
		mustCurve(t, "GR", 1000, 0.5, filled(3, 10)))
	b := recordWith(t, "W-1", "stage2.las",
		mustCurve(t, "GR", 1000, 0.5, filled(3, 20)))
	c := recordWith(t, "W-1", "",
		mustCurve(t, "GR", 1000, 0.5, filled(3, 30)))
	c.Name = "stage3"

	merged, err := MergeWells([]*WellRecord{a, b, c}, "W-1-merged")
	if err != nil {
		t.Fatalf("MergeWells: %v", err)
	}

	if merged.Name != "W-1-merged" {
		t.Fatalf("Name = %q, want %q", merged.Name, "W-1-merged")
	}
	// Input order preserved; a record without a source file falls back to its
	// well name.
	want := []string{"stage1.las", "stage2.las", "stage3"}
	if !reflect.DeepEqual(merged.Metadata.OriginalFiles, want) {
		t.Fatalf("OriginalFiles = %v, want %v", merged.Metadata.OriginalFiles, want)
	}

	gr, _ := merged.Curve("GR")
	for i := 0; i < gr.NumSamples(); i++ {
		if got := gr.Value(i); math.Abs(got-20) > 1e-9 {
			t.Errorf("value[%d] = %v, want 20", i, got)
		}
	}
	if merged.Metadata.OverlapsProcessed != 3 {
		t.Fatalf("OverlapsProcessed = %d, want 3", merged.Metadata.OverlapsProcessed)
	}
}

func TestMergeWellsDeterministicOrder(t *testing.T) {
	a := recordWith(t, "W-1", "a.las",
		mustCurve(t, "GR", 1000, 0.5, filled(3, 10)),
		mustCurve(t, "RHOB", 1000, 0.5, filled(3, 2.5)))
	b := recordWith(t, "W-1", "b.las",
		mustCurve(t, "NPHI", 1000, 0.5, filled(3, 0.2)),
		mustCurve(t, "GR", 1000, 0.5, filled(3, 20)))

	// Per-mnemonic merges run concurrently; output order must still follow
	// first appearance across inputs on every run.
	want := []string{"GR", "RHOB", "NPHI"}
	for i := 0; i < 20; i++ {
		merged, err := MergeWells([]*WellRecord{a, b}, "m")
		if err != nil {
			t.Fatalf("MergeWells: %v", err)
		}
		if got := merged.Mnemonics(); !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: mnemonics = %v, want %v", i, got, want)
		}
	}
}

func TestWellRecordDuplicateMnemonic(t *testing.T) {
	r := NewWellRecord("W-1")
	c := mustCurve(t, "GR", 1000, 0.5, filled(3, 1))
	if err := r.AddCurve(c); err != nil {
		t.Fatalf("AddCurve: %v", err)
	}
	if err := r.AddCurve(c); !errors.Is(err, ErrDuplicateMnemonic) {
		t.Fatalf("expected ErrDuplicateMnemonic, got %v", err)
	}
}
