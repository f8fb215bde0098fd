package merge

import (
	"errors"
	"math"
	"testing"
)

func TestResolveGrid(t *testing.T) {
	tests := []struct {
		name      string
		curves    []*Curve
		wantStart float64
		wantStop  float64
		wantStep  float64
	}{
		{
			name: "single curve passes through",
			curves: []*Curve{
				mustCurve(t, "GR", 1000, 0.5, []float64{1, 2, 3}),
			},
			wantStart: 1000, wantStop: 1001, wantStep: 0.5,
		},
		{
			name: "union of overlapping ranges",
			curves: []*Curve{
				mustCurve(t, "GR", 1000, 0.5, make([]float64, 301)), // 1000..1150
				mustCurve(t, "GR", 1100, 0.5, make([]float64, 201)), // 1100..1200
			},
			wantStart: 1000, wantStop: 1200, wantStep: 0.5,
		},
		{
			name: "finest step wins",
			curves: []*Curve{
				mustCurve(t, "GR", 1000, 1.0, make([]float64, 11)),  // 1000..1010
				mustCurve(t, "GR", 1005, 0.25, make([]float64, 41)), // 1005..1015
			},
			wantStart: 1000, wantStop: 1015, wantStep: 0.25,
		},
		{
			name: "disjoint ranges still span the union",
			curves: []*Curve{
				mustCurve(t, "GR", 1000, 0.5, make([]float64, 3)),
				mustCurve(t, "GR", 2000, 0.5, make([]float64, 3)),
			},
			wantStart: 1000, wantStop: 2001, wantStep: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ResolveGrid(tt.curves)
			if err != nil {
				t.Fatalf("ResolveGrid: %v", err)
			}
			if math.Abs(g.Start-tt.wantStart) > 1e-9 ||
				math.Abs(g.Stop-tt.wantStop) > 1e-9 ||
				math.Abs(g.Step-tt.wantStep) > 1e-9 {
				t.Fatalf("ResolveGrid = %+v, want start %v stop %v step %v",
					g, tt.wantStart, tt.wantStop, tt.wantStep)
			}

			// The resolved grid must contain every input range.
			for _, c := range tt.curves {
				if g.Start > c.Start+1e-9 || g.Stop < c.Stop-1e-9 {
					t.Fatalf("grid [%v,%v] does not contain curve range [%v,%v]",
						g.Start, g.Stop, c.Start, c.Stop)
				}
			}
		})
	}
}

func TestResolveGridEmptyInput(t *testing.T) {
	if _, err := ResolveGrid(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestGridPoints(t *testing.T) {
	g := Grid{Start: 1000, Stop: 1200, Step: 0.5}
	if got := g.NumPoints(); got != 401 {
		t.Fatalf("NumPoints = %d, want 401", got)
	}
	if got := g.Depth(400); math.Abs(got-1200) > 1e-9 {
		t.Fatalf("Depth(400) = %v, want 1200", got)
	}
}
