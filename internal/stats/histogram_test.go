package stats

import (
	"math"
	"math/rand"
	"testing"
)

func TestHistogramDensityIntegral(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	finals := make([]float64, 5000)
	for i := range finals {
		// Rough walk stand-in: symmetric values with spread ~sqrt(100).
		finals[i] = math.Round(rng.NormFloat64() * 10)
	}

	h, err := NewHistogram(finals, 100, 50)
	if err != nil {
		t.Fatalf("histogram failed: %v", err)
	}

	if got := h.Integral(); math.Abs(got-1) > 1e-9 {
		t.Errorf("density integral = %v, want 1", got)
	}
	if len(h.Density) != 50 || len(h.Centers) != 50 || len(h.Theory) != 50 {
		t.Errorf("unexpected bin slice lengths: %d/%d/%d", len(h.Density), len(h.Centers), len(h.Theory))
	}
	if len(h.Edges) != 51 {
		t.Errorf("expected 51 edges, got %d", len(h.Edges))
	}
	for i, d := range h.Density {
		if d < 0 {
			t.Fatalf("bin %d: negative density %v", i, d)
		}
	}
}

func TestHistogramTheoryPeak(t *testing.T) {
	finals := []float64{-4, -2, -2, 0, 0, 0, 2, 2, 4}

	h, err := NewHistogram(finals, 16, 9)
	if err != nil {
		t.Fatalf("histogram failed: %v", err)
	}

	// Normal density at x=0 with sigma=4.
	want := 1 / (math.Sqrt(2*math.Pi) * 4)
	peak := 0.0
	for _, v := range h.Theory {
		if v > peak {
			peak = v
		}
	}
	if math.Abs(peak-want) > 0.01 {
		t.Errorf("theory peak = %v, want ~%v", peak, want)
	}
	if math.Abs(h.Sigma()-4) > 1e-12 {
		t.Errorf("sigma = %v, want 4", h.Sigma())
	}
}

func TestHistogramDegenerateSpread(t *testing.T) {
	finals := []float64{1, 1, 1, 1}

	h, err := NewHistogram(finals, 1, 10)
	if err != nil {
		t.Fatalf("histogram failed: %v", err)
	}
	if got := h.Integral(); math.Abs(got-1) > 1e-9 {
		t.Errorf("density integral = %v, want 1", got)
	}
}

func TestHistogramInvalid(t *testing.T) {
	tests := []struct {
		name   string
		finals []float64
		steps  int
		bins   int
	}{
		{"empty finals", nil, 10, 5},
		{"zero bins", []float64{1, -1}, 10, 0},
		{"zero steps", []float64{1, -1}, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewHistogram(tt.finals, tt.steps, tt.bins); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRenderSummaries(t *testing.T) {
	h, err := NewHistogram([]float64{-2, 0, 0, 2}, 4, 4)
	if err != nil {
		t.Fatalf("histogram failed: %v", err)
	}
	out := RenderHistogramSummary(h)
	if out == "" {
		t.Fatal("empty histogram summary")
	}

	s := &ScalingSeries{
		N:          []int{10, 20},
		Mean:       []float64{0, 0},
		MeanSquare: []float64{10, 20},
		Runs:       100,
		Fit:        ScalingFit{Slope: 1, Intercept: 0, Diffusion: 0.5},
	}
	out = RenderFitSummary(s)
	if out == "" {
		t.Fatal("empty fit summary")
	}
}
