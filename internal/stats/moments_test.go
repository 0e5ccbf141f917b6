package stats

import (
	"fmt"
	"math"
	"testing"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		finals     []float64
		mean       float64
		meanSquare float64
	}{
		{"balanced", []float64{1, -1, 1, -1}, 0, 1},
		{"skewed", []float64{3, -1}, 1, 5},
		{"single", []float64{-4}, -4, 16},
		{"empty", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Compute(tt.finals)
			if math.Abs(m.Mean-tt.mean) > 1e-12 {
				t.Errorf("mean = %v, want %v", m.Mean, tt.mean)
			}
			if math.Abs(m.MeanSquare-tt.meanSquare) > 1e-12 {
				t.Errorf("mean square = %v, want %v", m.MeanSquare, tt.meanSquare)
			}
		})
	}
}

func TestFitScalingExactLine(t *testing.T) {
	ns := []float64{100, 300, 600, 1000}
	ys := make([]float64, len(ns))
	for i, n := range ns {
		ys[i] = 2 * n
	}

	fit, err := FitScaling(ns, ys)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	if math.Abs(fit.Slope-2) > 1e-9 {
		t.Errorf("slope = %v, want 2", fit.Slope)
	}
	if math.Abs(fit.Intercept) > 1e-9 {
		t.Errorf("intercept = %v, want 0", fit.Intercept)
	}
	if math.Abs(fit.Diffusion-1) > 1e-9 {
		t.Errorf("diffusion = %v, want 1", fit.Diffusion)
	}
}

func TestFitScalingInvalid(t *testing.T) {
	if _, err := FitScaling([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected error for mismatched series")
	}
	if _, err := FitScaling([]float64{1}, []float64{1}); err == nil {
		t.Error("expected error for a single point")
	}
}

func TestAnalyzeScaling(t *testing.T) {
	// Sampler with <x^2> exactly N: two finals at ±sqrt(N).
	sample := func(n, runs int) ([]float64, error) {
		r := math.Sqrt(float64(n))
		return []float64{r, -r}, nil
	}

	s, err := AnalyzeScaling(sample, []int{100, 400, 900}, 2)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	for i, n := range s.N {
		if math.Abs(s.Mean[i]) > 1e-12 {
			t.Errorf("N=%d: mean = %v, want 0", n, s.Mean[i])
		}
		if math.Abs(s.MeanSquare[i]-float64(n)) > 1e-9 {
			t.Errorf("N=%d: mean square = %v, want %d", n, s.MeanSquare[i], n)
		}
	}
	if math.Abs(s.Fit.Slope-1) > 1e-9 {
		t.Errorf("slope = %v, want 1", s.Fit.Slope)
	}
	if math.Abs(s.Fit.Diffusion-0.5) > 1e-9 {
		t.Errorf("diffusion = %v, want 0.5", s.Fit.Diffusion)
	}
}

func TestAnalyzeScalingErrors(t *testing.T) {
	failing := func(n, runs int) ([]float64, error) {
		return nil, fmt.Errorf("sampler down")
	}

	if _, err := AnalyzeScaling(failing, []int{10, 20}, 5); err == nil {
		t.Error("expected sampler error to propagate")
	}
	ok := func(n, runs int) ([]float64, error) { return []float64{0}, nil }
	if _, err := AnalyzeScaling(ok, nil, 5); err == nil {
		t.Error("expected error for empty step list")
	}
}
