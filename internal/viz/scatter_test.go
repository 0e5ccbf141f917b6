package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/walklab/internal/stats"
)

func TestScatterFitFrame(t *testing.T) {
	ns := []int{100, 300, 600, 1000}
	ys := []float64{98, 310, 590, 1005}
	fit := stats.ScalingFit{Slope: 1.0, Intercept: 2.0, Diffusion: 0.5}

	out := ScatterFit(ns, ys, fit, 60, 15)
	if out == "" {
		t.Fatal("empty scatter plot")
	}
	for _, want := range []string{"┌", "┘", "●", "·", "N (steps)"} {
		if !strings.Contains(out, want) {
			t.Errorf("scatter output missing %q", want)
		}
	}
	if !strings.Contains(out, "100") || !strings.Contains(out, "1000") {
		t.Error("scatter output missing axis bounds")
	}
}

func TestScatterFitDegenerate(t *testing.T) {
	// Single point and flat fit must not divide by zero.
	out := ScatterFit([]int{50}, []float64{50}, stats.ScalingFit{}, 40, 10)
	if out == "" {
		t.Fatal("empty scatter plot for single point")
	}

	if got := ScatterFit(nil, nil, stats.ScalingFit{}, 40, 10); got != "" {
		t.Errorf("expected empty output for no points, got %q", got)
	}
	if got := ScatterFit([]int{1, 2}, []float64{1}, stats.ScalingFit{}, 40, 10); got != "" {
		t.Error("expected empty output for mismatched series")
	}
}

func TestHistogramPlot(t *testing.T) {
	finals := []float64{-4, -2, -2, 0, 0, 0, 0, 2, 2, 4}
	h, err := stats.NewHistogram(finals, 16, 5)
	if err != nil {
		t.Fatalf("histogram failed: %v", err)
	}

	out := HistogramPlot(h, 50, 10)
	if out == "" {
		t.Fatal("empty histogram plot")
	}
	if !strings.Contains(out, "N=16") || !strings.Contains(out, "runs=10") {
		t.Error("caption missing walk parameters")
	}
	if !strings.Contains(out, "empirical density") {
		t.Error("legend missing empirical series")
	}
}
