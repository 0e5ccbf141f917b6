package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Histogram is a normalized density histogram of final positions with
// the CLT-predicted normal density evaluated at the bin centers. The
// density integrates to 1 over the bin range.
type Histogram struct {
	Steps   int
	Samples int
	Edges   []float64
	Centers []float64
	Density []float64
	Theory  []float64
}

// NewHistogram bins the final positions into equal-width bins and
// evaluates the normal density with mean 0 and sigma sqrt(steps)
// alongside (step length 1).
func NewHistogram(finals []float64, steps, bins int) (*Histogram, error) {
	if len(finals) == 0 {
		return nil, fmt.Errorf("no final positions to bin")
	}
	if steps < 1 {
		return nil, fmt.Errorf("steps must be positive, got %d", steps)
	}
	if bins < 1 {
		return nil, fmt.Errorf("bins must be positive, got %d", bins)
	}

	sorted := make([]float64, len(finals))
	copy(sorted, finals)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		// Degenerate spread; widen so the bins have width.
		lo, hi = lo-1, hi+1
	}

	edges := floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram requires max(x) < top divider.
	edges[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, edges, sorted, nil)

	norm := distuv.Normal{Mu: 0, Sigma: math.Sqrt(float64(steps))}

	h := &Histogram{
		Steps:   steps,
		Samples: len(finals),
		Edges:   edges,
		Centers: make([]float64, bins),
		Density: make([]float64, bins),
		Theory:  make([]float64, bins),
	}
	total := float64(len(finals))
	for i := 0; i < bins; i++ {
		width := edges[i+1] - edges[i]
		c := (edges[i] + edges[i+1]) / 2
		h.Centers[i] = c
		h.Density[i] = counts[i] / (total * width)
		h.Theory[i] = norm.Prob(c)
	}
	return h, nil
}

// Sigma returns the CLT standard deviation sqrt(N).
func (h *Histogram) Sigma() float64 {
	return math.Sqrt(float64(h.Steps))
}

// Integral returns the area under the empirical density over the bin
// range. Close to 1 up to floating point error.
func (h *Histogram) Integral() float64 {
	total := 0.0
	for i, d := range h.Density {
		total += d * (h.Edges[i+1] - h.Edges[i])
	}
	return total
}
