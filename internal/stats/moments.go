package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Moments holds the sample first and second moments of a trial set.
type Moments struct {
	Mean       float64
	MeanSquare float64
}

// Compute returns the sample mean and sample mean of squares of the
// final positions.
func Compute(finals []float64) Moments {
	if len(finals) == 0 {
		return Moments{}
	}
	sq := make([]float64, len(finals))
	for i, f := range finals {
		sq[i] = f * f
	}
	return Moments{
		Mean:       stat.Mean(finals, nil),
		MeanSquare: stat.Mean(sq, nil),
	}
}

// ScalingFit is the ordinary least squares fit of the second moment
// against the step count. The second moment of an unbiased unit-step
// walk scales as <x^2> = 2*D*N, so Diffusion is half the slope.
type ScalingFit struct {
	Slope     float64
	Intercept float64
	Diffusion float64
}

// ScalingSeries collects per-N moments across a range of step counts
// together with the linear fit over the second moment.
type ScalingSeries struct {
	N          []int
	Mean       []float64
	MeanSquare []float64
	Runs       int
	Fit        ScalingFit
}

// Sampler produces the final positions of runs independent n-step walks.
type Sampler func(n, runs int) ([]float64, error)

// AnalyzeScaling computes first and second moments for every step count
// in ns, each across the given number of runs, and fits the second
// moment against N.
func AnalyzeScaling(sample Sampler, ns []int, runs int) (*ScalingSeries, error) {
	if len(ns) == 0 {
		return nil, fmt.Errorf("no step counts given")
	}

	s := &ScalingSeries{
		N:          ns,
		Mean:       make([]float64, len(ns)),
		MeanSquare: make([]float64, len(ns)),
		Runs:       runs,
	}

	xs := make([]float64, len(ns))
	for i, n := range ns {
		finals, err := sample(n, runs)
		if err != nil {
			return nil, err
		}
		m := Compute(finals)
		s.Mean[i] = m.Mean
		s.MeanSquare[i] = m.MeanSquare
		xs[i] = float64(n)
	}

	fit, err := FitScaling(xs, s.MeanSquare)
	if err != nil {
		return nil, err
	}
	s.Fit = fit
	return s, nil
}

// FitScaling performs an ordinary least squares fit of ys against ns.
// The intercept is fit rather than forced through the origin; for an
// unbiased walk it lands near zero.
func FitScaling(ns, ys []float64) (ScalingFit, error) {
	if len(ns) != len(ys) {
		return ScalingFit{}, fmt.Errorf("mismatched series: %d vs %d", len(ns), len(ys))
	}
	if len(ns) < 2 {
		return ScalingFit{}, fmt.Errorf("need at least 2 points to fit, got %d", len(ns))
	}

	alpha, beta := stat.LinearRegression(ns, ys, nil, false)
	return ScalingFit{
		Slope:     beta,
		Intercept: alpha,
		Diffusion: beta / 2,
	}, nil
}
