// Package trial aggregates independent random walk realizations into
// trial sets for statistical analysis.
package trial

import (
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"
	"github.com/san-kum/walklab/internal/walk"
)

// Aggregator repeats independent walks for a fixed step count and
// collects the final positions. Trials run sequentially; each one draws
// from its own generator via the walker.
type Aggregator struct {
	walker   *walk.Walker
	progress bool
}

func NewAggregator(w *walk.Walker) *Aggregator {
	return &Aggregator{walker: w}
}

// ShowProgress toggles the terminal progress bar for trial loops.
func (a *Aggregator) ShowProgress(on bool) { a.progress = on }

// FinalPositions runs the requested number of independent n-step walks
// and returns their final positions as floats, ready for the stats layer.
func (a *Aggregator) FinalPositions(n, runs int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("steps must be positive, got %d", n)
	}
	if runs < 1 {
		return nil, fmt.Errorf("runs must be positive, got %d", runs)
	}

	bar := pb.StartNew(runs)
	if !a.progress {
		bar.SetWriter(io.Discard)
	}

	finals := make([]float64, runs)
	for i := 0; i < runs; i++ {
		pos, err := a.walker.Final(n)
		if err != nil {
			bar.Finish()
			return nil, err
		}
		finals[i] = float64(pos)
		bar.Increment()
	}
	bar.Finish()

	return finals, nil
}
