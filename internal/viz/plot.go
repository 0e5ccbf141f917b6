package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/walklab/internal/stats"
)

// HistogramPlot renders the empirical density and the CLT-predicted
// normal curve as two series over the histogram's bins.
func HistogramPlot(h *stats.Histogram, width, height int) string {
	if width < 2 {
		width = 80
	}
	if height < 2 {
		height = 15
	}

	caption := fmt.Sprintf("density of final positions, N=%d, runs=%d, x in [%.0f, %.0f]",
		h.Steps, h.Samples, h.Edges[0], h.Edges[len(h.Edges)-1])

	graph := asciigraph.PlotMany(
		[][]float64{h.Density, h.Theory},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
	)

	return graph + "\n\n" + legend(
		legendEntry{colorRed, "empirical density"},
		legendEntry{colorBlue, "normal N(0, √N)"},
	)
}
