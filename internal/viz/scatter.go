package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/walklab/internal/stats"
)

// ScatterFit renders second-moment samples against the step count as a
// framed scatter with the fitted line overlaid.
func ScatterFit(ns []int, ys []float64, fit stats.ScalingFit, width, height int) string {
	if len(ns) == 0 || len(ns) != len(ys) {
		return ""
	}
	if width < 2 {
		width = 70
	}
	if height < 2 {
		height = 20
	}

	xMin, xMax := float64(ns[0]), float64(ns[0])
	for _, n := range ns {
		x := float64(n)
		if x < xMin {
			xMin = x
		}
		if x > xMax {
			xMax = x
		}
	}
	yMin, yMax := ys[0], ys[0]
	for _, y := range ys {
		if y < yMin {
			yMin = y
		}
		if y > yMax {
			yMax = y
		}
	}
	// Keep the fit line endpoints inside the frame.
	for _, x := range []float64{xMin, xMax} {
		v := fit.Slope*x + fit.Intercept
		if v < yMin {
			yMin = v
		}
		if v > yMax {
			yMax = v
		}
	}

	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	// Fit line first so sample points draw over it.
	for px := 0; px < width; px++ {
		x := xMin + xRange*float64(px)/float64(width-1)
		v := fit.Slope*x + fit.Intercept
		py := int(float64(height-1) * (v - yMin) / yRange)
		py = height - 1 - py
		if py >= 0 && py < height {
			canvas[py][px] = '·'
		}
	}
	for i := range ns {
		px := int(float64(width-1) * (float64(ns[i]) - xMin) / xRange)
		py := int(float64(height-1) * (ys[i] - yMin) / yRange)
		py = height - 1 - py
		if px >= 0 && px < width && py >= 0 && py < height {
			canvas[py][px] = '●'
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %9.1f ┌%s┐\n", yMax, strings.Repeat("─", width)))
	for i := range canvas {
		if i == height/2 {
			b.WriteString(fmt.Sprintf("  %9.1f │", (yMax+yMin)/2))
		} else {
			b.WriteString("            │")
		}
		b.WriteString(string(canvas[i]))
		b.WriteString("│\n")
	}
	b.WriteString(fmt.Sprintf("  %9.1f └%s┘\n", yMin, strings.Repeat("─", width)))

	lo := fmt.Sprintf("%.0f", xMin)
	hi := fmt.Sprintf("%.0f", xMax)
	pad := width - len(lo) - len(hi)
	if pad < 1 {
		pad = 1
	}
	b.WriteString("            " + lo + strings.Repeat(" ", pad) + hi + "\n")
	b.WriteString("            " + dim.Render("N (steps)") + "\n\n")
	b.WriteString(legend(
		legendEntry{colorWhite, "● ⟨x²⟩ sample"},
		legendEntry{colorDim, fmt.Sprintf("· fit %.3f·N %+.3f", fit.Slope, fit.Intercept)},
	))
	return b.String()
}
