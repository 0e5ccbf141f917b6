package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang = language.English

// RenderFitSummary renders a boxed summary table for a scaling analysis.
func RenderFitSummary(s *ScalingSeries) string {
	p := message.NewPrinter(lang)
	keys := []string{"Step counts", "Runs per N", "Slope", "Intercept", "Diffusion D"}
	msg := map[string]string{
		"Step counts": p.Sprintf("%d", len(s.N)),
		"Runs per N":  p.Sprintf("%d", s.Runs),
		"Slope":       p.Sprintf("%.4f", s.Fit.Slope),
		"Intercept":   p.Sprintf("%.4f", s.Fit.Intercept),
		"Diffusion D": p.Sprintf("%.4f", s.Fit.Diffusion),
	}
	return renderTable("⟨x²⟩ vs N fit", keys, msg)
}

// RenderHistogramSummary renders a boxed summary table for a histogram.
func RenderHistogramSummary(h *Histogram) string {
	p := message.NewPrinter(lang)
	keys := []string{"Steps N", "Samples", "Bins", "CLT sigma", "Density integral"}
	msg := map[string]string{
		"Steps N":          p.Sprintf("%d", h.Steps),
		"Samples":          p.Sprintf("%d", h.Samples),
		"Bins":             p.Sprintf("%d", len(h.Density)),
		"CLT sigma":        p.Sprintf("%.3f", h.Sigma()),
		"Density integral": p.Sprintf("%.4f", h.Integral()),
	}
	return renderTable("Final positions vs CLT", keys, msg)
}

func renderTable(title string, keys []string, msg map[string]string) string {
	maxKeyLen := 0
	maxValLen := 0
	for k, m := range msg {
		if w := runewidth.StringWidth(k); w > maxKeyLen {
			maxKeyLen = w
		}
		if w := runewidth.StringWidth(m); w > maxValLen {
			maxValLen = w
		}
	}
	maxKeyLen += 2
	maxValLen += 2

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", maxKeyLen+1+maxValLen) + "+\n"

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)
	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	var b strings.Builder
	b.WriteString(top)
	b.WriteString("|" + blank(left) + title + blank(right) + "|\n")
	b.WriteString(divider)
	for _, k := range keys {
		b.WriteString("| " + k + blank(maxKeyLen-2-runewidth.StringWidth(k)) +
			" | " + msg[k] + blank(maxValLen-2-runewidth.StringWidth(msg[k])) + " |\n")
	}
	b.WriteString(divider)
	return b.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
