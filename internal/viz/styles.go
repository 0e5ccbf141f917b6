package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorRed   = "9"
	colorBlue  = "12"
	colorWhite = "255"
	colorDim   = "242"
)

var dim = lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim))

type legendEntry struct {
	color string
	label string
}

func legend(entries ...legendEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(e.color)).Render("──") + " " + e.label
	}
	return dim.Render("legend: ") + strings.Join(parts, "   ")
}
