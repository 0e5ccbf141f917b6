// Package tui provides the interactive terminal interface: an action
// menu, a parameter editor, and static result views for each analysis.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/walklab/internal/config"
	"github.com/san-kum/walklab/internal/stats"
	"github.com/san-kum/walklab/internal/trial"
	"github.com/san-kum/walklab/internal/viz"
	"github.com/san-kum/walklab/internal/walk"
)

const (
	stateMenu = iota
	stateConfig
	stateResult
)

const (
	actionWalk    = "single walk"
	actionHist    = "histogram vs clt"
	actionScaling = "moments vs n"
)

var actionInfo = map[string]string{
	actionWalk:    "one realization, final position only",
	actionHist:    "final position density against the normal curve",
	actionScaling: "moments across N with diffusion fit",
}

var (
	header    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	subtle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	cursorSty = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	activeSty = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	infoSty   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	idleSty   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	keySty    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	errSty    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type model struct {
	state, cursor int
	actions       []string
	selected      string
	params        map[string]float64
	paramNames    []string
	paramCursor   int
	editing       bool
	editBuf       string
	result        string
	err           error
	cfg           *config.Config
	walker        *walk.Walker
	agg           *trial.Aggregator
}

func NewApp(cfg *config.Config, seed int64) *model {
	w := walk.New(seed)
	agg := trial.NewAggregator(w)
	// The pb bar would fight bubbletea for the screen.
	agg.ShowProgress(false)
	return &model{
		state:   stateMenu,
		actions: []string{actionWalk, actionHist, actionScaling},
		params: map[string]float64{
			"steps": float64(cfg.Steps),
			"runs":  float64(cfg.Runs),
			"bins":  float64(cfg.Bins),
		},
		paramNames: []string{"steps"},
		cfg:        cfg,
		walker:     w,
		agg:        agg,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateResult:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "escape", "enter":
			m.state, m.result, m.err = stateMenu, "", nil
		}
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.actions)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.actions[m.cursor]
		m.state, m.paramCursor = stateConfig, 0
		m.setParamsForAction()
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.params[m.paramNames[m.paramCursor]] = val
			m.editing, m.editBuf = false, ""
		case "escape":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if c >= '0' && c <= '9' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "escape":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter":
		m.editing, m.editBuf = true, fmt.Sprintf("%.0f", m.params[m.paramNames[m.paramCursor]])
	case "left", "h":
		m.adjustParam(-10)
	case "right", "l":
		m.adjustParam(10)
	case "s":
		m.run()
		m.state = stateResult
	}
	return m, nil
}

func (m *model) adjustParam(delta float64) {
	name := m.paramNames[m.paramCursor]
	v := m.params[name] + delta
	if v < 1 {
		v = 1
	}
	m.params[name] = v
}

func (m *model) setParamsForAction() {
	switch m.selected {
	case actionWalk:
		m.paramNames = []string{"steps"}
	case actionHist:
		m.paramNames = []string{"steps", "runs", "bins"}
	case actionScaling:
		m.paramNames = []string{"runs"}
	}
}

// run executes the selected analysis synchronously and stores the
// rendered result. The views are static; nothing animates.
func (m *model) run() {
	steps := int(m.params["steps"])
	runs := int(m.params["runs"])
	bins := int(m.params["bins"])

	switch m.selected {
	case actionWalk:
		pos, err := m.walker.Final(steps)
		if err != nil {
			m.err = err
			return
		}
		m.result = fmt.Sprintf("N = %d\nfinal position: %d", steps, pos)

	case actionHist:
		finals, err := m.agg.FinalPositions(steps, runs)
		if err != nil {
			m.err = err
			return
		}
		h, err := stats.NewHistogram(finals, steps, bins)
		if err != nil {
			m.err = err
			return
		}
		m.result = viz.HistogramPlot(h, 70, 12) + "\n\n" + stats.RenderHistogramSummary(h)

	case actionScaling:
		series, err := stats.AnalyzeScaling(m.agg.FinalPositions, m.cfg.NValues, runs)
		if err != nil {
			m.err = err
			return
		}
		var rows strings.Builder
		for i, n := range series.N {
			rows.WriteString(fmt.Sprintf("N=%6d  ⟨x⟩=%10.4f  ⟨x²⟩=%12.4f\n", n, series.Mean[i], series.MeanSquare[i]))
		}
		m.result = rows.String() + "\n" + stats.RenderFitSummary(series) + "\n" +
			viz.ScatterFit(series.N, series.MeanSquare, series.Fit, 70, 14)
	}
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateResult:
		return m.viewResult()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + header.Render("WALKLAB") + "\n    " + subtle.Render("1d random walk laboratory") + "\n    " + subtle.Render("─────────────────────────") + "\n\n")
	for i, name := range m.actions {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", cursorSty.Render("▸"), activeSty.Render(fmt.Sprintf("%-18s", name)), infoSty.Render(actionInfo[name])))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", idleSty.Render(fmt.Sprintf("%-18s", name)), idleSty.Render(actionInfo[name])))
		}
	}
	b.WriteString("\n    " + keySty.Render("j/k") + idleSty.Render(" navigate  ") + keySty.Render("enter") + idleSty.Render(" select  ") + keySty.Render("q") + idleSty.Render(" quit") + "\n")
	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder
	b.WriteString("\n\n    " + header.Render(strings.ToUpper(m.selected)) + "\n    " + subtle.Render(actionInfo[m.selected]) + "\n    " + subtle.Render("─────────────────────────") + "\n\n")
	for i, name := range m.paramNames {
		valStr := fmt.Sprintf("%8.0f", m.params[name])
		if m.editing && i == m.paramCursor {
			valStr = fmt.Sprintf("%8s", m.editBuf+"_")
		}
		if i == m.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", cursorSty.Render("▸"), activeSty.Render(fmt.Sprintf("%-8s", name)), infoSty.Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n", idleSty.Render(fmt.Sprintf("%-8s", name)), idleSty.Render(valStr)))
		}
	}
	if m.selected == actionScaling {
		b.WriteString("\n    " + subtle.Render(fmt.Sprintf("N values: %v (set via config file)", m.cfg.NValues)) + "\n")
	}
	b.WriteString("\n    " + keySty.Render("j/k") + idleSty.Render(" select  ") + keySty.Render("h/l") + idleSty.Render(" adjust  ") + keySty.Render("enter") + idleSty.Render(" edit  ") + keySty.Render("s") + idleSty.Render(" start  ") + keySty.Render("esc") + idleSty.Render(" back") + "\n")
	return b.String()
}

func (m model) viewResult() string {
	var b strings.Builder
	b.WriteString("\n  " + header.Render(strings.ToUpper(m.selected)) + "\n\n")
	if m.err != nil {
		b.WriteString("  " + errSty.Render("error: "+m.err.Error()) + "\n")
	} else {
		b.WriteString(m.result + "\n")
	}
	b.WriteString("\n  " + keySty.Render("esc") + idleSty.Render(" back  ") + keySty.Render("q") + idleSty.Render(" quit") + "\n")
	return b.String()
}

// RunInteractive starts the TUI over the given configuration.
func RunInteractive(cfg *config.Config, seed int64) error {
	_, err := tea.NewProgram(NewApp(cfg, seed), tea.WithAltScreen()).Run()
	return err
}
