// Package menu implements the interactive text menu over standard
// input/output: single walk, histogram vs CLT, moments vs N, exit.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/walklab/internal/config"
	"github.com/san-kum/walklab/internal/stats"
	"github.com/san-kum/walklab/internal/trial"
	"github.com/san-kum/walklab/internal/viz"
	"github.com/san-kum/walklab/internal/walk"
)

const (
	plotWidth     = 70
	histHeight    = 15
	scatterHeight = 18
)

type Menu struct {
	in     *bufio.Scanner
	out    io.Writer
	walker *walk.Walker
	agg    *trial.Aggregator
	cfg    *config.Config
}

func New(in io.Reader, out io.Writer, cfg *config.Config, seed int64) *Menu {
	w := walk.New(seed)
	agg := trial.NewAggregator(w)
	agg.ShowProgress(cfg.ShowProgress)
	return &Menu{
		in:     bufio.NewScanner(in),
		out:    out,
		walker: w,
		agg:    agg,
		cfg:    cfg,
	}
}

// Run loops over the menu until exit is chosen or input ends. Invalid
// options print a message and re-prompt; a malformed number aborts the
// current action with a printed error and returns to the menu.
func (m *Menu) Run() error {
	for {
		fmt.Fprintln(m.out, "1D random walk simulation")
		fmt.Fprintln(m.out, "1) single walk")
		fmt.Fprintln(m.out, "2) histogram of final positions vs CLT")
		fmt.Fprintln(m.out, "3) moments ⟨x⟩ and ⟨x²⟩ vs N")
		fmt.Fprintln(m.out, "0) exit")

		choice, ok := m.prompt("select an option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			m.singleWalk()
		case "2":
			m.histogram()
		case "3":
			m.scaling()
		case "0":
			return nil
		default:
			fmt.Fprintln(m.out, "invalid option")
		}
		fmt.Fprintln(m.out)
	}
}

func (m *Menu) prompt(msg string) (string, bool) {
	fmt.Fprint(m.out, msg)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptInt(msg string) (int, error) {
	line, ok := m.prompt(msg)
	if !ok {
		return 0, fmt.Errorf("input closed")
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", line)
	}
	return v, nil
}

func (m *Menu) promptIntList(msg string) ([]int, error) {
	line, ok := m.prompt(msg)
	if !ok {
		return nil, fmt.Errorf("input closed")
	}
	return ParseNList(line)
}

func (m *Menu) singleWalk() {
	n, err := m.promptInt("number of steps N: ")
	if err != nil {
		fmt.Fprintln(m.out, "error:", err)
		return
	}
	pos, err := m.walker.Final(n)
	if err != nil {
		fmt.Fprintln(m.out, "error:", err)
		return
	}
	fmt.Fprintf(m.out, "final position: %d\n", pos)
}

func (m *Menu) histogram() {
	n, err := m.promptInt("number of steps N: ")
	if err != nil {
		fmt.Fprintln(m.out, "error:", err)
		return
	}
	runs, err := m.promptInt("number of runs: ")
	if err != nil {
		fmt.Fprintln(m.out, "error:", err)
		return
	}

	finals, err := m.agg.FinalPositions(n, runs)
	if err != nil {
		fmt.Fprintln(m.out, "error:", err)
		return
	}
	h, err := stats.NewHistogram(finals, n, m.cfg.Bins)
	if err != nil {
		fmt.Fprintln(m.out, "error:", err)
		return
	}

	fmt.Fprintln(m.out, viz.HistogramPlot(h, plotWidth, histHeight))
	fmt.Fprintln(m.out)
	fmt.Fprint(m.out, stats.RenderHistogramSummary(h))
}

func (m *Menu) scaling() {
	ns, err := m.promptIntList("comma-separated N values (e.g. 100,300,600,1000): ")
	if err != nil {
		fmt.Fprintln(m.out, "error:", err)
		return
	}
	runs, err := m.promptInt("runs per N: ")
	if err != nil {
		fmt.Fprintln(m.out, "error:", err)
		return
	}

	series, err := stats.AnalyzeScaling(m.agg.FinalPositions, ns, runs)
	if err != nil {
		fmt.Fprintln(m.out, "error:", err)
		return
	}

	fmt.Fprintln(m.out, "results:")
	for i, n := range series.N {
		fmt.Fprintf(m.out, "N=%6d  ⟨x⟩=%10.4f  ⟨x²⟩=%12.4f\n", n, series.Mean[i], series.MeanSquare[i])
	}
	fmt.Fprintln(m.out)
	fmt.Fprint(m.out, stats.RenderFitSummary(series))
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, viz.ScatterFit(series.N, series.MeanSquare, series.Fit, plotWidth, scatterHeight))
}

// ParseNList parses a comma-separated list of step counts.
func ParseNList(line string) ([]int, error) {
	parts := strings.Split(line, ",")
	ns := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", p)
		}
		ns = append(ns, v)
	}
	if len(ns) == 0 {
		return nil, fmt.Errorf("empty N list")
	}
	return ns, nil
}
