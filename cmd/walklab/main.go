package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/san-kum/walklab/internal/config"
	"github.com/san-kum/walklab/internal/menu"
	"github.com/san-kum/walklab/internal/stats"
	"github.com/san-kum/walklab/internal/trial"
	"github.com/san-kum/walklab/internal/tui"
	"github.com/san-kum/walklab/internal/viz"
	"github.com/san-kum/walklab/internal/walk"
	"github.com/spf13/cobra"
)

var (
	steps      int
	runs       int
	bins       int
	seed       int64
	nValues    string
	configFile string
	preset     string
	noProgress bool
)

// main is the entry point for the walklab CLI; it registers commands and
// flags and launches the text menu when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "walklab",
		Short: "1d random walk laboratory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return menu.New(os.Stdin, os.Stdout, cfg, seed).Run()
		},
	}

	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable the trial progress bar")

	walkCmd := &cobra.Command{
		Use:   "walk",
		Short: "run a single walk and print the final position",
		RunE:  runWalk,
	}
	walkCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps N")

	histCmd := &cobra.Command{
		Use:   "hist",
		Short: "histogram of final positions against the normal curve",
		RunE:  runHist,
	}
	histCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps N")
	histCmd.Flags().IntVar(&runs, "runs", config.DefaultRuns, "number of runs")
	histCmd.Flags().IntVar(&bins, "bins", config.DefaultBins, "histogram bins")

	scalingCmd := &cobra.Command{
		Use:   "scaling",
		Short: "moments across N with diffusion fit",
		RunE:  runScaling,
	}
	scalingCmd.Flags().StringVar(&nValues, "n", "", "comma-separated N values")
	scalingCmd.Flags().IntVar(&runs, "runs", config.DefaultRuns, "runs per N")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.RunInteractive(cfg, seed)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s steps=%d runs=%d bins=%d n=%v\n",
					name, p.Steps, p.Runs, p.Bins, p.NValues)
			}
			return nil
		},
	}

	rootCmd.AddCommand(walkCmd, histCmd, scalingCmd, tuiCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges the preset, the config file, and the CLI flags,
// in increasing order of precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Steps = p.Steps
		cfg.Runs = p.Runs
		cfg.Bins = p.Bins
		cfg.NValues = append([]int(nil), p.NValues...)
		cfg.ShowProgress = p.ShowProgress
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
	}

	// CLI flags override both (Changed is false for flags the command
	// does not define).
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("runs") {
		cfg.Runs = runs
	}
	if cmd.Flags().Changed("bins") {
		cfg.Bins = bins
	}
	if noProgress {
		cfg.ShowProgress = false
	}

	return cfg, nil
}

func runWalk(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	w := walk.New(seed)
	pos, err := w.Final(cfg.Steps)
	if err != nil {
		return err
	}

	fmt.Printf("steps: %d\n", cfg.Steps)
	fmt.Printf("final position: %d\n", pos)
	return nil
}

func runHist(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	agg := trial.NewAggregator(walk.New(seed))
	agg.ShowProgress(cfg.ShowProgress)

	fmt.Printf("running %d walks of %d steps...\n", cfg.Runs, cfg.Steps)
	start := time.Now()

	finals, err := agg.FinalPositions(cfg.Steps, cfg.Runs)
	if err != nil {
		return err
	}

	h, err := stats.NewHistogram(finals, cfg.Steps, cfg.Bins)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))
	fmt.Println(viz.HistogramPlot(h, 70, 15))
	fmt.Println()
	fmt.Print(stats.RenderHistogramSummary(h))
	return nil
}

func runScaling(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ns := cfg.NValues
	if cmd.Flags().Changed("n") {
		ns, err = menu.ParseNList(nValues)
		if err != nil {
			return err
		}
	}

	agg := trial.NewAggregator(walk.New(seed))
	agg.ShowProgress(cfg.ShowProgress)

	fmt.Printf("running %d walks for each of %v...\n", cfg.Runs, ns)
	start := time.Now()

	series, err := stats.AnalyzeScaling(agg.FinalPositions, ns, cfg.Runs)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tMEAN\tMEAN_SQ")
	for i, n := range series.N {
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\n", n, series.Mean[i], series.MeanSquare[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(stats.RenderFitSummary(series))
	fmt.Println()
	fmt.Println(viz.ScatterFit(series.N, series.MeanSquare, series.Fit, 70, 18))
	return nil
}
