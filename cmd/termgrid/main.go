package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/san-kum/termgrid/internal/automation"
	"github.com/san-kum/termgrid/internal/config"
	"github.com/san-kum/termgrid/internal/display"
	"github.com/san-kum/termgrid/internal/export"
	"github.com/san-kum/termgrid/internal/life"
	applog "github.com/san-kum/termgrid/internal/log"
	"github.com/san-kum/termgrid/internal/metrics"
	"github.com/san-kum/termgrid/internal/picker"
	"github.com/san-kum/termgrid/internal/sim"
	"github.com/san-kum/termgrid/internal/storage"
	"github.com/san-kum/termgrid/internal/terminal"
	"github.com/san-kum/termgrid/internal/theme"
	"github.com/san-kum/termgrid/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	logFile    string
	logLevel   string

	rule       string
	wrap       bool
	tickMs     int
	pollMs     int
	themeName  string
	seed       int64
	density    float64
	auto       bool
	statusLine bool
	offsetX    int
	offsetY    int

	width       int
	height      int
	generations int
	runs        int
	parallel    int
	stopStable  bool
	watch       bool
	frameRate   int

	outFile string
	scale   float64

	minDensity float64
	maxDensity float64
	sweepSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "termgrid [pattern]",
		Short:        "diff-rendered cellular automata in the terminal",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runLive,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	addBoardFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live [pattern]",
		Short: "edit and run a board interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addBoardFlags(liveCmd)

	runCmd := &cobra.Command{
		Use:   "run [pattern]",
		Short: "run a headless simulation and store it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addBoardFlags(runCmd)
	runCmd.Flags().IntVar(&width, "width", 80, "board width")
	runCmd.Flags().IntVar(&height, "height", 24, "board height")
	runCmd.Flags().IntVar(&generations, "generations", config.DefaultGenerations, "generations to run")
	runCmd.Flags().IntVar(&runs, "runs", 1, "number of random boards to run as an ensemble")
	runCmd.Flags().IntVar(&parallel, "parallel", 4, "concurrent ensemble runs")
	runCmd.Flags().BoolVar(&stopStable, "stop-stable", false, "stop once the board no longer changes")
	runCmd.Flags().BoolVar(&watch, "watch", false, "draw generations while running")
	runCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate with --watch")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot population over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the final board of a run to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default <run_id>.svg)")
	exportSVGCmd.Flags().Float64Var(&scale, "scale", 8, "pixels per cell")
	exportSVGCmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "colour theme")

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list built-in and saved patterns",
		RunE:  listPatterns,
	}

	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "list named rules",
		RunE:  listRules,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list presets or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showPresets,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list colour themes",
		RunE:  listThemes,
	}

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "run a yaml scenario of headless simulations",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep the initial density of random boards",
		RunE:  runDensitySweep,
	}
	sweepCmd.Flags().StringVar(&rule, "rule", config.DefaultRule, "rule name or B/S notation")
	sweepCmd.Flags().BoolVar(&wrap, "wrap", true, "wrap around the edges")
	sweepCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	sweepCmd.Flags().IntVar(&width, "width", 80, "board width")
	sweepCmd.Flags().IntVar(&height, "height", 24, "board height")
	sweepCmd.Flags().IntVar(&generations, "generations", config.DefaultGenerations, "generations per board")
	sweepCmd.Flags().Float64Var(&minDensity, "min", 0.05, "lowest density")
	sweepCmd.Flags().Float64Var(&maxDensity, "max", 0.95, "highest density")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of densities")

	pickCmd := &cobra.Command{
		Use:   "pick",
		Short: "choose a pattern from a menu and run it live",
		Args:  cobra.NoArgs,
		RunE:  pickPattern,
	}
	addBoardFlags(pickCmd)

	rootCmd.AddCommand(liveCmd, runCmd, listCmd, plotCmd, exportCmd, exportSVGCmd, patternsCmd, rulesCmd, presetsCmd, themesCmd, scriptCmd, sweepCmd, pickCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addBoardFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&rule, "rule", config.DefaultRule, "rule name or B/S notation")
	f.BoolVar(&wrap, "wrap", true, "wrap around the edges")
	f.IntVar(&tickMs, "tick", config.DefaultTickMs, "milliseconds between generations in auto mode")
	f.IntVar(&pollMs, "poll", config.DefaultPollMs, "milliseconds between input polls")
	f.StringVar(&themeName, "theme", config.DefaultTheme, "colour theme")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.Float64Var(&density, "density", config.DefaultDensity, "alive probability for the random pattern")
	f.BoolVar(&auto, "auto", false, "start stepping immediately")
	f.BoolVar(&statusLine, "status", true, "show the status line")
	f.IntVar(&offsetX, "x", -1, "pattern column (-1 centres)")
	f.IntVar(&offsetY, "y", -1, "pattern row (-1 centres)")
}

// loadConfig merges defaults, preset, config file and explicitly set flags,
// in that order, and starts logging.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, io.Closer, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if len(args) > 0 {
		cfg.Pattern = args[0]
	}
	if flags.Changed("rule") {
		cfg.Rule = rule
	}
	if flags.Changed("wrap") {
		cfg.Wrap = wrap
	}
	if flags.Changed("tick") {
		cfg.TickMs = tickMs
	}
	if flags.Changed("poll") {
		cfg.PollMs = pollMs
	}
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("density") {
		cfg.Density = density
	}
	if flags.Changed("auto") {
		cfg.Auto = auto
	}
	if flags.Changed("status") {
		cfg.StatusLine = statusLine
	}
	if flags.Changed("x") {
		cfg.OffsetX = offsetX
	}
	if flags.Changed("y") {
		cfg.OffsetY = offsetY
	}
	if flags.Changed("generations") {
		cfg.Generations = generations
	}
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	closer, err := applog.Init(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, closer, nil
}

type setup struct {
	cfg      *config.Config
	registry *life.Registry
	store    *storage.Store
	rule     life.Rule
	theme    theme.Theme
	pattern  *life.Pattern // nil for random boards
}

func prepare(cfg *config.Config) (*setup, error) {
	s := &setup{cfg: cfg, registry: life.NewRegistry(), store: storage.New(cfg.DataDir)}

	r, err := s.registry.Rule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	s.rule = r

	th, err := theme.Get(cfg.Theme)
	if err != nil {
		return nil, err
	}
	if s.theme, err = th.WithOverrides(cfg.Colors.Background, cfg.Colors.Alive, cfg.Colors.Cursor); err != nil {
		return nil, err
	}

	if cfg.Pattern != "random" {
		if s.pattern, err = resolvePattern(s.registry, s.store, cfg.Pattern); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// resolvePattern looks in the built-in catalogue first, then in saved
// patterns.
func resolvePattern(reg *life.Registry, st *storage.Store, name string) (*life.Pattern, error) {
	p, err := reg.Pattern(name)
	if err == nil {
		return p, nil
	}
	if saved, serr := st.LoadPattern(name); serr == nil {
		return saved, nil
	} else if !errors.Is(serr, storage.ErrNotFound) {
		return nil, serr
	}
	return nil, err
}

func (s *setup) board(w, h int) *life.Board {
	if s.pattern == nil {
		return life.Random(w, h, s.cfg.Density, s.cfg.Seed)
	}
	b := life.NewBoard(w, h)
	if s.cfg.Centered() {
		s.pattern.PlaceCentered(b, s.cfg.Wrap)
	} else {
		s.pattern.Place(b, s.cfg.OffsetX, s.cfg.OffsetY, s.cfg.Wrap)
	}
	return b
}

func (s *setup) options() tui.Options {
	return tui.Options{
		Rule:       s.rule,
		RuleName:   s.cfg.Rule,
		Wrap:       s.cfg.Wrap,
		Theme:      s.theme,
		StatusLine: s.cfg.StatusLine,
		Auto:       s.cfg.Auto,
		Density:    s.cfg.Density,
		Seed:       s.cfg.Seed,
		Saver:      s.store,
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func colorProfile() termenv.Profile {
	return termenv.NewOutput(os.Stdout).EnvColorProfile()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, closer, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	defer closer.Close()

	s, err := prepare(cfg)
	if err != nil {
		return err
	}
	return live(s)
}

func live(s *setup) error {
	t := terminal.New()
	if !t.IsTerminal() {
		return errors.New("live mode needs an interactive terminal")
	}

	ctx, stop := signalContext()
	defer stop()

	return tui.Run(ctx, t, tui.RunConfig{
		Options: s.options(),
		Profile: colorProfile(),
		Tick:    time.Duration(s.cfg.TickMs) * time.Millisecond,
		Poll:    time.Duration(s.cfg.PollMs) * time.Millisecond,
		Seed:    s.board,
	})
}

func pickPattern(cmd *cobra.Command, args []string) error {
	cfg, closer, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	defer closer.Close()

	reg := life.NewRegistry()
	entries := picker.FromRegistry(reg)
	entries = append(entries, picker.Entry{Name: "random", Description: "random soup"})

	chosen, err := picker.Run(entries)
	if err != nil {
		return err
	}
	if chosen == "" {
		return nil
	}
	cfg.Pattern = chosen

	s, err := prepare(cfg)
	if err != nil {
		return err
	}
	return live(s)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, closer, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	defer closer.Close()

	s, err := prepare(cfg)
	if err != nil {
		return err
	}
	if err := s.store.Init(); err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	simCfg := sim.Config{Generations: cfg.Generations, Wrap: cfg.Wrap, StopWhenStable: stopStable}
	simulator := sim.New(s.rule)

	if runs > 1 {
		return runEnsemble(ctx, s, simulator, simCfg)
	}

	for _, m := range metrics.Defaults() {
		simulator.AddMetric(m)
	}

	var renderer *tui.LiveRenderer
	if watch {
		t := terminal.New()
		if err := t.Setup(); err != nil {
			return err
		}
		defer t.Restore()

		disp, err := display.New(t, terminal.NewSink(t.Output(), colorProfile()))
		if err != nil {
			return err
		}
		renderer = tui.NewLiveRenderer(disp, s.theme, cfg.Pattern, frameRate)
		simulator.AddObserver(renderer)
	}

	slog.Info("run started", "pattern", cfg.Pattern, "rule", s.rule.String(), "generations", cfg.Generations)
	fmt.Printf("running %s for %d generations...\n", cfg.Pattern, cfg.Generations)
	start := time.Now()

	result, err := simulator.Run(ctx, s.board(width, height), simCfg)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if renderer != nil && renderer.Err() != nil {
		slog.Warn("watch rendering failed", "err", renderer.Err())
	}
	elapsed := time.Since(start)

	runID, serr := s.store.Save(runMeta(s), result)
	if serr != nil {
		return serr
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("generations: %d\n", result.Generations)
	if result.Stable {
		fmt.Println("board stabilised")
	}
	fmt.Printf("final population: %d\n", result.Final.Population())
	printMetrics(result.Metrics)
	return err
}

func runEnsemble(ctx context.Context, s *setup, simulator *sim.Simulator, simCfg sim.Config) error {
	if s.pattern != nil {
		return fmt.Errorf("--runs needs the random pattern, got %s", s.cfg.Pattern)
	}

	ens := sim.NewEnsemble(simulator, runs, s.cfg.Seed)
	ens.SetLimit(parallel)
	for _, fn := range metrics.Constructors() {
		ens.AddMetric(fn)
	}

	fmt.Printf("running %d random boards for %d generations...\n", runs, simCfg.Generations)
	start := time.Now()
	results, err := ens.Run(ctx, width, height, s.cfg.Density, simCfg)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tSEED\tGENS\tFINAL\tPEAK\tCHURN")
	for i, res := range results {
		meta := runMeta(s)
		meta.Seed = s.cfg.Seed + int64(i)
		runID, err := s.store.Save(meta, res)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.0f\t%.2f\n",
			runID, meta.Seed, res.Generations, res.Final.Population(),
			res.Metrics["peak_population"], res.Metrics["churn"])
	}
	return w.Flush()
}

func runMeta(s *setup) storage.RunMetadata {
	return storage.RunMetadata{
		Pattern: s.cfg.Pattern,
		Rule:    s.rule.String(),
		Seed:    s.cfg.Seed,
		Wrap:    s.cfg.Wrap,
	}
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.3f\n", name, m[name])
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATTERN\tRULE\tTIME\tSIZE\tGENS\tWRAP")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dx%d\t%d\t%v\n",
			run.ID,
			run.Pattern,
			run.Rule,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Generations,
			run.Wrap,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	pops, err := st.LoadPopulation(runID)
	if err != nil {
		return err
	}
	if len(pops) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("pattern: %s (%s)\n", meta.Pattern, meta.Rule)
	fmt.Printf("generations: %d\n\n", len(pops)-1)

	data := make([]float64, len(pops))
	for i, p := range pops {
		data[i] = float64(p)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("population per generation"),
	)
	fmt.Println(graph)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	th, err := theme.Get(themeName)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	final, err := st.LoadFinal(runID)
	if err != nil {
		return err
	}

	path := outFile
	if path == "" {
		path = runID + ".svg"
	}
	if err := export.SaveSVG(path, export.BoardToSVG(final, scale, th)); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func listPatterns(cmd *cobra.Command, args []string) error {
	reg := life.NewRegistry()

	fmt.Println(picker.Title.Render("built-in patterns"))
	for _, e := range picker.FromRegistry(reg) {
		fmt.Printf("  %s  %s\n", picker.Selected.Render(fmt.Sprintf("%-12s", e.Name)), picker.Subtle.Render(e.Description))
	}

	saved, err := storage.New(dataDir).ListPatterns()
	if err != nil {
		return err
	}
	if len(saved) > 0 {
		fmt.Println("\n" + picker.Title.Render("saved patterns"))
		for _, name := range saved {
			fmt.Printf("  %s\n", name)
		}
	}
	return nil
}

func listRules(cmd *cobra.Command, args []string) error {
	reg := life.NewRegistry()
	fmt.Println(picker.Title.Render("rules"))
	for _, name := range reg.ListRules() {
		r, err := reg.Rule(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %s  %s\n", picker.Selected.Render(fmt.Sprintf("%-18s", name)), picker.Subtle.Render(r.String()))
	}
	return nil
}

func showPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println(picker.Title.Render("presets"))
		for _, name := range config.ListPresets() {
			p := config.GetPreset(name)
			fmt.Printf("  %s  %s\n", picker.Selected.Render(fmt.Sprintf("%-12s", name)),
				picker.Subtle.Render(fmt.Sprintf("%s, %s, %s theme", p.Pattern, p.Rule, p.Theme)))
		}
		return nil
	}

	cfg := config.GetPreset(args[0])
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %s)", args[0], strings.Join(config.ListPresets(), ", "))
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

func listThemes(cmd *cobra.Command, args []string) error {
	fmt.Println(picker.Title.Render("themes"))
	for _, name := range theme.Names() {
		th, err := theme.Get(name)
		if err != nil {
			return err
		}
		swatch := ""
		for _, c := range []string{theme.Hex(th.Background), theme.Hex(th.Alive), theme.Hex(th.Cursor)} {
			swatch += picker.Swatch(c)
		}
		fmt.Printf("  %-10s %s\n", name, swatch)
	}
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	closer, err := applog.Init(logFile, logLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	fmt.Printf("scenario: %s (%d steps)\n", scenario.Name, len(scenario.Steps))
	results, err := automation.RunScenario(ctx, scenario, life.NewRegistry(), st)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tPATTERN\tRULE\tGENS\tFINAL\tRUN ID")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\n",
			i+1, r.Step.Pattern, r.Step.Rule, r.Result.Generations, r.Result.Final.Population(), r.RunID)
	}
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func runDensitySweep(cmd *cobra.Command, args []string) error {
	closer, err := applog.Init(logFile, logLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	r, err := life.NewRegistry().Rule(rule)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	results, err := automation.RunSweep(ctx, &automation.DensitySweep{
		Rule:        r,
		Width:       width,
		Height:      height,
		Generations: generations,
		Wrap:        wrap,
		Seed:        seed,
		MinDensity:  minDensity,
		MaxDensity:  maxDensity,
		NumSteps:    sweepSteps,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DENSITY\tFINAL\tPEAK\tCHURN\tSTABLE")
	finals := make([]float64, len(results))
	for i, res := range results {
		finals[i] = float64(res.FinalPopulation)
		fmt.Fprintf(w, "%.3f\t%d\t%d\t%.2f\t%v\n", res.Density, res.FinalPopulation, res.PeakPopulation, res.Churn, res.Stable)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(finals,
		asciigraph.Height(8),
		asciigraph.Caption("final population by density step"),
	))
	return nil
}
