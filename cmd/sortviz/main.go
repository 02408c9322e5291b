package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/gui"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sim"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	algorithm  string
	colorName  string
	numBars    int
	minHeight  int
	maxHeight  int
	seed       int64
	interval   time.Duration
	fontPath   string
	theme      string
	heights    string
	configFile string
	preset     string
	verbose    bool
	storeDir   string

	// record
	outFile  string
	svgFile  string
	every    int
	gifDelay time.Duration
	jsonFile string
	saveRun  bool

	// bench
	runs     int
	plotDir  string
	jsonOut  bool
	graphLen int
	sweep    string
)

func main() {
	rootCmd := newRootCmd()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sortviz",
		Short: "watch sorting algorithms compare and swap bars",
		Long: `sortviz draws an array of bars and animates a sorting algorithm over it,
one frame per comparison. The bars being compared are drawn in the highlight
colour.`,
		Example: "  sortviz -a bubble_sort -c red\n  sortviz tui --preset dense\n  sortviz record -a insertion -c '#ff8800' --out insertion.gif",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: runWindow,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&algorithm, "algorithm", "a", config.DefaultAlgorithm, "sorting algorithm ("+strings.Join(sorting.NewRegistry().Names(), ", ")+")")
	pf.StringVarP(&colorName, "color", "c", config.DefaultColor, "highlight colour (name, #rrggbb or r,g,b)")
	pf.IntVar(&numBars, "bars", config.DefaultConfig().Bars.Count, "number of bars")
	pf.IntVar(&minHeight, "min", config.DefaultConfig().Bars.MinHeight, "minimum bar height")
	pf.IntVar(&maxHeight, "max", config.DefaultConfig().Bars.MaxHeight, "maximum bar height")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	pf.DurationVar(&interval, "interval", config.DefaultFrameInterval, "minimum time each frame stays on screen")
	pf.StringVar(&fontPath, "font", "", "TrueType font for the label")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.StringVar(&heights, "heights", "", "explicit comma separated bar heights instead of random ones")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration ("+strings.Join(config.ListPresets(), ", ")+")")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&storeDir, "store", storage.DefaultDir, "directory for saved runs")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the visualisation in the terminal",
		Long:  "Without -a, --config or --preset an algorithm menu is shown first.",
		RunE:  runTUI,
	}

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "sort without a window and write an animated GIF",
		RunE:  runRecord,
	}
	recordCmd.Flags().StringVarP(&outFile, "out", "o", "sortviz.gif", "GIF output path")
	recordCmd.Flags().StringVar(&svgFile, "svg", "", "also write the final frame as SVG")
	recordCmd.Flags().IntVar(&every, "every", 1, "keep one frame out of every N")
	recordCmd.Flags().DurationVar(&gifDelay, "delay", 20*time.Millisecond, "GIF frame delay")
	recordCmd.Flags().StringVar(&jsonFile, "json", "", "also write the run summary as JSON")
	recordCmd.Flags().BoolVar(&saveRun, "save", false, "keep the run in the run store")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "compare every algorithm on the same array",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&runs, "runs", 1, "additional seeded runs per algorithm for averages")
	benchCmd.Flags().StringVar(&plotDir, "plot", "", "write a sortedness SVG per algorithm into this directory")
	benchCmd.Flags().BoolVar(&jsonOut, "json", false, "print results as JSON")
	benchCmd.Flags().IntVar(&graphLen, "width", 60, "sortedness graph width")
	benchCmd.Flags().StringVar(&sweep, "sweep", "", "comma separated bar counts to sweep every algorithm over")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted list of headless sorts",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().StringVar(&jsonFile, "json", "", "write every run summary as JSON")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range sorting.NewRegistry().Names() {
				fmt.Println(name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tALGORITHM\tBARS\tCOLOR\tINTERVAL\tTHEME")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n", name, p.Algorithm, p.Bars.Count, p.Color, p.FrameInterval, p.Theme)
			}
			w.Flush()
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs [id]",
		Short: "list saved runs, or plot one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRuns,
	}

	rootCmd.AddCommand(tuiCmd, recordCmd, benchCmd, scenarioCmd, runsCmd, algorithmsCmd, presetsCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order. With strict set, the algorithm and colour must come
// from a flag, a preset or a config file.
func resolveConfig(cmd *cobra.Command, strict bool) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, &config.Error{Field: "preset", Reason: fmt.Sprintf("unknown preset %q (available: %s)", preset, strings.Join(config.ListPresets(), ", "))}
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	fromFile := preset != "" || configFile != ""
	if strict && !fromFile {
		if !flags.Changed("algorithm") {
			return nil, &config.Error{Field: "algorithm", Reason: "required (-a)"}
		}
		if !flags.Changed("color") {
			return nil, &config.Error{Field: "color", Reason: "required (-c)"}
		}
	}

	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("color") {
		cfg.Color = colorName
	}
	if flags.Changed("bars") {
		cfg.Bars.Count = numBars
	}
	if flags.Changed("min") {
		cfg.Bars.MinHeight = minHeight
	}
	if flags.Changed("max") {
		cfg.Bars.MaxHeight = maxHeight
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("interval") {
		cfg.FrameInterval = interval
	}
	if flags.Changed("font") {
		cfg.FontPath = fontPath
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("heights") {
		h, err := parseHeights(heights)
		if err != nil {
			return nil, err
		}
		cfg.Heights = h
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseHeights(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return nil, &config.Error{Field: "heights", Reason: "empty list"}
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, &config.Error{Field: "heights", Reason: fmt.Sprintf("%q is not an integer", f)}
		}
		out[i] = v
	}
	return out, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, true)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	app, err := gui.NewApp(gui.Options{
		Width:    int(cfg.Canvas.CanvasWidth),
		Height:   int(cfg.Canvas.CanvasHeight),
		FontPath: cfg.FontPath,
		FontSize: render.DefaultLabelSize,
	}, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	s, err := sim.Build(cfg, app.Surface, cfg.Canvas, cfg.FrameInterval)
	if err != nil {
		return err
	}
	s.SetLogger(logger)
	warnOverflow(logger, cfg.Canvas, s.Array().Len())

	res, err := app.Run(ctx, s, sim.Config{IdleInterval: cfg.IdleInterval})
	if err != nil {
		return err
	}
	logger.Debug("session ended", "sorted", res.Sorted, "frames", res.Frames)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, false)
	if err != nil {
		return err
	}
	// the terminal owns stdout/stderr while the program runs
	logger := log.New(os.Stderr)
	logger.SetLevel(log.ErrorLevel)

	var res *sim.Result
	if !cmd.Flags().Changed("algorithm") && preset == "" && configFile == "" {
		res, err = viz.RunInteractive(cfg, logger)
	} else {
		var m viz.Model
		m, err = viz.BuildModel(cfg, logger)
		if err != nil {
			return err
		}
		res, err = viz.Run(m)
	}
	if err != nil || res == nil {
		return err
	}

	printSummary(res)
	return nil
}

// warnOverflow reports a bar row wider than the canvas. Bars past the edges
// are clipped, not rejected.
func warnOverflow(logger *log.Logger, layout render.Layout, n int) {
	if w := layout.RowWidth(n); w > layout.CanvasWidth {
		logger.Warn("bars overflow the canvas", "bars", n, "row_width", w, "canvas_width", layout.CanvasWidth)
	}
}

func printSummary(res *sim.Result) {
	status := "sorted"
	if !res.Sorted {
		status = "stopped"
	}
	fmt.Printf("%s: %s after %d comparisons, %d swaps, %d writes\n",
		res.Algorithm, status, res.Stats.Comparisons, res.Stats.Swaps, res.Stats.Writes)
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, false)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	face, err := render.LoadFace(cfg.FontPath, render.DefaultLabelSize)
	if err != nil {
		return err
	}
	highlight, err := cfg.HighlightColor()
	if err != nil {
		return err
	}

	w, h := int(cfg.Canvas.CanvasWidth), int(cfg.Canvas.CanvasHeight)
	surf := render.NewImageSurface(w, h, face)
	rec := export.NewGIFRecorder(every, gifDelay, render.ColBackground, render.ColNeutral, highlight, render.LabelColor(highlight))
	surf.OnPresent = rec.Capture

	s, err := sim.Build(cfg, surf, cfg.Canvas, 0)
	if err != nil {
		return err
	}
	s.SetLogger(logger)
	warnOverflow(logger, cfg.Canvas, s.Array().Len())
	sortedness := metrics.NewSortedness()
	s.AddObserver(sortedness)

	res, err := s.RunToCompletion(ctx)
	if err != nil {
		return err
	}
	surf.OnPresent = rec.CaptureFinal
	if err := s.RenderIdle(); err != nil {
		return err
	}

	if err := rec.Save(outFile); err != nil {
		return err
	}
	logger.Info("wrote gif", "path", outFile, "frames", rec.Frames(), "offered", rec.Seen(), "steps", res.Frames)

	if svgFile != "" {
		svg := export.NewSVGSurface(cfg.Canvas.CanvasWidth, cfg.Canvas.CanvasHeight)
		r := render.NewRenderer(svg, cfg.Canvas, highlight, 0)
		if err := r.RenderFrame(res.Final, nil, s.Label()); err != nil {
			return err
		}
		if err := svg.Save(svgFile); err != nil {
			return err
		}
		logger.Info("wrote svg", "path", svgFile)
	}

	if jsonFile != "" {
		if err := export.ExportJSON(jsonFile, res); err != nil {
			return err
		}
		logger.Info("wrote json", "path", jsonFile)
	}

	if saveRun {
		sortedness.Observe(render.Frame{Heights: res.Final}, res.Stats)
		store := storage.New(storeDir)
		if err := store.Init(); err != nil {
			return err
		}
		id, err := store.Save(res, cfg.Color, cfg.Seed, sortedness.History(0))
		if err != nil {
			return err
		}
		logger.Info("saved run", "id", id, "dir", storeDir)
	}

	printSummary(res)
	return nil
}

func runRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(storeDir)

	if len(args) == 1 {
		meta, err := store.Load(args[0])
		if err != nil {
			return err
		}
		series, err := store.LoadSortedness(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s, %d bars, %d comparisons, %d swaps, %d writes\n",
			meta.ID, meta.Algorithm, meta.Bars, meta.Stats.Comparisons, meta.Stats.Swaps, meta.Stats.Writes)
		if len(series) >= 2 {
			fmt.Println(asciigraph.Plot(resample(series, 60),
				asciigraph.Height(8),
				asciigraph.LowerBound(0),
				asciigraph.UpperBound(1),
				asciigraph.Caption("sortedness per comparison")))
		}
		return nil
	}

	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs in", storeDir)
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tBARS\tCOMPARISONS\tSWAPS\tWRITES\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n", r.ID, r.Algorithm, r.Bars,
			r.Stats.Comparisons, r.Stats.Swaps, r.Stats.Writes, r.Timestamp.Format(time.DateTime))
	}
	return w.Flush()
}

type benchResult struct {
	Algorithm  string        `json:"algorithm"`
	Stats      sorting.Stats `json:"stats"`
	Inversions int           `json:"inversions"`
	Sorted     bool          `json:"sorted"`
	Elapsed    time.Duration `json:"elapsed"`
	// Metrics holds the final value of every metric, keyed by name.
	Metrics map[string]float64 `json:"metrics"`

	MeanComparisons float64 `json:"mean_comparisons,omitempty"`
	MeanSwaps       float64 `json:"mean_swaps,omitempty"`
	MeanWrites      float64 `json:"mean_writes,omitempty"`

	sortedness []float64
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, false)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if cfg.Seed == 0 && len(cfg.Heights) == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if sweep != "" {
		return runSweep(cmd, cfg)
	}
	initial, err := sim.NewArray(cfg)
	if err != nil {
		return err
	}
	inversions := metrics.CountInversions(initial.Heights())
	logger.Debug("bench array", "bars", initial.Len(), "seed", cfg.Seed, "inversions", inversions)

	registry := sorting.NewRegistry()
	var results []benchResult
	for _, name := range registry.Names() {
		d, _ := registry.Get(name)
		s := sim.New(d, initial.Clone(), render.NewRenderer(render.Discard, cfg.Canvas, render.ColNeutral, 0))
		s.SetLogger(logger)
		sortedness := metrics.NewSortedness()
		set := metrics.Set{sortedness, metrics.NewDisorder(), metrics.NewWriteEffort()}
		s.AddObserver(set)

		res, err := s.RunToCompletion(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		// frames are pre-mutation; the sorted array needs its own observation
		set.OnFrame(render.Frame{Heights: res.Final}, res.Stats)

		br := benchResult{
			Algorithm:  name,
			Stats:      res.Stats,
			Inversions: inversions,
			Sorted:     res.Sorted,
			Elapsed:    res.Elapsed,
			Metrics:    set.Values(),
			sortedness: sortedness.History(0),
		}

		if runs > 1 && len(cfg.Heights) == 0 {
			e := &sim.Ensemble{
				Algorithm: name,
				Bars:      cfg.Bars.Count,
				MinHeight: cfg.Bars.MinHeight,
				MaxHeight: cfg.Bars.MaxHeight,
				Runs:      runs,
				SeedStart: cfg.Seed,
			}
			stats, err := e.Run(ctx)
			if err != nil {
				return err
			}
			br.MeanComparisons, br.MeanSwaps, br.MeanWrites = sim.Mean(stats)
		}
		results = append(results, br)
	}

	if plotDir != "" {
		if err := writePlots(plotDir, results); err != nil {
			return err
		}
		logger.Info("wrote sortedness plots", "dir", plotDir)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Printf("benchmarking %d bars (%d inversions)\n\n", initial.Len(), inversions)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if runs > 1 && len(cfg.Heights) == 0 {
		fmt.Fprintf(w, "ALGORITHM\tCOMPARISONS\tSWAPS\tWRITES\tSORTED\tMEAN CMP (%d)\tMEAN SWAPS\tMEAN WRITES\n", runs)
	} else {
		fmt.Fprintln(w, "ALGORITHM\tCOMPARISONS\tSWAPS\tWRITES\tSORTED")
	}
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%v", r.Algorithm, r.Stats.Comparisons, r.Stats.Swaps, r.Stats.Writes, r.Sorted)
		if runs > 1 && len(cfg.Heights) == 0 {
			fmt.Fprintf(w, "\t%.1f\t%.1f\t%.1f", r.MeanComparisons, r.MeanSwaps, r.MeanWrites)
		}
		fmt.Fprintln(w)
	}
	w.Flush()

	for _, r := range results {
		if len(r.sortedness) < 2 {
			continue
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(resample(r.sortedness, graphLen),
			asciigraph.Height(6),
			asciigraph.Width(graphLen),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(1),
			asciigraph.Precision(2),
			asciigraph.Caption(r.Algorithm+" sortedness per comparison")))
	}
	return nil
}

func runSweep(cmd *cobra.Command, cfg *config.Config) error {
	counts, err := parseHeights(sweep)
	if err != nil {
		return fmt.Errorf("--sweep: %w", err)
	}
	for _, n := range counts {
		if n <= 0 {
			return &config.Error{Field: "sweep", Reason: fmt.Sprintf("bar count must be positive, got %d", n)}
		}
	}

	results, err := automation.RunSweep(cmd.Context(), &automation.Sweep{
		Algorithms: sorting.NewRegistry().Names(),
		Counts:     counts,
		MinHeight:  cfg.Bars.MinHeight,
		MaxHeight:  cfg.Bars.MaxHeight,
		Seed:       cfg.Seed,
	})
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tBARS\tCOMPARISONS\tSWAPS\tWRITES")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", r.Algorithm, r.Bars, r.Stats.Comparisons, r.Stats.Swaps, r.Stats.Writes)
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	if sc.Name != "" {
		logger.Info("scenario", "name", sc.Name, "steps", len(sc.Steps))
	}

	results, err := automation.RunScenario(ctx, sc, logger)
	for _, res := range results {
		printSummary(res)
	}
	if err != nil {
		return err
	}

	if jsonFile != "" {
		if err := export.ExportJSON(jsonFile, results...); err != nil {
			return err
		}
		logger.Info("wrote json", "path", jsonFile)
	}
	return nil
}

// resample picks n evenly spaced values so long runs fit the graph width.
func resample(v []float64, n int) []float64 {
	if n < 2 || len(v) <= n {
		return v
	}
	out := make([]float64, n)
	last := len(v) - 1
	for i := range out {
		out[i] = v[i*last/(n-1)]
	}
	return out
}

func writePlots(dir string, results []benchResult) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, r := range results {
		svg := export.SeriesToSVG(r.sortedness, 600, 200, "#00ff88")
		if svg == "" {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, r.Algorithm+".svg"), []byte(svg), 0644); err != nil {
			return err
		}
	}
	return nil
}
