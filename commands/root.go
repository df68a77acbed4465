package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/gantt"
	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
	"github.com/JoinFullStackDev/blueprint-timeline/internal/data/loader"
	"github.com/JoinFullStackDev/blueprint-timeline/internal/data/watcher"
	"github.com/JoinFullStackDev/blueprint-timeline/internal/presentation/formatter"
	"github.com/JoinFullStackDev/blueprint-timeline/internal/util"
)

var (
	// Input data
	inputPath  string
	configPath string

	// Layout
	mode    string
	nowFlag string

	// Output
	outputFormat string
	chartWidth   int

	// System and debugging
	debug     bool
	watchMode bool

	rootCmd = &cobra.Command{
		Use:   "blueprint-timeline [flags]",
		Short: "Project timeline layout and rendering tool",
		Long: `blueprint-timeline lays out project tasks and phases on a Gantt-style
timeline and renders the result.

It reads scheduled items from a JSON or CSV file, infers missing start or due
dates from priority-based heuristics, and computes a week-aligned calendar
window with proportional bar geometry.

Examples:
  blueprint-timeline --input tasks.json                 # Terminal Gantt chart
  blueprint-timeline --input tasks.json --mode phases   # Aggregate by phase
  blueprint-timeline --input tasks.csv --output svg     # SVG export
  blueprint-timeline --input tasks.json --output csv    # Flat geometry export
  blueprint-timeline --input tasks.json --now 2024-06-01 # Pin the clock
  blueprint-timeline --input tasks.json --watch         # Re-render on change`,
		RunE: runRender,
	}
)

// nowFormats lists accepted layouts for the --now flag.
var nowFormats = []string{"2006-01-02", time.RFC3339}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "",
		"Input file with scheduled items (.json or .csv)")
	rootCmd.MarkFlagRequired("input")

	rootCmd.Flags().StringVar(&configPath, "config", "",
		"Engine configuration file (YAML)")
	rootCmd.Flags().StringVarP(&mode, "mode", "m", "tasks",
		"Layout mode (tasks, phases)")
	rootCmd.Flags().StringVar(&nowFlag, "now", "",
		"Override the current date (e.g., 2024-06-01) for reproducible output")

	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "gantt",
		"Output format (gantt, json, csv, svg)")
	rootCmd.Flags().IntVar(&chartWidth, "width", 0,
		"Chart width in columns (0 = detect terminal)")

	rootCmd.Flags().BoolVarP(&watchMode, "watch", "w", false,
		"Re-render whenever the input file changes")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runRender(cmd *cobra.Command, args []string) error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	util.InitLogger(logLevel, "", debug)

	cfg, err := gantt.LoadConfig(configPath)
	if err != nil {
		return err
	}

	now, err := parseNow(nowFlag)
	if err != nil {
		return err
	}

	if err := render(cfg, now); err != nil {
		return err
	}

	if !watchMode {
		return nil
	}

	fw, err := watcher.New(inputPath)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", inputPath, err)
	}
	defer fw.Close()

	util.LogInfof("Watching %s for changes", inputPath)
	for event := range fw.Events() {
		util.LogDebugf("Input changed (%s), re-rendering", event.Operation)
		if err := render(cfg, now); err != nil {
			util.LogErrorf("Render failed: %v", err)
		}
	}
	return nil
}

// render runs one full load-layout-format cycle.
func render(cfg gantt.Config, now time.Time) error {
	items, phaseNames, err := loader.Load(inputPath)
	if err != nil {
		return err
	}

	engine := gantt.New(cfg)
	engine.SetPhaseNames(phaseNames)

	layoutMode := model.ParseMode(mode)
	layout := engine.Layout(items, layoutMode, now)

	if layoutMode == model.ModeTasks {
		orderBarsForDisplay(engine, layout)
	}

	f := formatter.GetFormatter(outputFormat, os.Stdout)
	if gf, ok := f.(*formatter.GanttFormatter); ok && chartWidth > 0 {
		gf.SetWidth(chartWidth)
	}
	return f.Format(layout)
}

// orderBarsForDisplay rewrites the bar list into presentation order:
// unassigned first, then groups by name, due date ascending within a group.
func orderBarsForDisplay(engine *gantt.Engine, layout *model.Layout) {
	groups := engine.DisplayOrder(layout)
	bars := make([]model.BarGeometry, 0, len(layout.Bars))
	for _, g := range groups {
		bars = append(bars, g.Bars...)
	}
	layout.Bars = bars
}

// parseNow resolves the --now override, defaulting to the wall clock. The
// engine itself never reads the ambient clock.
func parseNow(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	for _, format := range nowFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --now value %q (expected 2024-06-01 or RFC3339)", s)
}

func Execute() error {
	return rootCmd.Execute()
}
