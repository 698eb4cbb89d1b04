package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/dottie/internal/analysis"
	"github.com/san-kum/dottie/internal/config"
	"github.com/san-kum/dottie/internal/ctxlog"
	"github.com/san-kum/dottie/internal/fixedpoint"
	"github.com/san-kum/dottie/internal/metrics"
	"github.com/san-kum/dottie/internal/report"
	"github.com/san-kum/dottie/internal/sweep"
	"github.com/san-kum/dottie/internal/viz"
	"github.com/spf13/cobra"
)

// app holds what the commands share. Tests swap the sleeper so the paced
// loop runs instantly.
type app struct {
	sleep fixedpoint.Sleeper

	preset     string
	format     string
	plot       bool
	verbose    bool
	trajectory bool

	grid    sweep.Grid
	workers int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := ctxlog.New(os.Stderr, slog.LevelWarn)
	ctx = ctxlog.WithLogger(ctx, logger)

	rootCmd := newRootCmd(&app{})
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dottie",
		Short:        "iterate cosine until it reaches its fixed point",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         a.runLoop,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [number]",
		Short: "run the loop unpaced and report on the orbit",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runTrace,
	}
	traceCmd.Flags().StringVar(&a.preset, "preset", "", "use a preset starting value")
	traceCmd.Flags().StringVar(&a.format, "format", "text", "report format (text, json, yaml)")
	traceCmd.Flags().BoolVar(&a.plot, "plot", false, "plot the orbit and its error (text format only)")
	traceCmd.Flags().BoolVar(&a.verbose, "verbose", false, "debug logging on stderr")
	traceCmd.Flags().BoolVar(&a.trajectory, "trajectory", false, "include every iterate in the report")

	watchCmd := &cobra.Command{
		Use:   "watch [number]",
		Short: "watch the orbit converge in an interactive view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runWatch,
	}
	watchCmd.Flags().StringVar(&a.preset, "preset", "", "use a preset starting value")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "iterate from a grid of starting values and compare step counts",
		Args:  cobra.NoArgs,
		RunE:  a.runSweep,
	}
	sweepCmd.Flags().Float64Var(&a.grid.From, "from", -10, "first starting value")
	sweepCmd.Flags().Float64Var(&a.grid.To, "to", 10, "last starting value")
	sweepCmd.Flags().IntVar(&a.grid.Count, "count", 21, "number of starting values")
	sweepCmd.Flags().IntVar(&a.workers, "workers", 0, "concurrent runs (0 = one per cpu)")
	sweepCmd.Flags().StringVar(&a.format, "format", "text", "report format (text, json, yaml)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset starting values",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(traceCmd, watchCmd, sweepCmd, presetsCmd)
	return rootCmd
}

// runLoop is the plain program: prompt, read one number, iterate with
// pacing until cos(x) == x.
func (a *app) runLoop(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, config.Prompt)

	start, err := fixedpoint.ReadStartContext(cmd.Context(), cmd.InOrStdin())
	if err != nil {
		return err
	}
	fmt.Fprintln(out)

	it := fixedpoint.New(config.DefaultConfig(), out)
	if a.sleep != nil {
		it.WithSleeper(a.sleep)
	}
	_, err = it.Run(cmd.Context(), start)
	return err
}

func (a *app) runTrace(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(a.format)
	if err != nil {
		return err
	}
	if a.plot && format != report.FormatText {
		return fmt.Errorf("--plot needs --format text, got %s", format)
	}

	start, err := a.resolveStart(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if a.verbose {
		ctx = ctxlog.WithLogger(ctx, ctxlog.New(cmd.ErrOrStderr(), slog.LevelDebug))
	}

	it := fixedpoint.New(config.TraceConfig(), io.Discard)
	for _, m := range metrics.Default() {
		it.AddMetric(m)
	}

	result, runErr := it.Run(ctx, start)
	if result == nil {
		return runErr
	}
	if runErr != nil && !errors.Is(runErr, fixedpoint.ErrNoConvergence) {
		return runErr
	}

	out := cmd.OutOrStdout()
	if err := report.New(result, a.trajectory).Write(out, format); err != nil {
		return err
	}

	if a.plot {
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.Plot(result.Trajectory, "x_k", 70, 12))
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.PlotErrors(result.Trajectory, 70, 12))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "return map (x_k, x_k+1):")
		fmt.Fprint(out, analysis.ReturnMapToASCII(analysis.ReturnMap(result.Trajectory), 60, 20))
	}

	return runErr
}

func (a *app) runWatch(cmd *cobra.Command, args []string) error {
	start, err := a.resolveStart(args)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewWatch(start, config.DefaultInterval),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}

	if w, ok := final.(viz.Watch); ok && w.Converged() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s after %d steps: %.17g\n", fixedpoint.DoneMessage, w.Steps(), w.Value())
	}
	return nil
}

func (a *app) runSweep(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(a.format)
	if err != nil {
		return err
	}
	starts, err := a.grid.Values()
	if err != nil {
		return err
	}

	ctxlog.FromContext(cmd.Context()).Debug("sweep started", "runs", len(starts), "workers", a.workers)

	outcomes, err := sweep.NewEnsemble(config.TraceConfig(), a.workers).Run(cmd.Context(), starts)
	if err != nil {
		return err
	}
	return report.NewSweep(outcomes).Write(cmd.OutOrStdout(), format)
}

// resolveStart takes the starting value from the argument or --preset,
// never both.
func (a *app) resolveStart(args []string) (float64, error) {
	switch {
	case a.preset != "" && len(args) > 0:
		return 0, errors.New("give either a number or --preset, not both")
	case a.preset != "":
		p := config.GetPreset(a.preset)
		if p == nil {
			return 0, fmt.Errorf("unknown preset: %s (available: %s)", a.preset, strings.Join(config.ListPresets(), ", "))
		}
		return p.Start, nil
	case len(args) > 0:
		return fixedpoint.ParseStart(args[0])
	}
	return 0, errors.New("a starting number or --preset is required")
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTART\tNOTE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%s\n", p.Name, p.Start, p.Note)
	}
	return w.Flush()
}
