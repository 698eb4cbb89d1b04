package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/san-kum/dottie/internal/analysis"
	"github.com/san-kum/dottie/internal/fixedpoint"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format: %s (available: text, json, yaml)", s)
}

type Report struct {
	Start      float64            `json:"start" yaml:"start"`
	Final      float64            `json:"final" yaml:"final"`
	Steps      int                `json:"steps" yaml:"steps"`
	Converged  bool               `json:"converged" yaml:"converged"`
	ElapsedMs  float64            `json:"elapsed_ms" yaml:"elapsed_ms"`
	Lyapunov   float64            `json:"lyapunov" yaml:"lyapunov"`
	Order      float64            `json:"convergence_order" yaml:"convergence_order"`
	Metrics    map[string]float64 `json:"metrics" yaml:"metrics"`
	Trajectory []float64          `json:"trajectory,omitempty" yaml:"trajectory,omitempty"`
}

// New summarises a finished run. Non-finite metric values are dropped so
// every format can encode the report.
func New(result *fixedpoint.Result, withTrajectory bool) *Report {
	r := &Report{
		Start:     result.Start,
		Final:     result.Final,
		Steps:     result.Steps,
		Converged: result.Converged,
		ElapsedMs: float64(result.Elapsed.Microseconds()) / 1000,
		Lyapunov:  analysis.LyapunovExponent(result.Trajectory),
		Order:     analysis.ConvergenceOrder(result.Trajectory),
		Metrics:   make(map[string]float64, len(result.Metrics)),
	}

	for name, v := range result.Metrics {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		r.Metrics[name] = v
	}

	if withTrajectory {
		r.Trajectory = append([]float64(nil), result.Trajectory...)
	}
	return r
}

func (r *Report) Write(w io.Writer, format Format) error {
	if format == FormatText || format == "" {
		return r.writeText(w)
	}
	return encode(w, format, r)
}

func encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format: %s", format)
}

func (r *Report) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "start\t%s\n", strconv.FormatFloat(r.Start, 'g', -1, 64))
	fmt.Fprintf(tw, "final\t%.20f\n", r.Final)
	fmt.Fprintf(tw, "steps\t%d\n", r.Steps)
	fmt.Fprintf(tw, "converged\t%t\n", r.Converged)
	fmt.Fprintf(tw, "elapsed\t%.3f ms\n", r.ElapsedMs)
	fmt.Fprintf(tw, "lyapunov\t%.6f\n", r.Lyapunov)
	fmt.Fprintf(tw, "convergence_order\t%.6f\n", r.Order)

	names := make([]string, 0, len(r.Metrics))
	for name := range r.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%.6g\n", name, r.Metrics[name])
	}

	return tw.Flush()
}
