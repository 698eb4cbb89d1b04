package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/san-kum/dottie/internal/sweep"
)

type SweepReport struct {
	Summary  sweep.Summary   `json:"summary" yaml:"summary"`
	Outcomes []sweep.Outcome `json:"outcomes" yaml:"outcomes"`
}

func NewSweep(outcomes []sweep.Outcome) *SweepReport {
	return &SweepReport{
		Summary:  sweep.Summarize(outcomes),
		Outcomes: outcomes,
	}
}

func (r *SweepReport) Write(w io.Writer, format Format) error {
	if format == FormatText || format == "" {
		return r.writeText(w)
	}
	return encode(w, format, r)
}

func (r *SweepReport) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "START\tSTEPS\tCONVERGED")
	for _, o := range r.Outcomes {
		fmt.Fprintf(tw, "%s\t%d\t%t\n", strconv.FormatFloat(o.Start, 'g', -1, 64), o.Steps, o.Converged)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := r.Summary
	_, err := fmt.Fprintf(w, "\n%d/%d converged, steps min %d max %d mean %.2f\n",
		s.Converged, s.Runs, s.MinSteps, s.MaxSteps, s.MeanSteps)
	return err
}
