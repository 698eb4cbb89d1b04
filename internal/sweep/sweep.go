// Package sweep runs the fixed point iteration from many starting values at
// once and reports how long each takes to settle.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/san-kum/dottie/internal/fixedpoint"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidGrid = errors.New("sweep: invalid grid")

// Grid is count evenly spaced starting values from From to To inclusive.
type Grid struct {
	From  float64
	To    float64
	Count int
}

func (g Grid) Values() ([]float64, error) {
	if g.Count < 1 {
		return nil, fmt.Errorf("%w: count %d", ErrInvalidGrid, g.Count)
	}
	if g.From > g.To {
		return nil, fmt.Errorf("%w: from %g > to %g", ErrInvalidGrid, g.From, g.To)
	}
	if g.Count == 1 {
		return []float64{g.From}, nil
	}

	values := make([]float64, g.Count)
	step := (g.To - g.From) / float64(g.Count-1)
	for i := range values {
		values[i] = g.From + float64(i)*step
	}
	values[g.Count-1] = g.To
	return values, nil
}

type Outcome struct {
	Start     float64 `json:"start" yaml:"start"`
	Steps     int     `json:"steps" yaml:"steps"`
	Final     float64 `json:"final" yaml:"final"`
	Converged bool    `json:"converged" yaml:"converged"`
}

type Ensemble struct {
	cfg     fixedpoint.Config
	workers int
}

// NewEnsemble runs every start with cfg. cfg is expected to be unpaced and
// bounded; workers <= 0 means one per CPU.
func NewEnsemble(cfg fixedpoint.Config, workers int) *Ensemble {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	cfg.Record = false
	return &Ensemble{cfg: cfg, workers: workers}
}

// Run iterates from each start on its own Iterator. Outcomes keep the order
// of starts. A start that exhausts the step limit is reported with
// Converged false; any other error stops the sweep.
func (e *Ensemble) Run(ctx context.Context, starts []float64) ([]Outcome, error) {
	outcomes := make([]Outcome, len(starts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, x0 := range starts {
		g.Go(func() error {
			result, err := fixedpoint.New(e.cfg, nil).Run(ctx, x0)
			if err != nil && !errors.Is(err, fixedpoint.ErrNoConvergence) {
				return fmt.Errorf("sweep: start %g: %w", x0, err)
			}
			outcomes[i] = Outcome{
				Start:     x0,
				Steps:     result.Steps,
				Final:     result.Final,
				Converged: result.Converged,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// Summary aggregates step counts over converged outcomes.
type Summary struct {
	Runs      int     `json:"runs" yaml:"runs"`
	Converged int     `json:"converged" yaml:"converged"`
	MinSteps  int     `json:"min_steps" yaml:"min_steps"`
	MaxSteps  int     `json:"max_steps" yaml:"max_steps"`
	MeanSteps float64 `json:"mean_steps" yaml:"mean_steps"`
}

func Summarize(outcomes []Outcome) Summary {
	s := Summary{Runs: len(outcomes)}
	total := 0
	for _, o := range outcomes {
		if !o.Converged {
			continue
		}
		if s.Converged == 0 || o.Steps < s.MinSteps {
			s.MinSteps = o.Steps
		}
		if o.Steps > s.MaxSteps {
			s.MaxSteps = o.Steps
		}
		s.Converged++
		total += o.Steps
	}
	if s.Converged > 0 {
		s.MeanSteps = float64(total) / float64(s.Converged)
	}
	return s
}
