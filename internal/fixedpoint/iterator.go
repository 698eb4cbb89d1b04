package fixedpoint

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/san-kum/dottie/internal/cosine"
	"github.com/san-kum/dottie/internal/ctxlog"
)

// Sleeper pauses between steps. It must return early with ctx.Err() when
// ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type Iterator struct {
	cfg       Config
	out       io.Writer
	sleep     Sleeper
	metrics   []Metric
	observers []Observer
}

func New(cfg Config, out io.Writer) *Iterator {
	if out == nil {
		out = io.Discard
	}
	return &Iterator{
		cfg:       cfg,
		out:       out,
		sleep:     Sleep,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

// WithSleeper replaces the pause between steps.
func (it *Iterator) WithSleeper(s Sleeper) *Iterator {
	it.sleep = s
	return it
}

func (it *Iterator) AddMetric(m Metric)     { it.metrics = append(it.metrics, m) }
func (it *Iterator) AddObserver(o Observer) { it.observers = append(it.observers, o) }

// Run applies cosine to x0 until cos(x) == x. Each step pauses for the
// configured interval, then either prints the in-place progress line or,
// on the fixed point, the completion message.
func (it *Iterator) Run(ctx context.Context, x0 float64) (*Result, error) {
	if err := it.cfg.validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(x0) || math.IsInf(x0, 0) {
		return nil, &InputError{Text: strconv.FormatFloat(x0, 'g', -1, 64), Err: ErrNotFinite}
	}

	log := ctxlog.FromContext(ctx)
	log.Debug("iteration started", "start", x0, "interval", it.cfg.Interval, "limit", it.cfg.Limit)

	result := &Result{
		Start:   x0,
		Final:   x0,
		Metrics: make(map[string]float64),
	}
	if it.cfg.Record {
		result.Trajectory = []float64{x0}
	}

	for _, m := range it.metrics {
		m.Reset()
	}

	start := time.Now()
	n := x0

	for step := 1; ; step++ {
		if err := ctx.Err(); err != nil {
			return it.finish(result, start), it.canceled(ctx, result, err)
		}
		if it.cfg.Limit > 0 && step > it.cfg.Limit {
			log.Debug("step limit reached", "limit", it.cfg.Limit, "value", n)
			return it.finish(result, start), &StepError{Step: result.Steps, Value: n, Err: ErrNoConvergence}
		}

		n = cosine.Cos(n)
		result.Steps = step
		result.Final = n
		if it.cfg.Record {
			result.Trajectory = append(result.Trajectory, n)
		}

		for _, m := range it.metrics {
			m.Observe(step, n)
		}
		for _, obs := range it.observers {
			obs.OnStep(step, n)
		}

		if it.cfg.Interval > 0 {
			if err := it.sleep(ctx, it.cfg.Interval); err != nil {
				return it.finish(result, start), it.canceled(ctx, result, err)
			}
		}

		if cosine.Cos(n) == n {
			result.Converged = true
			it.finish(result, start)
			if _, err := fmt.Fprintf(it.out, "\n\n%s\n\n", DoneMessage); err != nil {
				return result, fmt.Errorf("fixedpoint: write output: %w", err)
			}
			log.Debug("fixed point reached", "steps", step, "value", n, "elapsed", result.Elapsed)
			return result, nil
		}

		if _, err := fmt.Fprintf(it.out, "cos(%.*f)\r", it.cfg.Precision, n); err != nil {
			return it.finish(result, start), fmt.Errorf("fixedpoint: write output: %w", err)
		}
	}
}

func (it *Iterator) finish(result *Result, start time.Time) *Result {
	result.Elapsed = time.Since(start)
	for _, m := range it.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result
}

func (it *Iterator) canceled(ctx context.Context, result *Result, cause error) error {
	ctxlog.FromContext(ctx).Debug("iteration canceled", "steps", result.Steps, "value", result.Final)
	return &StepError{
		Step:  result.Steps,
		Value: result.Final,
		Err:   fmt.Errorf("%w: %w", ErrCanceled, cause),
	}
}
