package fixedpoint

import (
	"fmt"
	"time"
)

// DoneMessage is printed on its own line once the fixed point is reached.
const DoneMessage = "Fixed Point Reached!"

type Observer interface {
	OnStep(step int, x float64)
}

type Metric interface {
	Name() string
	Observe(step int, x float64)
	Value() float64
	Reset()
}

// Config controls pacing and bounds. A zero Limit runs until the fixed
// point is reached, however long that takes.
type Config struct {
	Interval  time.Duration
	Precision int
	Limit     int
	Record    bool
}

func (c Config) validate() error {
	if c.Interval < 0 {
		return fmt.Errorf("%w: interval must not be negative, got %v", ErrInvalidConfig, c.Interval)
	}
	if c.Precision < 0 {
		return fmt.Errorf("%w: precision must not be negative, got %d", ErrInvalidConfig, c.Precision)
	}
	if c.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidConfig, c.Limit)
	}
	return nil
}

type Result struct {
	Start      float64
	Final      float64
	Steps      int
	Converged  bool
	Trajectory []float64
	Elapsed    time.Duration
	Metrics    map[string]float64
}
