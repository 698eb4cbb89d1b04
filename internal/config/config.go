package config

import (
	"time"

	"github.com/san-kum/dottie/internal/fixedpoint"
)

const (
	DefaultInterval  = 45 * time.Millisecond
	DefaultPrecision = 20
	DefaultLimit     = 10000

	Prompt = "\nEnter any number: "
)

// DefaultConfig is the paced, unbounded loop behind the bare dottie command.
func DefaultConfig() fixedpoint.Config {
	return fixedpoint.Config{
		Interval:  DefaultInterval,
		Precision: DefaultPrecision,
	}
}

// TraceConfig runs as fast as possible and gives up after DefaultLimit steps.
func TraceConfig() fixedpoint.Config {
	cfg := DefaultConfig()
	cfg.Interval = 0
	cfg.Limit = DefaultLimit
	cfg.Record = true
	return cfg
}
