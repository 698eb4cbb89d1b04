package metrics

import "github.com/san-kum/dottie/internal/fixedpoint"

// Default returns a fresh set of the metrics reported by trace.
func Default() []fixedpoint.Metric {
	return []fixedpoint.Metric{
		NewDistance(),
		NewContraction(),
		NewOscillation(),
	}
}
