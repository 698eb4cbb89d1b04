package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dottie/internal/cosine"
)

// floorLog10 stands in for log10(0) once an iterate hits the fixed point.
const floorLog10 = -17

// Plot charts the iterates themselves.
func Plot(trajectory []float64, caption string, width, height int) string {
	if len(trajectory) == 0 {
		return ""
	}
	return asciigraph.Plot(trajectory,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(4),
		asciigraph.Caption(caption),
	)
}

// PlotErrors charts log10|x - Dottie|. Linear convergence shows up as a
// straight descending line.
func PlotErrors(trajectory []float64, width, height int) string {
	if len(trajectory) == 0 {
		return ""
	}
	return asciigraph.Plot(LogErrors(trajectory),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption("log10 |x - 0.7390851332151607|"),
	)
}

func LogErrors(trajectory []float64) []float64 {
	out := make([]float64, len(trajectory))
	for i, x := range trajectory {
		e := math.Abs(x - cosine.Dottie)
		if e == 0 {
			out[i] = floorLog10
			continue
		}
		out[i] = math.Max(math.Log10(e), floorLog10)
	}
	return out
}

// CorrectDigits counts the decimal digits x shares with the Dottie number,
// capped at 16.
func CorrectDigits(x float64) int {
	e := math.Abs(x - cosine.Dottie)
	if e == 0 {
		return 16
	}
	d := int(math.Floor(-math.Log10(e)))
	if d < 0 {
		return 0
	}
	if d > 16 {
		return 16
	}
	return d
}
