package analysis

import (
	"math"

	"github.com/san-kum/dottie/internal/cosine"
)

// errorFloor drops errors too close to float64 resolution to be useful.
const errorFloor = 1e-12

// ConvergenceOrder estimates q in e[k+1] ≈ C·e[k]^q from the last three
// errors above errorFloor. Cosine iteration converges linearly, q ≈ 1.
// It returns 0 when the orbit has fewer than three usable points.
func ConvergenceOrder(trajectory []float64) float64 {
	errs := make([]float64, 0, len(trajectory))
	for _, x := range trajectory {
		e := math.Abs(x - cosine.Dottie)
		if e > errorFloor {
			errs = append(errs, e)
		}
	}
	if len(errs) < 3 {
		return 0
	}

	n := len(errs)
	e0, e1, e2 := errs[n-3], errs[n-2], errs[n-1]
	den := math.Log(e1 / e0)
	if den == 0 {
		return 0
	}
	return math.Log(e2/e1) / den
}
