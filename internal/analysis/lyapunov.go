package analysis

import (
	"math"

	"github.com/san-kum/dottie/internal/cosine"
)

// LyapunovExponent averages ln|f'(x)| = ln|sin x| over every point of the
// orbit that has a successor. Points where sin x is zero are skipped.
// Near the Dottie number the value tends to ln(sin 0.739...) ≈ -0.395.
func LyapunovExponent(trajectory []float64) float64 {
	if len(trajectory) < 2 {
		return 0
	}

	sumLog := 0.0
	count := 0
	for _, x := range trajectory[:len(trajectory)-1] {
		s := math.Abs(math.Sin(x))
		if s == 0 {
			continue
		}
		sumLog += math.Log(s)
		count++
	}

	if count == 0 {
		return 0
	}
	return sumLog / float64(count)
}

// SeparationExponent estimates the exponent by running x0 and
// x0+perturbation side by side for the given number of steps and
// measuring how fast they approach. The pair is pulled back to the
// initial separation after every step so it never collapses into one
// float64.
func SeparationExponent(x0, perturbation float64, steps int) float64 {
	if perturbation == 0 || steps <= 0 {
		return 0
	}

	x := x0
	xp := x0 + perturbation
	d0 := math.Abs(perturbation)

	sumLog := 0.0
	count := 0

	for i := 0; i < steps; i++ {
		x = cosine.Cos(x)
		xp = cosine.Cos(xp)

		sep := math.Abs(xp - x)
		if sep == 0 {
			break
		}
		sumLog += math.Log(sep / d0)
		count++

		xp = x + (xp-x)*(d0/sep)
	}

	if count == 0 {
		return 0
	}
	return sumLog / float64(count)
}
