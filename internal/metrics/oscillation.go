package metrics

import "github.com/san-kum/dottie/internal/cosine"

// Oscillation is the fraction of steps on which the iterate crossed the
// fixed point. cos has negative slope there, so the approach alternates.
type Oscillation struct {
	name      string
	prevSign  int
	crossings int
	samples   int
}

func NewOscillation() *Oscillation {
	return &Oscillation{name: "oscillation"}
}

func (o *Oscillation) Name() string {
	return o.name
}

func (o *Oscillation) Observe(step int, x float64) {
	sign := 0
	switch {
	case x > cosine.Dottie:
		sign = 1
	case x < cosine.Dottie:
		sign = -1
	}
	if sign == 0 {
		return
	}
	if o.prevSign != 0 {
		o.samples++
		if sign != o.prevSign {
			o.crossings++
		}
	}
	o.prevSign = sign
}

func (o *Oscillation) Value() float64 {
	if o.samples == 0 {
		return 0
	}
	return float64(o.crossings) / float64(o.samples)
}

func (o *Oscillation) Reset() {
	o.prevSign = 0
	o.crossings = 0
	o.samples = 0
}
