package metrics

import (
	"math"

	"github.com/san-kum/dottie/internal/cosine"
)

// Distance is the gap between the latest iterate and the Dottie number.
type Distance struct {
	name string
	last float64
	seen bool
}

func NewDistance() *Distance {
	return &Distance{name: "distance"}
}

func (d *Distance) Name() string {
	return d.name
}

func (d *Distance) Observe(step int, x float64) {
	d.last = math.Abs(x - cosine.Dottie)
	d.seen = true
}

func (d *Distance) Value() float64 {
	if !d.seen {
		return math.NaN()
	}
	return d.last
}

func (d *Distance) Reset() {
	d.last = 0
	d.seen = false
}
