package metrics

import (
	"math"

	"github.com/san-kum/dottie/internal/cosine"
)

// ratioFloor keeps rounding noise near the fixed point out of the ratios.
const ratioFloor = 1e-9

// Contraction is the geometric mean of successive error ratios
// |e[k+1] / e[k]|. For the cosine map it approaches sin(Dottie) ≈ 0.6736.
type Contraction struct {
	name    string
	prevErr float64
	sumLog  float64
	samples int
	started bool
}

func NewContraction() *Contraction {
	return &Contraction{name: "contraction"}
}

func (c *Contraction) Name() string {
	return c.name
}

func (c *Contraction) Observe(step int, x float64) {
	e := math.Abs(x - cosine.Dottie)
	if c.started && c.prevErr > ratioFloor && e > 0 {
		c.sumLog += math.Log(e / c.prevErr)
		c.samples++
	}
	c.prevErr = e
	c.started = true
}

func (c *Contraction) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return math.Exp(c.sumLog / float64(c.samples))
}

func (c *Contraction) Reset() {
	c.prevErr = 0
	c.sumLog = 0
	c.samples = 0
	c.started = false
}
