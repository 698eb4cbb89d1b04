package cosine

import (
	"math"
	"math/big"
)

// Dottie is the float64 fixed point of Cos.
const Dottie = 0.7390851332151607

const (
	// reducePrec covers the exponent range of float64 plus the bits kept
	// for the series argument.
	reducePrec = 1400
	seriesPrec = 240
)

const piDigits = "3.14159265358979323846264338327950288419716939937510" +
	"58209749445923078164062862089986280348253421170679" +
	"82148086513282306647093844609550582231725359408128" +
	"48111745028410270193852110555964462294895493038196" +
	"44288109756659334461284756482337867831652712019091" +
	"45648566923460348610454326648213393607260249141273" +
	"72458700660631558817488152092096282925409171536436" +
	"78925903600113305305488204665213841469519415116094"

var pi, twoPi = mustPi()

func mustPi() (*big.Float, *big.Float) {
	p, _, err := big.ParseFloat(piDigits, 10, reducePrec, big.ToNearestEven)
	if err != nil {
		panic("cosine: bad pi constant: " + err.Error())
	}
	tp := new(big.Float).SetPrec(reducePrec).Mul(p, big.NewFloat(2))
	return p, tp
}

// Cos returns the cosine of the radian argument x, rounded to the
// nearest float64.
//
// Special cases are:
//
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	if x == 0 {
		return 1
	}
	return series(reduce(x))
}

// reduce maps |x| into [0, pi]. cos is even and 2pi periodic so the
// result has the same cosine as x.
func reduce(x float64) *big.Float {
	r := new(big.Float).SetPrec(reducePrec).SetFloat64(math.Abs(x))
	if r.Cmp(twoPi) >= 0 {
		q := new(big.Float).SetPrec(reducePrec).Quo(r, twoPi)
		k, _ := q.Int(nil)
		kf := new(big.Float).SetPrec(reducePrec).SetInt(k)
		r.Sub(r, kf.Mul(kf, twoPi))
		r.Abs(r)
	}
	if r.Cmp(pi) > 0 {
		r.Sub(twoPi, r)
		r.Abs(r)
	}
	return r
}

// series sums 1 - r²/2! + r⁴/4! - ... until the terms drop below the
// working precision.
func series(r *big.Float) float64 {
	r2 := new(big.Float).SetPrec(seriesPrec).Mul(r, r)
	sum := new(big.Float).SetPrec(seriesPrec).SetInt64(1)
	term := new(big.Float).SetPrec(seriesPrec).SetInt64(1)
	div := new(big.Float).SetPrec(seriesPrec)

	for n := int64(2); ; n += 2 {
		term.Mul(term, r2)
		term.Quo(term, div.SetInt64(n*(n-1)))
		term.Neg(term)
		sum.Add(sum, term)
		if term.Sign() == 0 || term.MantExp(nil) < -seriesPrec {
			break
		}
	}

	f, _ := sum.Float64()
	return f
}
