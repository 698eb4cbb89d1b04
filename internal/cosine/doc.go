// Package cosine provides a correctly rounded cosine for float64.
//
// The standard library's [math.Cos] is accurate to about one ulp. That is
// enough for most work but not for fixed point iteration under exact
// equality: near the Dottie number math.Cos maps 0.7390851332151606 to
// 0.7390851332151608 and back, so x = cos(x) settles into a 2-cycle and
// never satisfies cos(x) == x.
//
// [Cos] evaluates the series in extended precision with math/big and
// rounds once, so the float64 orbit lands on [Dottie] exactly.
//
// # Example
//
//	x := 0.0
//	for x != cosine.Cos(x) {
//		x = cosine.Cos(x)
//	}
//	// x == cosine.Dottie
package cosine
