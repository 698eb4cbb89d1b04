// Package fixedpoint iterates the cosine map until it reaches a fixed point.
//
// The loop is the one-dimensional discrete system
//
//	x[k+1] = cos(x[k])
//
// stopped the first time cos(x) == x holds exactly in float64. Every
// finite starting value ends on [cosine.Dottie].
//
//   - [Iterator]: runs the loop, paces it and prints progress in place
//   - [Observer], [Metric]: per-step hooks
//   - [ParseStart], [ReadStart]: turn user text into a starting value
//
// # Example
//
//	it := fixedpoint.New(config.DefaultConfig(), os.Stdout)
//	result, err := it.Run(ctx, 0)
//
// Iterators are not safe for concurrent use.
package fixedpoint
