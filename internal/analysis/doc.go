// Package analysis characterises cosine orbits after the fact.
//
//   - [LyapunovExponent]: mean log stretch along an orbit
//   - [SeparationExponent]: the same estimate from two nearby orbits
//   - [ConvergenceOrder]: order of convergence from the last errors
//   - [ReturnMap], [ReturnMapToASCII]: x[k] against x[k+1]
//
// # Stability
//
// A negative exponent means nearby starts are pulled together, which is
// why every start ends on the same fixed point:
//
//	lambda := analysis.LyapunovExponent(result.Trajectory)
//	if lambda < 0 {
//	    // attracting
//	}
package analysis
