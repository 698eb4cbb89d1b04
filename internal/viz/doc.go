// Package viz renders cosine orbits in the terminal.
//
//   - [Watch]: Bubble Tea model that steps the orbit live
//   - [Plot], [PlotErrors]: asciigraph charts of a finished trajectory
//   - [Sparkline], [ProgressBar]: small inline gauges
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from the starting value
//	Q     - Quit
package viz
