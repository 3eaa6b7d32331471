// Package viz provides terminal-based visualization of effective-interaction
// sweeps.
//
// The package implements an interactive convergence viewer on the Bubble Tea
// framework: each tick evaluates the next truncation window of an
// infinite-lattice shape and plots the running omega and gamma series.
//
// # Key Bindings
//
//	Space - Pause/Resume the sweep
//	R     - Restart from truncation 1
//	Tab   - Toggle between omega and gamma plots
//	Q     - Quit
package viz
