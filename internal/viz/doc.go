// Package viz shows a sorting session in the terminal using Bubble Tea.
//
//   - [Model]: live view driving a sim.Session, one comparison per tick
//   - [Canvas]: half-block colour canvas implementing render.Surface
//   - [RunInteractive]: algorithm menu in front of the live view
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart with the initial bars
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q/Esc - Quit
package viz
