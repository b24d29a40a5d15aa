// Package cli implements the stripe command-line interface.
//
// The commands load scene files, lay them out and report on the result.
// The CLI is built using cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - layout: Print the geometry of every frame as a table
//   - check: Verify the layout bookkeeping of each scene
//   - render: Draw a laid-out scene as box outlines
//   - view: Scroll and probe a scene interactively
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli
