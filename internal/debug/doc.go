// Package debug provides optional file-based debug logging.
//
// When the STRIPE_DEBUG environment variable is set to a file path, debug
// messages are appended to that file as structured charmbracelet/log
// records. Otherwise, logging is a no-op.
package debug
