// Package render draws laid-out frame trees into a character canvas.
//
// Each frame is drawn as a box outline labelled with its name. Geometry is
// converted to cells with a scale, so that trees laid out in pixels can be
// inspected in a terminal.
package render
