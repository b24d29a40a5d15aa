// Package style implements the style cascade consumed by the layout engine.
//
// A [Style] holds optional layout and ink attributes. Every attribute
// remembers whether it was set explicitly, so that a style can inherit the
// unset ones from a base style while keeping its own. A [Sheet] stores named
// styles, resolves their base chains and turns the result into the
// immutable snapshots the layout engine reads.
//
// Sheets are loaded from TOML or YAML documents:
//
//	[styles.toolbar]
//	layout_dim = "x"
//	spacing = [10, 0]
//
//	[styles.button]
//	size = [50, 20]
//	align = ["center", "center"]
package style
