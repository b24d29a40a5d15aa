// Package scene loads declarative frame trees from TOML or YAML documents
// and builds live layout trees from them.
//
// A scene names a viewport, an optional style sheet and a root frame:
//
//	width = 80
//	height = 24
//	sheet = "theme.toml"
//
//	[root]
//	name = "window"
//	layout_dim = "y"
//
//	[[root.children]]
//	name = "toolbar"
//	style = "toolbar"
//
// Frame nodes accept every style attribute inline; inline attributes
// override the named style the node refers to.
package scene
