// Package stripe provides a retained box-layout engine for frame trees.
//
// Users import this single package for the complete public API: frame and
// container construction, style snapshots, the per-tick layout pass, hit
// testing and scrolling.
//
// A tree is built from a root [Stripe] and leaf [Frame] values:
//
//	root := stripe.NewStripe(stripe.WithLayoutDim(stripe.DimX), stripe.WithSize(300, 100))
//	root.Append(stripe.NewFrame(stripe.WithSize(50, 20)))
//	stripe.NextFrame(&root.Frame)
//
// Size changes propagate upward immediately; expansion and positioning run
// on the next call to [NextFrame].
package stripe
