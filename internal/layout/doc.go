// Package layout implements the Stripe box-layout engine for retained frame trees.
//
// Every container is a [Stripe]: it sequences its flow children along one
// axis (its length) and sizes them on the other (its depth). Sizes settle in
// two passes. Shrinking happens eagerly: a child that changes size notifies
// its parent, which adjusts its tracked content length and, when it shrinks
// to content, resizes itself and notifies its own parent. Expansion happens
// on the next tick, top-down, when [NextFrame] relayouts every dirty Stripe:
// expanding children receive the space left over after shrinking, then the
// sequence is positioned.
//
// Types are re-exported through the root stripe package for public consumption.
package layout
