// Package render flattens a document layer tree into the ordered list
// of cels to composite for a frame.
//
// A [Plan] walks visible layers depth first and emits one [Item] per
// image layer (or per group, in compose-groups mode). Within each
// group, per-cel z-index overrides reorder siblings: a positive z
// promotes a cel toward the top of its sibling span, a negative z
// sinks it, and the magnitude is naturally bounded by the span size.
// Empty cels still occupy a slot and act as barriers for the
// arithmetic. Groups are opaque to z: a cel never leaves its sibling
// span.
//
// Building a plan is a pure function of the layer tree, the frame, and
// the z-indices; identical inputs always produce identical plans. The
// plan borrows cel and layer references and must not outlive the
// document snapshot it was built from.
package render
