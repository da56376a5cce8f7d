// Package soft is a software implementation of skin.Graphics.
//
// It draws into an in-memory NRGBA image using the x/image rasterizer
// and scaler, with a rectangle clip stack matching the engine's
// PushClip/PopClip contract. It is the reference backend for tests and
// for environments without a GPU surface.
package soft
