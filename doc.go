// Package ergo provides scoped transforms and canvas compositing for
// immediate-mode 2D drawing.
//
// # Overview
//
// Drawing code often wants to say "everything in this block is drawn
// rotated and shifted relative to where I am now" or "draw this block into
// an off-screen canvas, then use that canvas as a texture". ergo expresses
// both as scoped calls on a Context. The Context mutates its state, runs
// the callback, and restores the previous state when the callback returns
// or panics.
//
// # Quick Start
//
//	ctx := ergo.NewContext(512, 512)
//	cam := ctx.Camera()
//	inner := ergo.NewCanvas(64, 64)
//
//	ctx.Paint(inner, cam, func(*ergo.Camera) {
//	    ctx.Clear(ergo.DarkBrown)
//	    ctx.DrawLine(0, 0, 0, 1, 0.0625, ergo.Blue)
//	})
//
//	ctx.ApplyAll([]ergo.Transform{ergo.RotateTurns(0.125), ergo.Shift(0.5, 0)}, func(ctx *ergo.Context) {
//	    ctx.DrawCanvas(inner, 1)
//	})
//
//	_ = ctx.Screen().SavePNG("frame.png")
//
// # Composition Order
//
// Transforms are 4x4 float32 matrices (mgl32.Mat4). Apply(t) makes the new
// effective transform previous·t, so t is interpreted inside the current
// frame. ApplyAll pushes its list in order: the first transform is the
// outermost frame, and ApplyAll([A, B], f) draws exactly like
// Apply(A.Mul4(B), f). Rotate·Shift and Shift·Rotate are different
// transforms and draw in different places.
//
// # Coordinate System
//
// A Camera maps a logical window of two units, [-1,1]x[-1,1] at zoom 1,
// onto its render target. X grows right, Y grows down unless the camera is
// flipped. DrawCanvas fills that same window with a canvas, regardless of
// the canvas's pixel size, so canvases of different resolutions nest
// without extra scaling.
//
// # Thread Safety
//
// A Context is single-threaded. Separate Contexts are independent.
package ergo

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
