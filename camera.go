package ergo

import "github.com/go-gl/mathgl/mgl32"

// Camera selects where drawing lands and how logical coordinates map onto
// it. At zoom 1 the camera shows a logical window two units wide,
// [-1,1]x[-1,1], stretched over the whole render target.
//
// Only one camera is active per Context. Swapping a camera's RenderTarget
// and reactivating it is how Context.Paint enters and leaves canvases.
type Camera struct {
	// RenderTarget is the canvas drawing lands in. Nil means the screen.
	RenderTarget *Canvas

	// Center is the logical point shown at the middle of the target.
	Center mgl32.Vec2

	// Zoom scales the logical window per axis. {1, 1} shows [-1,1]x[-1,1];
	// larger values zoom in. Nested canvases share the camera, so
	// changing it affects every level.
	Zoom mgl32.Vec2

	// FlipY makes Y grow upward.
	FlipY bool
}

// NewCamera returns a camera targeting the screen at zoom 1.
func NewCamera() *Camera {
	return &Camera{Zoom: mgl32.Vec2{1, 1}}
}

// Projection returns the transform from logical coordinates to pixel
// coordinates of a width x height target.
func (c *Camera) Projection(width, height int) Transform {
	hw := float32(width) / 2
	hh := float32(height) / 2
	sy := c.Zoom.Y()
	if c.FlipY {
		sy = -sy
	}
	return Compose(
		Shift(hw, hh),
		Scale(hw, hh),
		Scale(c.Zoom.X(), sy),
		Shift(-c.Center.X(), -c.Center.Y()),
	)
}

// ToPixel maps a logical point to pixel coordinates of a width x height
// target.
func (c *Camera) ToPixel(x, y float32, width, height int) (float32, float32) {
	return TransformPoint(c.Projection(width, height), x, y)
}

// ToLogical maps pixel coordinates of a width x height target back to the
// logical window. It reports false when the zoom is zero on either axis.
func (c *Camera) ToLogical(px, py float32, width, height int) (float32, float32, bool) {
	return InversePoint(c.Projection(width, height), px, py)
}
