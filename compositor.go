package ergo

import (
	"context"
	"log/slog"
)

// CanvasFit decides how DrawCanvas maps a canvas's pixels into the logical
// window [-1,1]x[-1,1].
type CanvasFit int

const (
	// FitStretch scales each axis independently so every canvas fills the
	// window exactly, whatever its aspect ratio.
	FitStretch CanvasFit = iota

	// FitHeight scales uniformly by height/2. The canvas spans y in
	// [-1,1] and x in [-1, 2*width/height - 1].
	FitHeight

	// FitWidth scales uniformly by width/2. The canvas spans x in
	// [-1,1] and y in [-1, 2*height/width - 1].
	FitWidth
)

// String returns the policy name.
func (f CanvasFit) String() string {
	switch f {
	case FitStretch:
		return "stretch"
	case FitHeight:
		return "height"
	case FitWidth:
		return "width"
	default:
		return "unknown"
	}
}

// Paint redirects drawing into canvas for the duration of body.
//
// The camera's current render target is saved and replaced with canvas,
// the camera is activated and body runs with it. Inside body the model
// stack starts empty: transforms applied by the caller do not leak into
// the canvas. When body returns or panics, the camera's render target, the
// previously active camera and the caller's model stack are restored, so
// the active target afterwards is exactly what it was before. Paint calls
// nest to any depth.
//
// A nil canvas paints onto the screen, like a camera without a
// RenderTarget.
//
//	ctx.Paint(outer, cam, func(cam *ergo.Camera) {
//	    ctx.Clear(ergo.DarkGreen)
//	    ctx.Paint(inner, cam, func(*ergo.Camera) {
//	        ctx.Clear(ergo.DarkBrown)
//	    })
//	    ctx.DrawCanvas(inner, 1)
//	})
func (c *Context) Paint(canvas *Canvas, cam *Camera, body func(*Camera)) {
	prevTarget := cam.RenderTarget
	prevCamera := c.camera
	prevBase := c.base

	cam.RenderTarget = canvas
	c.activate(cam)
	c.stack = append(c.stack, Identity())
	c.base = len(c.stack) - 1
	c.level++

	if debugEnabled() {
		Logger().LogAttrs(context.Background(), slog.LevelDebug, "ergo: paint canvas",
			slog.Int("width", c.target.Width()),
			slog.Int("height", c.target.Height()),
			slog.Int("paint_level", c.level))
	}

	defer func() {
		c.level--
		c.stack = c.stack[:c.base]
		c.base = prevBase
		cam.RenderTarget = prevTarget
		c.activate(prevCamera)
	}()

	body(cam)
}

// DrawCanvas draws canvas as a textured quad filling [-1,1]x[-1,1] of the
// caller's current frame. Use Apply around it to position, rotate or
// scale the quad.
//
// Internally the quad is drawn at the origin under Shift(-1,-1)·s, where s
// maps the canvas's pixels onto a two-unit square according to the
// Context's CanvasFit; with FitHeight, s is Downscale(height/2).
//
// Opacity multiplies the tint alpha: 0 leaves the target untouched, 1
// draws the canvas as is. Values outside [0,1] are not validated.
// The caller's stack depth is unchanged.
func (c *Context) DrawCanvas(canvas *Canvas, opacity float32) {
	w := float32(canvas.Width())
	h := float32(canvas.Height())
	if w == 0 || h == 0 {
		return
	}

	var s Transform
	switch c.fit {
	case FitHeight:
		s = Downscale(h / 2)
	case FitWidth:
		s = Downscale(w / 2)
	default:
		s = Scale(2/w, 2/h)
	}

	c.Apply(Shift(-1, -1).Mul4(s), func(ctx *Context) {
		ctx.DrawTexture(canvas, 0, 0, White.WithAlpha(opacity))
	})
}
