package ergo

import (
	"fmt"
	"log/slog"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Context holds the per-frame drawing state: the active camera, the render
// target it resolves to, and the model transform stack for that target.
//
// State only changes through scoped calls (Apply, ApplyAll, Paint), which
// restore it when their callback returns or panics.
//
// A Context is not safe for concurrent use.
type Context struct {
	screen *Canvas
	camera *Camera
	target *Canvas

	// stack[len-1] is the effective model transform. Entries below base
	// belong to render targets further out and are not visible here.
	stack []Transform
	base  int

	// level counts the Paint calls currently running.
	level int

	fit    CanvasFit
	interp xdraw.Interpolator
	raster vector.Rasterizer
	faces  faceCache
}

// NewContext creates a drawing context with a width x height screen.
//
//	ctx := ergo.NewContext(800, 600)
//	ctx.Clear(ergo.DarkBlue)
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	screen := options.screen
	if screen == nil {
		screen = NewCanvas(width, height)
	}
	cam := options.camera
	if cam == nil {
		cam = NewCamera()
	}

	c := &Context{
		screen: screen,
		stack:  make([]Transform, 1, 16),
		fit:    options.fit,
		interp: options.interp,
	}
	c.stack[0] = Identity()
	c.activate(cam)
	return c
}

// Screen returns the screen canvas.
func (c *Context) Screen() *Canvas {
	return c.screen
}

// Camera returns the active camera.
func (c *Context) Camera() *Camera {
	return c.camera
}

// Target returns the canvas that drawing currently lands in.
func (c *Context) Target() *Canvas {
	return c.target
}

// Model returns the effective model transform.
func (c *Context) Model() Transform {
	return c.stack[len(c.stack)-1]
}

// Depth returns the number of transforms pushed for the current target.
func (c *Context) Depth() int {
	return len(c.stack) - 1 - c.base
}

// PaintLevel returns how many Paint calls are currently running.
// It is zero while drawing onto the screen outside any Paint.
func (c *Context) PaintLevel() int {
	return c.level
}

// CanvasFit returns the policy DrawCanvas uses for non-square canvases.
func (c *Context) CanvasFit() CanvasFit {
	return c.fit
}

// Resize changes the screen dimensions. If the dimensions haven't changed,
// this is a no-op. Returns an error if width or height is <= 0.
//
// The old screen contents are discarded. Camera and transform state are
// preserved.
func (c *Context) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("ergo: invalid dimensions: width=%d, height=%d (both must be > 0)", width, height)
	}
	if c.screen.Width() == width && c.screen.Height() == height {
		return nil
	}

	onScreen := c.target == c.screen
	c.screen = NewCanvas(width, height)
	if onScreen {
		c.target = c.screen
	}
	Logger().Debug("ergo: screen resized", slog.Int("width", width), slog.Int("height", height))
	return nil
}

// activate makes cam the active camera and resolves its render target.
func (c *Context) activate(cam *Camera) {
	c.camera = cam
	if cam.RenderTarget != nil {
		c.target = cam.RenderTarget
	} else {
		c.target = c.screen
	}
}

// push nests t inside the current frame.
func (c *Context) push(t Transform) {
	c.stack = append(c.stack, c.Model().Mul4(t))
}

// pop drops the innermost transform. It never pops past the current
// target's base.
func (c *Context) pop() {
	if len(c.stack)-1 <= c.base {
		return
	}
	c.stack = c.stack[:len(c.stack)-1]
}

// truncate restores the stack to n entries.
func (c *Context) truncate(n int) {
	if n < c.base+1 {
		n = c.base + 1
	}
	if n < len(c.stack) {
		c.stack = c.stack[:n]
	}
}

// matrix returns the full local-to-pixel transform for the active target.
func (c *Context) matrix() Transform {
	return c.camera.Projection(c.target.Width(), c.target.Height()).Mul4(c.Model())
}
