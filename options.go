package ergo

import (
	xdraw "golang.org/x/image/draw"
)

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default: new screen canvas, camera at zoom 1, stretched canvases
//	ctx := ergo.NewContext(512, 512)
//
//	// Original height-driven canvas mapping, crisp texels
//	ctx := ergo.NewContext(512, 512,
//	    ergo.WithCanvasFit(ergo.FitHeight),
//	    ergo.WithInterpolator(xdraw.NearestNeighbor))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	screen *Canvas
	camera *Camera
	fit    CanvasFit
	interp xdraw.Interpolator
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		screen: nil, // Will be created if nil
		camera: nil, // Will be NewCamera() if nil
		fit:    FitStretch,
		interp: xdraw.ApproxBiLinear,
	}
}

// WithScreen uses an existing canvas as the screen.
// The width and height passed to NewContext are then ignored.
func WithScreen(screen *Canvas) ContextOption {
	return func(o *contextOptions) {
		o.screen = screen
	}
}

// WithCamera sets the camera that is active when the Context is created.
// Its RenderTarget decides the initial target.
func WithCamera(cam *Camera) ContextOption {
	return func(o *contextOptions) {
		o.camera = cam
	}
}

// WithCanvasFit sets how DrawCanvas maps non-square canvases into the
// logical window. See CanvasFit.
func WithCanvasFit(fit CanvasFit) ContextOption {
	return func(o *contextOptions) {
		o.fit = fit
	}
}

// WithInterpolator sets the sampler used for textured quads.
// Nil keeps the default (xdraw.ApproxBiLinear).
func WithInterpolator(interp xdraw.Interpolator) ContextOption {
	return func(o *contextOptions) {
		if interp != nil {
			o.interp = interp
		}
	}
}
