package ergo

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// DrawTextureOptions specifies optional parameters for DrawTextureEx.
type DrawTextureOptions struct {
	// Width and Height are the destination size in local units.
	// Zero uses the source size in pixels.
	Width, Height float32

	// Source is the rectangle of the texture to sample.
	// If nil, the whole texture is used.
	Source *image.Rectangle
}

// DrawTexture draws tex with its top-left corner at (x, y), one local unit
// per texel, under the current transform. The tint multiplies every texel;
// White draws the texture unchanged.
func (c *Context) DrawTexture(tex *Canvas, x, y float32, tint Color) {
	c.DrawTextureEx(tex, x, y, tint, DrawTextureOptions{})
}

// DrawTextureEx draws tex with its top-left corner at (x, y) and advanced
// options. Rotations and arbitrary affine transforms are supported.
func (c *Context) DrawTextureEx(tex *Canvas, x, y float32, tint Color, opts DrawTextureOptions) {
	sr := tex.img.Rect
	if opts.Source != nil {
		sr = opts.Source.Intersect(sr)
	}
	if sr.Empty() {
		return
	}

	w, h := opts.Width, opts.Height
	if w == 0 {
		w = float32(sr.Dx())
	}
	if h == 0 {
		h = float32(sr.Dy())
	}

	local := Compose(
		Shift(x, y),
		Scale(w/float32(sr.Dx()), h/float32(sr.Dy())),
		Shift(-float32(sr.Min.X), -float32(sr.Min.Y)),
	)
	c.drawImage(tex.img, sr, local, tint)
}

// drawImage composites the sr part of src onto the render target. local
// maps source pixel coordinates into the current local frame.
func (c *Context) drawImage(src image.Image, sr image.Rectangle, local Transform, tint Color) {
	if tint.A <= 0 {
		return
	}
	s2d := aff3(c.matrix().Mul4(local))
	if s2d[0]*s2d[4]-s2d[1]*s2d[3] == 0 {
		// Degenerate quad: nothing visible.
		return
	}
	if !tint.IsOpaqueWhite() {
		src = &tintedImage{Image: src, tint: tint}
	}
	c.interp.Transform(c.target.img, s2d, src, sr, xdraw.Over, nil)
}

// aff3 projects t onto the z=0 plane as a 2x3 affine matrix.
func aff3(t Transform) f64.Aff3 {
	return f64.Aff3{
		float64(t[0]), float64(t[4]), float64(t[12]),
		float64(t[1]), float64(t[5]), float64(t[13]),
	}
}

// tintedImage multiplies every pixel of an image by a tint.
type tintedImage struct {
	image.Image
	tint Color
}

func (t *tintedImage) ColorModel() color.Model {
	return color.RGBA64Model
}

func (t *tintedImage) At(x, y int) color.Color {
	r, g, b, a := t.Image.At(x, y).RGBA()
	ta := clamp01(t.tint.A)
	mul := func(v uint32, k float32) uint16 {
		return uint16(float32(v)*k + 0.5)
	}
	return color.RGBA64{
		R: mul(r, clamp01(t.tint.R)*ta),
		G: mul(g, clamp01(t.tint.G)*ta),
		B: mul(b, clamp01(t.tint.B)*ta),
		A: mul(a, ta),
	}
}
