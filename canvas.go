package ergo

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
)

// Canvas is an off-screen color buffer with fixed pixel dimensions.
// It is both a render target (see Context.Paint) and a texture source
// (see Context.DrawCanvas, Context.DrawTexture).
//
// A Canvas owns no transform state. Create canvases once and reuse them
// every frame; painting into a canvas does not clear it.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// NewCanvasFromImage creates a canvas holding a copy of img.
func NewCanvasFromImage(img image.Image) *Canvas {
	b := img.Bounds()
	c := NewCanvas(b.Dx(), b.Dy())
	draw.Draw(c.img, c.img.Bounds(), img, b.Min, draw.Src)
	return c
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.img.At(x, y)
}

// Pixel returns the straight-alpha color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (c *Canvas) Pixel(x, y int) Color {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return Transparent
	}
	return FromColor(c.img.RGBAAt(x, y))
}

// Image returns the backing image. Drawing into it bypasses the Context.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// fill overwrites every pixel with col.
func (c *Canvas) fill(col Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// EncodePNG writes the canvas as PNG to the given writer.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("ergo: save png: %w", err)
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("ergo: encode png %s: %w", path, err)
	}
	return f.Close()
}
