package ergo

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFontSize is the rasterization size used when TextParams.FontSize
// is zero.
const DefaultFontSize = 20

// TextParams controls how text is drawn.
type TextParams struct {
	// FontSize is the rasterization size in pixels.
	FontSize int

	// FontScale is the size of one font pixel in local units. Zero means 1.
	// Drawing at FontSize 64 with FontScale 1/256 gives crisp glyphs a
	// quarter of a unit tall.
	FontScale float32

	// Color is the text color.
	Color Color
}

func (p TextParams) size() int {
	if p.FontSize <= 0 {
		return DefaultFontSize
	}
	return p.FontSize
}

func (p TextParams) scale() float32 {
	if p.FontScale == 0 {
		return 1
	}
	return p.FontScale
}

// DrawText draws a single line of text with its baseline starting at
// (x, y) in the current local frame. Text uses the bundled Go Regular font.
func (c *Context) DrawText(text string, x, y float32, params TextParams) {
	if text == "" || params.Color.A <= 0 {
		return
	}
	face, err := c.face(params.size())
	if err != nil {
		Logger().Warn("ergo: text face unavailable", slog.String("error", err.Error()))
		return
	}

	b, _ := font.BoundString(face, text)
	r := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	if r.Empty() {
		return
	}

	mask := image.NewAlpha(r)
	d := font.Drawer{Dst: mask, Src: image.Opaque, Face: face}
	d.DrawString(text)

	sprite := image.NewRGBA(r)
	draw.DrawMask(sprite, r, image.NewUniform(params.Color), image.Point{}, mask, r.Min, draw.Src)

	c.drawImage(sprite, r, Shift(x, y).Mul4(Upscale(params.scale())), White)
}

// DrawMultilineText draws text split at newlines, one line per
// lineSpacing local units, the first baseline starting at (x, y).
func (c *Context) DrawMultilineText(text string, x, y, lineSpacing float32, params TextParams) {
	for _, line := range strings.Split(text, "\n") {
		c.DrawText(line, x, y, params)
		y += lineSpacing
	}
}

// MeasureText returns the advance width and line height of a single line
// of text in local units.
func (c *Context) MeasureText(text string, params TextParams) (width, height float32) {
	face, err := c.face(params.size())
	if err != nil {
		return 0, 0
	}
	s := params.scale()
	adv := font.MeasureString(face, text)
	return float32(adv) / 64 * s, float32(face.Metrics().Height) / 64 * s
}

// faceCache holds font faces by pixel size.
type faceCache map[int]font.Face

var (
	goRegularOnce sync.Once
	goRegular     *opentype.Font
	goRegularErr  error
)

func defaultFont() (*opentype.Font, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)
	})
	return goRegular, goRegularErr
}

func (c *Context) face(size int) (font.Face, error) {
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	fnt, err := defaultFont()
	if err != nil {
		return nil, fmt.Errorf("ergo: parse default font: %w", err)
	}
	f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("ergo: font face size %d: %w", size, err)
	}
	if c.faces == nil {
		c.faces = make(faceCache)
	}
	c.faces[size] = f
	return f, nil
}
