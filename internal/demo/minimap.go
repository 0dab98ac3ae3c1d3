package demo

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/ergo"
)

// scrollSensitivity is the zoom exponent per scroll step, base 2.
const scrollSensitivity = 0.25

// Minimap draws a map canvas full screen and again as a translucent,
// movable, rotatable overlay. A pointer is marked in both frames.
type Minimap struct {
	// X and Y place the overlay center in screen logical units.
	X, Y float32
	// Rot turns the overlay clockwise, in radians.
	Rot float32
	// Zoom is the overlay size relative to the screen.
	Zoom float32
	// Pointer is a logical screen position marked through the overlay
	// transform and its inverse.
	Pointer mgl32.Vec2
	// Background is the map canvas clear color.
	Background ergo.Color

	minimap *ergo.Canvas
	object  *ergo.Canvas
}

// NewMinimap returns the scene in its starting state: a quarter-size
// overlay near the bottom-right corner.
func NewMinimap() *Minimap {
	return &Minimap{
		X:          0.75,
		Y:          0.75,
		Zoom:       0.25,
		Background: ergo.DarkGreen,
		minimap:    ergo.NewCanvas(512, 512),
		object:     ergo.NewCanvas(128, 128),
	}
}

// Pan moves the overlay by (dx, dy) logical units.
func (m *Minimap) Pan(dx, dy float32) {
	m.X += dx
	m.Y += dy
}

// Turn rotates the overlay clockwise by radians.
func (m *Minimap) Turn(radians float32) {
	m.Rot += radians
}

// Scroll zooms the overlay in by a factor of 2^(steps/4).
func (m *Minimap) Scroll(steps float32) {
	m.Zoom *= math32.Pow(2, steps*scrollSensitivity)
}

// Transform returns the overlay transform: the minimap's [-1,1] window
// scaled, turned and then moved into place on the screen.
func (m *Minimap) Transform() ergo.Transform {
	return ergo.Compose(ergo.Shift(m.X, m.Y), ergo.RotateCW(m.Rot), ergo.Upscale(m.Zoom))
}

// Render implements Scene.
func (m *Minimap) Render(ctx *ergo.Context, t float32) {
	label := ergo.TextParams{FontSize: 64, FontScale: 1.0 / 512, Color: ergo.Yellow}

	ctx.Paint(m.minimap, ctx.Camera(), func(cam *ergo.Camera) {
		ctx.Clear(m.Background)
		ctx.DrawLine(0, 0, 0, 1, 1.0/32, ergo.Magenta)

		ctx.Paint(m.object, cam, func(*ergo.Camera) {
			ctx.Clear(ergo.DarkBrown)
			ctx.DrawText("Sample Text", -0.75, 0, ergo.TextParams{FontSize: 64, FontScale: 1.0 / 256, Color: ergo.Orange})
			ctx.Apply(ergo.RotateCW(t/3*tau), func(ctx *ergo.Context) {
				ctx.DrawLine(0, 0, 0, 1, 0.25*0.25, ergo.Blue)
			})
		})

		rotate := ergo.RotateCW(t / 5 * tau)
		shift := ergo.Shift(math32.Sin(t*2)/2, 0)

		ctx.Apply(ergo.Downscale(2), func(ctx *ergo.Context) {
			ctx.Apply(rotate.Mul4(shift), func(ctx *ergo.Context) {
				ctx.DrawCanvas(m.object, 1)
			})
			ctx.Apply(shift.Mul4(rotate), func(ctx *ergo.Context) {
				ctx.DrawCanvas(m.object, 1)
			})
		})
		ctx.DrawMultilineText(m.pointerLabel(), -1+1.0/32, -1+1.0/8, 0.125, label)
	})

	ctx.DrawCanvas(m.minimap, 1)
	ctx.DrawRectangleLines(-1, -1, 2, 2, 1.0/32, ergo.Red)

	overlay := m.Transform()
	ctx.Apply(overlay, func(ctx *ergo.Context) {
		ctx.DrawCanvas(m.minimap, 0.5)
		ctx.DrawRectangleLines(-1, -1, 2, 2, 1.0/32, ergo.Yellow)
	})
	ctx.DrawMultilineText(m.pointerLabel(), -1+1.0/32, -1+1.0/8, 0.125, label)

	px, py := m.Pointer.X(), m.Pointer.Y()
	if ix, iy, ok := ergo.InversePoint(overlay, px, py); ok {
		ctx.DrawCircle(ix, iy, 1.0/64, ergo.Yellow)
	}
	ox, oy := ergo.TransformPoint(overlay, px, py)
	ctx.DrawCircle(ox, oy, 1.0/64, ergo.Red)
}

func (m *Minimap) pointerLabel() string {
	return fmt.Sprintf("Pointer X: %.3f\nPointer Y: %.3f", m.Pointer.X(), m.Pointer.Y())
}
