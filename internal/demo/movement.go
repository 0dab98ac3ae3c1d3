package demo

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/ergo"
)

// lookSensitivity converts pointer offset into yaw and pitch turns.
const lookSensitivity = 0.5

// Movement shows the nested canvases through a free view: zoom, position
// and aircraft-style yaw, pitch and roll, all measured in turns. The view
// prints its own model matrix and marks the outer canvas's top-left
// corner on the screen.
type Movement struct {
	X, Y             float32
	Yaw, Pitch, Roll float32
	Zoom             float32
	// Pointer is a logical screen position, shown in the readout and
	// used by Look.
	Pointer mgl32.Vec2
	// Background is the screen clear color.
	Background ergo.Color

	outer *ergo.Canvas
	inner *ergo.Canvas
}

// NewMovement returns the scene with a level view at three-quarter size.
func NewMovement() *Movement {
	return &Movement{
		Zoom:       0.75,
		Background: ergo.DarkBlue,
		outer:      ergo.NewCanvas(512, 512),
		inner:      ergo.NewCanvas(128, 128),
	}
}

// Pan moves the view by (dx, dy) logical units.
func (m *Movement) Pan(dx, dy float32) {
	m.X += dx
	m.Y += dy
}

// Turn adds turns of clockwise roll.
func (m *Movement) Turn(turns float32) {
	m.Roll += turns
}

// Scroll zooms in by a factor of 2^(steps/4).
func (m *Movement) Scroll(steps float32) {
	m.Zoom *= math32.Pow(2, steps*scrollSensitivity)
}

// Look points the view at (px, py): yaw follows the horizontal offset from
// the view position, pitch the vertical one. It also records the pointer.
func (m *Movement) Look(px, py float32) {
	m.Pointer = mgl32.Vec2{px, py}
	if m.Zoom == 0 {
		return
	}
	m.Yaw = (px/m.Zoom - m.X) * lookSensitivity
	m.Pitch = (-py/m.Zoom - m.Y) * lookSensitivity
}

// Transform returns the view transform.
func (m *Movement) Transform() ergo.Transform {
	return ergo.Compose(
		ergo.Upscale(m.Zoom),
		ergo.Shift(m.X, m.Y),
		ergo.RotateAxis(m.Pitch*tau, mgl32.Vec3{1, 0, 0}),
		ergo.RotateAxis(-m.Yaw*tau, mgl32.Vec3{0, 1, 0}),
		ergo.RotateAxis(-m.Roll*tau, mgl32.Vec3{0, 0, 1}),
	)
}

// Render implements Scene.
func (m *Movement) Render(ctx *ergo.Context, t float32) {
	ctx.Clear(m.Background)

	ctx.Paint(m.outer, ctx.Camera(), func(cam *ergo.Camera) {
		ctx.Clear(ergo.DarkGreen)
		ctx.Paint(m.inner, cam, func(*ergo.Camera) {
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
				ctx.DrawCanvas(m.inner, 1)
			})
			ctx.Apply(shift.Mul4(rotate), func(ctx *ergo.Context) {
				ctx.DrawCanvas(m.inner, 1)
			})
		})
	})

	var cornerX, cornerY float32
	ctx.Apply(m.Transform(), func(ctx *ergo.Context) {
		ctx.DrawCanvas(m.outer, 1)

		label := ergo.TextParams{FontSize: 64, FontScale: 1.0 / 512, Color: ergo.Yellow}
		small := label
		small.FontScale = 1.0 / 1024
		ctx.DrawMultilineText(formatTransform(ctx.Model()), -0.75, -0.25, 1.0/16, small)
		ctx.DrawText(fmt.Sprintf("Pointer X: %.3f", m.Pointer.X()), -0.375, 0.125, label)
		ctx.DrawText(fmt.Sprintf("Pointer Y: %.3f", m.Pointer.Y()), -0.375, 0.25, label)

		cornerX, cornerY = ergo.TransformPoint(ctx.Model(), -1, -1)
	})

	ctx.DrawCircle(cornerX, cornerY, 1.0/64, ergo.White)
}

// formatTransform prints t row by row.
func formatTransform(t ergo.Transform) string {
	var b strings.Builder
	b.WriteString("Transform:")
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&b, "\n%7.3f %7.3f %7.3f %7.3f", t.At(r, 0), t.At(r, 1), t.At(r, 2), t.At(r, 3))
	}
	return b.String()
}
