package demo

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/ergo"
)

// Nested paints a small canvas into a larger one twice, once under
// rotation then translation and once the other way round, then spins the
// larger canvas on the screen.
type Nested struct {
	// Background is the screen clear color.
	Background ergo.Color

	outer *ergo.Canvas
	inner *ergo.Canvas
}

// NewNested allocates the scene canvases.
func NewNested() *Nested {
	return &Nested{
		Background: ergo.DarkBlue,
		outer:      ergo.NewCanvas(256, 256),
		inner:      ergo.NewCanvas(64, 64),
	}
}

// Render implements Scene.
func (n *Nested) Render(ctx *ergo.Context, t float32) {
	ctx.Clear(n.Background)

	ctx.Paint(n.outer, ctx.Camera(), func(cam *ergo.Camera) {
		ctx.Clear(ergo.DarkGreen)

		ctx.Paint(n.inner, cam, func(*ergo.Camera) {
			ctx.Clear(ergo.DarkBrown)
			ctx.ApplyAll([]ergo.Transform{ergo.Shift(-0.5, 0), ergo.Downscale(256)}, func(ctx *ergo.Context) {
				ctx.DrawText("sample text", 0, 0, ergo.TextParams{FontSize: 64, Color: ergo.Yellow})
			})
			ctx.Apply(ergo.RotateTurns(t/3), func(ctx *ergo.Context) {
				ctx.DrawLine(0, 0, 0, 1, 0.25*0.25, ergo.Blue)
			})
		})

		rotation := ergo.RotateTurns(t / 5)
		translation := ergo.Shift(math32.Sin(t*2)/2, 0)

		// Half size so both copies fit.
		ctx.Apply(ergo.Downscale(2), func(ctx *ergo.Context) {
			ctx.ApplyAll([]ergo.Transform{rotation, translation}, func(ctx *ergo.Context) {
				ctx.DrawCanvas(n.inner, 1)
			})
			ctx.ApplyAll([]ergo.Transform{translation, rotation}, func(ctx *ergo.Context) {
				ctx.DrawCanvas(n.inner, 1)
			})
		})
	})

	ctx.Apply(ergo.RotateYPR(t/8, t/8, t/8), func(ctx *ergo.Context) {
		ctx.DrawCanvas(n.outer, 1)
	})
}
