package ergo

import (
	"testing"
)

func TestApplyNestsTransform(t *testing.T) {
	ctx := NewContext(16, 16)
	a := RotateTurns(0.125)
	b := Shift(0.5, -0.25)

	var nested, single Transform
	ctx.Apply(a, func(ctx *Context) {
		ctx.Apply(b, func(ctx *Context) {
			nested = ctx.Model()
		})
	})
	ctx.Apply(a.Mul4(b), func(ctx *Context) {
		single = ctx.Model()
	})

	if !nested.ApproxEqualThreshold(single, epsilon) {
		t.Errorf("Apply(a, Apply(b)) = %v, want Apply(a·b) = %v", nested, single)
	}
}

func TestApplyAllOrder(t *testing.T) {
	ctx := NewContext(16, 16)
	a := Shift(1, 0)
	b := RotateDeg(90)
	c := Upscale(2)

	var all, nested Transform
	ctx.ApplyAll([]Transform{a, b, c}, func(ctx *Context) {
		all = ctx.Model()
	})
	ctx.Apply(a, func(ctx *Context) {
		ctx.Apply(b, func(ctx *Context) {
			ctx.Apply(c, func(ctx *Context) {
				nested = ctx.Model()
			})
		})
	})

	if !all.ApproxEqualThreshold(nested, epsilon) {
		t.Errorf("ApplyAll = %v, want nested Apply = %v", all, nested)
	}
	if !all.ApproxEqualThreshold(Compose(a, b, c), epsilon) {
		t.Errorf("ApplyAll = %v, want Compose(a, b, c)", all)
	}

	// First listed is outermost: (1, 0) scales to (2, 0), rotates to
	// (0, 2), then shifts to (1, 2).
	assertPoint(t, all, 1, 0, 1, 2)
}

func TestApplyAllEmpty(t *testing.T) {
	ctx := NewContext(16, 16)
	ran := false
	ctx.ApplyAll(nil, func(ctx *Context) {
		ran = true
		if ctx.Depth() != 0 {
			t.Errorf("Depth() = %d inside empty ApplyAll, want 0", ctx.Depth())
		}
	})
	if !ran {
		t.Error("ApplyAll(nil) did not run body")
	}
}

func TestApplyOrderIsVisible(t *testing.T) {
	r := RotateDeg(90)
	s := Shift(1, 0)

	origin := func(ts ...Transform) (float32, float32) {
		ctx := NewContext(16, 16)
		var x, y float32
		ctx.ApplyAll(ts, func(ctx *Context) {
			x, y = TransformPoint(ctx.Model(), 0, 0)
		})
		return x, y
	}

	rx, ry := origin(r, s)
	sx, sy := origin(s, r)
	if !near(rx, 0) || !near(ry, 1) {
		t.Errorf("[rotate, shift] origin = (%v, %v), want (0, 1)", rx, ry)
	}
	if !near(sx, 1) || !near(sy, 0) {
		t.Errorf("[shift, rotate] origin = (%v, %v), want (1, 0)", sx, sy)
	}
}

func TestApplyDepthBalanced(t *testing.T) {
	ctx := NewContext(16, 16)

	tests := []struct {
		name string
		run  func()
	}{
		{"apply", func() {
			ctx.Apply(Shift(1, 1), func(*Context) {})
		}},
		{"apply all", func() {
			ctx.ApplyAll([]Transform{Shift(1, 1), RotateDeg(30), Upscale(2)}, func(*Context) {})
		}},
		{"deep nesting", func() {
			var nest func(ctx *Context, n int)
			nest = func(ctx *Context, n int) {
				if n == 0 {
					return
				}
				ctx.ApplyAll([]Transform{Shift(0.1, 0), RotateDeg(1)}, func(ctx *Context) {
					ctx.Apply(Upscale(1.01), func(ctx *Context) { nest(ctx, n-1) })
				})
			}
			nest(ctx, 64)
		}},
		{"body paints a canvas", func() {
			ctx.Apply(Shift(1, 1), func(ctx *Context) {
				ctx.Paint(NewCanvas(4, 4), ctx.Camera(), func(*Camera) {
					ctx.Apply(Upscale(2), func(*Context) {})
				})
			})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := ctx.Depth()
			model := ctx.Model()
			tt.run()
			if got := ctx.Depth(); got != before {
				t.Errorf("Depth() = %d after call, want %d", got, before)
			}
			if ctx.Model() != model {
				t.Errorf("Model() = %v after call, want %v", ctx.Model(), model)
			}
		})
	}
}

func TestApplyDepthInsideBody(t *testing.T) {
	ctx := NewContext(16, 16)
	ctx.Apply(Shift(1, 0), func(ctx *Context) {
		if ctx.Depth() != 1 {
			t.Errorf("Depth() = %d in Apply, want 1", ctx.Depth())
		}
		ctx.ApplyAll([]Transform{Shift(1, 0), Shift(1, 0)}, func(ctx *Context) {
			if ctx.Depth() != 3 {
				t.Errorf("Depth() = %d in ApplyAll, want 3", ctx.Depth())
			}
		})
	})
}

func TestApplyRestoresOnPanic(t *testing.T) {
	tests := []struct {
		name string
		run  func(ctx *Context)
	}{
		{"apply", func(ctx *Context) {
			ctx.Apply(Shift(1, 0), func(*Context) { panic("boom") })
		}},
		{"apply all", func(ctx *Context) {
			ctx.ApplyAll([]Transform{Shift(1, 0), Upscale(2)}, func(ctx *Context) {
				ctx.Apply(RotateDeg(45), func(*Context) { panic("boom") })
			})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext(16, 16)
			func() {
				defer func() {
					if r := recover(); r != "boom" {
						t.Errorf("recover() = %v, want boom", r)
					}
				}()
				tt.run(ctx)
			}()
			if ctx.Depth() != 0 {
				t.Errorf("Depth() = %d after panic, want 0", ctx.Depth())
			}
			if ctx.Model() != Identity() {
				t.Errorf("Model() = %v after panic, want identity", ctx.Model())
			}
		})
	}
}

func TestApplySingularTransform(t *testing.T) {
	ctx := NewContext(16, 16)
	ctx.Clear(Black)
	ctx.Apply(Scale(0, 0), func(ctx *Context) {
		ctx.DrawRectangle(-1, -1, 2, 2, Red)
		ctx.DrawTexture(NewCanvas(2, 2), 0, 0, White)
	})
	if got := ctx.Screen().Pixel(8, 8); got != Black {
		t.Errorf("Pixel after singular Apply = %v, want Black", got)
	}
}
