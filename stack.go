package ergo

// Apply draws body under t, nested inside the current frame.
//
// While body runs the effective model transform is Model()·t, so
// everything body draws, including anything it nests further, is
// transformed by t relative to the caller's frame. Exactly one entry is
// popped when body returns or panics.
//
// Any matrix is accepted, including singular ones.
//
//	ctx.Apply(ergo.RotateTurns(0.25), func(ctx *ergo.Context) {
//	    ctx.DrawLine(0, 0, 0, 1, 0.0625, ergo.Blue)
//	})
func (c *Context) Apply(t Transform, body func(*Context)) {
	c.push(t)
	defer c.pop()
	body(c)
}

// ApplyAll draws body under every transform in ts.
//
// ts is pushed in order, so the first transform is the outermost frame:
//
//	ctx.ApplyAll([]ergo.Transform{a, b, c}, f)
//
// draws exactly like
//
//	ctx.Apply(a, func(ctx *ergo.Context) {
//	    ctx.Apply(b, func(ctx *ergo.Context) {
//	        ctx.Apply(c, f)
//	    })
//	})
//
// and like ctx.Apply(ergo.Compose(a, b, c), f). An empty list runs body
// unchanged. All len(ts) entries are popped when body returns or panics.
func (c *Context) ApplyAll(ts []Transform, body func(*Context)) {
	depth := len(c.stack)
	defer c.truncate(depth)
	for _, t := range ts {
		c.push(t)
	}
	body(c)
}
