package ergo

import (
	"image"
	"image/draw"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// circleSegments is the polygon resolution used for circles.
const circleSegments = 48

// Clear fills the whole render target with col, ignoring transforms.
func (c *Context) Clear(col Color) {
	c.target.fill(col)
}

// DrawRectangle fills the rectangle with its top-left corner at (x, y).
func (c *Context) DrawRectangle(x, y, w, h float32, col Color) {
	c.fillPolygons(col, rect(x, y, w, h))
}

// DrawRectangleLines outlines the rectangle with its top-left corner at
// (x, y). The outline is centered on the edges.
func (c *Context) DrawRectangleLines(x, y, w, h, thickness float32, col Color) {
	t := thickness / 2
	c.fillPolygons(col,
		rect(x-t, y-t, w+thickness, thickness),
		rect(x-t, y+h-t, w+thickness, thickness),
		rect(x-t, y+t, thickness, h-thickness),
		rect(x+w-t, y+t, thickness, h-thickness),
	)
}

// DrawLine draws a segment of the given thickness. Thickness is measured
// in the current local frame, so it scales with transforms.
func (c *Context) DrawLine(x1, y1, x2, y2, thickness float32, col Color) {
	d := mgl32.Vec2{x2 - x1, y2 - y1}
	if d.Len() == 0 {
		return
	}
	n := mgl32.Vec2{-d.Y(), d.X()}.Normalize().Mul(thickness / 2)
	p1 := mgl32.Vec2{x1, y1}
	p2 := mgl32.Vec2{x2, y2}
	c.fillPolygons(col, []mgl32.Vec2{p1.Add(n), p2.Add(n), p2.Sub(n), p1.Sub(n)})
}

// DrawCircle fills a circle centered at (x, y).
func (c *Context) DrawCircle(x, y, r float32, col Color) {
	c.fillPolygons(col, ring(x, y, r, false))
}

// DrawCircleLines outlines a circle centered at (x, y). The outline is
// centered on the radius.
func (c *Context) DrawCircleLines(x, y, r, thickness float32, col Color) {
	t := thickness / 2
	c.fillPolygons(col, ring(x, y, r+t, false), ring(x, y, r-t, true))
}

func rect(x, y, w, h float32) []mgl32.Vec2 {
	return []mgl32.Vec2{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

// ring returns a circle polygon. Reversed rings cut holes.
func ring(x, y, r float32, reverse bool) []mgl32.Vec2 {
	pts := make([]mgl32.Vec2, circleSegments)
	for i := range pts {
		a := float32(i) / circleSegments * tau
		if reverse {
			a = -a
		}
		pts[i] = mgl32.Vec2{x + r*math32.Cos(a), y + r*math32.Sin(a)}
	}
	return pts
}

// fillPolygons rasterizes closed polygons given in local coordinates into
// the render target in a single pass.
func (c *Context) fillPolygons(col Color, polys ...[]mgl32.Vec2) {
	if col.A <= 0 {
		return
	}
	m := c.matrix()
	dst := c.target.img
	z := &c.raster
	z.Reset(dst.Rect.Dx(), dst.Rect.Dy())
	z.DrawOp = draw.Over

	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		for i, p := range poly {
			px, py := TransformPoint(m, p.X(), p.Y())
			if i == 0 {
				z.MoveTo(px, py)
			} else {
				z.LineTo(px, py)
			}
		}
		z.ClosePath()
	}
	z.Draw(dst, dst.Rect, image.NewUniform(col), image.Point{})
}
