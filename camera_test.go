package ergo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraProjection(t *testing.T) {
	tests := []struct {
		name         string
		cam          *Camera
		x, y         float32
		wantX, wantY float32
	}{
		{"top-left", NewCamera(), -1, -1, 0, 0},
		{"center", NewCamera(), 0, 0, 100, 50},
		{"bottom-right", NewCamera(), 1, 1, 200, 100},
		{"flip y", &Camera{Zoom: mgl32.Vec2{1, 1}, FlipY: true}, 0, 1, 100, 0},
		{"zoom in", &Camera{Zoom: mgl32.Vec2{2, 2}}, 0.5, 0.5, 200, 100},
		{"moved center", &Camera{Zoom: mgl32.Vec2{1, 1}, Center: mgl32.Vec2{0.5, 0}}, 0.5, 0, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := tt.cam.ToPixel(tt.x, tt.y, 200, 100)
			if !near(gotX, tt.wantX) || !near(gotY, tt.wantY) {
				t.Errorf("ToPixel(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
			}

			lx, ly, ok := tt.cam.ToLogical(gotX, gotY, 200, 100)
			if !ok || !near(lx, tt.x) || !near(ly, tt.y) {
				t.Errorf("ToLogical round trip = (%v, %v, %v), want (%v, %v, true)", lx, ly, ok, tt.x, tt.y)
			}
		})
	}
}

func TestCameraZeroZoom(t *testing.T) {
	cam := &Camera{}
	if _, _, ok := cam.ToLogical(1, 1, 10, 10); ok {
		t.Error("ToLogical with zero zoom should report false")
	}
}

func TestCameraFlipYDrawing(t *testing.T) {
	cam := NewCamera()
	cam.FlipY = true
	ctx := NewContext(20, 20, WithCamera(cam))
	ctx.Clear(Black)

	// Top half of the logical window with y up.
	ctx.DrawRectangle(-1, 0, 2, 1, Red)

	assertPixel(t, ctx.Screen(), 10, 4, Red)
	assertPixel(t, ctx.Screen(), 10, 15, Black)
}
