package ergo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a 4x4 float32 matrix in column-major order.
//
// Drawing treats a Transform as an affine map of the z=0 plane:
//
//	x' = m[0]*x + m[4]*y + m[12]
//	y' = m[1]*x + m[5]*y + m[13]
//
// Transforms compose with Mul4. a.Mul4(b) applies b first, then a, which is
// the same as "b inside the frame of a".
type Transform = mgl32.Mat4

const tau = 2 * math.Pi

// Identity returns the identity transform.
func Identity() Transform {
	return mgl32.Ident4()
}

// Shift creates a translation.
func Shift(x, y float32) Transform {
	return mgl32.Translate3D(x, y, 0)
}

// Scale creates a non-uniform scale. Z is left untouched.
func Scale(x, y float32) Transform {
	return mgl32.Scale3D(x, y, 1)
}

// Upscale creates a uniform scale by factor.
func Upscale(factor float32) Transform {
	return Scale(factor, factor)
}

// Downscale creates a uniform scale by 1/factor.
func Downscale(factor float32) Transform {
	return Upscale(1 / factor)
}

// FlipX mirrors across the y axis.
func FlipX() Transform {
	return Scale(-1, 1)
}

// FlipY mirrors across the x axis.
func FlipY() Transform {
	return Scale(1, -1)
}

// FlipXY mirrors through the origin.
func FlipXY() Transform {
	return Scale(-1, -1)
}

// RotateRad rotates in the plane by radians. Positive angles turn +x
// towards +y, which is clockwise on a y-down target.
func RotateRad(radians float32) Transform {
	return mgl32.HomogRotate3DZ(radians)
}

// RotateDeg rotates in the plane by degrees.
func RotateDeg(degrees float32) Transform {
	return RotateRad(mgl32.DegToRad(degrees))
}

// RotateTurns rotates in the plane by full turns.
func RotateTurns(turns float32) Transform {
	return RotateRad(tau * turns)
}

// RotateCW rotates clockwise on a y-down target.
func RotateCW(radians float32) Transform {
	return RotateRad(radians)
}

// RotateCC rotates counter-clockwise on a y-down target.
func RotateCC(radians float32) Transform {
	return RotateRad(-radians)
}

// RotateAxis rotates by radians about an arbitrary axis through the origin.
// A zero axis yields the identity.
func RotateAxis(radians float32, axis mgl32.Vec3) Transform {
	if axis.Len() == 0 {
		return Identity()
	}
	return mgl32.HomogRotate3D(radians, axis.Normalize())
}

// RotateYPR rotates by yaw about Y, then pitch about X, then roll about Z,
// composed as Ry·Rx·Rz.
func RotateYPR(yaw, pitch, roll float32) Transform {
	return mgl32.HomogRotate3DY(yaw).
		Mul4(mgl32.HomogRotate3DX(pitch)).
		Mul4(mgl32.HomogRotate3DZ(roll))
}

// Compose multiplies transforms left to right: Compose(a, b, c) is
// a·b·c, so c is the innermost frame. Compose() is the identity.
func Compose(ts ...Transform) Transform {
	m := Identity()
	for _, t := range ts {
		m = m.Mul4(t)
	}
	return m
}

// TransformPoint maps a point of the z=0 plane through t.
func TransformPoint(t Transform, x, y float32) (float32, float32) {
	v := t.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	return v.X(), v.Y()
}

// InversePoint maps a point back through the inverse of t.
// It reports false when t is singular.
func InversePoint(t Transform, x, y float32) (float32, float32, bool) {
	if t.Det() == 0 {
		return 0, 0, false
	}
	v := t.Inv().Mul4x1(mgl32.Vec4{x, y, 0, 1})
	return v.X(), v.Y(), true
}
