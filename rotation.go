package v3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotateX rotates the vector around the X axis by deg degrees.
func (v Vector) RotateX(deg float64) Vector {
	return v.transform(mgl64.Rotate3DX(radians(deg)))
}

// RotateY rotates the vector around the Y axis by deg degrees.
func (v Vector) RotateY(deg float64) Vector {
	return v.transform(mgl64.Rotate3DY(radians(deg)))
}

// RotateZ rotates the vector around the Z axis by deg degrees.
func (v Vector) RotateZ(deg float64) Vector {
	return v.transform(mgl64.Rotate3DZ(radians(deg)))
}

// Rotate rotates the vector by alpha around X, then beta around Y, then
// gamma around Z. All angles are in degrees.
func (v Vector) Rotate(alpha, beta, gamma float64) Vector {
	logger().Infof("rotating %v by (%v, %v, %v)", v, alpha, beta, gamma)
	return v.RotateX(alpha).RotateY(beta).RotateZ(gamma)
}

// RotateAbout rotates v by deg degrees around axis using Rodrigues' formula
//
//	v·cosθ + (axis×v)·sinθ + axis·(axis·v)·(1−cosθ)
//
// The axis is used as given. The result is a pure rotation only when axis
// has unit length; callers holding an arbitrary axis should pass axis.Unit().
func (v Vector) RotateAbout(axis Vector, deg float64) Vector {
	logger().Infof("rotating %v about %v by %v", v, axis, deg)
	sin, cos := math.Sincos(radians(deg))
	return v.Scale(cos).
		Add(axis.Cross(v).Scale(sin)).
		Add(axis.Scale(axis.Dot(v) * (1 - cos)))
}

func (v Vector) transform(m mgl64.Mat3) Vector {
	return Vector{PointFromVec3(m.Mul3x1(v.Point.Vec3()))}
}
