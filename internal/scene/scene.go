// Package scene animates a vector rotating about an axis and lays it out
// as GPU line vertices.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"v3d"
)

// Segment ranges inside the vertex buffer, in vertices.
const (
	AxesFirst   = 0
	AxesCount   = 6
	SpinFirst   = 6
	SpinCount   = 2
	VectorFirst = 8
	VectorCount = 2

	VertexCount = AxesCount + SpinCount + VectorCount
)

// Scene holds a vector spinning about an axis at a fixed angular speed.
type Scene struct {
	start v3d.Vector
	axis  v3d.Vector
	speed float64 // degrees per second
	angle float64 // degrees
}

// New returns a scene rotating v about axis at speed degrees per second.
// The axis is normalized so the vector keeps its length.
func New(v, axis v3d.Vector, speed float64) (*Scene, error) {
	u, err := axis.Unit()
	if err != nil {
		return nil, err
	}
	return &Scene{start: v, axis: u, speed: speed}, nil
}

// Advance moves the animation forward by dt seconds.
func (s *Scene) Advance(dt float64) {
	s.angle = math.Mod(s.angle+s.speed*dt, 360)
}

// Angle returns the current rotation in degrees.
func (s *Scene) Angle() float64 { return s.angle }

// Current returns the rotated vector.
func (s *Scene) Current() v3d.Vector {
	return s.start.RotateAbout(s.axis, s.angle)
}

// Vertices returns XYZ float32 triples: the three unit axes, the rotation
// axis through the origin, then the current vector.
func (s *Scene) Vertices() []float32 {
	var o v3d.Point
	ends := []v3d.Point{
		o, {X: 1},
		o, {Y: 1},
		o, {Z: 1},
		s.axis.Negate().Scale(2).Point, s.axis.Scale(2).Point,
		o, s.Current().Point,
	}
	out := make([]float32, 0, 3*len(ends))
	for _, p := range ends {
		out = append(out, float32(p.X), float32(p.Y), float32(p.Z))
	}
	return out
}

// Eye is the camera position; the camera looks at the origin with +Y up.
var Eye = mgl32.Vec3{3, 2, 4}

// MVP returns the projection-view matrix for a viewport with the given
// aspect ratio.
func MVP(aspect float32) mgl32.Mat4 {
	projection := mgl32.Perspective(mgl32.DegToRad(45.0), aspect, 0.1, 100.0)
	camera := mgl32.LookAtV(Eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	return projection.Mul4(camera)
}
