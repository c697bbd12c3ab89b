package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"v3d"
)

func TestNewRejectsZeroAxis(t *testing.T) {
	_, err := New(v3d.NewVector(v3d.NewPoint(1, 0, 0)), v3d.Vector{}, 30)
	if !errors.Is(err, v3d.ErrDivideByZero) {
		t.Errorf("error = %v", err)
	}
}

func TestAdvance(t *testing.T) {
	s, err := New(v3d.NewVector(v3d.NewPoint(1, 0, 0)), v3d.NewVector(v3d.NewPoint(0, 5, 0)), 45)
	if err != nil {
		t.Fatal(err)
	}
	s.Advance(2)
	if s.Angle() != 90 {
		t.Errorf("angle = %v", s.Angle())
	}
	if got := s.Current(); !got.Equal(v3d.NewVector(v3d.NewPoint(0, 0, -1))) {
		t.Errorf("current = %v", got)
	}
	s.Advance(6)
	if s.Angle() != 0 {
		t.Errorf("angle did not wrap: %v", s.Angle())
	}
}

func TestVertices(t *testing.T) {
	s, err := New(v3d.NewVector(v3d.NewPoint(1, 2, 3)), v3d.NewVector(v3d.NewPoint(0, 0, 1)), 10)
	if err != nil {
		t.Fatal(err)
	}
	vs := s.Vertices()
	if len(vs) != 3*VertexCount {
		t.Fatalf("len = %d", len(vs))
	}
	tip := vs[3*(VectorFirst+1):]
	if tip[0] != 1 || tip[1] != 2 || tip[2] != 3 {
		t.Errorf("tip = %v", tip)
	}
	spin := vs[3*(SpinFirst+1) : 3*(SpinFirst+2)]
	if spin[0] != 0 || spin[1] != 0 || spin[2] != 2 {
		t.Errorf("axis end = %v", spin)
	}
}

func TestMVP(t *testing.T) {
	mvp := MVP(4.0 / 3.0)

	o := mvp.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if o[3] <= 0 {
		t.Fatalf("origin behind camera: %v", o)
	}
	if x, y := o[0]/o[3], o[1]/o[3]; math.Abs(float64(x)) > 1e-5 || math.Abs(float64(y)) > 1e-5 {
		t.Errorf("origin at (%v, %v), want screen centre", x, y)
	}

	up := mvp.Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	if up[1]/up[3] <= 0 {
		t.Errorf("+Y projects below centre: %v", up)
	}

	behind := mvp.Mul4x1(Eye.Mul(2).Vec4(1))
	if behind[3] >= 0 {
		t.Errorf("point behind the eye has w = %v", behind[3])
	}
}
