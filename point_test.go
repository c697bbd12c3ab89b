package v3d

import (
	"errors"
	"math"
	"testing"
)

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-7 }

func TestPointZeroValue(t *testing.T) {
	var p Point
	if p.X != 0 || p.Y != 0 || p.Z != 0 {
		t.Fatalf("zero value is %v", p)
	}
	p = NewPoint(2, 3, 1)
	if p.X != 2 || p.Y != 3 || p.Z != 1 {
		t.Fatalf("NewPoint(2, 3, 1) = %v", p)
	}
}

func TestPointCopy(t *testing.T) {
	p := NewPoint(1, 2, 3)
	c := p.Copy()
	c.X = 9
	if p.X != 1 {
		t.Errorf("copy shares storage with original")
	}
	if !p.Copy().Equal(p) {
		t.Errorf("copy differs from original")
	}
}

func TestPointArithmetic(t *testing.T) {
	p := NewPoint(1, 2, 3)
	q := NewPoint(1, 1, 1)

	if got := p.Add(q); !got.Equal(NewPoint(2, 3, 4)) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Subtract(q); !got.Equal(NewPoint(0, 1, 2)) {
		t.Errorf("Subtract = %v", got)
	}
	if got := q.Scale(2); !got.Equal(NewPoint(2, 2, 2)) {
		t.Errorf("Scale = %v", got)
	}
	if got := p.Negate(); got != NewPoint(-1, -2, -3) {
		t.Errorf("Negate = %v", got)
	}
	if p != NewPoint(1, 2, 3) {
		t.Errorf("receiver was mutated: %v", p)
	}
}

func TestPointAddSubtractInverse(t *testing.T) {
	pts := []Point{
		{}, {1, 2, 3}, {-4.5, 0.25, 1e3}, {1e-3, -7, 42},
	}
	for _, p := range pts {
		for _, q := range pts {
			if got := p.Add(q).Subtract(q); !got.Equal(p) {
				t.Errorf("%v + %v - %v = %v", p, q, q, got)
			}
		}
	}
}

func TestPointDivide(t *testing.T) {
	got, err := NewPoint(2, 2, 2).Divide(2)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(NewPoint(1, 1, 1)) {
		t.Errorf("Divide(2) = %v", got)
	}

	for _, k := range []float64{0.5, -3, 7, 1e-2} {
		p := NewPoint(1.5, -2, 9)
		back, err := p.Scale(k).Divide(k)
		if err != nil {
			t.Fatal(err)
		}
		if !back.Equal(p) {
			t.Errorf("Scale(%v).Divide(%v) = %v", k, k, back)
		}
	}
}

func TestPointDivideByZero(t *testing.T) {
	_, err := NewPoint(1, 1, 1).Divide(0)
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("Divide(0) error = %v", err)
	}
	var oe *OpError
	if !errors.As(err, &oe) || oe.Op != "Point.Divide" {
		t.Errorf("error not an OpError for Point.Divide: %#v", err)
	}
}

func TestPointDist(t *testing.T) {
	p := NewPoint(2, 2, 2)
	if d := p.Norm(); !almost(d, 3.4641016) {
		t.Errorf("Norm = %v", d)
	}
	if d := p.Dist(NewPoint(1, 1, 1)); !almost(d, 1.7320508) {
		t.Errorf("Dist = %v", d)
	}
}

func TestPointIsSame(t *testing.T) {
	p := NewPoint(1, 1, 1)
	if !p.IsSame(NewPoint(1, 1, 1), DefaultTolerance) {
		t.Errorf("identical points differ")
	}
	if p.IsSame(NewPoint(1, 1, 2), DefaultTolerance) {
		t.Errorf("distinct points match")
	}
	if !p.Equal(NewPoint(1.00005, 1, 0.99995)) {
		t.Errorf("points within tolerance differ")
	}
	if p.Equal(NewPoint(1.00011, 1, 1)) {
		t.Errorf("tolerance is not strict")
	}
	if !p.IsSame(NewPoint(1.4, 1, 1), 0.5) {
		t.Errorf("custom tolerance ignored")
	}
}

func TestPointToPolar(t *testing.T) {
	r, theta, phi := NewPoint(1, 1, 1).ToPolar()
	if !almost(r, 1.7320508) || !almost(theta, 54.7356103) || !almost(phi, 45) {
		t.Errorf("ToPolar = (%v, %v, %v)", r, theta, phi)
	}

	r, theta, phi = Point{}.ToPolar()
	if r != 0 || theta != 0 || phi != 0 {
		t.Errorf("origin ToPolar = (%v, %v, %v)", r, theta, phi)
	}
}

func TestPointFromPolar(t *testing.T) {
	p := FromPolar(1.7320508075688772, 54.735610317245346, 45.0)
	if !p.Equal(NewPoint(1, 1, 1)) {
		t.Errorf("FromPolar = %v", p)
	}
}

func TestPointPolarRoundTrip(t *testing.T) {
	for _, p := range []Point{
		{1, 1, 1}, {-3, 2, 0.5}, {0, 0, -4}, {10, -10, 3}, {0.1, 0, 0},
	} {
		if got := FromPolar(p.ToPolar()); !got.Equal(p) {
			t.Errorf("FromPolar(%v.ToPolar()) = %v", p, got)
		}
	}
}

func TestPointSetPolar(t *testing.T) {
	p := NewPoint(5, 5, 5)
	q := p
	p.SetPolar(2, 90, 90)
	if !p.Equal(NewPoint(0, 2, 0)) {
		t.Errorf("SetPolar left %v", p)
	}
	if q != NewPoint(5, 5, 5) {
		t.Errorf("SetPolar changed a copy: %v", q)
	}
}

func TestPointString(t *testing.T) {
	if s := NewPoint(1, 2.5, -3).String(); s != "Point(x=1, y=2.5, z=-3)" {
		t.Errorf("String = %q", s)
	}
}

func TestPointPolarExtremeMagnitudes(t *testing.T) {
	for _, p := range []Point{{1e200, 0, 0}, {1e-200, 0, 0}, {3e250, -4e250, 0}} {
		r, theta, phi := p.ToPolar()
		if r == 0 || math.IsInf(r, 0) {
			t.Errorf("%v.ToPolar() radius = %v", p, r)
			continue
		}
		back := FromPolar(r, theta, phi)
		if !back.Scale(1/r).IsSame(p.Scale(1/r), 1e-9) {
			t.Errorf("FromPolar(%v.ToPolar()) = %v", p, back)
		}
	}
	if r, _, _ := NewPoint(3e250, -4e250, 0).ToPolar(); !almost(r/1e250, 5) {
		t.Errorf("radius = %v", r)
	}
}
