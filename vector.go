package v3d

import (
	"fmt"
	"math"
)

// Vector is a directed magnitude from the origin to Point. The zero value is
// the zero vector, which is valid but has no direction.
type Vector struct {
	Point Point
}

// NewVector returns the vector from the origin to p.
func NewVector(p Point) Vector { return Vector{Point: p} }

// FromPoints returns the vector p1 - p2.
func FromPoints(p1, p2 Point) Vector {
	logger().Infof("creating vector from %v and %v", p1, p2)
	return Vector{p1.Subtract(p2)}
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%v)", v.Point)
}

// Copy returns an independent vector.
func (v Vector) Copy() Vector { return Vector{v.Point.Copy()} }

// Negate returns the vector pointing the opposite way.
func (v Vector) Negate() Vector { return Vector{v.Point.Negate()} }

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	logger().Infof("calculating %v + %v", v, o)
	return Vector{v.Point.Add(o.Point)}
}

// Subtract returns v - o.
func (v Vector) Subtract(o Vector) Vector { return v.Add(o.Negate()) }

// Scale multiplies v by k.
func (v Vector) Scale(k float64) Vector { return Vector{v.Point.Scale(k)} }

// Cross returns the cross product v × o.
func (v Vector) Cross(o Vector) Vector {
	a, b := v.Point, o.Point
	return Vector{Point{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}}
}

// Multiply scales v when other is a number and returns the cross product
// when other is a Vector. Any other argument is ErrTypeMismatch.
func (v Vector) Multiply(other any) (Vector, error) {
	logger().Infof("calculating %v * %v", v, other)
	switch o := other.(type) {
	case Vector:
		return v.Cross(o), nil
	case *Vector:
		if o == nil {
			return Vector{}, fail("Vector.Multiply", other, ErrTypeMismatch)
		}
		return v.Cross(*o), nil
	}
	k, ok := toFloat(other)
	if !ok {
		return Vector{}, fail("Vector.Multiply", other, ErrTypeMismatch)
	}
	return v.Scale(k), nil
}

// Divide scales v by 1/other. Dividing by a Vector is undefined.
func (v Vector) Divide(other any) (Vector, error) {
	switch other.(type) {
	case Vector, *Vector:
		return Vector{}, fail("Vector.Divide", other, ErrTypeMismatch)
	}
	k, ok := toFloat(other)
	if !ok {
		return Vector{}, fail("Vector.Divide", other, ErrTypeMismatch)
	}
	if k == 0 {
		return Vector{}, fail("Vector.Divide", other, ErrDivideByZero)
	}
	return v.Scale(1 / k), nil
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	logger().Infof("calculating dot product of %v and %v", v, o)
	return v.Point.X*o.Point.X + v.Point.Y*o.Point.Y + v.Point.Z*o.Point.Z
}

// Mag returns the length of v.
func (v Vector) Mag() float64 { return v.Point.Norm() }

// Unit returns the vector of length 1 pointing the same way as v.
func (v Vector) Unit() (Vector, error) {
	m := v.Mag()
	if m == 0 {
		return Vector{}, fail("Vector.Unit", v, ErrDivideByZero)
	}
	return v.shrink(m), nil
}

// shrink divides each component by m. Unlike Scale(1/m) it stays finite
// when m is subnormal.
func (v Vector) shrink(m float64) Vector {
	return Vector{Point{v.Point.X / m, v.Point.Y / m, v.Point.Z / m}}
}

// Heading returns the inclination theta and azimuth phi of v in degrees.
func (v Vector) Heading() (theta, phi float64, err error) {
	r := v.Mag()
	if r == 0 {
		return 0, 0, fail("Vector.Heading", v, ErrDivideByZero)
	}
	phi = math.Atan2(v.Point.Y, v.Point.X)
	theta = math.Acos(v.Point.Z / r)
	return degrees(theta), degrees(phi), nil
}

// AngleBetween returns the angle between v and o in degrees. Vectors
// within DefaultTolerance of the origin are rejected with ErrInvalidVector.
func (v Vector) AngleBetween(o Vector) (float64, error) {
	if v.Equal(Vector{}) {
		return 0, fail("Vector.AngleBetween", v, ErrInvalidVector)
	}
	if o.Equal(Vector{}) {
		return 0, fail("Vector.AngleBetween", o, ErrInvalidVector)
	}
	uv, err := v.Unit()
	if err != nil {
		return 0, err
	}
	uo, err := o.Unit()
	if err != nil {
		return 0, err
	}
	if uv.Equal(uo) {
		logger().Warningf("unit vectors of %v and %v are the same", v, o)
		return 0, nil
	}
	c := uv.Dot(uo)
	return degrees(math.Acos(math.Max(-1, math.Min(1, c)))), nil
}

// IsParallel reports whether v × o is exactly zero.
func (v Vector) IsParallel(o Vector) bool {
	return v.Cross(o).Mag() == 0
}

// IsPerpendicular reports whether v · o is exactly zero.
func (v Vector) IsPerpendicular(o Vector) bool {
	return v.Dot(o) == 0
}

// IsNonParallel reports whether v and o are neither parallel nor
// perpendicular.
func (v Vector) IsNonParallel(o Vector) bool {
	return !v.IsParallel(o) && !v.IsPerpendicular(o)
}

// Normal returns the unit vector perpendicular to the plane of v and o.
func (v Vector) Normal(o Vector) (Vector, error) {
	n := v.Cross(o)
	m := n.Mag()
	if m == 0 {
		return Vector{}, fail("Vector.Normal", o, ErrDivideByZero)
	}
	return n.shrink(m), nil
}

// IsSame reports whether the points of v and o match within tol.
func (v Vector) IsSame(o Vector, tol float64) bool {
	return v.Point.IsSame(o.Point, tol)
}

// Equal is IsSame with DefaultTolerance.
func (v Vector) Equal(o Vector) bool { return v.Point.Equal(o.Point) }

func toFloat(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
