package v3d

import (
	"fmt"
	"math"
)

// DefaultTolerance is the per-component tolerance used by Equal.
const DefaultTolerance = 1e-4

// Point is a location in 3D Cartesian space. The zero value is the origin.
type Point struct {
	X, Y, Z float64
}

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func (p Point) String() string {
	return fmt.Sprintf("Point(x=%v, y=%v, z=%v)", p.X, p.Y, p.Z)
}

// Copy returns an independent point with the same coordinates.
func (p Point) Copy() Point { return Point{p.X, p.Y, p.Z} }

// Negate returns (-x, -y, -z).
func (p Point) Negate() Point { return Point{-p.X, -p.Y, -p.Z} }

// Add returns the componentwise sum of p and o.
func (p Point) Add(o Point) Point {
	logger().Infof("calculating %v + %v", p, o)
	return Point{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

// Subtract returns p - o.
func (p Point) Subtract(o Point) Point { return p.Add(o.Negate()) }

// Scale multiplies every component by k.
func (p Point) Scale(k float64) Point {
	logger().Infof("scaling %v by %v", p, k)
	return Point{p.X * k, p.Y * k, p.Z * k}
}

// Divide scales p by 1/k.
func (p Point) Divide(k float64) (Point, error) {
	if k == 0 {
		return Point{}, fail("Point.Divide", k, ErrDivideByZero)
	}
	return p.Scale(1 / k), nil
}

// Dist returns the Euclidean distance between p and o.
func (p Point) Dist(o Point) float64 {
	logger().Infof("calculating distance between %v and %v", p, o)
	return math.Hypot(math.Hypot(p.X-o.X, p.Y-o.Y), p.Z-o.Z)
}

// Norm returns the distance of p from the origin.
func (p Point) Norm() float64 { return p.Dist(Point{}) }

// IsSame reports whether every component of p and o differs by less than tol.
func (p Point) IsSame(o Point, tol float64) bool {
	logger().Infof("checking if %v and %v are the same point", p, o)
	return math.Abs(p.X-o.X) < tol &&
		math.Abs(p.Y-o.Y) < tol &&
		math.Abs(p.Z-o.Z) < tol
}

// Equal is IsSame with DefaultTolerance.
func (p Point) Equal(o Point) bool { return p.IsSame(o, DefaultTolerance) }

// ToPolar returns the spherical form of p: radius r, inclination theta from
// the +Z axis and azimuth phi from the +X axis, both in degrees. The origin
// maps to (0, 0, 0).
func (p Point) ToPolar() (r, theta, phi float64) {
	logger().Infof("converting %v from cartesian to polar", p)
	r = p.Norm()
	if r == 0 {
		return 0, 0, 0
	}
	phi = math.Atan2(p.Y, p.X)
	theta = math.Acos(p.Z / r)
	return r, degrees(theta), degrees(phi)
}

// FromPolar returns the Cartesian point for radius r, inclination theta
// and azimuth phi given in degrees.
func FromPolar(r, theta, phi float64) Point {
	logger().Infof("converting (%v, %v, %v) from polar to cartesian", r, theta, phi)
	t, f := radians(theta), radians(phi)
	sinT, cosT := math.Sincos(t)
	sinF, cosF := math.Sincos(f)
	return Point{
		X: r * sinT * cosF,
		Y: r * sinT * sinF,
		Z: r * cosT,
	}
}

// SetPolar overwrites p in place with the Cartesian form of (r, theta, phi).
// It is the only method that mutates a Point.
func (p *Point) SetPolar(r, theta, phi float64) {
	*p = FromPolar(r, theta, phi)
}
