package v3d

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/twpayne/go-geom"
)

// Vec3 returns p as a mathgl vector.
func (p Point) Vec3() mgl64.Vec3 { return mgl64.Vec3{p.X, p.Y, p.Z} }

// PointFromVec3 converts a mathgl vector to a Point.
func PointFromVec3(v mgl64.Vec3) Point { return Point{v[0], v[1], v[2]} }

// R3 returns p as an s2 geometry r3.Vector.
func (p Point) R3() r3.Vector { return r3.Vector{X: p.X, Y: p.Y, Z: p.Z} }

// PointFromR3 converts an r3.Vector to a Point.
func PointFromR3(v r3.Vector) Point { return Point{v.X, v.Y, v.Z} }

// Geom returns p as a go-geom point with XYZ layout.
func (p Point) Geom() *geom.Point {
	return geom.NewPointFlat(geom.XYZ, []float64{p.X, p.Y, p.Z})
}

// PointFromGeom converts a go-geom point carrying a Z coordinate. Points
// whose layout has no Z are rejected with ErrTypeMismatch.
func PointFromGeom(g *geom.Point) (Point, error) {
	if g == nil {
		return Point{}, fail("PointFromGeom", g, ErrTypeMismatch)
	}
	zi := g.Layout().ZIndex()
	if zi < 0 {
		return Point{}, fail("PointFromGeom", g.Layout(), ErrTypeMismatch)
	}
	c := g.FlatCoords()
	return Point{c[0], c[1], c[zi]}, nil
}
