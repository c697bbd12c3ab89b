package v3d

import "github.com/twpayne/go-geom"

// AsPlot returns the segment from the origin to the tip of v per axis, in
// the shape plotting tools expect.
func (v Vector) AsPlot() map[string][2]float64 {
	return map[string][2]float64{
		"x": {0, v.Point.X},
		"y": {0, v.Point.Y},
		"z": {0, v.Point.Z},
	}
}

// LineString returns the segment from the origin to the tip of v.
func (v Vector) LineString() *geom.LineString {
	return geom.NewLineStringFlat(geom.XYZ, []float64{
		0, 0, 0,
		v.Point.X, v.Point.Y, v.Point.Z,
	})
}
