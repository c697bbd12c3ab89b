// Package raster draws projected vectors into an image without a GPU.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"

	"v3d"
)

// Colours used by Render.
var (
	// AxisColor draws the unit X, Y and Z axes.
	AxisColor = color.RGBA{90, 90, 90, 255}
	// VectorColor draws each rendered vector.
	VectorColor = color.RGBA{255, 255, 0, 255}
	// Background fills the image before anything is drawn.
	Background = color.RGBA{25, 25, 25, 255}
)

// Camera places the scene in front of a perspective projection.
type Camera struct {
	Width, Height int
	// FOV is the projection scale factor (e.g. 200-400).
	FOV float64
	// Distance from the camera to the origin.
	Distance float64
	// Alpha, Beta and Gamma orient the scene in degrees, see v3d.Vector.Rotate.
	Alpha, Beta, Gamma float64
}

// DefaultCamera looks at the origin from a slight oblique angle.
func DefaultCamera(width, height int) Camera {
	return Camera{
		Width:    width,
		Height:   height,
		FOV:      300,
		Distance: 6,
		Alpha:    -20,
		Beta:     30,
	}
}

// Project projects p to screen coordinates. Screen Y grows downward.
// Points on the camera plane project to NaN, which DrawLine skips.
func (c Camera) Project(p v3d.Point) orb.Point {
	q := v3d.NewVector(p).Rotate(c.Alpha, c.Beta, c.Gamma).Point
	depth := c.Distance + q.Z
	if depth == 0 {
		return orb.Point{math.NaN(), math.NaN()}
	}
	factor := c.FOV / depth
	return orb.Point{
		q.X*factor + float64(c.Width)/2,
		-q.Y*factor + float64(c.Height)/2,
	}
}

// Render draws the three unit axes and every vector as a segment from the
// origin to its tip.
func Render(c Camera, vectors []v3d.Vector) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = Background.R
		img.Pix[i+1] = Background.G
		img.Pix[i+2] = Background.B
		img.Pix[i+3] = Background.A
	}
	origin := c.Project(v3d.Point{})
	for _, axis := range []v3d.Point{{X: 1}, {Y: 1}, {Z: 1}} {
		DrawLine(img, origin, c.Project(axis), AxisColor)
	}
	for _, v := range vectors {
		DrawLine(img, origin, c.Project(v.Point), VectorColor)
	}
	return img
}

// DrawLine draws a line on the image from a to b. The segment is clipped
// to the image first, so the cost is bounded by the image size. Lines with
// a non-finite endpoint are skipped.
func DrawLine(img *image.RGBA, a, b orb.Point, col color.RGBA) {
	if !finite(a) || !finite(b) {
		return
	}
	bounds := orb.Bound{
		Min: orb.Point{float64(img.Rect.Min.X), float64(img.Rect.Min.Y)},
		Max: orb.Point{float64(img.Rect.Max.X - 1), float64(img.Rect.Max.Y - 1)},
	}
	if a == b {
		plot(img, bounds, a, col)
		return
	}
	for _, ls := range clip.LineString(bounds, orb.LineString{a, b}) {
		for i := 1; i < len(ls); i++ {
			step(img, bounds, ls[i-1], ls[i], col)
		}
	}
}

func step(img *image.RGBA, bounds orb.Bound, a, b orb.Point, col color.RGBA) {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	steps := math.Max(math.Abs(dx), math.Abs(dy))

	var xInc, yInc float64
	if steps > 0 {
		xInc = dx / steps
		yInc = dy / steps
	}

	x, y := a[0], a[1]
	for i := 0; i <= int(steps); i++ {
		plot(img, bounds, orb.Point{x, y}, col)
		x += xInc
		y += yInc
	}
}

func plot(img *image.RGBA, bounds orb.Bound, p orb.Point, col color.RGBA) {
	px := orb.Point{math.Round(p[0]), math.Round(p[1])}
	if !bounds.Contains(px) {
		return
	}
	offset := img.PixOffset(int(px[0]), int(px[1]))
	img.Pix[offset] = col.R
	img.Pix[offset+1] = col.G
	img.Pix[offset+2] = col.B
	img.Pix[offset+3] = col.A
}

func finite(p orb.Point) bool {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
