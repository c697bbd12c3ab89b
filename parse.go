package v3d

import (
	"strconv"
	"strings"
)

// ParsePoint parses "x,y,z" into a Point. Missing trailing components
// default to zero; non-numeric components are ErrTypeMismatch.
func ParsePoint(s string) (Point, error) {
	fields := strings.Split(s, ",")
	if len(fields) > 3 {
		return Point{}, fail("ParsePoint", s, ErrTypeMismatch)
	}
	var c [3]float64
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" && len(fields) == 1 {
			break
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Point{}, fail("ParsePoint", f, ErrTypeMismatch)
		}
		c[i] = v
	}
	return Point{c[0], c[1], c[2]}, nil
}
