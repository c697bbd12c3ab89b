package v3d

import "github.com/golang/geo/s1"

func radians(deg float64) float64 { return (s1.Angle(deg) * s1.Degree).Radians() }

func degrees(rad float64) float64 { return (s1.Angle(rad) * s1.Radian).Degrees() }
