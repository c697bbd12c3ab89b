package v3d_test

import (
	"errors"
	"fmt"

	"v3d"
)

func ExamplePoint_Divide() {
	p, _ := v3d.NewPoint(2, 2, 2).Divide(2)
	fmt.Println(p)
	// Output: Point(x=1, y=1, z=1)
}

func ExampleVector_Multiply() {
	v := v3d.NewVector(v3d.NewPoint(1, 1, 1))
	w := v3d.NewVector(v3d.NewPoint(3, 1, 4))
	scaled, _ := v.Multiply(2)
	cross, _ := v.Multiply(w)
	fmt.Println(scaled)
	fmt.Println(cross)
	fmt.Println(v.Dot(w))
	// Output:
	// Vector(Point(x=2, y=2, z=2))
	// Vector(Point(x=3, y=-1, z=-2))
	// 8
}

func ExampleVector_Unit() {
	_, err := v3d.Vector{}.Unit()
	fmt.Println(errors.Is(err, v3d.ErrDivideByZero))
	// Output: true
}

func ExampleVector_Rotate() {
	v := v3d.NewVector(v3d.NewPoint(1, 1, 1)).Rotate(180, 0, 0)
	fmt.Println(v.Equal(v3d.NewVector(v3d.NewPoint(1, -1, -1))))
	// Output: true
}
