package v3d

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when an argument is not a Point, Vector
	// or number where one is expected.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrDivideByZero is returned for a zero divisor, a zero magnitude in
	// Unit/Heading, or a zero cross product in Normal.
	ErrDivideByZero = errors.New("divide by zero")

	// ErrInvalidVector is returned when AngleBetween is given a zero vector.
	ErrInvalidVector = errors.New("invalid vector")
)

// OpError records the operation and operand that caused a failure.
type OpError struct {
	Op      string
	Operand any
	Err     error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("v3d: %s %v: %v", e.Op, e.Operand, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// fail logs the failure and returns it wrapped in an OpError.
func fail(op string, operand any, err error) error {
	e := &OpError{Op: op, Operand: operand, Err: err}
	logger().Errorf("%v", e)
	return e
}
