// Package v3d implements 3D points and vectors: arithmetic, polar
// conversion, dot and cross products, angles, and rotations.
//
// Point and Vector are values. Every operation returns a new value; only
// (*Point).SetPolar writes to its receiver. Equality is tolerance based,
// see DefaultTolerance.
//
// Operations report failures as *OpError wrapping ErrTypeMismatch,
// ErrDivideByZero or ErrInvalidVector, and emit trace lines to the Logger
// installed with SetLogger.
package v3d
