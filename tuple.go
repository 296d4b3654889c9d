package rt

import (
	"fmt"
	"math"
)

// Tuple is a homogeneous coordinate (x, y, z, w).
//
// A tuple with W == 1 is a point and a tuple with W == 0 is a vector. Other
// W values are accepted but carry no defined meaning. All methods return new
// tuples; the receiver is never modified.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple from all four components.
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Zero returns the tuple with every component set to 0.
// It is also the zero vector.
func Zero() Tuple {
	return Tuple{}
}

// Point creates a point (w = 1).
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a vector (w = 0).
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether W is exactly 1.
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether W is exactly 0.
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Equal reports whether every component of t and o is within DefaultEpsilon.
func (t Tuple) Equal(o Tuple) bool {
	return t.EqualWithin(o, DefaultTolerance)
}

// EqualWithin reports whether every component of t and o is within tol.
func (t Tuple) EqualWithin(o Tuple, tol Tolerance) bool {
	return tol.Equal(t.X, o.X) &&
		tol.Equal(t.Y, o.Y) &&
		tol.Equal(t.Z, o.Z) &&
		tol.Equal(t.W, o.W)
}

// Magnitude returns the Euclidean norm over all four components.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns t divided by its magnitude.
// It returns ErrDivisionByZero when the magnitude is 0.
func (t Tuple) Normalize() (Tuple, error) {
	m := t.Magnitude()
	if m == 0 {
		return Tuple{}, fmt.Errorf("rt: normalize %v: %w", t, ErrDivisionByZero)
	}
	return t.Div(m), nil
}

// Dot returns the sum of the componentwise products, w included.
func (t Tuple) Dot(o Tuple) float64 {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W
}

// Cross returns the 3D cross product of the xyz parts.
// W is ignored on both inputs and the result is always a vector.
func (t Tuple) Cross(o Tuple) Tuple {
	return Vector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	)
}

// Add returns the componentwise sum.
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{X: t.X + o.X, Y: t.Y + o.Y, Z: t.Z + o.Z, W: t.W + o.W}
}

// Sub returns the componentwise difference t - o.
func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{X: t.X - o.X, Y: t.Y - o.Y, Z: t.Z - o.Z, W: t.W - o.W}
}

// Neg returns Zero() - t.
func (t Tuple) Neg() Tuple {
	return Zero().Sub(t)
}

// Mul returns t scaled by s.
func (t Tuple) Mul(s float64) Tuple {
	return Tuple{X: t.X * s, Y: t.Y * s, Z: t.Z * s, W: t.W * s}
}

// Div returns t divided by s. Dividing by 0 follows IEEE 754 rules.
func (t Tuple) Div(s float64) Tuple {
	return Tuple{X: t.X / s, Y: t.Y / s, Z: t.Z / s, W: t.W / s}
}

// Hadamard returns the componentwise product of t and o.
func (t Tuple) Hadamard(o Tuple) Tuple {
	return Tuple{X: t.X * o.X, Y: t.Y * o.Y, Z: t.Z * o.Z, W: t.W * o.W}
}

// String implements fmt.Stringer.
func (t Tuple) String() string {
	switch {
	case t.IsPoint():
		return fmt.Sprintf("Point(%g, %g, %g)", t.X, t.Y, t.Z)
	case t.IsVector():
		return fmt.Sprintf("Vector(%g, %g, %g)", t.X, t.Y, t.Z)
	default:
		return fmt.Sprintf("Tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
	}
}
