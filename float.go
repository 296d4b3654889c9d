package rt

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the absolute difference below which two values compare equal.
const DefaultEpsilon = 1e-5

// Tolerance is an absolute epsilon used for approximate comparisons.
//
// The zero Tolerance never reports equality, since |a-b| < 0 is always false.
type Tolerance float64

// DefaultTolerance is the tolerance used by Tuple.Equal and Color.Equal.
const DefaultTolerance = Tolerance(DefaultEpsilon)

// Equal reports whether |a-b| is strictly less than the tolerance.
func (t Tolerance) Equal(a, b float64) bool {
	return math.Abs(a-b) < float64(t)
}

// CloseEnough reports whether a and b are within DefaultEpsilon of each other.
func CloseEnough(a, b float64) bool {
	return DefaultTolerance.Equal(a, b)
}

// clamp restricts val to [lo, hi]. It panics if lo > hi.
func clamp(lo, val, hi int) int {
	if lo > hi {
		panic(fmt.Sprintf("rt: clamp called with min %d > max %d", lo, hi))
	}
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
