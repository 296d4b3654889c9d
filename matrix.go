package rt

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is a read-only square matrix addressed in row-major order.
// Matrix2, Matrix3 and Matrix4 implement it.
type Matrix interface {
	Size() int
	At(row, col int) (float64, error)
}

// Matrix2 is a 2x2 matrix stored in row-major order.
type Matrix2 struct {
	m [4]float64
}

// Matrix3 is a 3x3 matrix stored in row-major order.
type Matrix3 struct {
	m [9]float64
}

// Matrix4 is a 4x4 matrix stored in row-major order.
type Matrix4 struct {
	m [16]float64
}

// NewMatrix2 creates a 2x2 matrix from exactly 4 row-major values.
func NewMatrix2(values ...float64) (Matrix2, error) {
	var m Matrix2
	if err := fill(m.m[:], 2, values); err != nil {
		return Matrix2{}, err
	}
	return m, nil
}

// NewMatrix3 creates a 3x3 matrix from exactly 9 row-major values.
func NewMatrix3(values ...float64) (Matrix3, error) {
	var m Matrix3
	if err := fill(m.m[:], 3, values); err != nil {
		return Matrix3{}, err
	}
	return m, nil
}

// NewMatrix4 creates a 4x4 matrix from exactly 16 row-major values.
func NewMatrix4(values ...float64) (Matrix4, error) {
	var m Matrix4
	if err := fill(m.m[:], 4, values); err != nil {
		return Matrix4{}, err
	}
	return m, nil
}

// MustMatrix2 is like NewMatrix2 but panics on a wrong element count.
func MustMatrix2(values ...float64) Matrix2 {
	m, err := NewMatrix2(values...)
	if err != nil {
		panic(err)
	}
	return m
}

// MustMatrix3 is like NewMatrix3 but panics on a wrong element count.
func MustMatrix3(values ...float64) Matrix3 {
	m, err := NewMatrix3(values...)
	if err != nil {
		panic(err)
	}
	return m
}

// MustMatrix4 is like NewMatrix4 but panics on a wrong element count.
func MustMatrix4(values ...float64) Matrix4 {
	m, err := NewMatrix4(values...)
	if err != nil {
		panic(err)
	}
	return m
}

// Size returns 2.
func (Matrix2) Size() int { return 2 }

// Size returns 3.
func (Matrix3) Size() int { return 3 }

// Size returns 4.
func (Matrix4) Size() int { return 4 }

// At returns the element at (row, col).
func (m Matrix2) At(row, col int) (float64, error) { return at(m.m[:], 2, row, col) }

// At returns the element at (row, col).
func (m Matrix3) At(row, col int) (float64, error) { return at(m.m[:], 3, row, col) }

// At returns the element at (row, col).
func (m Matrix4) At(row, col int) (float64, error) { return at(m.m[:], 4, row, col) }

// Equal reports whether m and o hold exactly the same values.
func (m Matrix2) Equal(o Matrix2) bool { return m == o }

// Equal reports whether m and o hold exactly the same values.
func (m Matrix3) Equal(o Matrix3) bool { return m == o }

// Equal reports whether m and o hold exactly the same values.
func (m Matrix4) Equal(o Matrix4) bool { return m == o }

// EqualWithin reports whether every element of m and o is within tol.
func (m Matrix2) EqualWithin(o Matrix2, tol Tolerance) bool { return within(m.m[:], o.m[:], tol) }

// EqualWithin reports whether every element of m and o is within tol.
func (m Matrix3) EqualWithin(o Matrix3, tol Tolerance) bool { return within(m.m[:], o.m[:], tol) }

// EqualWithin reports whether every element of m and o is within tol.
func (m Matrix4) EqualWithin(o Matrix4, tol Tolerance) bool { return within(m.m[:], o.m[:], tol) }

func (m Matrix2) String() string { return format(m.m[:], 2) }
func (m Matrix3) String() string { return format(m.m[:], 3) }
func (m Matrix4) String() string { return format(m.m[:], 4) }

// fill copies values into dst, which backs a size x size matrix.
func fill(dst []float64, size int, values []float64) error {
	if len(values) != size*size {
		return fmt.Errorf("%w: %dx%d matrix needs %d values, got %d",
			ErrElementCount, size, size, size*size, len(values))
	}
	copy(dst, values)
	return nil
}

// at maps (row, col) to data[row*size+col].
func at(data []float64, size, row, col int) (float64, error) {
	if row < 0 || row >= size || col < 0 || col >= size {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d matrix", ErrIndexOutOfRange, row, col, size, size)
	}
	return data[row*size+col], nil
}

func within(a, b []float64, tol Tolerance) bool {
	for i := range a {
		if !tol.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// format renders one bracketed row per line, e.g. "[1 2]\n[3 4]".
func format(data []float64, size int) string {
	var sb strings.Builder
	for row := 0; row < size; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for col := 0; col < size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(data[row*size+col], 'g', -1, 64))
		}
		sb.WriteByte(']')
	}
	return sb.String()
}
