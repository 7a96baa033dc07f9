package engine

import (
	"fmt"
	"math"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Mul returns the product m * other.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms the point (x, y) by the matrix.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// IsIdentity reports whether m is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// String returns a readable representation of the matrix.
func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g %g %g %g]", m.A, m.B, m.C, m.D, m.E, m.F)
}

// Rect is an axis-aligned rectangle given by two corners.
// A rect with X1 < X0 or Y1 < Y0 is empty.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Infinite returns the rect covering the whole plane. Clip operations
// pass it through as the scissor when the caller supplies no bound.
func Infinite() Rect {
	return Rect{
		X0: math.Inf(-1), Y0: math.Inf(-1),
		X1: math.Inf(1), Y1: math.Inf(1),
	}
}

// MakeRect returns the rect with the given corners.
func MakeRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// IsInfinite reports whether r covers the whole plane.
func (r Rect) IsInfinite() bool {
	return math.IsInf(r.X0, -1) && math.IsInf(r.Y0, -1) &&
		math.IsInf(r.X1, 1) && math.IsInf(r.Y1, 1)
}

// IsEmpty reports whether r contains no area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Width returns the horizontal extent of the rect.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical extent of the rect.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Transform returns the bounding rect of r transformed by m.
func (r Rect) Transform(m Matrix) Rect {
	if r.IsInfinite() {
		return r
	}
	x0, y0 := m.Apply(r.X0, r.Y0)
	x1, y1 := m.Apply(r.X1, r.Y0)
	x2, y2 := m.Apply(r.X0, r.Y1)
	x3, y3 := m.Apply(r.X1, r.Y1)
	return Rect{
		X0: math.Min(math.Min(x0, x1), math.Min(x2, x3)),
		Y0: math.Min(math.Min(y0, y1), math.Min(y2, y3)),
		X1: math.Max(math.Max(x0, x1), math.Max(x2, x3)),
		Y1: math.Max(math.Max(y0, y1), math.Max(y2, y3)),
	}
}

// String returns a readable representation of the rect.
func (r Rect) String() string {
	return fmt.Sprintf("[%g %g %g %g]", r.X0, r.Y0, r.X1, r.Y1)
}
