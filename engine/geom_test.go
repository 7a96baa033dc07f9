package engine

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func TestMatrixApply(t *testing.T) {
	tests := []struct {
		name  string
		m     Matrix
		x, y  float64
		wantX float64
		wantY float64
	}{
		{"identity", Identity(), 3, 4, 3, 4},
		{"translate", Translate(10, 20), 3, 4, 13, 24},
		{"scale", Scale(2, 3), 3, 4, 6, 12},
		{"rotate 90", Rotate(math.Pi / 2), 1, 0, 0, 1},
		{"rotate 180", Rotate(math.Pi), 1, 0, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := tt.m.Apply(tt.x, tt.y)
			if math.Abs(gotX-tt.wantX) > epsilon || math.Abs(gotY-tt.wantY) > epsilon {
				t.Errorf("Apply(%g, %g) = (%g, %g), want (%g, %g)", tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMatrixMul(t *testing.T) {
	// Scale then translate, applied as a single matrix.
	m := Translate(10, 0).Mul(Scale(2, 2))
	x, y := m.Apply(3, 4)
	if x != 16 || y != 8 {
		t.Errorf("combined transform of (3,4) = (%g, %g), want (16, 8)", x, y)
	}

	if got := Identity().Mul(Identity()); !got.IsIdentity() {
		t.Errorf("Identity * Identity = %v, want identity", got)
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1,0).IsIdentity() = true")
	}
	if (Matrix{}).IsIdentity() {
		t.Error("zero matrix reported as identity")
	}
}

func TestRectInfinite(t *testing.T) {
	inf := Infinite()
	if !inf.IsInfinite() {
		t.Error("Infinite().IsInfinite() = false")
	}
	if inf.IsEmpty() {
		t.Error("Infinite().IsEmpty() = true")
	}
	if MakeRect(0, 0, 1, 1).IsInfinite() {
		t.Error("finite rect reported as infinite")
	}
}

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"unit", MakeRect(0, 0, 1, 1), false},
		{"zero area", MakeRect(5, 5, 5, 5), true},
		{"inverted x", MakeRect(2, 0, 1, 1), true},
		{"inverted y", MakeRect(0, 2, 1, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.want {
				t.Errorf("%v.IsEmpty() = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRectTransform(t *testing.T) {
	r := MakeRect(0, 0, 2, 1)

	got := r.Transform(Translate(10, 20))
	want := MakeRect(10, 20, 12, 21)
	if got != want {
		t.Errorf("translated rect = %v, want %v", got, want)
	}

	// Rotation by 90 degrees swaps the extents; the result is the
	// bounding box of the rotated corners.
	got = r.Transform(Rotate(math.Pi / 2))
	if math.Abs(got.Width()-1) > epsilon || math.Abs(got.Height()-2) > epsilon {
		t.Errorf("rotated rect = %v, want 1x2 extents", got)
	}

	// The infinite rect is a fixed point of any transform.
	if got := Infinite().Transform(Scale(2, 2)); !got.IsInfinite() {
		t.Errorf("transformed infinite rect = %v, want infinite", got)
	}
}

func TestRectExtents(t *testing.T) {
	r := MakeRect(1, 2, 4, 8)
	if r.Width() != 3 {
		t.Errorf("Width() = %g, want 3", r.Width())
	}
	if r.Height() != 6 {
		t.Errorf("Height() = %g, want 6", r.Height())
	}
}
