package engine

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestPathSegments(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.CurveTo(5, 6, 7, 8, 9, 10)
	p.Close()

	segs := p.Segments()
	if p.Len() != 4 || len(segs) != 4 {
		t.Fatalf("path has %d segments, want 4", p.Len())
	}
	want := []PathOp{MoveTo, LineTo, CurveTo, ClosePath}
	for i, op := range want {
		if segs[i].Op != op {
			t.Errorf("segment %d = %v, want %v", i, segs[i].Op, op)
		}
	}
	if segs[0].X1 != 1 || segs[0].Y1 != 2 {
		t.Errorf("move segment = (%g, %g), want (1, 2)", segs[0].X1, segs[0].Y1)
	}
	if segs[2].X3 != 9 || segs[2].Y3 != 10 {
		t.Errorf("curve end point = (%g, %g), want (9, 10)", segs[2].X3, segs[2].Y3)
	}
}

func TestDefaultStroke(t *testing.T) {
	s := DefaultStroke()
	if s.Width <= 0 {
		t.Errorf("default stroke width = %g, want positive", s.Width)
	}
	if s.Join != JoinMiter {
		t.Errorf("default join = %v, want miter", s.Join)
	}
	if s.StartCap != CapButt || s.EndCap != CapButt {
		t.Error("default caps are not butt caps")
	}
	if len(s.Dashes) != 0 {
		t.Errorf("default stroke has %d dashes, want none", len(s.Dashes))
	}
}

func TestTextSpans(t *testing.T) {
	txt := NewText()
	if txt.Len() != 0 {
		t.Fatalf("empty text has %d glyphs", txt.Len())
	}

	span := txt.AddSpan(nil, Scale(12, 12))
	span.Add(42, 'A', 0, 0)
	span.Add(43, 'B', 7, 0)

	second := txt.AddSpan(nil, Identity())
	second.Add(44, 'C', 14, 0)

	if txt.Len() != 3 {
		t.Errorf("text has %d glyphs, want 3", txt.Len())
	}
	if len(txt.Spans()) != 2 {
		t.Errorf("text has %d spans, want 2", len(txt.Spans()))
	}
	g := txt.Spans()[0].Glyphs[1]
	if g.GID != 43 || g.Rune != 'B' || g.X != 7 {
		t.Errorf("glyph = %+v, want GID 43 rune B at x=7", g)
	}
}

func TestNewImageValidation(t *testing.T) {
	samples := make([]byte, 64)
	tests := []struct {
		name                string
		w, h, stride, chans int
		samples             []byte
	}{
		{"zero width", 0, 4, 16, 4, samples},
		{"zero height", 4, 0, 16, 4, samples},
		{"zero channels", 4, 4, 16, 0, samples},
		{"excess channels", 4, 4, 16, MaxColorComponents + 1, samples},
		{"stride below row", 4, 4, 8, 4, samples},
		{"short samples", 4, 4, 16, 4, samples[:32]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewImage(tt.w, tt.h, tt.stride, tt.chans, gputypes.TextureFormatRGBA8Unorm, tt.samples, nil); err == nil {
				t.Error("NewImage succeeded, want error")
			}
		})
	}

	img, err := NewImage(4, 4, 16, 4, gputypes.TextureFormatRGBA8Unorm, samples, nil)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	if img.Mask() != nil {
		t.Error("image gained a mask from nil")
	}
}
