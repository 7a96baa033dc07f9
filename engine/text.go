package engine

import "github.com/go-text/typesetting/font"

// Glyph is one positioned glyph in a text span. GID is the glyph index
// in the span's font; Rune is the unicode character it renders, for
// devices that extract text rather than paint it.
type Glyph struct {
	GID  uint32
	Rune rune
	X, Y float64
}

// TextSpan is a run of glyphs sharing a font and transform.
//
// The font is a parsed go-text/typesetting font.Font: read-only and safe
// to share between spans.
type TextSpan struct {
	Font   *font.Font
	Trm    Matrix
	Glyphs []Glyph
}

// Add appends a positioned glyph to the span.
func (s *TextSpan) Add(gid uint32, r rune, x, y float64) {
	s.Glyphs = append(s.Glyphs, Glyph{GID: gid, Rune: r, X: x, Y: y})
}

// Text is a text resource: an ordered list of glyph spans. The binding
// layer passes it through unchanged.
type Text struct {
	spans []*TextSpan
}

// NewText creates an empty text resource.
func NewText() *Text {
	return &Text{}
}

// AddSpan appends a new span with the given font and transform and
// returns it for the caller to populate.
func (t *Text) AddSpan(f *font.Font, trm Matrix) *TextSpan {
	s := &TextSpan{Font: f, Trm: trm}
	t.spans = append(t.spans, s)
	return s
}

// Spans returns the recorded spans. The slice is shared; callers must
// not modify it.
func (t *Text) Spans() []*TextSpan {
	return t.spans
}

// Len returns the total glyph count across all spans.
func (t *Text) Len() int {
	n := 0
	for _, s := range t.spans {
		n += len(s.Glyphs)
	}
	return n
}
