package engine

// PathOp identifies a path segment kind.
type PathOp uint8

// Path segment kinds.
const (
	MoveTo PathOp = iota
	LineTo
	CurveTo
	ClosePath
)

// PathSegment is one command in a path. CurveTo uses all three points;
// MoveTo and LineTo use only (X1, Y1); ClosePath uses none.
type PathSegment struct {
	Op     PathOp
	X1, Y1 float64
	X2, Y2 float64
	X3, Y3 float64
}

// Path is a recorded outline. The binding layer treats it as opaque;
// only the engine's devices interpret its geometry.
type Path struct {
	segs []PathSegment
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.segs = append(p.segs, PathSegment{Op: MoveTo, X1: x, Y1: y})
}

// LineTo appends a line segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.segs = append(p.segs, PathSegment{Op: LineTo, X1: x, Y1: y})
}

// CurveTo appends a cubic Bezier segment with control points
// (x1, y1), (x2, y2) and end point (x3, y3).
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	p.segs = append(p.segs, PathSegment{
		Op: CurveTo,
		X1: x1, Y1: y1,
		X2: x2, Y2: y2,
		X3: x3, Y3: y3,
	})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.segs = append(p.segs, PathSegment{Op: ClosePath})
}

// Segments returns the recorded segments. The slice is shared; callers
// must not modify it.
func (p *Path) Segments() []PathSegment {
	return p.segs
}

// Len returns the number of recorded segments.
func (p *Path) Len() int {
	return len(p.segs)
}

// LineCap selects the shape drawn at the ends of open subpaths.
type LineCap uint8

// Line cap styles.
const (
	CapButt LineCap = iota
	CapRound
	CapSquare
	CapTriangle
)

// LineJoin selects the shape drawn at joints between segments.
type LineJoin uint8

// Line join styles.
const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// StrokeState carries the stroke parameters of a stroke or clip-stroke
// command.
type StrokeState struct {
	StartCap, DashCap, EndCap LineCap
	Join                      LineJoin
	Width                     float64
	MiterLimit                float64
	DashPhase                 float64
	Dashes                    []float64
}

// DefaultStroke returns a stroke state with a hairline width, butt caps
// and miter joins.
func DefaultStroke() *StrokeState {
	return &StrokeState{Width: 1, MiterLimit: 10}
}

// ShadeKind identifies the geometry of a shading.
type ShadeKind uint8

// Shading kinds, matching the PDF shading types that matter to devices.
const (
	ShadeFunction ShadeKind = iota
	ShadeLinear
	ShadeRadial
	ShadeMesh
)

// Shade is a shading resource. Like Path it is an opaque carrier: the
// binding layer never interprets it.
type Shade struct {
	Kind       ShadeKind
	Colorspace *Colorspace
	Bounds     Rect
}

// NewShade creates a shading of the given kind over bounds.
func NewShade(kind ShadeKind, cs *Colorspace, bounds Rect) *Shade {
	return &Shade{Kind: kind, Colorspace: cs, Bounds: bounds}
}
