package engine

import (
	"fmt"
	"io"
)

// TraceDevice writes a one-line textual description of every command it
// receives. It is useful for inspecting command streams in tests and
// when debugging a producer.
//
// A TraceDevice is not safe for concurrent use.
type TraceDevice struct {
	w      io.Writer
	closed bool
}

// NewTraceDevice creates a trace device writing to w.
func NewTraceDevice(w io.Writer) *TraceDevice {
	return &TraceDevice{w: w}
}

func (t *TraceDevice) emit(format string, args ...any) error {
	if t.closed {
		return ErrClosed
	}
	_, err := fmt.Fprintf(t.w, format+"\n", args...)
	return err
}

// FillPath implements Device.
func (t *TraceDevice) FillPath(path *Path, evenOdd bool, ctm Matrix, cs *Colorspace, color []float64, alpha float64, cp ColorParams) error {
	return t.emit("fill_path segs=%d evenodd=%v ctm=%v cs=%v color=%v alpha=%g", path.Len(), evenOdd, ctm, cs, color, alpha)
}

// StrokePath implements Device.
func (t *TraceDevice) StrokePath(path *Path, stroke *StrokeState, ctm Matrix, cs *Colorspace, color []float64, alpha float64, cp ColorParams) error {
	return t.emit("stroke_path segs=%d width=%g ctm=%v cs=%v color=%v alpha=%g", path.Len(), stroke.Width, ctm, cs, color, alpha)
}

// ClipPath implements Device.
func (t *TraceDevice) ClipPath(path *Path, evenOdd bool, ctm Matrix, scissor Rect) error {
	return t.emit("clip_path segs=%d evenodd=%v ctm=%v scissor=%v", path.Len(), evenOdd, ctm, scissor)
}

// ClipStrokePath implements Device.
func (t *TraceDevice) ClipStrokePath(path *Path, stroke *StrokeState, ctm Matrix, scissor Rect) error {
	return t.emit("clip_stroke_path segs=%d width=%g ctm=%v scissor=%v", path.Len(), stroke.Width, ctm, scissor)
}

// FillText implements Device.
func (t *TraceDevice) FillText(text *Text, ctm Matrix, cs *Colorspace, color []float64, alpha float64, cp ColorParams) error {
	return t.emit("fill_text glyphs=%d ctm=%v cs=%v color=%v alpha=%g", text.Len(), ctm, cs, color, alpha)
}

// StrokeText implements Device.
func (t *TraceDevice) StrokeText(text *Text, stroke *StrokeState, ctm Matrix, cs *Colorspace, color []float64, alpha float64, cp ColorParams) error {
	return t.emit("stroke_text glyphs=%d width=%g ctm=%v cs=%v color=%v alpha=%g", text.Len(), stroke.Width, ctm, cs, color, alpha)
}

// ClipText implements Device.
func (t *TraceDevice) ClipText(text *Text, ctm Matrix, scissor Rect) error {
	return t.emit("clip_text glyphs=%d ctm=%v scissor=%v", text.Len(), ctm, scissor)
}

// ClipStrokeText implements Device.
func (t *TraceDevice) ClipStrokeText(text *Text, stroke *StrokeState, ctm Matrix, scissor Rect) error {
	return t.emit("clip_stroke_text glyphs=%d width=%g ctm=%v scissor=%v", text.Len(), stroke.Width, ctm, scissor)
}

// IgnoreText implements Device.
func (t *TraceDevice) IgnoreText(text *Text, ctm Matrix) error {
	return t.emit("ignore_text glyphs=%d ctm=%v", text.Len(), ctm)
}

// FillShade implements Device.
func (t *TraceDevice) FillShade(shade *Shade, ctm Matrix, alpha float64, cp ColorParams) error {
	return t.emit("fill_shade kind=%d ctm=%v alpha=%g", shade.Kind, ctm, alpha)
}

// FillImage implements Device.
func (t *TraceDevice) FillImage(img *Image, ctm Matrix, alpha float64, cp ColorParams) error {
	return t.emit("fill_image %dx%d ctm=%v alpha=%g", img.Width(), img.Height(), ctm, alpha)
}

// FillImageMask implements Device.
func (t *TraceDevice) FillImageMask(img *Image, ctm Matrix, cs *Colorspace, color []float64, alpha float64, cp ColorParams) error {
	return t.emit("fill_image_mask %dx%d ctm=%v cs=%v color=%v alpha=%g", img.Width(), img.Height(), ctm, cs, color, alpha)
}

// ClipImageMask implements Device.
func (t *TraceDevice) ClipImageMask(img *Image, ctm Matrix, scissor Rect) error {
	return t.emit("clip_image_mask %dx%d ctm=%v scissor=%v", img.Width(), img.Height(), ctm, scissor)
}

// PopClip implements Device.
func (t *TraceDevice) PopClip() error {
	return t.emit("pop_clip")
}

// BeginLayer implements Device.
func (t *TraceDevice) BeginLayer(name string) error {
	return t.emit("begin_layer %q", name)
}

// EndLayer implements Device.
func (t *TraceDevice) EndLayer() error {
	return t.emit("end_layer")
}

// BeginMask implements Device.
func (t *TraceDevice) BeginMask(area Rect, luminosity bool, cs *Colorspace, color []float64, cp ColorParams) error {
	return t.emit("begin_mask area=%v luminosity=%v cs=%v color=%v", area, luminosity, cs, color)
}

// EndMask implements Device.
func (t *TraceDevice) EndMask() error {
	return t.emit("end_mask")
}

// BeginGroup implements Device.
func (t *TraceDevice) BeginGroup(area Rect, cs *Colorspace, isolated, knockout bool, blend BlendMode, alpha float64) error {
	return t.emit("begin_group area=%v cs=%v isolated=%v knockout=%v blend=%v alpha=%g", area, cs, isolated, knockout, blend, alpha)
}

// EndGroup implements Device.
func (t *TraceDevice) EndGroup() error {
	return t.emit("end_group")
}

// BeginTile implements Device. The trace device never caches tiles, so
// the returned index is always 0.
func (t *TraceDevice) BeginTile(area, view Rect, xstep, ystep float64, ctm Matrix, id int) (int, error) {
	err := t.emit("begin_tile area=%v view=%v xstep=%g ystep=%g ctm=%v id=%d", area, view, xstep, ystep, ctm, id)
	return 0, err
}

// EndTile implements Device.
func (t *TraceDevice) EndTile() error {
	return t.emit("end_tile")
}

// Close implements Device.
func (t *TraceDevice) Close() error {
	if t.closed {
		return ErrClosed
	}
	if err := t.emit("close"); err != nil {
		return err
	}
	t.closed = true
	return nil
}

// Ensure TraceDevice implements Device.
var _ Device = (*TraceDevice)(nil)
