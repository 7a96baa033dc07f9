// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import "errors"

// ErrClosed is returned by a device that receives a command after Close.
// The binding layer does not pre-check session state; it relies on the
// device itself to report this condition.
var ErrClosed = errors.New("engine: device closed")

// Device is the drawing-command contract of the rendering engine.
//
// A Device receives an ordered sequence of drawing commands and
// accumulates or emits rendered output. Implementations include the
// engine's rasterizing devices (external to this module), the
// [DisplayList] recorder and the [TraceDevice].
//
// Each method performs exactly one drawing primitive. Clip commands take
// an explicit scissor rect; callers that want no bound pass
// [Infinite]().
//
// Thread safety: a Device is driven by one goroutine at a time. Commands
// must arrive in caller order; the device does not serialize concurrent
// callers.
//
// After Close, every further command fails (typically with [ErrClosed]).
type Device interface {
	// FillPath fills a path with a color in the given colorspace.
	FillPath(path *Path, evenOdd bool, ctm Matrix, cs *Colorspace, color []float64, alpha float64, cp ColorParams) error

	// StrokePath strokes a path with the given stroke state and color.
	StrokePath(path *Path, stroke *StrokeState, ctm Matrix, cs *Colorspace, color []float64, alpha float64, cp ColorParams) error

	// ClipPath pushes the path's fill region onto the clip stack.
	ClipPath(path *Path, evenOdd bool, ctm Matrix, scissor Rect) error

	// ClipStrokePath pushes the path's stroked outline onto the clip stack.
	ClipStrokePath(path *Path, stroke *StrokeState, ctm Matrix, scissor Rect) error

	// FillText fills a text run with a color.
	FillText(text *Text, ctm Matrix, cs *Colorspace, color []float64, alpha float64, cp ColorParams) error

	// StrokeText strokes a text run's glyph outlines.
	StrokeText(text *Text, stroke *StrokeState, ctm Matrix, cs *Colorspace, color []float64, alpha float64, cp ColorParams) error

	// ClipText pushes a text run's fill region onto the clip stack.
	ClipText(text *Text, ctm Matrix, scissor Rect) error

	// ClipStrokeText pushes a text run's stroked outline onto the clip stack.
	ClipStrokeText(text *Text, stroke *StrokeState, ctm Matrix, scissor Rect) error

	// IgnoreText records a text run that paints nothing (rendering mode 3).
	IgnoreText(text *Text, ctm Matrix) error

	// FillShade fills the current clip region with a shading.
	FillShade(shade *Shade, ctm Matrix, alpha float64, cp ColorParams) error

	// FillImage draws an image.
	FillImage(img *Image, ctm Matrix, alpha float64, cp ColorParams) error

	// FillImageMask fills an image mask with a color.
	FillImageMask(img *Image, ctm Matrix, cs *Colorspace, color []float64, alpha float64, cp ColorParams) error

	// ClipImageMask pushes an image mask onto the clip stack.
	ClipImageMask(img *Image, ctm Matrix, scissor Rect) error

	// PopClip pops the most recent clip region.
	PopClip() error

	// BeginLayer opens a named marked-content layer. The name may be
	// empty.
	BeginLayer(name string) error

	// EndLayer closes the current layer.
	EndLayer() error

	// BeginMask begins rendering a soft mask covering area. If
	// luminosity is set the mask derives from luminosity rather than
	// alpha; cs and color give the backdrop.
	BeginMask(area Rect, luminosity bool, cs *Colorspace, color []float64, cp ColorParams) error

	// EndMask finishes the mask source; subsequent commands render the
	// masked content.
	EndMask() error

	// BeginGroup opens a transparency group over area.
	BeginGroup(area Rect, cs *Colorspace, isolated, knockout bool, blend BlendMode, alpha float64) error

	// EndGroup closes the current transparency group.
	EndGroup() error

	// BeginTile opens a tiling pattern cell. area is the area to fill,
	// view the cell bounds, xstep/ystep the tile spacing. id identifies
	// a cached tile: the device returns a non-zero index when it can
	// replay a cached rendering of the same id, and 0 when the caller
	// must draw the cell contents.
	BeginTile(area, view Rect, xstep, ystep float64, ctm Matrix, id int) (int, error)

	// EndTile closes the current tiling pattern cell.
	EndTile() error

	// Close flushes pending output and marks the end of the command
	// sequence. No further commands are valid after Close.
	Close() error
}
