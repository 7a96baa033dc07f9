// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixdev

import "github.com/gogpu/pixdev/engine"

// Every entry point in this file follows the same sequence: validate
// required resources, decode the color array against the colorspace,
// acquire the pixel target, invoke one engine primitive, release the
// target on every exit path. Validation happens entirely before the
// lock is taken; a command either runs its primitive once or not at
// all.

// FillPath fills a path. path is required; cs may be nil.
func (d *Device) FillPath(path *engine.Path, evenOdd bool, ctm engine.Matrix, cs *engine.Colorspace, color []float64, alpha float64, cp engine.ColorParams) error {
	const op = "FillPath"
	if path == nil {
		return &ArgumentError{Op: op, Msg: "path must not be nil"}
	}
	col, err := resolveColor(op, cs, color)
	if err != nil {
		return err
	}
	return d.run(op, func() error {
		return d.dev.FillPath(path, evenOdd, ctm, cs, col, alpha, cp)
	})
}

// StrokePath strokes a path. path and stroke are required; cs may be
// nil.
func (d *Device) StrokePath(path *engine.Path, stroke *engine.StrokeState, ctm engine.Matrix, cs *engine.Colorspace, color []float64, alpha float64, cp engine.ColorParams) error {
	const op = "StrokePath"
	if path == nil {
		return &ArgumentError{Op: op, Msg: "path must not be nil"}
	}
	if stroke == nil {
		return &ArgumentError{Op: op, Msg: "stroke must not be nil"}
	}
	col, err := resolveColor(op, cs, color)
	if err != nil {
		return err
	}
	return d.run(op, func() error {
		return d.dev.StrokePath(path, stroke, ctm, cs, col, alpha, cp)
	})
}

// ClipPath pushes a path onto the clip stack. path is required.
func (d *Device) ClipPath(path *engine.Path, evenOdd bool, ctm engine.Matrix) error {
	const op = "ClipPath"
	if path == nil {
		return &ArgumentError{Op: op, Msg: "path must not be nil"}
	}
	return d.run(op, func() error {
		return d.dev.ClipPath(path, evenOdd, ctm, engine.Infinite())
	})
}

// ClipStrokePath pushes a stroked path outline onto the clip stack.
// path and stroke are required.
func (d *Device) ClipStrokePath(path *engine.Path, stroke *engine.StrokeState, ctm engine.Matrix) error {
	const op = "ClipStrokePath"
	if path == nil {
		return &ArgumentError{Op: op, Msg: "path must not be nil"}
	}
	if stroke == nil {
		return &ArgumentError{Op: op, Msg: "stroke must not be nil"}
	}
	return d.run(op, func() error {
		return d.dev.ClipStrokePath(path, stroke, ctm, engine.Infinite())
	})
}

// FillText fills a text run. text is required; cs may be nil.
func (d *Device) FillText(text *engine.Text, ctm engine.Matrix, cs *engine.Colorspace, color []float64, alpha float64, cp engine.ColorParams) error {
	const op = "FillText"
	if text == nil {
		return &ArgumentError{Op: op, Msg: "text must not be nil"}
	}
	col, err := resolveColor(op, cs, color)
	if err != nil {
		return err
	}
	return d.run(op, func() error {
		return d.dev.FillText(text, ctm, cs, col, alpha, cp)
	})
}

// StrokeText strokes a text run's glyph outlines. text and stroke are
// required; cs may be nil.
func (d *Device) StrokeText(text *engine.Text, stroke *engine.StrokeState, ctm engine.Matrix, cs *engine.Colorspace, color []float64, alpha float64, cp engine.ColorParams) error {
	const op = "StrokeText"
	if text == nil {
		return &ArgumentError{Op: op, Msg: "text must not be nil"}
	}
	if stroke == nil {
		return &ArgumentError{Op: op, Msg: "stroke must not be nil"}
	}
	col, err := resolveColor(op, cs, color)
	if err != nil {
		return err
	}
	return d.run(op, func() error {
		return d.dev.StrokeText(text, stroke, ctm, cs, col, alpha, cp)
	})
}

// ClipText pushes a text run onto the clip stack. text is required.
func (d *Device) ClipText(text *engine.Text, ctm engine.Matrix) error {
	const op = "ClipText"
	if text == nil {
		return &ArgumentError{Op: op, Msg: "text must not be nil"}
	}
	return d.run(op, func() error {
		return d.dev.ClipText(text, ctm, engine.Infinite())
	})
}

// ClipStrokeText pushes a stroked text outline onto the clip stack.
// text and stroke are required.
func (d *Device) ClipStrokeText(text *engine.Text, stroke *engine.StrokeState, ctm engine.Matrix) error {
	const op = "ClipStrokeText"
	if text == nil {
		return &ArgumentError{Op: op, Msg: "text must not be nil"}
	}
	if stroke == nil {
		return &ArgumentError{Op: op, Msg: "stroke must not be nil"}
	}
	return d.run(op, func() error {
		return d.dev.ClipStrokeText(text, stroke, ctm, engine.Infinite())
	})
}

// IgnoreText records a text run that paints nothing. text is required.
func (d *Device) IgnoreText(text *engine.Text, ctm engine.Matrix) error {
	const op = "IgnoreText"
	if text == nil {
		return &ArgumentError{Op: op, Msg: "text must not be nil"}
	}
	return d.run(op, func() error {
		return d.dev.IgnoreText(text, ctm)
	})
}

// FillShade fills the current clip region with a shading. shade is
// required.
func (d *Device) FillShade(shade *engine.Shade, ctm engine.Matrix, alpha float64, cp engine.ColorParams) error {
	const op = "FillShade"
	if shade == nil {
		return &ArgumentError{Op: op, Msg: "shade must not be nil"}
	}
	return d.run(op, func() error {
		return d.dev.FillShade(shade, ctm, alpha, cp)
	})
}

// FillImage draws an image. img is required.
func (d *Device) FillImage(img *engine.Image, ctm engine.Matrix, alpha float64, cp engine.ColorParams) error {
	const op = "FillImage"
	if img == nil {
		return &ArgumentError{Op: op, Msg: "image must not be nil"}
	}
	return d.run(op, func() error {
		return d.dev.FillImage(img, ctm, alpha, cp)
	})
}

// FillImageMask fills an image mask with a color. img is required; cs
// may be nil.
func (d *Device) FillImageMask(img *engine.Image, ctm engine.Matrix, cs *engine.Colorspace, color []float64, alpha float64, cp engine.ColorParams) error {
	const op = "FillImageMask"
	if img == nil {
		return &ArgumentError{Op: op, Msg: "image must not be nil"}
	}
	col, err := resolveColor(op, cs, color)
	if err != nil {
		return err
	}
	return d.run(op, func() error {
		return d.dev.FillImageMask(img, ctm, cs, col, alpha, cp)
	})
}

// ClipImageMask pushes an image mask onto the clip stack. img is
// required.
func (d *Device) ClipImageMask(img *engine.Image, ctm engine.Matrix) error {
	const op = "ClipImageMask"
	if img == nil {
		return &ArgumentError{Op: op, Msg: "image must not be nil"}
	}
	return d.run(op, func() error {
		return d.dev.ClipImageMask(img, ctm, engine.Infinite())
	})
}

// PopClip pops the most recent clip region.
func (d *Device) PopClip() error {
	return d.run("PopClip", func() error {
		return d.dev.PopClip()
	})
}
