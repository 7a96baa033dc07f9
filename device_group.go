// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixdev

import "github.com/gogpu/pixdev/engine"

// BeginLayer opens a named marked-content layer. The name is optional;
// an empty name is legal and is not an argument error.
func (d *Device) BeginLayer(name string) error {
	return d.run("BeginLayer", func() error {
		return d.dev.BeginLayer(name)
	})
}

// EndLayer closes the current layer.
func (d *Device) EndLayer() error {
	return d.run("EndLayer", func() error {
		return d.dev.EndLayer()
	})
}

// BeginMask begins rendering a soft mask. cs may be nil.
func (d *Device) BeginMask(area engine.Rect, luminosity bool, cs *engine.Colorspace, color []float64, cp engine.ColorParams) error {
	const op = "BeginMask"
	col, err := resolveColor(op, cs, color)
	if err != nil {
		return err
	}
	return d.run(op, func() error {
		return d.dev.BeginMask(area, luminosity, cs, col, cp)
	})
}

// EndMask finishes the mask source.
func (d *Device) EndMask() error {
	return d.run("EndMask", func() error {
		return d.dev.EndMask()
	})
}

// BeginGroup opens a transparency group over area. The group's blending
// colorspace comes from the cs argument; cs may be nil for the
// backdrop's colorspace.
func (d *Device) BeginGroup(area engine.Rect, cs *engine.Colorspace, isolated, knockout bool, blend engine.BlendMode, alpha float64) error {
	return d.run("BeginGroup", func() error {
		return d.dev.BeginGroup(area, cs, isolated, knockout, blend, alpha)
	})
}

// EndGroup closes the current transparency group.
func (d *Device) EndGroup() error {
	return d.run("EndGroup", func() error {
		return d.dev.EndGroup()
	})
}

// BeginTile opens a tiling pattern cell and returns the engine's tile
// index: non-zero when a cached tile with the same id will be replayed,
// zero when the caller must draw the cell contents. On failure the
// index is zero.
func (d *Device) BeginTile(area, view engine.Rect, xstep, ystep float64, ctm engine.Matrix, id int) (int, error) {
	const op = "BeginTile"
	if d.dev == nil {
		return 0, ErrDestroyed
	}
	if err := d.target.Acquire(); err != nil {
		Logger().Warn("pixel target acquisition failed", "op", op, "device", d.label, "err", err)
		return 0, &LockError{Op: op, Err: err}
	}
	defer d.target.Release()
	i, err := d.dev.BeginTile(area, view, xstep, ystep, ctm, id)
	if err != nil {
		return 0, &EngineError{Op: op, Err: err}
	}
	return i, nil
}

// EndTile closes the current tiling pattern cell.
func (d *Device) EndTile() error {
	return d.run("EndTile", func() error {
		return d.dev.EndTile()
	})
}
