// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixdev

import (
	"errors"
	"fmt"

	"github.com/gogpu/pixdev/engine"
)

// MaxColorComponents bounds a color component array when a command
// supplies no colorspace.
const MaxColorComponents = engine.MaxColorComponents

// Device is a drawing session bound to an engine device.
//
// Each entry point validates its arguments upfront, acquires the
// session's pixel [Target], invokes exactly one engine primitive,
// releases the target on every exit path, and reports failures through
// the typed error taxonomy ([ArgumentError], [LockError],
// [EngineError]).
//
// A Device is driven by one goroutine at a time; it performs no
// serialization of its own.
type Device struct {
	dev    engine.Device
	target Target
	label  string
}

// DeviceOption configures a Device during creation.
type DeviceOption func(*Device)

// WithTarget binds a locked pixel target to the session. Without this
// option the session has no pixel buffer dependency and every command
// runs with no acquire/release step.
func WithTarget(t Target) DeviceOption {
	return func(d *Device) {
		if t != nil {
			d.target = t
		}
	}
}

// WithLabel attaches a debug label used in log output.
func WithLabel(label string) DeviceOption {
	return func(d *Device) {
		d.label = label
	}
}

// NewDevice creates a session over the given engine device.
func NewDevice(dev engine.Device, opts ...DeviceOption) (*Device, error) {
	if dev == nil {
		return nil, errors.New("pixdev: nil engine device")
	}
	d := &Device{dev: dev, target: NoTarget{}}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Target returns the session's pixel target.
func (d *Device) Target() Target { return d.target }

// run executes one drawing primitive under the locking protocol:
// acquire, draw, unconditional release, translate.
func (d *Device) run(op string, draw func() error) error {
	if d.dev == nil {
		return ErrDestroyed
	}
	if err := d.target.Acquire(); err != nil {
		Logger().Warn("pixel target acquisition failed", "op", op, "device", d.label, "err", err)
		return &LockError{Op: op, Err: err}
	}
	defer d.target.Release()
	if err := draw(); err != nil {
		return &EngineError{Op: op, Err: err}
	}
	return nil
}

// resolveColor validates a color component array against the colorspace
// channel count. With a colorspace the array length must equal its
// channel count exactly; without one, anything up to MaxColorComponents
// passes through. A nil array decodes to all-zero components.
func resolveColor(op string, cs *engine.Colorspace, color []float64) ([]float64, error) {
	if cs != nil {
		n := cs.Channels()
		if color == nil {
			return make([]float64, n), nil
		}
		if len(color) != n {
			return nil, &ArgumentError{
				Op:  op,
				Msg: fmt.Sprintf("color array has %d components, colorspace %s has %d channels", len(color), cs.Name(), n),
			}
		}
		return color, nil
	}
	if len(color) > MaxColorComponents {
		return nil, &ArgumentError{
			Op:  op,
			Msg: fmt.Sprintf("color array has %d components, limit is %d", len(color), MaxColorComponents),
		}
	}
	return color, nil
}

// Close flushes the engine device and marks the end of the command
// sequence. Commands issued after Close are rejected by the engine
// device itself; this layer keeps no state of its own.
func (d *Device) Close() error {
	return d.run("Close", func() error {
		return d.dev.Close()
	})
}

// Destroy releases the session's resources: the pixel target's owned
// pixmap storage and the engine handle. Destroy is idempotent and never
// fails; calling it when the engine context is already gone (teardown
// during process shutdown) is a silent no-op. The per-command lock
// protocol is unrelated: Destroy is the ownership-level release.
func (d *Device) Destroy() {
	if d == nil || d.dev == nil {
		return
	}
	if t, ok := d.target.(interface{ Destroy() }); ok {
		t.Destroy()
	}
	Logger().Debug("device destroyed", "device", d.label)
	d.target = NoTarget{}
	d.dev = nil
}
