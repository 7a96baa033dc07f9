// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixdev

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixdev/engine"
)

// Buffer is pixel storage whose memory address is stable only while
// pinned. A managed allocator may relocate or reclaim the storage
// whenever it is unpinned, so the slice returned by Pin must never be
// retained past the matching Unpin.
type Buffer interface {
	// Pin locks the storage in place and returns its current backing
	// bytes. A pin that fails leaves no lock held.
	Pin() ([]byte, error)

	// Unpin releases the pin. Called exactly once per successful Pin.
	Unpin()
}

// Target is the locked pixel target of a device session.
//
// Every drawing command acquires the target before invoking the engine
// primitive and releases it afterwards on every exit path. For sessions
// that draw into no pixel buffer the target is [NoTarget], making the
// whole step a no-op; locking is strictly per-session, never per-call.
type Target interface {
	// Acquire pins the target's backing storage for the duration of one
	// drawing command. On success the target's pixmap samples point at
	// the storage's current address, which stays valid until Release.
	// On failure no lock is held and Release must not be called.
	Acquire() error

	// Release unpins the storage. Called exactly once per successful
	// Acquire; the pixel address is invalid afterwards.
	Release()
}

// NoTarget is the target of a session with no pixel buffer dependency,
// such as a display-list recording session. Acquire and Release do
// nothing.
type NoTarget struct{}

// Acquire implements Target as a no-op success.
func (NoTarget) Acquire() error { return nil }

// Release implements Target as a no-op.
func (NoTarget) Release() {}

// Ensure NoTarget implements Target.
var _ Target = NoTarget{}

// BufferTarget binds a pixmap to relocatable pixel storage.
//
// Conceptually the session draws onto a plane of planeWidth x
// planeHeight pixels; the session's page or patch is positioned on that
// plane at (xOffset, yOffset). The pixmap's sample address is refreshed
// on every Acquire because the storage may have moved while unpinned.
type BufferTarget struct {
	pixmap      *engine.Pixmap
	buf         Buffer
	planeWidth  int
	planeHeight int
	xOffset     int
	yOffset     int
}

// NewBufferTarget binds pixmap to buf with the given plane geometry.
func NewBufferTarget(pixmap *engine.Pixmap, buf Buffer, planeWidth, planeHeight, xOffset, yOffset int) (*BufferTarget, error) {
	if pixmap == nil {
		return nil, errors.New("pixdev: nil pixmap")
	}
	if buf == nil {
		return nil, errors.New("pixdev: nil buffer")
	}
	if planeWidth <= 0 || planeHeight <= 0 {
		return nil, errors.New("pixdev: plane dimensions must be positive")
	}
	return &BufferTarget{
		pixmap:      pixmap,
		buf:         buf,
		planeWidth:  planeWidth,
		planeHeight: planeHeight,
		xOffset:     xOffset,
		yOffset:     yOffset,
	}, nil
}

// Acquire pins the buffer and installs its current address into the
// pixmap. If the pinned storage cannot back the pixmap the pin is
// undone before the error returns, leaving no dangling lock.
func (t *BufferTarget) Acquire() error {
	samples, err := t.buf.Pin()
	if err != nil {
		return err
	}
	if err := t.pixmap.SetSamples(samples); err != nil {
		t.buf.Unpin()
		return err
	}
	return nil
}

// Release detaches the now-unstable address from the pixmap and unpins
// the buffer.
func (t *BufferTarget) Release() {
	// Detach first: after Unpin the address may change at any time.
	_ = t.pixmap.SetSamples(nil)
	t.buf.Unpin()
}

// Destroy drops the pixmap's claim on its storage. Called once at
// session teardown; safe to call repeatedly.
func (t *BufferTarget) Destroy() {
	t.pixmap.Drop()
}

// Pixmap returns the bound pixmap.
func (t *BufferTarget) Pixmap() *engine.Pixmap { return t.pixmap }

// PlaneWidth returns the full addressable plane width.
func (t *BufferTarget) PlaneWidth() int { return t.planeWidth }

// PlaneHeight returns the full addressable plane height.
func (t *BufferTarget) PlaneHeight() int { return t.planeHeight }

// XOffset returns the horizontal placement of the page on the plane.
func (t *BufferTarget) XOffset() int { return t.xOffset }

// YOffset returns the vertical placement of the page on the plane.
func (t *BufferTarget) YOffset() int { return t.yOffset }

// Ensure BufferTarget implements Target.
var _ Target = (*BufferTarget)(nil)

// TextureTarget is the GPU-surface variant of a locked pixel target.
// It carries the host's device handle and the surface format.
//
// Drawing into a texture needs a staging pixmap copied through the
// device queue around each command; that acquisition strategy is not
// implemented, so Acquire currently reports a lock failure.
type TextureTarget struct {
	handle gpucontext.DeviceProvider
	format gputypes.TextureFormat
	width  int
	height int
}

// NewTextureTarget creates a texture target for the given device handle.
func NewTextureTarget(handle gpucontext.DeviceProvider, width, height int, format gputypes.TextureFormat) (*TextureTarget, error) {
	if handle == nil {
		return nil, errors.New("pixdev: nil device handle")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New("pixdev: texture dimensions must be positive")
	}
	return &TextureTarget{handle: handle, format: format, width: width, height: height}, nil
}

// Acquire implements Target.
func (t *TextureTarget) Acquire() error {
	return errors.New("pixdev: texture staging not implemented")
}

// Release implements Target.
func (t *TextureTarget) Release() {}

// Handle returns the host's GPU device handle.
func (t *TextureTarget) Handle() gpucontext.DeviceProvider { return t.handle }

// Format returns the surface pixel format.
func (t *TextureTarget) Format() gputypes.TextureFormat { return t.format }

// Ensure TextureTarget implements Target.
var _ Target = (*TextureTarget)(nil)
