package engine

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Pixmap is a rectangular pixel buffer the engine draws into.
//
// The samples slice is a window onto storage that may be owned
// elsewhere. When the owner is a managed buffer whose address can change
// while unlocked, the locking layer calls SetSamples on every acquire to
// refresh the cached address; devices must read Samples again rather
// than hold onto a slice across commands.
type Pixmap struct {
	samples []byte
	width   int
	height  int
	stride  int
	format  gputypes.TextureFormat
}

// NewPixmap creates a pixmap of the given dimensions with no attached
// storage. Storage arrives through SetSamples, typically from a lock
// acquisition.
func NewPixmap(width, height, stride int, format gputypes.TextureFormat) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("engine: invalid pixmap size %dx%d", width, height)
	}
	if stride < width {
		return nil, fmt.Errorf("engine: pixmap stride %d smaller than width %d", stride, width)
	}
	return &Pixmap{width: width, height: height, stride: stride, format: format}, nil
}

// Width returns the pixmap width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the pixmap height in pixels.
func (p *Pixmap) Height() int { return p.height }

// Stride returns the number of bytes per row.
func (p *Pixmap) Stride() int { return p.stride }

// Format returns the pixel format.
func (p *Pixmap) Format() gputypes.TextureFormat { return p.format }

// Samples returns the current backing storage, or nil when the pixmap
// is not locked onto any. The returned slice is valid only within the
// acquire/release window that installed it.
func (p *Pixmap) Samples() []byte { return p.samples }

// SetSamples installs the current backing storage. The locking layer
// calls this on every acquire so that a buffer relocated while unlocked
// is picked up at its new address. Passing nil detaches the storage.
func (p *Pixmap) SetSamples(samples []byte) error {
	if samples != nil && len(samples) < p.stride*p.height {
		return fmt.Errorf("engine: pixmap storage %d bytes, need %d", len(samples), p.stride*p.height)
	}
	p.samples = samples
	return nil
}

// Drop releases the pixmap's claim on its storage. This is the
// ownership-level release performed at session teardown, distinct from
// the per-command unlock. Drop is idempotent and safe on a pixmap that
// never had storage.
func (p *Pixmap) Drop() {
	p.samples = nil
}
