package engine

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Image is an image resource: decoded samples plus their channel
// layout, with an optional alpha mask image.
type Image struct {
	samples  []byte
	width    int
	height   int
	stride   int
	channels int
	format   gputypes.TextureFormat
	mask     *Image
}

// NewImage creates an image resource over the given samples. The
// samples are referenced, not copied; len(samples) must cover
// stride*height bytes. mask may be nil.
func NewImage(width, height, stride, channels int, format gputypes.TextureFormat, samples []byte, mask *Image) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("engine: invalid image size %dx%d", width, height)
	}
	if channels < 1 || channels > MaxColorComponents {
		return nil, fmt.Errorf("engine: invalid image channel count %d", channels)
	}
	if stride < width*channels {
		return nil, fmt.Errorf("engine: image stride %d smaller than row size %d", stride, width*channels)
	}
	if len(samples) < stride*height {
		return nil, fmt.Errorf("engine: image samples %d bytes, need %d", len(samples), stride*height)
	}
	return &Image{
		samples:  samples,
		width:    width,
		height:   height,
		stride:   stride,
		channels: channels,
		format:   format,
		mask:     mask,
	}, nil
}

// Width returns the image width in pixels.
func (i *Image) Width() int { return i.width }

// Height returns the image height in pixels.
func (i *Image) Height() int { return i.height }

// Stride returns the number of bytes per row.
func (i *Image) Stride() int { return i.stride }

// Channels returns the number of channels per pixel.
func (i *Image) Channels() int { return i.channels }

// Format returns the pixel format.
func (i *Image) Format() gputypes.TextureFormat { return i.format }

// Samples returns the image's sample data. The slice is shared; callers
// must not modify it.
func (i *Image) Samples() []byte { return i.samples }

// Mask returns the associated alpha mask image, or nil.
func (i *Image) Mask() *Image { return i.mask }
