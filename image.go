package pixdev

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/pixdev/engine"
)

// NewImageFromBitmap creates an engine image resource from a decoded
// bitmap, associating mask as its alpha mask if non-nil.
//
// The bitmap's channel layout carries over unchanged; pixel data is
// copied so the resulting image stays valid independently of the
// bitmap. This is a one-shot constructor with no ongoing state: it does
// not participate in the pixel target locking protocol.
//
// Supported bitmaps are *image.RGBA and *image.NRGBA (four channels)
// and *image.Gray (one channel). Pixel-format conversion is not
// performed; other bitmap kinds are rejected.
func NewImageFromBitmap(bitmap image.Image, mask *engine.Image) (*engine.Image, error) {
	if bitmap == nil {
		return nil, &ArgumentError{Op: "NewImageFromBitmap", Msg: "bitmap must not be nil"}
	}

	b := bitmap.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := bitmap.(type) {
	case *image.RGBA:
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
		return engine.NewImage(w, h, dst.Stride, 4, gputypes.TextureFormatRGBA8Unorm, dst.Pix, mask)
	case *image.NRGBA:
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
		return engine.NewImage(w, h, dst.Stride, 4, gputypes.TextureFormatRGBA8Unorm, dst.Pix, mask)
	case *image.Gray:
		dst := image.NewGray(image.Rect(0, 0, w, h))
		draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
		return engine.NewImage(w, h, dst.Stride, 1, gputypes.TextureFormatR8Unorm, dst.Pix, mask)
	default:
		return nil, &ArgumentError{
			Op:  "NewImageFromBitmap",
			Msg: fmt.Sprintf("unsupported bitmap kind %T", bitmap),
		}
	}
}
