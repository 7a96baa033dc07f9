package host

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dop251/goja"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixdev"
	"github.com/gogpu/pixdev/engine"
)

// DrawDeviceFactory creates the engine's rasterizing device over a
// pixmap. The engine itself lives outside this module, so embedders
// that want DrawDevice available to scripts inject its constructor
// here.
type DrawDeviceFactory func(pm *engine.Pixmap) (engine.Device, error)

// Bindings installs the pixdev object model into a goja runtime and
// resolves script values back to engine resources.
//
// A Bindings (like the runtime it wraps) is confined to one goroutine.
type Bindings struct {
	rt            *goja.Runtime
	newDrawDevice DrawDeviceFactory
}

// Option configures Bind.
type Option func(*Bindings)

// WithDrawDeviceFactory makes the DrawDevice constructor available to
// scripts. Without it, DrawDevice throws.
func WithDrawDeviceFactory(f DrawDeviceFactory) Option {
	return func(b *Bindings) {
		b.newDrawDevice = f
	}
}

// Bind installs the resource constructors and device constructors as
// globals on rt and returns the Bindings for further wrapping.
func Bind(rt *goja.Runtime, opts ...Option) (*Bindings, error) {
	if rt == nil {
		return nil, errors.New("host: nil runtime")
	}
	b := &Bindings{rt: rt}
	for _, opt := range opts {
		opt(b)
	}

	globals := map[string]any{
		"Path":              b.jsNewPath,
		"Text":              b.jsNewText,
		"Colorspace":        b.jsNewColorspace,
		"StrokeState":       b.jsNewStrokeState,
		"Shade":             b.jsNewShade,
		"Image":             b.jsNewImage,
		"DisplayListDevice": b.jsNewDisplayListDevice,
		"TraceDevice":       b.jsNewTraceDevice,
		"DrawDevice":        b.jsNewDrawDevice,
	}
	for name, fn := range globals {
		if err := rt.Set(name, fn); err != nil {
			return nil, fmt.Errorf("host: install %s: %w", name, err)
		}
	}
	for name, cs := range map[string]*engine.Colorspace{
		"DeviceGray": engine.DeviceGray,
		"DeviceRGB":  engine.DeviceRGB,
		"DeviceCMYK": engine.DeviceCMYK,
	} {
		if err := rt.Set(name, b.colorspaceObject(cs)); err != nil {
			return nil, fmt.Errorf("host: install %s: %w", name, err)
		}
	}
	return b, nil
}

// Runtime returns the bound goja runtime.
func (b *Bindings) Runtime() *goja.Runtime { return b.rt }

// jsNewPath builds a path wrapper with the path construction methods.
func (b *Bindings) jsNewPath(goja.FunctionCall) goja.Value {
	p := engine.NewPath()
	obj := b.rt.NewObject()
	_ = obj.Set("moveTo", func(x, y float64) { p.MoveTo(x, y) })
	_ = obj.Set("lineTo", func(x, y float64) { p.LineTo(x, y) })
	_ = obj.Set("curveTo", func(x1, y1, x2, y2, x3, y3 float64) { p.CurveTo(x1, y1, x2, y2, x3, y3) })
	_ = obj.Set("closePath", func() { p.Close() })
	_ = obj.Set("count", func() int { return p.Len() })
	return b.wrap(obj, p)
}

// jsNewText builds a text wrapper. Spans added from scripts carry no
// font; devices that only record or trace commands never need one.
func (b *Bindings) jsNewText(goja.FunctionCall) goja.Value {
	t := engine.NewText()
	obj := b.rt.NewObject()
	_ = obj.Set("addSpan", func(call goja.FunctionCall) goja.Value {
		trm := b.matrix("Text.addSpan", call.Argument(0))
		span := t.AddSpan(nil, trm)
		spanObj := b.rt.NewObject()
		_ = spanObj.Set("add", func(gid int64, r int64, x, y float64) {
			span.Add(uint32(gid), rune(r), x, y)
		})
		return spanObj
	})
	_ = obj.Set("count", func() int { return t.Len() })
	return b.wrap(obj, t)
}

func (b *Bindings) colorspaceObject(cs *engine.Colorspace) *goja.Object {
	obj := b.rt.NewObject()
	_ = obj.Set("name", func() string { return cs.Name() })
	_ = obj.Set("channels", func() int { return cs.Channels() })
	return b.wrap(obj, cs)
}

// jsNewColorspace builds a colorspace with an explicit channel count.
func (b *Bindings) jsNewColorspace(call goja.FunctionCall) goja.Value {
	const op = "Colorspace"
	name := optString(call.Argument(0))
	n := int(call.Argument(1).ToInteger())
	cs, err := engine.NewColorspace(name, n)
	if err != nil {
		b.failArg(op, err.Error())
	}
	return b.colorspaceObject(cs)
}

// jsNewStrokeState builds a stroke state. Arguments beyond width are
// optional: (width, miterLimit, startCap, join).
func (b *Bindings) jsNewStrokeState(call goja.FunctionCall) goja.Value {
	s := engine.DefaultStroke()
	if !absent(call.Argument(0)) {
		s.Width = call.Argument(0).ToFloat()
	}
	if !absent(call.Argument(1)) {
		s.MiterLimit = call.Argument(1).ToFloat()
	}
	if !absent(call.Argument(2)) {
		lineCap := engine.LineCap(call.Argument(2).ToInteger())
		s.StartCap, s.DashCap, s.EndCap = lineCap, lineCap, lineCap
	}
	if !absent(call.Argument(3)) {
		s.Join = engine.LineJoin(call.Argument(3).ToInteger())
	}
	obj := b.rt.NewObject()
	_ = obj.Set("width", func() float64 { return s.Width })
	return b.wrap(obj, s)
}

// jsNewShade builds a shading resource: Shade(kind, colorspace, rect).
func (b *Bindings) jsNewShade(call goja.FunctionCall) goja.Value {
	const op = "Shade"
	kind := engine.ShadeKind(call.Argument(0).ToInteger())
	cs := b.colorspaceArg(call.Argument(1))
	bounds := b.rect(op, call.Argument(2))
	return b.wrap(b.rt.NewObject(), engine.NewShade(kind, cs, bounds))
}

// channelFormats maps a channel count to its pixel format.
var channelFormats = map[int]gputypes.TextureFormat{
	1: gputypes.TextureFormatR8Unorm,
	2: gputypes.TextureFormatRG8Unorm,
	4: gputypes.TextureFormatRGBA8Unorm,
}

// jsNewImage builds an image resource:
// Image(width, height, channels, samples ArrayBuffer, mask?). The
// sample bytes are copied out of the ArrayBuffer at construction time,
// so the resource does not depend on the buffer's later location.
func (b *Bindings) jsNewImage(call goja.FunctionCall) goja.Value {
	const op = "Image"
	w := int(call.Argument(0).ToInteger())
	h := int(call.Argument(1).ToInteger())
	channels := int(call.Argument(2).ToInteger())
	format, ok := channelFormats[channels]
	if !ok {
		b.failArg(op, fmt.Sprintf("unsupported channel count %d", channels))
	}
	ab, ok := call.Argument(3).Export().(goja.ArrayBuffer)
	if !ok {
		b.failArg(op, "samples must be an ArrayBuffer")
	}
	mask := b.imageArg(call.Argument(4))

	samples := make([]byte, len(ab.Bytes()))
	copy(samples, ab.Bytes())
	img, err := engine.NewImage(w, h, w*channels, channels, format, samples, mask)
	if err != nil {
		b.failArg(op, err.Error())
	}
	return b.wrap(b.rt.NewObject(), img)
}

// jsNewDisplayListDevice creates a display-list session: a device with
// no pixel buffer dependency.
func (b *Bindings) jsNewDisplayListDevice(goja.FunctionCall) goja.Value {
	list := engine.NewDisplayList()
	dev, err := pixdev.NewDevice(list, pixdev.WithLabel("display-list"))
	if err != nil {
		b.fail(err)
	}
	obj := b.DeviceObject(dev)
	_ = obj.Set("commandCount", func() int { return list.Len() })
	return obj
}

// jsNewTraceDevice creates a trace session collecting its output in
// memory: device.trace() returns the text accumulated so far.
func (b *Bindings) jsNewTraceDevice(goja.FunctionCall) goja.Value {
	buf := new(bytes.Buffer)
	dev, err := pixdev.NewDevice(engine.NewTraceDevice(buf), pixdev.WithLabel("trace"))
	if err != nil {
		b.fail(err)
	}
	obj := b.DeviceObject(dev)
	_ = obj.Set("trace", func() string { return buf.String() })
	return obj
}

// jsNewDrawDevice creates a session that draws into a script-owned
// ArrayBuffer: DrawDevice(buffer, planeWidth, planeHeight, x, y). The
// buffer's backing bytes are pinned around each drawing command and
// re-resolved on every pin.
func (b *Bindings) jsNewDrawDevice(call goja.FunctionCall) goja.Value {
	const op = "DrawDevice"
	if b.newDrawDevice == nil {
		b.fail(errors.New("host: no draw device factory configured"))
	}
	buf, err := NewArrayBufferBuffer(call.Argument(0))
	if err != nil {
		b.failArg(op, err.Error())
	}
	planeW := int(call.Argument(1).ToInteger())
	planeH := int(call.Argument(2).ToInteger())
	x := int(call.Argument(3).ToInteger())
	y := int(call.Argument(4).ToInteger())

	pm, err := engine.NewPixmap(planeW, planeH, planeW*4, gputypes.TextureFormatRGBA8Unorm)
	if err != nil {
		b.failArg(op, err.Error())
	}
	target, err := pixdev.NewBufferTarget(pm, buf, planeW, planeH, x, y)
	if err != nil {
		b.failArg(op, err.Error())
	}
	engineDev, err := b.newDrawDevice(pm)
	if err != nil {
		b.fail(err)
	}
	dev, err := pixdev.NewDevice(engineDev, pixdev.WithTarget(target), pixdev.WithLabel("draw"))
	if err != nil {
		b.fail(err)
	}
	return b.DeviceObject(dev)
}
