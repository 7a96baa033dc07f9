package host

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"

	"github.com/gogpu/pixdev"
	"github.com/gogpu/pixdev/engine"
)

// nativeProp is the hidden property carrying the engine resource behind
// a script wrapper object.
const nativeProp = "$pixdevNative"

// nativeHandle boxes the resource so Export round-trips the pointer.
type nativeHandle struct {
	res any
}

// wrap attaches res to obj as its native resource.
func (b *Bindings) wrap(obj *goja.Object, res any) *goja.Object {
	_ = obj.DefineDataProperty(nativeProp, b.rt.ToValue(&nativeHandle{res: res}),
		goja.FLAG_FALSE, goja.FLAG_FALSE, goja.FLAG_FALSE)
	return obj
}

// native resolves the resource behind a script value. It returns nil
// for null, undefined, non-objects and objects this binding did not
// create; the caller decides whether absence is an error.
func (b *Bindings) native(v goja.Value) any {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil
	}
	pv := obj.Get(nativeProp)
	if pv == nil {
		return nil
	}
	h, ok := pv.Export().(*nativeHandle)
	if !ok {
		return nil
	}
	return h.res
}

// absent reports whether a script argument position carries no value.
func absent(v goja.Value) bool {
	return v == nil || goja.IsUndefined(v) || goja.IsNull(v)
}

// throwable translates a pixdev error into the JavaScript exception to
// panic with: ArgumentError becomes a TypeError, everything else a
// thrown Go error.
func (b *Bindings) throwable(err error) *goja.Object {
	var argErr *pixdev.ArgumentError
	if errors.As(err, &argErr) {
		return b.rt.NewTypeError(argErr.Error())
	}
	return b.rt.NewGoError(err)
}

// fail raises err as a JavaScript exception.
func (b *Bindings) fail(err error) {
	panic(b.throwable(err))
}

// failArg raises a TypeError for a malformed argument.
func (b *Bindings) failArg(op, msg string) {
	b.fail(&pixdev.ArgumentError{Op: op, Msg: msg})
}

// floatSlice marshals a script array of numbers. Absent values yield
// nil; anything else that cannot export as numbers raises a TypeError.
func (b *Bindings) floatSlice(op string, v goja.Value) []float64 {
	if absent(v) {
		return nil
	}
	var out []float64
	if err := b.rt.ExportTo(v, &out); err != nil {
		b.failArg(op, fmt.Sprintf("expected an array of numbers: %v", err))
	}
	return out
}

// matrix marshals a six-element script array into a Matrix. An absent
// value decodes to the identity transform.
func (b *Bindings) matrix(op string, v goja.Value) engine.Matrix {
	if absent(v) {
		return engine.Identity()
	}
	m := b.floatSlice(op, v)
	if len(m) != 6 {
		b.failArg(op, fmt.Sprintf("matrix must have 6 elements, got %d", len(m)))
	}
	return engine.Matrix{A: m[0], B: m[1], C: m[2], D: m[3], E: m[4], F: m[5]}
}

// rect marshals a four-element script array [x0, y0, x1, y1]. An
// absent value decodes to the infinite rect.
func (b *Bindings) rect(op string, v goja.Value) engine.Rect {
	if absent(v) {
		return engine.Infinite()
	}
	r := b.floatSlice(op, v)
	if len(r) != 4 {
		b.failArg(op, fmt.Sprintf("rect must have 4 elements, got %d", len(r)))
	}
	return engine.MakeRect(r[0], r[1], r[2], r[3])
}

// colorParams unmarshals the packed integer form. Absent decodes to the
// defaults.
func (b *Bindings) colorParams(v goja.Value) engine.ColorParams {
	if absent(v) {
		return engine.DefaultColorParams
	}
	return engine.ColorParamsFromPacked(int(v.ToInteger()))
}

// blendMode unmarshals a blend mode number; absent decodes to Normal.
func blendMode(v goja.Value) engine.BlendMode {
	if absent(v) {
		return engine.BlendNormal
	}
	return engine.BlendMode(v.ToInteger())
}

// optString marshals an optional string argument; absent yields "".
func optString(v goja.Value) string {
	if absent(v) {
		return ""
	}
	return v.String()
}

// Typed resource resolvers. Each returns nil when the argument is
// absent or wraps a different resource kind; required-argument
// validation happens in the device session, which sees nil as an
// unresolved handle.

func (b *Bindings) pathArg(v goja.Value) *engine.Path {
	p, _ := b.native(v).(*engine.Path)
	return p
}

func (b *Bindings) textArg(v goja.Value) *engine.Text {
	t, _ := b.native(v).(*engine.Text)
	return t
}

func (b *Bindings) strokeArg(v goja.Value) *engine.StrokeState {
	s, _ := b.native(v).(*engine.StrokeState)
	return s
}

func (b *Bindings) colorspaceArg(v goja.Value) *engine.Colorspace {
	c, _ := b.native(v).(*engine.Colorspace)
	return c
}

func (b *Bindings) shadeArg(v goja.Value) *engine.Shade {
	s, _ := b.native(v).(*engine.Shade)
	return s
}

func (b *Bindings) imageArg(v goja.Value) *engine.Image {
	i, _ := b.native(v).(*engine.Image)
	return i
}
