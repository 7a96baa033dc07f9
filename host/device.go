package host

import (
	"github.com/dop251/goja"

	"github.com/gogpu/pixdev"
)

// floatOr marshals an optional number argument.
func floatOr(v goja.Value, def float64) float64 {
	if absent(v) {
		return def
	}
	return v.ToFloat()
}

// DeviceObject wraps a device session as a script object exposing one
// method per drawing command. Embedders use it to hand scripts a
// session whose engine device and pixel target were constructed on the
// Go side.
//
// Each method marshals its arguments, invokes the session entry point,
// and translates any failure to a JavaScript exception. Argument
// validation itself stays in the session: a script object of the wrong
// kind resolves to an absent handle, which the session rejects before
// any locking or drawing happens.
func (b *Bindings) DeviceObject(dev *pixdev.Device) *goja.Object {
	obj := b.rt.NewObject()
	set := func(name string, fn func(call goja.FunctionCall) goja.Value) {
		_ = obj.Set(name, fn)
	}
	// check raises the command's failure, if any, as a JS exception.
	check := func(err error) goja.Value {
		if err != nil {
			b.fail(err)
		}
		return goja.Undefined()
	}

	set("fillPath", func(call goja.FunctionCall) goja.Value {
		return check(dev.FillPath(
			b.pathArg(call.Argument(0)),
			call.Argument(1).ToBoolean(),
			b.matrix("fillPath", call.Argument(2)),
			b.colorspaceArg(call.Argument(3)),
			b.floatSlice("fillPath", call.Argument(4)),
			floatOr(call.Argument(5), 1),
			b.colorParams(call.Argument(6)),
		))
	})
	set("strokePath", func(call goja.FunctionCall) goja.Value {
		return check(dev.StrokePath(
			b.pathArg(call.Argument(0)),
			b.strokeArg(call.Argument(1)),
			b.matrix("strokePath", call.Argument(2)),
			b.colorspaceArg(call.Argument(3)),
			b.floatSlice("strokePath", call.Argument(4)),
			floatOr(call.Argument(5), 1),
			b.colorParams(call.Argument(6)),
		))
	})
	set("clipPath", func(call goja.FunctionCall) goja.Value {
		return check(dev.ClipPath(
			b.pathArg(call.Argument(0)),
			call.Argument(1).ToBoolean(),
			b.matrix("clipPath", call.Argument(2)),
		))
	})
	set("clipStrokePath", func(call goja.FunctionCall) goja.Value {
		return check(dev.ClipStrokePath(
			b.pathArg(call.Argument(0)),
			b.strokeArg(call.Argument(1)),
			b.matrix("clipStrokePath", call.Argument(2)),
		))
	})
	set("fillText", func(call goja.FunctionCall) goja.Value {
		return check(dev.FillText(
			b.textArg(call.Argument(0)),
			b.matrix("fillText", call.Argument(1)),
			b.colorspaceArg(call.Argument(2)),
			b.floatSlice("fillText", call.Argument(3)),
			floatOr(call.Argument(4), 1),
			b.colorParams(call.Argument(5)),
		))
	})
	set("strokeText", func(call goja.FunctionCall) goja.Value {
		return check(dev.StrokeText(
			b.textArg(call.Argument(0)),
			b.strokeArg(call.Argument(1)),
			b.matrix("strokeText", call.Argument(2)),
			b.colorspaceArg(call.Argument(3)),
			b.floatSlice("strokeText", call.Argument(4)),
			floatOr(call.Argument(5), 1),
			b.colorParams(call.Argument(6)),
		))
	})
	set("clipText", func(call goja.FunctionCall) goja.Value {
		return check(dev.ClipText(
			b.textArg(call.Argument(0)),
			b.matrix("clipText", call.Argument(1)),
		))
	})
	set("clipStrokeText", func(call goja.FunctionCall) goja.Value {
		return check(dev.ClipStrokeText(
			b.textArg(call.Argument(0)),
			b.strokeArg(call.Argument(1)),
			b.matrix("clipStrokeText", call.Argument(2)),
		))
	})
	set("ignoreText", func(call goja.FunctionCall) goja.Value {
		return check(dev.IgnoreText(
			b.textArg(call.Argument(0)),
			b.matrix("ignoreText", call.Argument(1)),
		))
	})
	set("fillShade", func(call goja.FunctionCall) goja.Value {
		return check(dev.FillShade(
			b.shadeArg(call.Argument(0)),
			b.matrix("fillShade", call.Argument(1)),
			floatOr(call.Argument(2), 1),
			b.colorParams(call.Argument(3)),
		))
	})
	set("fillImage", func(call goja.FunctionCall) goja.Value {
		return check(dev.FillImage(
			b.imageArg(call.Argument(0)),
			b.matrix("fillImage", call.Argument(1)),
			floatOr(call.Argument(2), 1),
			b.colorParams(call.Argument(3)),
		))
	})
	set("fillImageMask", func(call goja.FunctionCall) goja.Value {
		return check(dev.FillImageMask(
			b.imageArg(call.Argument(0)),
			b.matrix("fillImageMask", call.Argument(1)),
			b.colorspaceArg(call.Argument(2)),
			b.floatSlice("fillImageMask", call.Argument(3)),
			floatOr(call.Argument(4), 1),
			b.colorParams(call.Argument(5)),
		))
	})
	set("clipImageMask", func(call goja.FunctionCall) goja.Value {
		return check(dev.ClipImageMask(
			b.imageArg(call.Argument(0)),
			b.matrix("clipImageMask", call.Argument(1)),
		))
	})
	set("popClip", func(call goja.FunctionCall) goja.Value {
		return check(dev.PopClip())
	})
	set("beginLayer", func(call goja.FunctionCall) goja.Value {
		return check(dev.BeginLayer(optString(call.Argument(0))))
	})
	set("endLayer", func(call goja.FunctionCall) goja.Value {
		return check(dev.EndLayer())
	})
	set("beginMask", func(call goja.FunctionCall) goja.Value {
		return check(dev.BeginMask(
			b.rect("beginMask", call.Argument(0)),
			call.Argument(1).ToBoolean(),
			b.colorspaceArg(call.Argument(2)),
			b.floatSlice("beginMask", call.Argument(3)),
			b.colorParams(call.Argument(4)),
		))
	})
	set("endMask", func(call goja.FunctionCall) goja.Value {
		return check(dev.EndMask())
	})
	set("beginGroup", func(call goja.FunctionCall) goja.Value {
		return check(dev.BeginGroup(
			b.rect("beginGroup", call.Argument(0)),
			b.colorspaceArg(call.Argument(1)),
			call.Argument(2).ToBoolean(),
			call.Argument(3).ToBoolean(),
			blendMode(call.Argument(4)),
			floatOr(call.Argument(5), 1),
		))
	})
	set("endGroup", func(call goja.FunctionCall) goja.Value {
		return check(dev.EndGroup())
	})
	set("beginTile", func(call goja.FunctionCall) goja.Value {
		i, err := dev.BeginTile(
			b.rect("beginTile", call.Argument(0)),
			b.rect("beginTile", call.Argument(1)),
			floatOr(call.Argument(2), 0),
			floatOr(call.Argument(3), 0),
			b.matrix("beginTile", call.Argument(4)),
			int(call.Argument(5).ToInteger()),
		)
		if err != nil {
			b.fail(err)
		}
		return b.rt.ToValue(i)
	})
	set("endTile", func(call goja.FunctionCall) goja.Value {
		return check(dev.EndTile())
	})
	set("close", func(call goja.FunctionCall) goja.Value {
		return check(dev.Close())
	})
	set("destroy", func(call goja.FunctionCall) goja.Value {
		dev.Destroy()
		return goja.Undefined()
	})

	return b.wrap(obj, dev)
}
