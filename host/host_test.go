package host

import (
	"strings"
	"testing"

	"github.com/dop251/goja"

	"github.com/gogpu/pixdev/engine"
)

func newRT(t *testing.T, opts ...Option) (*goja.Runtime, *Bindings) {
	t.Helper()
	rt := goja.New()
	b, err := Bind(rt, opts...)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	return rt, b
}

func runScript(t *testing.T, rt *goja.Runtime, src string) goja.Value {
	t.Helper()
	v, err := rt.RunString(src)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	return v
}

func TestBindNilRuntime(t *testing.T) {
	if _, err := Bind(nil); err == nil {
		t.Error("Bind(nil) succeeded, want error")
	}
}

func TestPathConstruction(t *testing.T) {
	rt, _ := newRT(t)
	v := runScript(t, rt, `
		var p = Path();
		p.moveTo(0, 0);
		p.lineTo(10, 0);
		p.curveTo(10, 5, 5, 10, 0, 10);
		p.closePath();
		p.count();
	`)
	if v.ToInteger() != 4 {
		t.Errorf("path segment count = %d, want 4", v.ToInteger())
	}
}

func TestColorspaceGlobals(t *testing.T) {
	rt, _ := newRT(t)
	v := runScript(t, rt, `DeviceRGB.channels()`)
	if v.ToInteger() != 3 {
		t.Errorf("DeviceRGB.channels() = %d, want 3", v.ToInteger())
	}
	v = runScript(t, rt, `DeviceCMYK.name()`)
	if v.String() != "DeviceCMYK" {
		t.Errorf("DeviceCMYK.name() = %q", v.String())
	}
}

func TestColorspaceConstructor(t *testing.T) {
	rt, _ := newRT(t)
	v := runScript(t, rt, `Colorspace("Separation", 2).channels()`)
	if v.ToInteger() != 2 {
		t.Errorf("channels = %d, want 2", v.ToInteger())
	}
	v = runScript(t, rt, `
		(function() {
			try { Colorspace("bad", 0); } catch (e) { return e instanceof TypeError; }
			return false;
		})()
	`)
	if !v.ToBoolean() {
		t.Error("invalid channel count did not raise a TypeError")
	}
}

func TestDisplayListDeviceRecords(t *testing.T) {
	rt, _ := newRT(t)
	v := runScript(t, rt, `
		var dev = DisplayListDevice();
		var p = Path();
		p.moveTo(0, 0);
		p.lineTo(100, 100);
		dev.beginLayer("page");
		dev.fillPath(p, false, [1, 0, 0, 0, 1, 0], DeviceRGB, [1, 0, 0], 1);
		dev.strokePath(p, StrokeState(2), null, DeviceGray, [0], 1);
		dev.popClip();
		dev.endLayer();
		dev.commandCount();
	`)
	if v.ToInteger() != 5 {
		t.Errorf("commandCount = %d, want 5", v.ToInteger())
	}
}

func TestMissingPathRaisesTypeError(t *testing.T) {
	rt, _ := newRT(t)
	v := runScript(t, rt, `
		(function() {
			var dev = DisplayListDevice();
			try { dev.fillPath(null, false, null, DeviceRGB, [0, 0, 0], 1); }
			catch (e) { return e instanceof TypeError; }
			return false;
		})()
	`)
	if !v.ToBoolean() {
		t.Error("fillPath with null path did not raise a TypeError")
	}
}

func TestWrongResourceKindRaisesTypeError(t *testing.T) {
	// A text object where a path is expected resolves to no path at
	// all; the session rejects it the same way it rejects null.
	rt, _ := newRT(t)
	v := runScript(t, rt, `
		(function() {
			var dev = DisplayListDevice();
			var txt = Text();
			try { dev.fillPath(txt, false, null, DeviceRGB, [0, 0, 0], 1); }
			catch (e) { return e instanceof TypeError; }
			return false;
		})()
	`)
	if !v.ToBoolean() {
		t.Error("fillPath with a text resource did not raise a TypeError")
	}
}

func TestForeignObjectRaisesTypeError(t *testing.T) {
	// Objects this binding never created carry no native resource.
	// They must resolve to an absent handle and fail validation, never
	// crash the runtime.
	rt, _ := newRT(t)
	for _, arg := range []string{`{}`, `[]`, `{fillPath: 1}`, `new Date()`} {
		v := runScript(t, rt, `
			(function() {
				var dev = DisplayListDevice();
				try { dev.fillPath(`+arg+`, false, null, DeviceRGB, [0, 0, 0], 1); }
				catch (e) { return e instanceof TypeError; }
				return false;
			})()
		`)
		if !v.ToBoolean() {
			t.Errorf("fillPath(%s, ...) did not raise a TypeError", arg)
		}
	}
}

func TestMalformedMatrixRaisesTypeError(t *testing.T) {
	rt, _ := newRT(t)
	v := runScript(t, rt, `
		(function() {
			var dev = DisplayListDevice();
			var p = Path();
			p.moveTo(0, 0);
			try { dev.fillPath(p, false, [1, 0], DeviceRGB, [0, 0, 0], 1); }
			catch (e) { return e instanceof TypeError; }
			return false;
		})()
	`)
	if !v.ToBoolean() {
		t.Error("two-element matrix did not raise a TypeError")
	}
}

func TestColorMismatchRaisesTypeError(t *testing.T) {
	rt, _ := newRT(t)
	v := runScript(t, rt, `
		(function() {
			var dev = DisplayListDevice();
			var p = Path();
			p.moveTo(0, 0);
			try { dev.fillPath(p, false, null, DeviceCMYK, [1, 0], 1); }
			catch (e) { return e instanceof TypeError; }
			return false;
		})()
	`)
	if !v.ToBoolean() {
		t.Error("channel count mismatch did not raise a TypeError")
	}
}

func TestTextSpanFromScript(t *testing.T) {
	rt, _ := newRT(t)
	v := runScript(t, rt, `
		var txt = Text();
		var span = txt.addSpan([12, 0, 0, 12, 0, 0]);
		span.add(40, 65, 0, 0);
		span.add(41, 66, 8, 0);
		txt.count();
	`)
	if v.ToInteger() != 2 {
		t.Errorf("glyph count = %d, want 2", v.ToInteger())
	}
}

func TestTraceDeviceFromScript(t *testing.T) {
	rt, _ := newRT(t)
	v := runScript(t, rt, `
		var dev = TraceDevice();
		var p = Path();
		p.moveTo(0, 0);
		p.lineTo(5, 5);
		dev.beginLayer("content");
		dev.fillPath(p, true, null, DeviceRGB, [0, 1, 0], 0.5);
		dev.endLayer();
		dev.close();
		dev.trace();
	`)
	out := v.String()
	for _, want := range []string{"begin_layer", "fill_path", "end_layer", "close"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace missing %q:\n%s", want, out)
		}
	}
}

func TestBeginTileResultFromScript(t *testing.T) {
	rt, _ := newRT(t)
	v := runScript(t, rt, `
		var dev = DisplayListDevice();
		dev.beginTile([0, 0, 8, 8], [0, 0, 4, 4], 4, 4, null, 5);
	`)
	if v.ToInteger() != 0 {
		t.Errorf("beginTile = %d, want 0 from a recording device", v.ToInteger())
	}
}

func TestImageConstructorFromScript(t *testing.T) {
	rt, _ := newRT(t)
	v := runScript(t, rt, `
		var samples = new ArrayBuffer(2 * 2 * 4);
		var img = Image(2, 2, 4, samples);
		var dev = DisplayListDevice();
		dev.fillImage(img, null, 1);
		dev.commandCount();
	`)
	if v.ToInteger() != 1 {
		t.Errorf("commandCount = %d, want 1", v.ToInteger())
	}

	v = runScript(t, rt, `
		(function() {
			try { Image(2, 2, 3, new ArrayBuffer(12)); }
			catch (e) { return e instanceof TypeError; }
			return false;
		})()
	`)
	if !v.ToBoolean() {
		t.Error("unsupported channel count did not raise a TypeError")
	}
}

func TestDestroyFromScript(t *testing.T) {
	rt, _ := newRT(t)
	v := runScript(t, rt, `
		(function() {
			var dev = DisplayListDevice();
			dev.destroy();
			try { dev.popClip(); } catch (e) { return true; }
			return false;
		})()
	`)
	if !v.ToBoolean() {
		t.Error("command after destroy did not raise")
	}
}

// pinProbe records whether the pixmap had storage attached while a
// primitive ran. It embeds a display list for the rest of the device
// surface.
type pinProbe struct {
	*engine.DisplayList
	pm        *engine.Pixmap
	sawPinned bool
}

func (p *pinProbe) FillPath(path *engine.Path, evenOdd bool, ctm engine.Matrix, cs *engine.Colorspace, color []float64, alpha float64, cp engine.ColorParams) error {
	p.sawPinned = p.pm.Samples() != nil
	return p.DisplayList.FillPath(path, evenOdd, ctm, cs, color, alpha, cp)
}

func TestDrawDevicePinsAroundCommand(t *testing.T) {
	var probe *pinProbe
	factory := func(pm *engine.Pixmap) (engine.Device, error) {
		probe = &pinProbe{DisplayList: engine.NewDisplayList(), pm: pm}
		return probe, nil
	}
	rt, _ := newRT(t, WithDrawDeviceFactory(factory))
	runScript(t, rt, `
		var buf = new ArrayBuffer(4 * 4 * 4);
		var dev = DrawDevice(buf, 4, 4, 0, 0);
		var p = Path();
		p.moveTo(0, 0);
		p.lineTo(4, 4);
		dev.fillPath(p, false, null, DeviceRGB, [1, 0, 0], 1);
	`)
	if probe == nil {
		t.Fatal("draw device factory was never invoked")
	}
	if !probe.sawPinned {
		t.Error("pixmap had no storage while the primitive ran")
	}
	if probe.pm.Samples() != nil {
		t.Error("pixmap still holds storage after the command returned")
	}
}

func TestDrawDeviceLockFailure(t *testing.T) {
	var probe *pinProbe
	factory := func(pm *engine.Pixmap) (engine.Device, error) {
		probe = &pinProbe{DisplayList: engine.NewDisplayList(), pm: pm}
		return probe, nil
	}
	rt, _ := newRT(t, WithDrawDeviceFactory(factory))
	// The buffer is too small to back the 4x4 plane, so acquisition
	// fails on every command. The primitive must never run.
	v := runScript(t, rt, `
		(function() {
			var dev = DrawDevice(new ArrayBuffer(4), 4, 4, 0, 0);
			var p = Path();
			p.moveTo(0, 0);
			try { dev.fillPath(p, false, null, DeviceRGB, [1, 0, 0], 1); }
			catch (e) { return true; }
			return false;
		})()
	`)
	if !v.ToBoolean() {
		t.Error("lock failure did not raise")
	}
	if probe.Len() != 0 {
		t.Errorf("primitive ran %d times after failed acquisition, want 0", probe.Len())
	}
}

func TestDrawDeviceWithoutFactory(t *testing.T) {
	rt, _ := newRT(t)
	v := runScript(t, rt, `
		(function() {
			try { DrawDevice(new ArrayBuffer(64), 4, 4, 0, 0); }
			catch (e) { return true; }
			return false;
		})()
	`)
	if !v.ToBoolean() {
		t.Error("DrawDevice without a factory did not raise")
	}
}

func TestDrawDeviceRejectsNonBuffer(t *testing.T) {
	rt, _ := newRT(t, WithDrawDeviceFactory(func(pm *engine.Pixmap) (engine.Device, error) {
		return engine.NewDisplayList(), nil
	}))
	v := runScript(t, rt, `
		(function() {
			try { DrawDevice({}, 4, 4, 0, 0); }
			catch (e) { return e instanceof TypeError; }
			return false;
		})()
	`)
	if !v.ToBoolean() {
		t.Error("DrawDevice with a plain object did not raise a TypeError")
	}
}
