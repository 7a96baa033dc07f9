package engine

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func recordSampleCommands(t *testing.T, dev Device) {
	t.Helper()
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 10)
	p.Close()

	if err := dev.BeginLayer("page"); err != nil {
		t.Fatalf("BeginLayer: %v", err)
	}
	if err := dev.FillPath(p, false, Identity(), DeviceRGB, []float64{1, 0, 0}, 1, DefaultColorParams); err != nil {
		t.Fatalf("FillPath: %v", err)
	}
	if err := dev.ClipPath(p, true, Identity(), Infinite()); err != nil {
		t.Fatalf("ClipPath: %v", err)
	}
	if err := dev.PopClip(); err != nil {
		t.Fatalf("PopClip: %v", err)
	}
	if err := dev.EndLayer(); err != nil {
		t.Fatalf("EndLayer: %v", err)
	}
}

func TestDisplayListRecordsInOrder(t *testing.T) {
	dl := NewDisplayList()
	recordSampleCommands(t, dl)

	want := []Op{OpBeginLayer, OpFillPath, OpClipPath, OpPopClip, OpEndLayer}
	cmds := dl.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("recorded %d commands, want %d", len(cmds), len(want))
	}
	for i, op := range want {
		if cmds[i].Op != op {
			t.Errorf("command %d = %v, want %v", i, cmds[i].Op, op)
		}
	}
	if cmds[0].Name != "page" {
		t.Errorf("layer name = %q, want %q", cmds[0].Name, "page")
	}
	if cmds[1].Colorspace != DeviceRGB {
		t.Errorf("fill colorspace = %v, want DeviceRGB", cmds[1].Colorspace)
	}
	if !cmds[2].EvenOdd {
		t.Error("clip even-odd flag was not recorded")
	}
}

func TestDisplayListReplay(t *testing.T) {
	dl := NewDisplayList()
	recordSampleCommands(t, dl)

	// Replaying into a second list reproduces the command stream.
	copyList := NewDisplayList()
	if err := dl.Replay(copyList); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if copyList.Len() != dl.Len() {
		t.Fatalf("replayed %d commands, want %d", copyList.Len(), dl.Len())
	}
	for i := range dl.Commands() {
		if copyList.Commands()[i].Op != dl.Commands()[i].Op {
			t.Errorf("command %d = %v, want %v", i, copyList.Commands()[i].Op, dl.Commands()[i].Op)
		}
	}

	// Replay is repeatable.
	again := NewDisplayList()
	if err := dl.Replay(again); err != nil {
		t.Fatalf("second Replay: %v", err)
	}
	if again.Len() != dl.Len() {
		t.Errorf("second replay recorded %d commands, want %d", again.Len(), dl.Len())
	}
}

func TestDisplayListReplayStopsAtError(t *testing.T) {
	dl := NewDisplayList()
	recordSampleCommands(t, dl)

	closed := NewDisplayList()
	if err := closed.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := dl.Replay(closed); !errors.Is(err, ErrClosed) {
		t.Fatalf("Replay into closed device: err = %v, want ErrClosed", err)
	}
	if closed.Len() != 0 {
		t.Errorf("closed device recorded %d commands, want 0", closed.Len())
	}
}

func TestDisplayListClose(t *testing.T) {
	dl := NewDisplayList()
	if err := dl.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := dl.PopClip(); !errors.Is(err, ErrClosed) {
		t.Errorf("command after Close: err = %v, want ErrClosed", err)
	}
	if err := dl.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close: err = %v, want ErrClosed", err)
	}
}

func TestDisplayListBeginTileIndexZero(t *testing.T) {
	dl := NewDisplayList()
	i, err := dl.BeginTile(MakeRect(0, 0, 8, 8), MakeRect(0, 0, 4, 4), 4, 4, Identity(), 5)
	if err != nil {
		t.Fatalf("BeginTile: %v", err)
	}
	if i != 0 {
		t.Errorf("tile index = %d, want 0", i)
	}
	if dl.Commands()[0].TileID != 5 {
		t.Errorf("recorded tile id = %d, want 5", dl.Commands()[0].TileID)
	}
	if err := dl.EndTile(); err != nil {
		t.Fatalf("EndTile: %v", err)
	}
}

func TestDisplayListRecordsAllCommandKinds(t *testing.T) {
	dl := NewDisplayList()
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	txt := NewText()
	stroke := DefaultStroke()
	shade := NewShade(ShadeRadial, DeviceGray, MakeRect(0, 0, 1, 1))
	img, err := NewImage(1, 1, 4, 4, gputypes.TextureFormatRGBA8Unorm, make([]byte, 4), nil)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}

	steps := []struct {
		op  Op
		run func() error
	}{
		{OpFillPath, func() error {
			return dl.FillPath(p, false, Identity(), DeviceRGB, []float64{0, 0, 0}, 1, DefaultColorParams)
		}},
		{OpStrokePath, func() error {
			return dl.StrokePath(p, stroke, Identity(), DeviceRGB, []float64{0, 0, 0}, 1, DefaultColorParams)
		}},
		{OpClipPath, func() error { return dl.ClipPath(p, false, Identity(), Infinite()) }},
		{OpClipStrokePath, func() error { return dl.ClipStrokePath(p, stroke, Identity(), Infinite()) }},
		{OpFillText, func() error {
			return dl.FillText(txt, Identity(), DeviceGray, []float64{0}, 1, DefaultColorParams)
		}},
		{OpStrokeText, func() error {
			return dl.StrokeText(txt, stroke, Identity(), DeviceGray, []float64{0}, 1, DefaultColorParams)
		}},
		{OpClipText, func() error { return dl.ClipText(txt, Identity(), Infinite()) }},
		{OpClipStrokeText, func() error { return dl.ClipStrokeText(txt, stroke, Identity(), Infinite()) }},
		{OpIgnoreText, func() error { return dl.IgnoreText(txt, Identity()) }},
		{OpFillShade, func() error { return dl.FillShade(shade, Identity(), 1, DefaultColorParams) }},
		{OpFillImage, func() error { return dl.FillImage(img, Identity(), 1, DefaultColorParams) }},
		{OpFillImageMask, func() error {
			return dl.FillImageMask(img, Identity(), DeviceGray, []float64{0}, 1, DefaultColorParams)
		}},
		{OpClipImageMask, func() error { return dl.ClipImageMask(img, Identity(), Infinite()) }},
		{OpPopClip, func() error { return dl.PopClip() }},
		{OpBeginLayer, func() error { return dl.BeginLayer("l") }},
		{OpEndLayer, func() error { return dl.EndLayer() }},
		{OpBeginMask, func() error {
			return dl.BeginMask(MakeRect(0, 0, 1, 1), true, DeviceGray, []float64{1}, DefaultColorParams)
		}},
		{OpEndMask, func() error { return dl.EndMask() }},
		{OpBeginGroup, func() error {
			return dl.BeginGroup(MakeRect(0, 0, 1, 1), DeviceRGB, true, false, BlendScreen, 0.5)
		}},
		{OpEndGroup, func() error { return dl.EndGroup() }},
		{OpBeginTile, func() error {
			_, err := dl.BeginTile(MakeRect(0, 0, 8, 8), MakeRect(0, 0, 4, 4), 4, 4, Identity(), 0)
			return err
		}},
		{OpEndTile, func() error { return dl.EndTile() }},
	}
	for i, s := range steps {
		if err := s.run(); err != nil {
			t.Fatalf("step %d (%v): %v", i, s.op, err)
		}
		if got := dl.Commands()[i].Op; got != s.op {
			t.Errorf("step %d recorded %v, want %v", i, got, s.op)
		}
	}
}

func TestOpString(t *testing.T) {
	if got := OpFillPath.String(); got != "FillPath" {
		t.Errorf("OpFillPath.String() = %q, want %q", got, "FillPath")
	}
	if got := OpEndTile.String(); got != "EndTile" {
		t.Errorf("OpEndTile.String() = %q, want %q", got, "EndTile")
	}
	if got := Op(250).String(); got != "Unknown" {
		t.Errorf("Op(250).String() = %q, want %q", got, "Unknown")
	}
}
