package engine

// Op identifies the kind of a recorded drawing command.
type Op uint8

// Recorded command kinds, one per Device method.
const (
	OpFillPath Op = iota
	OpStrokePath
	OpClipPath
	OpClipStrokePath
	OpFillText
	OpStrokeText
	OpClipText
	OpClipStrokeText
	OpIgnoreText
	OpFillShade
	OpFillImage
	OpFillImageMask
	OpClipImageMask
	OpPopClip
	OpBeginLayer
	OpEndLayer
	OpBeginMask
	OpEndMask
	OpBeginGroup
	OpEndGroup
	OpBeginTile
	OpEndTile
)

var opNames = [...]string{
	OpFillPath:       "FillPath",
	OpStrokePath:     "StrokePath",
	OpClipPath:       "ClipPath",
	OpClipStrokePath: "ClipStrokePath",
	OpFillText:       "FillText",
	OpStrokeText:     "StrokeText",
	OpClipText:       "ClipText",
	OpClipStrokeText: "ClipStrokeText",
	OpIgnoreText:     "IgnoreText",
	OpFillShade:      "FillShade",
	OpFillImage:      "FillImage",
	OpFillImageMask:  "FillImageMask",
	OpClipImageMask:  "ClipImageMask",
	OpPopClip:        "PopClip",
	OpBeginLayer:     "BeginLayer",
	OpEndLayer:       "EndLayer",
	OpBeginMask:      "BeginMask",
	OpEndMask:        "EndMask",
	OpBeginGroup:     "BeginGroup",
	OpEndGroup:       "EndGroup",
	OpBeginTile:      "BeginTile",
	OpEndTile:        "EndTile",
}

// String returns the string representation of an Op.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Unknown"
}

// Command is one recorded drawing command. Resource arguments are
// referenced, not copied: a recording stays valid as long as the caller
// does not mutate the resources it handed in.
type Command struct {
	Op Op

	Path   *Path
	Text   *Text
	Shade  *Shade
	Image  *Image
	Stroke *StrokeState

	Ctm        Matrix
	Scissor    Rect
	Area, View Rect

	Colorspace *Colorspace
	Color      []float64
	Alpha      float64
	Params     ColorParams

	EvenOdd    bool
	Luminosity bool
	Isolated   bool
	Knockout   bool
	Blend      BlendMode

	Name         string
	XStep, YStep float64
	TileID       int
}

// DisplayList records drawing commands for later replay. It is the
// canonical device for sessions that draw into no pixel buffer: nothing
// is rasterized at record time, so no pixel target is ever locked.
//
// A DisplayList is not safe for concurrent use.
type DisplayList struct {
	cmds   []Command
	closed bool
}

// NewDisplayList creates an empty display list.
func NewDisplayList() *DisplayList {
	return &DisplayList{cmds: make([]Command, 0, 64)}
}

// Commands returns the recorded commands. The slice is shared; callers
// must not modify it.
func (d *DisplayList) Commands() []Command {
	return d.cmds
}

// Len returns the number of recorded commands.
func (d *DisplayList) Len() int {
	return len(d.cmds)
}

func (d *DisplayList) record(c Command) error {
	if d.closed {
		return ErrClosed
	}
	d.cmds = append(d.cmds, c)
	return nil
}

// FillPath implements Device.
func (d *DisplayList) FillPath(path *Path, evenOdd bool, ctm Matrix, cs *Colorspace, color []float64, alpha float64, cp ColorParams) error {
	return d.record(Command{Op: OpFillPath, Path: path, EvenOdd: evenOdd, Ctm: ctm, Colorspace: cs, Color: color, Alpha: alpha, Params: cp})
}

// StrokePath implements Device.
func (d *DisplayList) StrokePath(path *Path, stroke *StrokeState, ctm Matrix, cs *Colorspace, color []float64, alpha float64, cp ColorParams) error {
	return d.record(Command{Op: OpStrokePath, Path: path, Stroke: stroke, Ctm: ctm, Colorspace: cs, Color: color, Alpha: alpha, Params: cp})
}

// ClipPath implements Device.
func (d *DisplayList) ClipPath(path *Path, evenOdd bool, ctm Matrix, scissor Rect) error {
	return d.record(Command{Op: OpClipPath, Path: path, EvenOdd: evenOdd, Ctm: ctm, Scissor: scissor})
}

// ClipStrokePath implements Device.
func (d *DisplayList) ClipStrokePath(path *Path, stroke *StrokeState, ctm Matrix, scissor Rect) error {
	return d.record(Command{Op: OpClipStrokePath, Path: path, Stroke: stroke, Ctm: ctm, Scissor: scissor})
}

// FillText implements Device.
func (d *DisplayList) FillText(text *Text, ctm Matrix, cs *Colorspace, color []float64, alpha float64, cp ColorParams) error {
	return d.record(Command{Op: OpFillText, Text: text, Ctm: ctm, Colorspace: cs, Color: color, Alpha: alpha, Params: cp})
}

// StrokeText implements Device.
func (d *DisplayList) StrokeText(text *Text, stroke *StrokeState, ctm Matrix, cs *Colorspace, color []float64, alpha float64, cp ColorParams) error {
	return d.record(Command{Op: OpStrokeText, Text: text, Stroke: stroke, Ctm: ctm, Colorspace: cs, Color: color, Alpha: alpha, Params: cp})
}

// ClipText implements Device.
func (d *DisplayList) ClipText(text *Text, ctm Matrix, scissor Rect) error {
	return d.record(Command{Op: OpClipText, Text: text, Ctm: ctm, Scissor: scissor})
}

// ClipStrokeText implements Device.
func (d *DisplayList) ClipStrokeText(text *Text, stroke *StrokeState, ctm Matrix, scissor Rect) error {
	return d.record(Command{Op: OpClipStrokeText, Text: text, Stroke: stroke, Ctm: ctm, Scissor: scissor})
}

// IgnoreText implements Device.
func (d *DisplayList) IgnoreText(text *Text, ctm Matrix) error {
	return d.record(Command{Op: OpIgnoreText, Text: text, Ctm: ctm})
}

// FillShade implements Device.
func (d *DisplayList) FillShade(shade *Shade, ctm Matrix, alpha float64, cp ColorParams) error {
	return d.record(Command{Op: OpFillShade, Shade: shade, Ctm: ctm, Alpha: alpha, Params: cp})
}

// FillImage implements Device.
func (d *DisplayList) FillImage(img *Image, ctm Matrix, alpha float64, cp ColorParams) error {
	return d.record(Command{Op: OpFillImage, Image: img, Ctm: ctm, Alpha: alpha, Params: cp})
}

// FillImageMask implements Device.
func (d *DisplayList) FillImageMask(img *Image, ctm Matrix, cs *Colorspace, color []float64, alpha float64, cp ColorParams) error {
	return d.record(Command{Op: OpFillImageMask, Image: img, Ctm: ctm, Colorspace: cs, Color: color, Alpha: alpha, Params: cp})
}

// ClipImageMask implements Device.
func (d *DisplayList) ClipImageMask(img *Image, ctm Matrix, scissor Rect) error {
	return d.record(Command{Op: OpClipImageMask, Image: img, Ctm: ctm, Scissor: scissor})
}

// PopClip implements Device.
func (d *DisplayList) PopClip() error {
	return d.record(Command{Op: OpPopClip})
}

// BeginLayer implements Device.
func (d *DisplayList) BeginLayer(name string) error {
	return d.record(Command{Op: OpBeginLayer, Name: name})
}

// EndLayer implements Device.
func (d *DisplayList) EndLayer() error {
	return d.record(Command{Op: OpEndLayer})
}

// BeginMask implements Device.
func (d *DisplayList) BeginMask(area Rect, luminosity bool, cs *Colorspace, color []float64, cp ColorParams) error {
	return d.record(Command{Op: OpBeginMask, Area: area, Luminosity: luminosity, Colorspace: cs, Color: color, Params: cp})
}

// EndMask implements Device.
func (d *DisplayList) EndMask() error {
	return d.record(Command{Op: OpEndMask})
}

// BeginGroup implements Device.
func (d *DisplayList) BeginGroup(area Rect, cs *Colorspace, isolated, knockout bool, blend BlendMode, alpha float64) error {
	return d.record(Command{Op: OpBeginGroup, Area: area, Colorspace: cs, Isolated: isolated, Knockout: knockout, Blend: blend, Alpha: alpha})
}

// EndGroup implements Device.
func (d *DisplayList) EndGroup() error {
	return d.record(Command{Op: OpEndGroup})
}

// BeginTile implements Device. A display list never caches tiles, so the
// returned index is always 0 and the caller records the cell contents.
func (d *DisplayList) BeginTile(area, view Rect, xstep, ystep float64, ctm Matrix, id int) (int, error) {
	err := d.record(Command{Op: OpBeginTile, Area: area, View: view, XStep: xstep, YStep: ystep, Ctm: ctm, TileID: id})
	return 0, err
}

// EndTile implements Device.
func (d *DisplayList) EndTile() error {
	return d.record(Command{Op: OpEndTile})
}

// Close implements Device. The recording is complete; further commands
// fail with ErrClosed.
func (d *DisplayList) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true
	return nil
}

// Replay plays the recorded commands, in order, against dev. Replay
// stops at the first command dev rejects and returns its error. A
// display list may be replayed any number of times, to any number of
// devices, including before it is closed.
func (d *DisplayList) Replay(dev Device) error {
	for i := range d.cmds {
		c := &d.cmds[i]
		var err error
		switch c.Op {
		case OpFillPath:
			err = dev.FillPath(c.Path, c.EvenOdd, c.Ctm, c.Colorspace, c.Color, c.Alpha, c.Params)
		case OpStrokePath:
			err = dev.StrokePath(c.Path, c.Stroke, c.Ctm, c.Colorspace, c.Color, c.Alpha, c.Params)
		case OpClipPath:
			err = dev.ClipPath(c.Path, c.EvenOdd, c.Ctm, c.Scissor)
		case OpClipStrokePath:
			err = dev.ClipStrokePath(c.Path, c.Stroke, c.Ctm, c.Scissor)
		case OpFillText:
			err = dev.FillText(c.Text, c.Ctm, c.Colorspace, c.Color, c.Alpha, c.Params)
		case OpStrokeText:
			err = dev.StrokeText(c.Text, c.Stroke, c.Ctm, c.Colorspace, c.Color, c.Alpha, c.Params)
		case OpClipText:
			err = dev.ClipText(c.Text, c.Ctm, c.Scissor)
		case OpClipStrokeText:
			err = dev.ClipStrokeText(c.Text, c.Stroke, c.Ctm, c.Scissor)
		case OpIgnoreText:
			err = dev.IgnoreText(c.Text, c.Ctm)
		case OpFillShade:
			err = dev.FillShade(c.Shade, c.Ctm, c.Alpha, c.Params)
		case OpFillImage:
			err = dev.FillImage(c.Image, c.Ctm, c.Alpha, c.Params)
		case OpFillImageMask:
			err = dev.FillImageMask(c.Image, c.Ctm, c.Colorspace, c.Color, c.Alpha, c.Params)
		case OpClipImageMask:
			err = dev.ClipImageMask(c.Image, c.Ctm, c.Scissor)
		case OpPopClip:
			err = dev.PopClip()
		case OpBeginLayer:
			err = dev.BeginLayer(c.Name)
		case OpEndLayer:
			err = dev.EndLayer()
		case OpBeginMask:
			err = dev.BeginMask(c.Area, c.Luminosity, c.Colorspace, c.Color, c.Params)
		case OpEndMask:
			err = dev.EndMask()
		case OpBeginGroup:
			err = dev.BeginGroup(c.Area, c.Colorspace, c.Isolated, c.Knockout, c.Blend, c.Alpha)
		case OpEndGroup:
			err = dev.EndGroup()
		case OpBeginTile:
			_, err = dev.BeginTile(c.Area, c.View, c.XStep, c.YStep, c.Ctm, c.TileID)
		case OpEndTile:
			err = dev.EndTile()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Ensure DisplayList implements Device.
var _ Device = (*DisplayList)(nil)
