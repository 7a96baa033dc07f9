package engine

import "fmt"

// MaxColorComponents bounds the size of a color component array when no
// colorspace is available to supply a channel count.
const MaxColorComponents = 32

// Colorspace describes the channel layout of color component arrays.
// The binding layer only needs its channel count; everything else about
// a colorspace is the engine's business.
type Colorspace struct {
	name string
	n    int
}

// Predefined device colorspaces.
var (
	DeviceGray = &Colorspace{name: "DeviceGray", n: 1}
	DeviceRGB  = &Colorspace{name: "DeviceRGB", n: 3}
	DeviceCMYK = &Colorspace{name: "DeviceCMYK", n: 4}
)

// NewColorspace creates a colorspace with the given name and channel
// count. The channel count must be in [1, MaxColorComponents].
func NewColorspace(name string, n int) (*Colorspace, error) {
	if n < 1 || n > MaxColorComponents {
		return nil, fmt.Errorf("engine: colorspace channel count %d out of range [1, %d]", n, MaxColorComponents)
	}
	return &Colorspace{name: name, n: n}, nil
}

// Name returns the colorspace name.
func (c *Colorspace) Name() string { return c.name }

// Channels returns the number of color components per color value.
func (c *Colorspace) Channels() int { return c.n }

// String returns the colorspace name.
func (c *Colorspace) String() string { return c.name }

// RenderingIntent selects the color rendering intent for an operation.
type RenderingIntent uint8

// Rendering intents, matching the PDF imaging model.
const (
	Perceptual RenderingIntent = iota
	RelativeColorimetric
	Saturation
	AbsoluteColorimetric
)

// String returns the intent name.
func (ri RenderingIntent) String() string {
	switch ri {
	case Perceptual:
		return "Perceptual"
	case RelativeColorimetric:
		return "RelativeColorimetric"
	case Saturation:
		return "Saturation"
	case AbsoluteColorimetric:
		return "AbsoluteColorimetric"
	}
	return "Unknown"
}

// ColorParams carries the color management flags attached to a drawing
// command: rendering intent, black-point compensation, overprint and
// overprint mode. It is a value type passed through to the engine
// unchanged.
type ColorParams struct {
	Intent RenderingIntent
	BP     bool // black-point compensation
	OP     bool // overprint
	OPM    bool // overprint mode
}

// DefaultColorParams is used when a command supplies no color parameter
// set.
var DefaultColorParams = ColorParams{Intent: RelativeColorimetric, BP: true}

// Packed color parameter bit layout.
const (
	cpIntentMask = 0x3
	cpBPBit      = 1 << 5
	cpOPBit      = 1 << 6
	cpOPMBit     = 1 << 7
)

// Pack encodes the parameters into the integer form used on the wire
// between the host object model and the binding.
func (cp ColorParams) Pack() int {
	v := int(cp.Intent) & cpIntentMask
	if cp.BP {
		v |= cpBPBit
	}
	if cp.OP {
		v |= cpOPBit
	}
	if cp.OPM {
		v |= cpOPMBit
	}
	return v
}

// ColorParamsFromPacked decodes the packed integer form. Any bits
// outside the defined layout are ignored.
func ColorParamsFromPacked(v int) ColorParams {
	return ColorParams{
		Intent: RenderingIntent(v & cpIntentMask),
		BP:     v&cpBPBit != 0,
		OP:     v&cpOPBit != 0,
		OPM:    v&cpOPMBit != 0,
	}
}

// BlendMode selects how a transparency group composites with its
// backdrop.
type BlendMode uint8

// Blend modes, matching the PDF transparency model.
const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var blendModeNames = [...]string{
	BlendNormal:     "Normal",
	BlendMultiply:   "Multiply",
	BlendScreen:     "Screen",
	BlendOverlay:    "Overlay",
	BlendDarken:     "Darken",
	BlendLighten:    "Lighten",
	BlendColorDodge: "ColorDodge",
	BlendColorBurn:  "ColorBurn",
	BlendHardLight:  "HardLight",
	BlendSoftLight:  "SoftLight",
	BlendDifference: "Difference",
	BlendExclusion:  "Exclusion",
	BlendHue:        "Hue",
	BlendSaturation: "Saturation",
	BlendColor:      "Color",
	BlendLuminosity: "Luminosity",
}

// String returns the blend mode name.
func (b BlendMode) String() string {
	if int(b) < len(blendModeNames) {
		return blendModeNames[b]
	}
	return "Unknown"
}
