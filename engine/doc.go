// Package engine defines the call contract of the rendering engine that
// pixdev binds to.
//
// The central type is [Device]: a stateful receiver of drawing commands
// (fill, stroke, clip, text, shading, image, layer/mask/group/tile
// nesting). The engine's rasterizing devices live outside this module;
// engine only fixes the command surface and the value and resource types
// flowing across it (Matrix, Rect, Colorspace, Path, Text, Shade, Image,
// StrokeState, Pixmap).
//
// Two concrete devices ship here because they need no rasterizer:
//
//   - [DisplayList] records commands for later replay against another
//     device. It is the canonical session that draws into no pixel
//     buffer.
//   - [TraceDevice] writes a one-line textual description of each
//     command to an io.Writer, for debugging command streams.
//
// All resource types are opaque carriers from the binding layer's point
// of view: pixdev validates that required handles are present, then
// passes them through unchanged.
package engine
