// Package pixdev binds a document rendering engine's device interface
// to host object models.
//
// # Overview
//
// A [Device] is a drawing session: it receives an ordered sequence of
// drawing commands (fill, stroke, clip, text, shading, image, and
// layer/mask/group/tile nesting) and forwards each one to an
// engine.Device. The session's one piece of real machinery is the
// locked pixel target protocol: when a session draws into a pixel
// buffer whose backing storage a managed allocator may relocate, every
// command pins the storage before the engine primitive runs and unpins
// it afterwards on every exit path. Sessions without a buffer
// dependency (display-list recording, tracing) carry [NoTarget] and
// skip the step entirely.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/pixdev"
//	    "github.com/gogpu/pixdev/engine"
//	)
//
//	list := engine.NewDisplayList()
//	dev, _ := pixdev.NewDevice(list)
//
//	path := engine.NewPath()
//	path.MoveTo(0, 0)
//	path.LineTo(100, 0)
//	path.Close()
//
//	dev.FillPath(path, false, engine.Identity(), engine.DeviceRGB,
//	    []float64{1, 0, 0}, 1, engine.DefaultColorParams)
//	dev.Close()
//
// # Architecture
//
// The module is organized into:
//   - Public API: Device, Target, Buffer, the error taxonomy
//   - engine: the rendering engine's call contract plus the display
//     list and trace devices
//   - host: the goja JavaScript binding, including the relocatable
//     ArrayBuffer-backed pixel buffer
//
// # Errors
//
// Every command failure is one of three typed errors: [ArgumentError]
// (bad arguments, nothing ran), [LockError] (target acquisition failed,
// nothing ran), [EngineError] (the primitive failed after the target
// was already released). Use errors.As to distinguish them.
package pixdev
