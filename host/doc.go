// Package host exposes pixdev device sessions to a goja JavaScript
// runtime.
//
// The binding has exactly the responsibilities of a foreign-runtime
// glue layer and nothing more: it resolves script objects to the engine
// resources they wrap, marshals script values (arrays, strings, packed
// integers) into the value types the device contract uses, and
// translates the pixdev error taxonomy into JavaScript exceptions
// (ArgumentError becomes a TypeError; lock and engine failures become
// thrown Go errors).
//
// It also supplies the one pixel buffer kind a script can own: an
// ArrayBuffer. The script side may detach or replace the buffer's
// backing storage between drawing commands, so [ArrayBufferBuffer]
// re-resolves the current backing bytes on every pin. This is the
// concrete instance of the "address is only valid while pinned" rule
// the locking protocol exists for.
package host
