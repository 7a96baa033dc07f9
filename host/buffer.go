package host

import (
	"errors"

	"github.com/dop251/goja"
)

// ArrayBufferBuffer adapts a goja ArrayBuffer to the pixdev.Buffer
// contract.
//
// The script side owns the buffer: it can detach it (transfer to a
// worker, explicit detach) or replace its backing storage at any time
// a pin is not held. Pin therefore re-resolves the ArrayBuffer's
// current backing slice on every call instead of caching it; a
// detached buffer fails the pin, which surfaces to the drawing command
// as a lock error before any engine primitive runs.
type ArrayBufferBuffer struct {
	obj *goja.Object
}

// NewArrayBufferBuffer wraps the given script value, which must be an
// ArrayBuffer object.
func NewArrayBufferBuffer(v goja.Value) (*ArrayBufferBuffer, error) {
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil, errors.New("host: buffer value is not an object")
	}
	if _, ok := obj.Export().(goja.ArrayBuffer); !ok {
		return nil, errors.New("host: buffer value is not an ArrayBuffer")
	}
	return &ArrayBufferBuffer{obj: obj}, nil
}

// Pin resolves the ArrayBuffer's current backing bytes. The returned
// slice is valid until the matching Unpin; the script may move the
// storage after that.
func (a *ArrayBufferBuffer) Pin() ([]byte, error) {
	ab, ok := a.obj.Export().(goja.ArrayBuffer)
	if !ok {
		return nil, errors.New("host: buffer is no longer an ArrayBuffer")
	}
	if ab.Detached() {
		return nil, errors.New("host: buffer is detached")
	}
	return ab.Bytes(), nil
}

// Unpin implements pixdev.Buffer. The runtime holds drawing commands on
// the script thread, so no explicit unpin bookkeeping is needed; the
// next Pin re-resolves the address regardless.
func (a *ArrayBufferBuffer) Unpin() {}
