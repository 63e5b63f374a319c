package host

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/pkg/serial"
)

// ReceiveContext is the view of the current call given to an entry point.
type ReceiveContext struct {
	entryPoint string
	invoker    string
	parameter  []byte
	mutable    bool
	events     []emitted
}

type emitted struct {
	tag     string
	data    []byte
	payload serial.Serializer
}

// Parameter returns a cursor over the raw parameter bytes.
func (r *ReceiveContext) Parameter() *serial.Cursor {
	return serial.NewCursor(r.parameter)
}

func (r *ReceiveContext) EntryPoint() string {
	return r.entryPoint
}

// Invoker identifies the caller. Empty when unknown.
func (r *ReceiveContext) Invoker() string {
	return r.invoker
}

// EmitEvent records an event. Events are published only if the call succeeds.
func (r *ReceiveContext) EmitEvent(tag string, event serial.Serializer) error {
	if !r.mutable {
		return errors.Wrapf(errs.Unsupported, "entrypoint %q is read-only and can't emit events", r.entryPoint)
	}
	r.events = append(r.events, emitted{
		tag:     tag,
		data:    serial.Encode(event),
		payload: event,
	})
	return nil
}
