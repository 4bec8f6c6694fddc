package engine

import (
	"github.com/npillmayer/sheets/dom"
)

// Resize discards the resolved conditions and re-applies the sheets of every
// bound element, in order of binding. It stops at the first error.
// Calling Resize more than once for the same viewport width is harmless.
func (e *Engine) Resize() error {
	e.resolver.Invalidate()
	for _, b := range e.bindings.snapshot() {
		if !e.bindings.isBound(b) {
			continue
		}
		if err := e.update(b); err != nil {
			return err
		}
	}
	return nil
}

// resized is subscribed to resize signals.
func (e *Engine) resized() {
	tracer().Debugf("viewport resized")
	if err := e.Resize(); err != nil {
		e.onError(err)
	}
}

// mutated creates the mutation callback for a binding. Any batch of records
// re-applies all sheets of the binding to its complete subtree.
func (e *Engine) mutated(b *binding) dom.MutationCallback {
	return func(records []dom.MutationRecord) {
		if !e.bindings.isBound(b) {
			return
		}
		tracer().Debugf("%d mutations in subtree of element #%d", len(records), b.id)
		if err := e.update(b); err != nil {
			e.onError(err)
		}
	}
}
