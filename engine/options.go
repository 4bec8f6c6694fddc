package engine

import (
	"github.com/npillmayer/sheets/dom"
	"github.com/npillmayer/sheets/media"
)

// Option configures an Engine. Options are applied in order.
type Option func(*Engine)

// WithDefaultBreakpoints registers the default breakpoints xs, sm, md and lg
// as conditions, measured against a viewport.
func WithDefaultBreakpoints(vp dom.Viewport) Option {
	return WithBreakpoints(vp, media.DefaultBreakpoints()...)
}

// WithBreakpoints registers width breakpoints as conditions, measured against
// a viewport.
func WithBreakpoints(vp dom.Viewport, bps ...media.Breakpoint) Option {
	return func(e *Engine) {
		media.RegisterBreakpoints(e.conditions, vp, bps...)
	}
}

// WithResizeSignal subscribes the engine to a host's resize signal. Every
// signal triggers a call to Resize; errors go to the error handler.
func WithResizeSignal(sig dom.ResizeSignal) Option {
	return func(e *Engine) {
		if sig != nil {
			e.signals = append(e.signals, sig)
		}
	}
}

// WithWarningHandler sets a function receiving advisory warnings, e.g.,
// about re-defined sheets. Warnings are traced in any case.
func WithWarningHandler(handler func(error)) Option {
	return func(e *Engine) {
		e.onWarning = handler
	}
}

// WithErrorHandler sets a function receiving errors of passes triggered by
// the host (resize signals or mutations). The default handler traces them.
func WithErrorHandler(handler func(error)) Option {
	return func(e *Engine) {
		if handler != nil {
			e.onError = handler
		}
	}
}
