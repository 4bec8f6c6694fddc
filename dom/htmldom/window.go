package htmldom

import (
	"sync"

	"github.com/npillmayer/sheets/css"
	"github.com/npillmayer/sheets/dom"
	"github.com/npillmayer/tyse/core/dimen"
)

// Window is a viewport with a resize signal. Hosts without a real window
// (tests, command line tools) resize it explicitly.
type Window struct {
	mu    sync.Mutex
	width dimen.DU
	next  int
	subs  map[int]func()
	order []int
}

var _ dom.Viewport = &Window{}
var _ dom.ResizeSignal = &Window{}

// NewWindow creates a window of a given width in CSS pixels.
func NewWindow(widthPx int) *Window {
	return &Window{
		width: dimen.DU(widthPx) * css.PX,
		subs:  make(map[int]func()),
	}
}

// Width returns the current width of the window.
//
// Interface dom.Viewport
func (w *Window) Width() dimen.DU {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

// WidthPx returns the current width of the window in CSS pixels.
func (w *Window) WidthPx() int {
	return int(w.Width() / css.PX)
}

// Subscribe registers a callback for resize signals.
//
// Interface dom.ResizeSignal
func (w *Window) Subscribe(callback func()) (unsubscribe func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.next
	w.next++
	w.subs[id] = callback
	w.order = append(w.order, id)
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subs, id)
		for i, x := range w.order {
			if x == id {
				w.order = append(w.order[:i], w.order[i+1:]...)
				break
			}
		}
	}
}

// Resize sets the width of the window in CSS pixels and signals all
// subscribers, in order of subscription.
func (w *Window) Resize(widthPx int) {
	w.mu.Lock()
	w.width = dimen.DU(widthPx) * css.PX
	var callbacks []func()
	for _, id := range w.order {
		if cb, ok := w.subs[id]; ok {
			callbacks = append(callbacks, cb)
		}
	}
	w.mu.Unlock()
	tracer().Debugf("window resized to %dpx, %d subscriber(s)", widthPx, len(callbacks))
	for _, cb := range callbacks {
		cb()
	}
}
