package htmldom

import (
	"github.com/npillmayer/sheets/dom"
)

// watcher observes a subtree of a document.
type watcher struct {
	doc      *Document
	target   *Node
	callback dom.MutationCallback
}

// NewWatcher creates a mutation watcher for this document.
//
// Interface dom.Observer
func (d *Document) NewWatcher() dom.MutationWatcher {
	return &watcher{doc: d}
}

var _ dom.Observer = &Document{}

// Observe starts reporting attribute and child-list changes within the
// subtree of el. Observing again replaces target and callback.
func (w *watcher) Observe(el dom.Element, callback dom.MutationCallback) error {
	n, ok := el.(*Node)
	if !ok || n.doc != w.doc {
		return ErrForeignNode
	}
	w.doc.mu.Lock()
	defer w.doc.mu.Unlock()
	if w.target == nil {
		w.doc.watchers = append(w.doc.watchers, w)
	}
	w.target = n
	w.callback = callback
	tracer().Debugf("watching subtree of %v", n)
	return nil
}

// Disconnect stops reporting. Batches not yet delivered are dropped.
func (w *watcher) Disconnect() {
	w.doc.mu.Lock()
	defer w.doc.mu.Unlock()
	for i, x := range w.doc.watchers {
		if x == w {
			w.doc.watchers = append(w.doc.watchers[:i], w.doc.watchers[i+1:]...)
			break
		}
	}
	w.target = nil
	w.callback = nil
}

type delivery struct {
	w     *watcher
	batch []dom.MutationRecord
}

// Flush delivers all pending mutation records to the watchers observing
// the subtrees they occured in. Every watcher receives at most one batch.
// Mutations caused by callbacks are delivered with the next call to Flush.
// Flush returns the number of batches delivered.
func (d *Document) Flush() int {
	d.mu.Lock()
	records := d.pending
	d.pending = nil
	var deliveries []delivery
	for _, w := range d.watchers {
		var batch []dom.MutationRecord
		for _, r := range records {
			if contains(w.target.h, r.target) {
				batch = append(batch, dom.MutationRecord{
					Kind:      r.kind,
					Target:    d.wrap(r.target),
					Attribute: r.attr,
				})
			}
		}
		if len(batch) > 0 {
			deliveries = append(deliveries, delivery{w: w, batch: batch})
		}
	}
	d.mu.Unlock()
	delivered := 0
	for _, dl := range deliveries {
		d.mu.Lock()
		callback, target := dl.w.callback, dl.w.target // nil if disconnected in the meantime
		d.mu.Unlock()
		if callback == nil {
			continue
		}
		tracer().Debugf("delivering %d mutation record(s) for %v", len(dl.batch), target)
		callback(dl.batch)
		delivered++
	}
	return delivered
}
