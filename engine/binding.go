package engine

import (
	"sync"

	"github.com/npillmayer/sheets/dom"
	"github.com/npillmayer/sheets/sheet"
)

// applied is a sheet applied to an element. The definition is captured at the time
// of application; later re-definitions of the name do not affect it.
type applied struct {
	name string
	spec *sheet.Spec
}

// binding associates an element with its sheets and its mutation watcher.
type binding struct {
	mu      sync.Mutex // serializes passes and guards sheets
	id      uint64
	element dom.Element
	sheets  []applied
	watcher dom.MutationWatcher
}

func (b *binding) names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	names := make([]string, len(b.sheets))
	for i, a := range b.sheets {
		names[i] = a.name
	}
	return names
}

// disconnect drops the binding's sheets and stops its watcher, if any.
func (b *binding) disconnect() {
	b.mu.Lock()
	w := b.watcher
	b.watcher = nil
	b.sheets = nil
	b.mu.Unlock()
	if w != nil {
		w.Disconnect()
	}
}

// bindingTable tracks bound elements in order of binding. Lock order is
// table before binding.
type bindingTable struct {
	mu     sync.Mutex
	next   uint64
	byElem map[dom.Element]*binding
	order  []*binding
}

func newBindingTable() *bindingTable {
	return &bindingTable{byElem: make(map[dom.Element]*binding)}
}

// bind returns the binding of an element, creating it if necessary.
func (t *bindingTable) bind(el dom.Element) (b *binding, created bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if b = t.byElem[el]; b != nil {
		return b, false
	}
	t.next++
	b = &binding{id: t.next, element: el}
	t.byElem[el] = b
	t.order = append(t.order, b)
	return b, true
}

func (t *bindingTable) lookup(el dom.Element) *binding {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.byElem[el]
}

// isBound checks if b is still the binding of its element.
func (t *bindingTable) isBound(b *binding) bool {
	return t.lookup(b.element) == b
}

// remove deletes the binding of an element from the table.
func (t *bindingTable) remove(el dom.Element) *binding {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.removeLocked(el)
}

func (t *bindingTable) removeLocked(el dom.Element) *binding {
	b := t.byElem[el]
	if b == nil {
		return nil
	}
	delete(t.byElem, el)
	for i, x := range t.order {
		if x == b {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return b
}

// snapshot returns the current bindings in order of binding.
func (t *bindingTable) snapshot() []*binding {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*binding(nil), t.order...)
}
