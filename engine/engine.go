package engine

import (
	"errors"
	"fmt"

	"github.com/npillmayer/sheets"
	"github.com/npillmayer/sheets/dom"
	"github.com/npillmayer/sheets/field"
	"github.com/npillmayer/sheets/media"
	"github.com/npillmayer/sheets/sheet"
)

// ErrNilElement is returned when sheets are applied to a nil element.
var ErrNilElement = errors.New("cannot bind nil element")

// Engine applies named sheets to elements and keeps them applied.
type Engine struct {
	conditions  *media.Registry
	resolver    *media.Resolver
	store       *sheet.Store
	fields      *field.Registry
	bindings    *bindingTable
	observer    dom.Observer
	signals     []dom.ResizeSignal
	unsubscribe []func()
	onWarning   func(error)
	onError     func(error)
}

// New creates an engine. Mutation watchers for bound elements are created by
// observer; if it is nil, elements are re-styled on resize only.
//
//     win := htmldom.NewWindow(1024)
//     e := engine.New(doc, engine.WithDefaultBreakpoints(win), engine.WithResizeSignal(win))
//
func New(observer dom.Observer, opts ...Option) *Engine {
	if observer == nil {
		observer = dom.ObserverFunc(func() dom.MutationWatcher {
			return dom.NullWatcher{}
		})
	}
	conditions := media.NewRegistry()
	e := &Engine{
		conditions: conditions,
		resolver:   media.NewResolver(conditions),
		store:      sheet.NewStore(),
		fields:     field.NewRegistry(),
		bindings:   newBindingTable(),
		observer:   observer,
		onError: func(err error) {
			tracer().Errorf("sheets: %v", err)
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, sig := range e.signals {
		e.unsubscribe = append(e.unsubscribe, sig.Subscribe(e.resized))
	}
	return e
}

// DefineSheet stores a sheet under a name. Re-defining a name replaces the
// definition for future applications and issues a warning; elements the
// sheet has already been applied to keep the former definition.
// Defining a nil spec removes the definition.
func (e *Engine) DefineSheet(name string, spec *sheet.Spec) {
	if e.store.Define(name, spec) && spec != nil && e.onWarning != nil {
		e.onWarning(fmt.Errorf("%w: %q", sheets.ErrSheetRedefined, name))
	}
}

// Sheets lists the names of all defined sheets.
func (e *Engine) Sheets() []string {
	return e.store.Names()
}

// ApplySheet applies the sheet currently defined for name to el, binding el
// if it is not yet bound, and performs a pass over el's subtree.
//
// If no sheet is defined for name, ApplySheet returns an error wrapping
// sheets.ErrUndefinedSheet without binding el or dispatching anything.
// Errors from the pass are returned, but the sheet stays applied.
func (e *Engine) ApplySheet(el dom.Element, name string) error {
	if el == nil {
		return ErrNilElement
	}
	spec, err := e.store.Get(name)
	if err != nil {
		return err
	}
	b, created := e.bindings.bind(el)
	b.mu.Lock()
	b.sheets = append(b.sheets, applied{name: name, spec: spec})
	b.mu.Unlock()
	if created {
		w := e.observer.NewWatcher()
		if err := w.Observe(el, e.mutated(b)); err != nil {
			e.bindings.remove(el)
			return fmt.Errorf("cannot observe element: %w", err)
		}
		b.mu.Lock()
		b.watcher = w
		b.mu.Unlock()
		if !e.bindings.isBound(b) { // cleared while we were observing
			b.disconnect()
			tracer().Debugf("element #%d unbound during binding", b.id)
			return nil
		}
		tracer().Debugf("bound element #%d", b.id)
	}
	return e.update(b)
}

// ClearSheets unbinds el: every sheet applied to el is removed, whatever
// its name, and el's watcher is disconnected. Subsequent mutations of el's
// subtree and resizes dispatch nothing for el. The name is informational
// only. Effects of earlier passes are not undone and the sheet definitions
// remain untouched. Clearing an unbound element is a no-op.
func (e *Engine) ClearSheets(el dom.Element, name string) error {
	if el == nil {
		return ErrNilElement
	}
	b := e.bindings.remove(el)
	if b == nil {
		tracer().Debugf("clear %q: element is not bound", name)
		return nil
	}
	b.disconnect()
	tracer().Debugf("clear %q: unbound element #%d", name, b.id)
	return nil
}

// QueryCondition evaluates the predicate of a registered condition.
func (e *Engine) QueryCondition(name string) (bool, error) {
	return e.conditions.Query(name)
}

// RegisterCondition registers a named condition, replacing one of the same
// name. The currently resolved conditions are not affected until the next
// call to Resize.
func (e *Engine) RegisterCondition(name string, predicate media.Predicate, priority int) {
	e.conditions.Register(name, predicate, priority)
}

// RegisterFieldAction registers the action for a field name, replacing an
// earlier registration.
func (e *Engine) RegisterFieldAction(fieldName string, action field.Action) {
	e.fields.Register(fieldName, action)
}

// Conditions returns the resolved condition set, highest priority first.
func (e *Engine) Conditions() ([]media.Condition, error) {
	return e.resolver.Resolve()
}

// Bound returns all bound elements in order of binding.
func (e *Engine) Bound() []dom.Element {
	bs := e.bindings.snapshot()
	els := make([]dom.Element, len(bs))
	for i, b := range bs {
		els[i] = b.element
	}
	return els
}

// Applied returns the names of the sheets applied to el, in order of
// application. It returns nil for unbound elements.
func (e *Engine) Applied(el dom.Element) []string {
	if b := e.bindings.lookup(el); b != nil {
		return b.names()
	}
	return nil
}

// Close unsubscribes from resize signals and unbinds every element.
func (e *Engine) Close() {
	for _, unsubscribe := range e.unsubscribe {
		unsubscribe()
	}
	e.unsubscribe = nil
	for _, b := range e.bindings.snapshot() {
		if e.bindings.remove(b.element) != nil {
			b.disconnect()
		}
	}
}
