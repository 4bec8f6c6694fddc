/*
Package field maps field names of sheets to actions.

A field action performs the actual presentation effect of a sheet, e.g.
toggling a class or starting an animation. Sheets only name fields; the
integrator registers one action per field name. Dispatching a field without
a registered action is a configuration error, as a mistyped field name
should never fail silently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package field

import (
	"fmt"
	"sort"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sheets"
	"github.com/npillmayer/sheets/dom"
)

// tracer traces with key 'sheets.field'.
func tracer() tracing.Trace {
	return tracing.Select("sheets.field")
}

// Action applies a payload to a target element.
type Action func(target dom.Element, payload interface{})

// Registry holds one action per field name. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
}

// NewRegistry creates an empty field action registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]Action)}
}

// Register sets the action for a field, replacing a previous one.
func (r *Registry) Register(field string, action Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.actions[field]; exists {
		tracer().Debugf("replacing action for field %q", field)
	}
	r.actions[field] = action
}

// Has checks if an action is registered for a field.
func (r *Registry) Has(field string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.actions[field]
	return ok
}

// Fields returns the names of all fields with an action, sorted.
func (r *Registry) Fields() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fields := make([]string, 0, len(r.actions))
	for f := range r.actions {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Dispatch calls the action of a field with a target and a payload.
// It fails with sheets.ErrUnknownField if no action is registered.
func (r *Registry) Dispatch(field string, target dom.Element, payload interface{}) error {
	r.mu.RLock()
	action, ok := r.actions[field]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %q", sheets.ErrUnknownField, field)
	}
	action(target, payload)
	return nil
}
