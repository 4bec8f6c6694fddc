package media

import (
	"fmt"
	"sync"

	"github.com/npillmayer/sheets"
)

// Predicate tests wether a condition currently holds.
type Predicate func() bool

// Condition is a named, prioritized predicate.
type Condition struct {
	Name      string
	Predicate Predicate
	Priority  int
}

func (c Condition) String() string {
	return fmt.Sprintf("%s(%d)", c.Name, c.Priority)
}

// Registry holds conditions by name, remembering the order of registration.
// A Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	conds []Condition
	index map[string]int
}

// NewRegistry creates an empty condition registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register inserts a condition or overwrites an existing one with the same
// name. Overwritten conditions keep their position in registration order.
// Priorities need not be unique.
func (r *Registry) Register(name string, predicate Predicate, priority int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := Condition{Name: name, Predicate: predicate, Priority: priority}
	if i, ok := r.index[name]; ok {
		tracer().Debugf("overwriting condition %s", name)
		r.conds[i] = c
		return
	}
	r.index[name] = len(r.conds)
	r.conds = append(r.conds, c)
}

// Lookup returns the condition registered under name.
func (r *Registry) Lookup(name string) (Condition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[name]
	if !ok {
		return Condition{}, fmt.Errorf("%w: %q", sheets.ErrNotFound, name)
	}
	return r.conds[i], nil
}

// Query evaluates the predicate of a named condition.
func (r *Registry) Query(name string) (bool, error) {
	c, err := r.Lookup(name)
	if err != nil {
		return false, err
	}
	return c.Predicate(), nil
}

// Conditions returns all conditions in order of registration.
func (r *Registry) Conditions() []Condition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conds := make([]Condition, len(r.conds))
	copy(conds, r.conds)
	return conds
}

// Len returns the number of registered conditions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conds)
}
