package media

import (
	"sort"
	"sync"

	"github.com/npillmayer/sheets"
)

// Resolver computes the conditions of a registry which are currently true.
//
// The result is cached. Between two calls to Invalidate, Resolve returns the
// identical slice; clients must not modify it. Invalidation happens-before
// any subsequent resolution, even across goroutines.
type Resolver struct {
	registry *Registry
	mu       sync.Mutex
	dirty    bool
	cached   []Condition
}

// NewResolver creates a resolver for a registry. The cache starts out dirty.
func NewResolver(registry *Registry) *Resolver {
	return &Resolver{registry: registry, dirty: true}
}

// Invalidate forces the next call to Resolve to re-evaluate all predicates.
func (res *Resolver) Invalidate() {
	res.mu.Lock()
	defer res.mu.Unlock()
	res.dirty = true
}

// Resolve returns all conditions which are currently true, ordered by
// descending priority. Conditions of equal priority stay in order of
// registration.
//
// If no condition is true, Resolve fails with sheets.ErrNoConditionMatched.
func (res *Resolver) Resolve() ([]Condition, error) {
	res.mu.Lock()
	defer res.mu.Unlock()
	if !res.dirty {
		return res.cached, nil
	}
	var matched []Condition
	for _, c := range res.registry.Conditions() {
		if c.Predicate() {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 {
		tracer().Errorf("none of %d conditions matched", res.registry.Len())
		return nil, sheets.ErrNoConditionMatched
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority > matched[j].Priority
	})
	tracer().Debugf("resolved conditions %v", matched)
	res.cached = matched
	res.dirty = false
	return res.cached, nil
}
