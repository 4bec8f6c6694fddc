package sheet

import (
	"fmt"
	"sort"
	"sync"

	"github.com/npillmayer/sheets"
)

// Store holds named sheet specifications. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	specs map[string]*Spec
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{specs: make(map[string]*Spec)}
}

// Define stores a sheet under a name. If the name is already defined, the
// previous definition is overwritten and Define returns true. Overwriting is
// legal, but usually a mistake; callers should surface it as a warning.
//
// Defining a nil sheet removes the definition.
func (s *Store) Define(name string, spec *Spec) (redefined bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, redefined = s.specs[name]
	if spec == nil {
		delete(s.specs, name)
		return
	}
	if redefined {
		tracer().Infof("sheet %q is already defined; the latest definition will overwrite previous ones", name)
	}
	s.specs[name] = spec
	return
}

// Get returns the sheet defined under a name. It fails with
// sheets.ErrUndefinedSheet if there is none: sheets have to be defined
// before they may be used.
func (s *Store) Get(name string) (*Spec, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	spec, ok := s.specs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", sheets.ErrUndefinedSheet, name)
	}
	return spec, nil
}

// Names returns the names of all defined sheets, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.specs))
	for n := range s.specs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
