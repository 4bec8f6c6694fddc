package dom

import (
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
)

// Element is a node of a host document which may have sheets attached.
type Element interface {
	// QuerySelectorAll returns all descendants matching a CSS selector, in
	// document order. The element itself is never part of the result.
	QuerySelectorAll(selector string) ([]Element, error)
}

// MutationKind distinguishes mutation records.
type MutationKind uint8

// Kinds of mutations a watcher reports.
const (
	Attributes MutationKind = iota + 1 // an attribute of the target changed
	ChildList                          // children have been added to or removed from the target
)

func (k MutationKind) String() string {
	switch k {
	case Attributes:
		return "attributes"
	case ChildList:
		return "childList"
	}
	return fmt.Sprintf("MutationKind(%d)", uint8(k))
}

// MutationRecord describes a single change within an observed subtree.
type MutationRecord struct {
	Kind      MutationKind
	Target    Element
	Attribute string // name of the changed attribute, for kind Attributes
}

// MutationCallback receives a batch of mutation records.
type MutationCallback func(records []MutationRecord)

// MutationWatcher observes attribute and child-list changes within the
// subtree of an element.
//
// After Disconnect returns, the callback will not be called again.
type MutationWatcher interface {
	Observe(el Element, callback MutationCallback) error
	Disconnect()
}

// Observer creates mutation watchers.
type Observer interface {
	NewWatcher() MutationWatcher
}

// ResizeSignal notifies subscribers whenever the viewport is resized.
// Hosts may signal more than once per logical resize.
type ResizeSignal interface {
	Subscribe(callback func()) (unsubscribe func())
}

// Viewport is the window a document is displayed in.
type Viewport interface {
	Width() dimen.DU
}

// ObserverFunc is an adapter to use an ordinary function as an Observer.
type ObserverFunc func() MutationWatcher

// NewWatcher calls f().
func (f ObserverFunc) NewWatcher() MutationWatcher {
	return f()
}

// NullWatcher is a MutationWatcher which never reports anything. It is
// useful for hosts without mutation support.
type NullWatcher struct{}

// Observe does nothing.
func (NullWatcher) Observe(el Element, callback MutationCallback) error {
	tracer().Debugf("null watcher will not report mutations for %v", el)
	return nil
}

// Disconnect does nothing.
func (NullWatcher) Disconnect() {}

var _ MutationWatcher = NullWatcher{}
