package engine

import (
	"fmt"

	"github.com/npillmayer/sheets"
	"github.com/npillmayer/sheets/dom"
	"github.com/npillmayer/sheets/media"
	"github.com/npillmayer/sheets/sheet"
)

// pass is a single application of all sheets of a binding.
// Conditions are resolved on first use only.
type pass struct {
	resolver *media.Resolver
	resolved []media.Condition
	done     bool
}

func (p *pass) conditions() ([]media.Condition, error) {
	if !p.done {
		conds, err := p.resolver.Resolve()
		if err != nil {
			return nil, err
		}
		p.resolved, p.done = conds, true
	}
	return p.resolved, nil
}

// activeLayout selects the layout of spec to apply. The second result is
// false if a partitioned sheet has no partition for any resolved condition.
func (p *pass) activeLayout(spec *sheet.Spec) (sheet.Layout, bool, error) {
	switch spec.Depth() {
	case 2:
		return spec.Layout(), true, nil
	case 3:
		conds, err := p.conditions()
		if err != nil {
			return nil, false, err
		}
		for _, c := range conds {
			if layout, ok := spec.Partition(c.Name); ok {
				return layout, true, nil
			}
		}
		return nil, false, nil
	}
	return nil, false, sheets.Malformed(spec.Depth(), "cannot apply sheet")
}

// update performs a pass for a binding.
func (e *Engine) update(b *binding) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	p := &pass{resolver: e.resolver}
	for _, a := range b.sheets {
		layout, ok, err := p.activeLayout(a.spec)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", a.name, err)
		}
		if !ok {
			tracer().Debugf("sheet %q has no active partition", a.name)
			continue
		}
		if err := e.dispatch(b.element, layout); err != nil {
			return fmt.Errorf("sheet %q: %w", a.name, err)
		}
	}
	return nil
}

// dispatch applies a layout to the subtree of el. Every field of the layout
// must have an action registered, otherwise nothing is dispatched.
func (e *Engine) dispatch(el dom.Element, layout sheet.Layout) error {
	for _, rule := range layout {
		for _, f := range rule.Fields {
			if !e.fields.Has(f.Name) {
				return fmt.Errorf("%w: %q (selector %q)", sheets.ErrUnknownField, f.Name, rule.Selector)
			}
		}
	}
	for _, rule := range layout {
		targets, err := el.QuerySelectorAll(rule.Selector)
		if err != nil {
			return fmt.Errorf("%w: selector %q: %w", sheets.ErrConfiguration, rule.Selector, err)
		}
		tracer().Debugf("selector %q matches %d elements", rule.Selector, len(targets))
		for _, f := range rule.Fields {
			for _, target := range targets {
				if err := e.fields.Dispatch(f.Name, target, f.Payload); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
