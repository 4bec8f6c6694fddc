package media

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sheets"
	"github.com/npillmayer/sheets/css"
	"github.com/npillmayer/tyse/core/dimen"
)

type viewport struct {
	width dimen.DU
}

func (vp *viewport) Width() dimen.DU { return vp.width }

func (vp *viewport) resize(px int) { vp.width = dimen.DU(px) * css.PX }

func always() bool { return true }
func never() bool  { return false }

func names(conds []Condition) []string {
	r := make([]string, len(conds))
	for i, c := range conds {
		r[i] = c.Name
	}
	return r
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRegistryLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.media")
	defer teardown()
	//
	r := NewRegistry()
	r.Register("xs", always, 0)
	c, err := r.Lookup("xs")
	if err != nil || c.Name != "xs" {
		t.Errorf("expected to find condition xs, got %v, %v", c, err)
	}
	_, err = r.Lookup("xl")
	if !errors.Is(err, sheets.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown condition, got %v", err)
	}
	if !errors.Is(err, sheets.ErrConfiguration) {
		t.Errorf("expected ErrNotFound to be a configuration error")
	}
}

func TestRegistryOverwriteKeepsPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.media")
	defer teardown()
	//
	r := NewRegistry()
	r.Register("a", always, 1)
	r.Register("b", always, 1)
	r.Register("a", never, 5)
	conds := r.Conditions()
	if !equal(names(conds), []string{"a", "b"}) {
		t.Fatalf("expected registration order [a b], is %v", names(conds))
	}
	if conds[0].Priority != 5 || conds[0].Predicate() {
		t.Errorf("expected a to be overwritten, is %v", conds[0])
	}
}

func TestQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.media")
	defer teardown()
	//
	r := NewRegistry()
	vp := &viewport{}
	vp.resize(800)
	RegisterBreakpoints(r, vp, DefaultBreakpoints()...)
	for name, expected := range map[string]bool{"xs": true, "sm": true, "md": false, "lg": false} {
		if ok, err := r.Query(name); err != nil || ok != expected {
			t.Errorf("expected %s to be %v at 800px, is %v (%v)", name, expected, ok, err)
		}
	}
	if _, err := r.Query("xxl"); !errors.Is(err, sheets.ErrNotFound) {
		t.Errorf("expected ErrNotFound for query of unknown condition, got %v", err)
	}
}

func TestResolveOrdersByPriority(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.media")
	defer teardown()
	//
	r := NewRegistry()
	r.Register("low", always, 0)
	r.Register("first", always, 2)
	r.Register("off", never, 9)
	r.Register("second", always, 2)
	res := NewResolver(r)
	conds, err := res.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if !equal(names(conds), []string{"first", "second", "low"}) {
		t.Errorf("expected [first second low], is %v", names(conds))
	}
}

func TestResolveIsCachedUntilInvalidated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.media")
	defer teardown()
	//
	r := NewRegistry()
	vp := &viewport{}
	vp.resize(1300)
	RegisterBreakpoints(r, vp, DefaultBreakpoints()...)
	res := NewResolver(r)
	c1, err := res.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	vp.resize(500)
	c2, _ := res.Resolve()
	if &c1[0] != &c2[0] || len(c1) != len(c2) {
		t.Errorf("expected identical cached result between invalidations")
	}
	if !equal(names(c2), []string{"lg", "md", "sm", "xs"}) {
		t.Errorf("expected stale cache [lg md sm xs], is %v", names(c2))
	}
	res.Invalidate()
	c3, _ := res.Resolve()
	if !equal(names(c3), []string{"xs"}) {
		t.Errorf("expected [xs] after invalidation at 500px, is %v", names(c3))
	}
}

func TestResolveNeverEmptyWithAlwaysTrue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.media")
	defer teardown()
	//
	r := NewRegistry()
	vp := &viewport{}
	RegisterBreakpoints(r, vp, DefaultBreakpoints()...)
	res := NewResolver(r)
	for _, px := range []int{0, 320, 767, 768, 991, 992, 1199, 1200, 4000} {
		vp.resize(px)
		res.Invalidate()
		conds, err := res.Resolve()
		if err != nil || len(conds) == 0 {
			t.Errorf("expected non-empty resolution at %dpx, got %v, %v", px, names(conds), err)
		}
	}
}

func TestResolveEmptyIsConfigurationError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.media")
	defer teardown()
	//
	r := NewRegistry()
	r.Register("off", never, 1)
	_, err := NewResolver(r).Resolve()
	if !errors.Is(err, sheets.ErrNoConditionMatched) || !errors.Is(err, sheets.ErrConfiguration) {
		t.Errorf("expected ErrNoConditionMatched, got %v", err)
	}
}

func TestParseBreakpoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.media")
	defer teardown()
	//
	conf := []byte(`
[[breakpoint]]
name = "phone"
min-width = 0
priority = 0

[[breakpoint]]
name = "desktop"
min-width = 1024
priority = 1
`)
	bps, err := ParseBreakpoints(conf)
	if err != nil {
		t.Fatal(err)
	}
	if len(bps) != 2 || bps[0].Name != "phone" || bps[1].Name != "desktop" {
		t.Fatalf("unexpected breakpoints %v", bps)
	}
	if bps[0].MinWidth.Match().IsKind(css.Auto()) == nil {
		t.Errorf("expected min-width 0 to be read as auto, is %#v", bps[0].MinWidth)
	}
	vp := &viewport{}
	vp.resize(1023)
	if bps[1].Predicate(vp)() {
		t.Error("expected desktop not to hold at 1023px")
	}
	vp.resize(1024)
	if !bps[1].Predicate(vp)() {
		t.Error("expected desktop to hold at 1024px")
	}
}

func TestParseBreakpointsRejectsDuplicates(t *testing.T) {
	conf := []byte(`
[[breakpoint]]
name = "xs"

[[breakpoint]]
name = "xs"
min-width = 10
`)
	if _, err := ParseBreakpoints(conf); err == nil {
		t.Error("expected duplicate breakpoint names to be rejected")
	}
}
