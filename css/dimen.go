package css

import (
	"github.com/npillmayer/tyse/core/dimen"
)

// PX is the length of a CSS pixel, which is defined as 1/96 inch = 0.75pt.
var PX dimen.DU = dimen.PT * 3 / 4

const (
	dimenNone     uint32 = 0
	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	kindMask      uint32 = 0x000f
)

// DimenT is an option type for CSS dimensions as they occur in
// responsive conditions, e.g. the minimum viewport width of a breakpoint.
type DimenT struct {
	d     dimen.DU
	flags uint32
}

/*
type DimenT
	= Unset
	| Auto
	| JustDimen dimen
*/

// Auto creates a dimension without a fixed value. As a breakpoint threshold
// it matches any viewport.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Px creates a CSS dimension of n pixels.
func Px(n int) DimenT {
	return JustDimen(dimen.DU(n) * PX)
}

// IsUnset is true for the zero value of DimenT.
func (d DimenT) IsUnset() bool {
	return d.flags&kindMask == dimenNone
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	if (m.dimen.flags & kindMask) == (d.flags & kindMask) {
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&dimenAbsolute > 0 {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Unset   T
	Auto    T
	Just    T
	Default T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags&kindMask == dimenNone:
		return patterns.Unset
	case m.dimen.flags&dimenAuto > 0:
		return patterns.Auto
	case m.dimen.flags&dimenAbsolute > 0:
		return patterns.Just
	}
	return patterns.Default
}

// AtLeast reports wether a length x reaches the threshold d.
// Auto and unset thresholds are reached by any length.
func AtLeast(x dimen.DU, d DimenT) bool {
	var threshold dimen.DU
	switch m := d.Match(); m {
	case m.Just(&threshold):
		return x >= threshold
	}
	return true
}
