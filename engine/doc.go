/*
Package engine attaches sheets to DOM subtrees and keeps them applied.

Overview

An Engine ties together the responsive conditions (package media), the
named sheets (package sheet) and the field actions (package field). Clients
apply a named sheet to an element; the engine then

  - selects, for every sheet applied to the element, the active layout:
    a flat sheet is always active, a partitioned sheet contributes the
    layout of the highest-priority condition which is currently true
    and present in the sheet (or nothing at all),
  - queries the element's subtree for every selector of the layout and
    dispatches every field's payload to the field action, for every
    matching element. Dispatch order is selectors, then fields, then
    elements, each in declaration or document order, so that
    conflicting actions resolve deterministically (last applied wins).

The same pass is re-run whenever the viewport is resized (for every bound
element) and whenever the subtree of a bound element is mutated (for this
element only, and always for the whole subtree).

Errors

Configuration errors (undefined sheets, unknown fields, malformed sheets,
conditions resolving to nothing) are returned synchronously by the API.
Errors occuring in passes triggered by the host are reported to the error
handler of the engine (see WithErrorHandler).

Concurrency

An Engine is safe for concurrent use. Every bound element carries its own
lock around the resolve-then-dispatch sequence of a pass, thus passes for
the same element never interleave, while passes for distinct elements may
run in parallel. Invalidating the resolver's cache happens-before every
subsequent pass. Field actions are called with the element's lock held and
must not apply or clear sheets of the same element.

Removing sheets from an element never reverts the effects of field actions
already performed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sheets.engine'.
func tracer() tracing.Trace {
	return tracing.Select("sheets.engine")
}
