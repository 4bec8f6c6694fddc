/*
Package sheet defines sheets, the declarative specifications of the styling
engine, and a store for named sheets.

Overview

A sheet comes in one of two shapes. A flat sheet is a Layout,

    selector -> field -> payload

and a partitioned sheet holds one Layout per responsive condition,

    condition -> selector -> field -> payload

Layouts are ordered: selectors and fields are kept in the order they have
been declared, because the engine dispatches field actions in exactly this
order (last applied wins).

The shape of a sheet is declared explicitly when it is constructed with
NewFlat or NewPartitioned. Untyped sheet documents (YAML, see ParseYAML) are
probed for their depth, descending into the first key of every level:
depth 2 is a flat sheet, depth 3 a partitioned one, anything else is
malformed. Partitioned documents whose partitions are not all of depth 2
are rejected as well.

Sheets are immutable once constructed. The engine keeps references to the
sheets applied to an element, therefore re-defining a sheet name in a Store
affects only elements the name is applied to afterwards.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sheet

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sheets.sheet'.
func tracer() tracing.Trace {
	return tracing.Select("sheets.sheet")
}
