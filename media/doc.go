/*
Package media manages responsive conditions, usually breakpoints.

Overview

A Condition is a named predicate with a priority. Conditions are kept in a
Registry. A Resolver computes the set of conditions which are currently
true, ordered by descending priority, and caches this set until it is
invalidated, usually after the viewport has been resized.

A correctly configured registry always contains at least one condition
which is true, e.g. the smallest breakpoint 'xs' of DefaultBreakpoints.
Resolving to an empty set is a configuration error.

Status

The set of conditions is meant to be static for the lifetime of a process.
Conditions registered after the first resolution become visible with the
next invalidation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package media

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sheets.media'.
func tracer() tracing.Trace {
	return tracing.Select("sheets.media")
}
