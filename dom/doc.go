/*
Package dom defines the narrow capabilities the styling engine needs from a
host document.

Overview

The engine never depends on a concrete DOM implementation. It asks an
Element for descendants matching a selector, asks an Observer for mutation
watchers, subscribes to a ResizeSignal and reads the width of a Viewport.
Package htmldom implements all of these on top of golang.org/x/net/html;
browser hosts (e.g., WASM) may provide their own.

Elements are used as map keys by the engine, therefore implementations must
be comparable, usually by being pointer types.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'sheets.dom'
func tracer() tracing.Trace {
	return tracing.Select("sheets.dom")
}
