/*
Package htmldom implements the capabilities of package dom on top of
HTML parse trees of golang.org/x/net/html.

Selectors are compiled with github.com/andybalholm/cascadia and cached
per document. Mutations performed through this package's API are queued
and delivered to watchers in batches with Document.Flush, which plays the
role of one turn of a browser's event loop. Mutations which do not change
the document (e.g., setting an attribute to its current value) are not
recorded.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmldom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sheets.dom'.
func tracer() tracing.Trace {
	return tracing.Select("sheets.dom")
}
