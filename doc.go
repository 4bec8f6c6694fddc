/*
Package sheets handles presentation logic like CSS, but with Go callbacks.

Overview

Clients register named sheets—mappings from CSS selectors to field actions,
optionally partitioned by responsive condition—and attach a sheet to a DOM
subtree. The engine (package engine) keeps the subtree's presentation in sync
with the currently active breakpoint and with mutations of the subtree,
without the client re-invoking anything.

A flat sheet maps

    selector -> field -> payload

A partitioned sheet adds one level of responsive conditions on top:

    condition -> selector -> field -> payload

Responsive conditions (package media) are named, prioritized predicates,
usually breakpoints over the viewport width. The engine selects, for every
partitioned sheet, the layout of the highest-priority condition which is
currently true and present in the sheet.

Errors

This package defines the error taxonomy shared by all sub-packages. Every
configuration error satisfies errors.Is(err, ErrConfiguration). Configuration
errors indicate a programming mistake by the integrator and are always
returned synchronously at the point of detection.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sheets
