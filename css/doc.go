/*
Package css provides CSS dimensions for responsive conditions.

Breakpoints compare the width of a viewport against a threshold. Thresholds
are option types (DimenT), which are either a fixed dimension or "auto",
the latter being reached by any viewport.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css
