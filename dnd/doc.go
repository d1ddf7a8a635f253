// SPDX-License-Identifier: Unlicense OR MIT

/*
Package dnd coordinates drag and drop between surfaces.

A Context is the shared state of every drag source and drop target
created from it: whether a drag is in progress, which source is
active, which targets are armed and whether the last native gesture
ended in a drop. Sources and targets translate raw surface events
into a small catalog of lifecycle events:

	DragStart, Drag, DragEnd             sources
	DragEnter, DragOver, DragLeave, Drop targets

Two input mechanisms are supported. Pointer mode emulates dragging
from press, move and release events; the source tracks motion on
the surface's enclosing window so the drag follows the pointer
outside the source. Native mode relies on the platform's drag
gesture events as described in package transfer.

Geometry reported by sources uses screen coordinates: the Source
point where the drag began, the cumulative Offset from it and the
per-axis direction Vector since the previous sample. Targets report
positions in client coordinates.

At most one drag is active per Context. Starting a drag evicts the
active source and disarms every target.

A Context and everything attached to it must be used from the
goroutine that dispatches surface events.
*/
package dnd
