// SPDX-License-Identifier: Unlicense OR MIT

// Package transfer contains events for platform drag and drop gestures.
//
// The native drag protocol is as follows:
//
//   - The source surface receives DragStart when the platform begins a drag
//     gesture on it, a Drag for every motion sample and DragEnd when the
//     gesture completes, whether or not anything accepted the drop.
//   - Surfaces under the dragged pointer receive DragEnter, DragOver and
//     DragLeave. A surface accepts drops by calling PreventDefault on
//     DragOver; only accepting surfaces receive Drop.
//
// Drop is delivered before the source's DragEnd.
package transfer

import (
	"strings"

	"gioui.org/dnd/f32"
	"gioui.org/dnd/io/event"
)

// Event is a native drag event.
type Event struct {
	Kind Kind
	// Position is the coordinates of the event relative to the
	// document's content box. It may lie outside the box when the
	// gesture leaves the window.
	Position f32.Point
	// Screen is the coordinates of the event relative to the screen.
	// Some platforms report a trailing Drag with zero coordinates.
	Screen f32.Point

	state *eventState
}

type eventState struct {
	prevented bool
}

// Filter matches every Event whose kind is included in Kinds.
type Filter struct {
	Kinds Kind
}

// Kind of an Event.
type Kind uint

const (
	DragStart Kind = 1 << iota
	Drag
	DragEnd
	DragEnter
	DragOver
	DragLeave
	Drop
)

// Cancelable returns a copy of e whose PreventDefault calls can be
// observed through DefaultPrevented. Routers call it before
// dispatching an event to a surface.
func (e Event) Cancelable() Event {
	e.state = new(eventState)
	return e
}

// PreventDefault suppresses the platform's default handling of e.
// A surface must prevent the default of DragOver to be eligible for
// Drop. It has no effect on events not made Cancelable.
func (e Event) PreventDefault() {
	if e.state != nil {
		e.state.prevented = true
	}
}

// DefaultPrevented reports whether PreventDefault was called on e or
// any copy of it.
func (e Event) DefaultPrevented() bool {
	return e.state != nil && e.state.prevented
}

func (k Kind) String() string {
	var buf strings.Builder
	for kk := Kind(1); kk > 0 && kk <= Drop; kk <<= 1 {
		if k&kk > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((k & kk).string())
		}
	}
	return buf.String()
}

func (k Kind) string() string {
	switch k {
	case DragStart:
		return "DragStart"
	case Drag:
		return "Drag"
	case DragEnd:
		return "DragEnd"
	case DragEnter:
		return "DragEnter"
	case DragOver:
		return "DragOver"
	case DragLeave:
		return "DragLeave"
	case Drop:
		return "Drop"
	default:
		panic("unknown Kind")
	}
}

// Matches implements event.Filter.
func (f Filter) Matches(e event.Event) bool {
	te, ok := e.(Event)
	return ok && te.Kind&f.Kinds != 0
}

func (Event) ImplementsEvent() {}

func (Filter) ImplementsFilter() {}
