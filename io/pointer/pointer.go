// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer implements pointer events.

Pointer events are delivered in both client coordinates
(relative to the document) and screen coordinates. A press
is followed by zero or more moves and a release; surfaces
additionally receive Enter and Leave as the pointer crosses
their bounds.
*/
package pointer

import (
	"strings"

	"gioui.org/dnd/f32"
	"gioui.org/dnd/io/event"
)

// Event is a pointer event.
type Event struct {
	Kind   Kind
	Source Source
	// Buttons are the set of pressed mouse buttons for this event.
	Buttons Buttons
	// Position is the coordinates of the event relative to the
	// document's content box.
	Position f32.Point
	// Screen is the coordinates of the event relative to the
	// screen.
	Screen f32.Point
}

// Filter matches every Event whose kind is included in Kinds.
type Filter struct {
	// Kinds is a bitwise-or of event types to match.
	Kinds Kind
}

// Kind of an Event.
type Kind uint

// Source of an Event.
type Source uint8

// Buttons is a set of mouse buttons
type Buttons uint8

const (
	// A Cancel event is generated when the current gesture is
	// interrupted by other handlers or the system.
	Cancel Kind = 1 << iota
	// Press of a pointer.
	Press
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
	// Pointer enters an area watching for pointer input
	Enter
	// Pointer leaves an area watching for pointer input
	Leave
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

func (t Kind) String() string {
	if t == Cancel {
		return "Cancel"
	}
	var buf strings.Builder
	for tt := Kind(1); tt > 0 && tt <= Leave; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Cancel:
		return "Cancel"
	case Move:
		return "Move"
	case Enter:
		return "Enter"
	case Leave:
		return "Leave"
	default:
		panic("unknown Type")
	}
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		panic("unknown source")
	}
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}

// Matches implements event.Filter.
func (f Filter) Matches(e event.Event) bool {
	pe, ok := e.(Event)
	return ok && pe.Kind&f.Kinds != 0
}

func (Event) ImplementsEvent() {}

func (Filter) ImplementsFilter() {}
