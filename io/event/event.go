// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// Filter describes a set of events. Each input package
// provides its own Filter matching its Event kinds.
type Filter interface {
	ImplementsFilter()
	// Matches reports whether e is described by the filter.
	Matches(e Event) bool
}

// Handler receives events synchronously on the dispatching
// goroutine.
type Handler func(e Event)

// Listenable is implemented by anything that delivers events to
// handlers, such as a surface or its enclosing window.
type Listenable interface {
	// Listen registers h for events matching f. The returned function
	// removes the registration; calling it more than once is a no-op.
	Listen(f Filter, h Handler) (cancel func())
}
