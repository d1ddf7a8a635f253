// SPDX-License-Identifier: Unlicense OR MIT

/*
Package router implements a host for event-driven surfaces.

A Router owns a Window, a document content box and a stack of
Surfaces in paint order. Events passed to Queue are hit tested
against the surfaces and delivered to them and to the window the
way a browser delivers DOM events: surfaces under the pointer
first, topmost first, then the window. The router synthesizes
pointer Enter and Leave events as well as the native drag protocol
described in package transfer.

Surfaces may also be driven directly with Dispatch, which skips
hit testing.

A Router must only be used from a single goroutine.
*/
package router

import (
	"golang.org/x/exp/slices"

	"gioui.org/dnd/f32"
	"gioui.org/dnd/io/event"
	"gioui.org/dnd/io/pointer"
	"gioui.org/dnd/io/transfer"
)

// Router routes queued events to surfaces and the window. The
// zero value is an empty router with an empty document.
type Router struct {
	window   Window
	surfaces []*Surface
	doc      f32.Rectangle
	origin   f32.Point
	pointer  pointerQueue
	drag     dragQueue
}

// Window is the listenable enclosing every surface of a router.
// It receives every queued pointer event, including those outside
// all surfaces.
type Window struct {
	listeners listeners
}

// Surface is a rectangular area of a router receiving events.
type Surface struct {
	r         *Router
	bounds    f32.Rectangle
	draggable bool
	removed   bool
	listeners listeners
}

type listeners struct {
	entries []*listener
}

type listener struct {
	filter  event.Filter
	handler event.Handler
	removed bool
}

// SetDocument sets the size of the document content box. Client
// coordinates are relative to its top left corner.
func (r *Router) SetDocument(size f32.Point) {
	r.doc = f32.Rectangle{Max: size}
}

// SetOrigin sets the screen position of the document's top left
// corner. Queued events have their Screen field derived from it.
func (r *Router) SetOrigin(p f32.Point) {
	r.origin = p
}

// Window returns the router's window.
func (r *Router) Window() *Window {
	return &r.window
}

// NewSurface adds a surface covering bounds on top of every
// existing surface.
func (r *Router) NewSurface(bounds f32.Rectangle) *Surface {
	s := &Surface{r: r, bounds: bounds.Canon()}
	r.surfaces = append(r.surfaces, s)
	return s
}

// Queue delivers events in order. Pointer events and native drag
// events are routed by position; the Screen field of every queued
// event is replaced by its Position offset by the router's origin.
// Enter, Leave, DragEnter, DragOver, DragLeave and Drop are
// synthesized by the router and ignored when queued.
func (r *Router) Queue(events ...event.Event) {
	for _, e := range events {
		switch e := e.(type) {
		case pointer.Event:
			e.Screen = e.Position.Add(r.origin)
			r.pushPointer(e)
		case transfer.Event:
			e.Screen = e.Position.Add(r.origin)
			r.pushTransfer(e)
		}
	}
}

// hits returns the surfaces containing p, topmost first.
func (r *Router) hits(p f32.Point) []*Surface {
	var hits []*Surface
	for i := len(r.surfaces) - 1; i >= 0; i-- {
		s := r.surfaces[i]
		if !s.removed && p.In(s.bounds) {
			hits = append(hits, s)
		}
	}
	return hits
}

// Listen implements event.Listenable.
func (w *Window) Listen(f event.Filter, h event.Handler) func() {
	return w.listeners.add(f, h)
}

// Dispatch delivers e to the window's listeners.
func (w *Window) Dispatch(e event.Event) {
	w.listeners.dispatch(e)
}

// Listeners returns the number of registered listeners.
func (w *Window) Listeners() int {
	return len(w.listeners.entries)
}

// Listen implements event.Listenable.
func (s *Surface) Listen(f event.Filter, h event.Handler) func() {
	return s.listeners.add(f, h)
}

// Window returns the listenable enclosing s, or nil if s has been
// removed from its router.
func (s *Surface) Window() event.Listenable {
	if s.r == nil || s.removed {
		return nil
	}
	return &s.r.window
}

// ContentBox returns the document content box in client
// coordinates.
func (s *Surface) ContentBox() f32.Rectangle {
	return s.r.doc
}

// SetDraggable marks s as a source of native drag gestures.
func (s *Surface) SetDraggable(draggable bool) {
	s.draggable = draggable
}

// Draggable reports whether s is a source of native drag gestures.
func (s *Surface) Draggable() bool {
	return s.draggable
}

// Bounds returns the area covered by s.
func (s *Surface) Bounds() f32.Rectangle {
	return s.bounds
}

// SetBounds moves s to cover bounds.
func (s *Surface) SetBounds(bounds f32.Rectangle) {
	s.bounds = bounds.Canon()
}

// Remove detaches s from its router. It no longer receives routed
// events and reports no window.
func (s *Surface) Remove() {
	if s.removed {
		return
	}
	s.removed = true
	s.r.surfaces = slices.DeleteFunc(s.r.surfaces, func(o *Surface) bool { return o == s })
}

// Dispatch delivers e to the listeners of s, bypassing hit testing.
// It returns false if e is a transfer.Event whose default was
// prevented by a listener.
func (s *Surface) Dispatch(e event.Event) bool {
	if te, ok := e.(transfer.Event); ok {
		te = te.Cancelable()
		s.listeners.dispatch(te)
		return !te.DefaultPrevented()
	}
	s.listeners.dispatch(e)
	return true
}

// Listeners returns the number of registered listeners.
func (s *Surface) Listeners() int {
	return len(s.listeners.entries)
}

func (l *listeners) add(f event.Filter, h event.Handler) func() {
	ln := &listener{filter: f, handler: h}
	l.entries = append(l.entries, ln)
	return func() {
		if ln.removed {
			return
		}
		ln.removed = true
		l.entries = slices.DeleteFunc(l.entries, func(e *listener) bool { return e == ln })
	}
}

// dispatch delivers e to the listeners registered when dispatch
// began. Listeners removed by an earlier handler are skipped.
func (l *listeners) dispatch(e event.Event) {
	for _, ln := range slices.Clone(l.entries) {
		if ln.removed || !ln.filter.Matches(e) {
			continue
		}
		ln.handler(e)
	}
}
