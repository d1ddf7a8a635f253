// SPDX-License-Identifier: Unlicense OR MIT

package dnd

import (
	"gioui.org/dnd/f32"
	"gioui.org/dnd/io/event"
	"gioui.org/dnd/io/pointer"
	"gioui.org/dnd/io/transfer"
)

// Target is a surface attached as a drop target.
//
// In pointer mode a target reacts only while a drag is in progress:
// entering arms it, leaving disarms it and a release over an armed
// target is a drop. In native mode the platform decides; the target
// accepts every DragOver and marks the context dropped on Drop.
type Target[T any] struct {
	ctx         *Context[T]
	surface     Surface
	mode        Mode
	allowBubble bool
	attached    bool
	events      emitter[DropEvent[T]]
	cancels     []func()
}

// DropOptions configure a target.
type DropOptions struct {
	Mode Mode
	// AllowBubble leaves the other armed targets armed after a
	// pointer drop, so overlapping targets may all receive it.
	AllowBubble bool
}

// DropEvent describes a target lifecycle event.
type DropEvent[T any] struct {
	// Position is the pointer position in client coordinates.
	Position f32.Point
	// Item is the payload of the active source at the time of the
	// event. HasItem is false if no source is active.
	Item    T
	HasItem bool
	// Native marks a DragLeave caused by a native drag gesture.
	Native bool
}

// DropListener receives target lifecycle events along with the raw
// event that caused them.
type DropListener[T any] func(raw event.Event, e DropEvent[T])

// Droppable attaches a target to s. If s cannot support the
// requested mode the error is logged and the returned target is
// never wired.
func (c *Context[T]) Droppable(s Surface, opts DropOptions) *Target[T] {
	t := &Target[T]{
		ctx:         c,
		surface:     s,
		mode:        opts.Mode,
		allowBubble: opts.AllowBubble,
		events:      emitter[DropEvent[T]]{catalog: targetKinds},
	}
	switch opts.Mode {
	case Native:
		if _, ok := s.(NativeSurface); !ok {
			c.unsupported("Droppable", Native, ErrUnsupported)
			return t
		}
		kinds := transfer.DragOver | transfer.DragEnter | transfer.DragLeave | transfer.Drop
		t.cancels = append(t.cancels, s.Listen(transfer.Filter{Kinds: kinds}, t.handleNative))
	default:
		t.mode = Pointer
		if s == nil {
			c.unsupported("Droppable", Pointer, ErrUnsupported)
			return t
		}
		kinds := pointer.Release | pointer.Move | pointer.Enter | pointer.Leave
		t.cancels = append(t.cancels, s.Listen(pointer.Filter{Kinds: kinds}, t.handlePointer))
	}
	t.attached = true
	return t
}

// AddListener subscribes l to the target kinds included in kinds:
// DragEnter, DragOver, DragLeave and Drop.
func (t *Target[T]) AddListener(kinds Kind, l DropListener[T]) Subscription {
	id, ok := t.events.add(kinds, l)
	if !ok {
		t.ctx.logger.Warn().Stringer("kinds", kinds).Msg("ignoring listener for non-target kinds")
	}
	return id
}

func (t *Target[T]) RemoveListener(s Subscription) {
	t.events.remove(s)
}

func (t *Target[T]) Mode() Mode {
	return t.mode
}

// Attached reports whether the target is wired to its surface.
func (t *Target[T]) Attached() bool {
	return t.attached
}

// Dispose detaches the target from its surface, disarms it and
// removes every listener.
func (t *Target[T]) Dispose() {
	for _, cancel := range t.cancels {
		cancel()
	}
	t.cancels = nil
	t.events.clear()
	t.attached = false
	t.ctx.deactivateDrop(t)
}

func (t *Target[T]) handlePointer(e event.Event) {
	pe := e.(pointer.Event)
	c := t.ctx
	if !c.Dragging() {
		return
	}
	switch pe.Kind {
	case pointer.Enter:
		c.activateDrop(t)
		t.emit(DragEnter, pe, pe.Position, false)
	case pointer.Leave:
		c.deactivateDrop(t)
		t.emit(DragLeave, pe, pe.Position, false)
	case pointer.Move:
		t.emit(DragOver, pe, pe.Position, false)
	case pointer.Release:
		if !c.Armed(t) {
			return
		}
		if !t.allowBubble {
			c.clearDrops()
		}
		t.emit(Drop, pe, pe.Position, false)
	}
}

func (t *Target[T]) handleNative(e event.Event) {
	te := e.(transfer.Event)
	switch te.Kind {
	case transfer.DragOver:
		// Without it the platform never delivers Drop.
		te.PreventDefault()
		t.emit(DragOver, te, te.Position, false)
	case transfer.DragEnter:
		t.emit(DragEnter, te, te.Position, false)
	case transfer.DragLeave:
		t.emit(DragLeave, te, te.Position, true)
	case transfer.Drop:
		t.ctx.setDropped()
		t.emit(Drop, te, te.Position, false)
	}
}

func (t *Target[T]) emit(k Kind, raw event.Event, pos f32.Point, native bool) {
	item, ok := t.ctx.Item()
	t.events.emit(k, raw, DropEvent[T]{
		Position: pos,
		Item:     item,
		HasItem:  ok,
		Native:   native,
	})
}
