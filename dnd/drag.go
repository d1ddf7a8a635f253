// SPDX-License-Identifier: Unlicense OR MIT

package dnd

import (
	"fmt"

	"github.com/google/uuid"

	"gioui.org/dnd/f32"
	"gioui.org/dnd/io/event"
	"gioui.org/dnd/io/pointer"
	"gioui.org/dnd/io/transfer"
)

// Source is a surface attached as the origin of drags. It is
// implemented by PointerSource and NativeSource.
type Source[T any] interface {
	// AddListener subscribes l to the source kinds included in
	// kinds: DragStart, Drag and DragEnd.
	AddListener(kinds Kind, l DragListener) Subscription
	RemoveListener(s Subscription)
	// Item returns the payload attached at creation.
	Item() T
	Mode() Mode
	// Attached reports whether the source is wired to its surface.
	// It is false if the surface could not support the mode or the
	// source was disposed.
	Attached() bool
	// Dispose detaches the source from its surface and removes
	// every listener.
	Dispose()

	state() *dragState[T]
}

// DragOptions configure a source.
type DragOptions[T any] struct {
	Mode Mode
	// Item is the payload reported to targets while the source is
	// the active drag.
	Item T
}

// DragEvent describes the geometry of a drag. Points are in screen
// coordinates.
type DragEvent struct {
	// Source is where the drag began.
	Source f32.Point
	// Offset is the displacement from Source at the last sample.
	Offset f32.Point
	// Vector is the direction of motion at the last sample.
	Vector f32.Vector
	// Screen is the position of the triggering event.
	Screen f32.Point
	// DropOut is set on a native DragEnd released outside the
	// document without any target claiming the drop.
	DropOut bool
}

// DragListener receives source lifecycle events along with the raw
// event that caused them.
type DragListener func(raw event.Event, e DragEvent)

// PointerSource emulates drags from pointer press, move and
// release. A press arms the source, the first move starts the drag
// and a release or cancel ends it. A release without any move
// produces a DragEnd but no DragStart.
type PointerSource[T any] struct {
	dragState[T]
	started bool
	// untrack removes the window listeners installed by a press.
	untrack func()
}

// NativeSource drags with the platform's native drag gesture.
type NativeSource[T any] struct {
	dragState[T]
	native NativeSurface
	// untrack removes the Drag and DragEnd listeners installed by
	// DragStart.
	untrack func()
}

// dragState is the state shared by both source variants.
type dragState[T any] struct {
	ctx      *Context[T]
	surface  Surface
	mode     Mode
	item     T
	attached bool
	events   emitter[DragEvent]
	// cancels removes the surface listeners.
	cancels []func()
	// geom is nil outside of a drag.
	geom *geometry
}

type geometry struct {
	// session identifies the drag in logs.
	session  uuid.UUID
	source   f32.Point
	previous f32.Point
	offset   f32.Point
	vector   f32.Vector
}

// Draggable attaches a source to s. If s cannot support the
// requested mode the error is logged and the returned source is
// never wired.
func (c *Context[T]) Draggable(s Surface, opts DragOptions[T]) Source[T] {
	st := dragState[T]{
		ctx:     c,
		surface: s,
		mode:    opts.Mode,
		item:    opts.Item,
		events:  emitter[DragEvent]{catalog: sourceKinds},
	}
	switch opts.Mode {
	case Native:
		n := &NativeSource[T]{dragState: st}
		ns, ok := s.(NativeSurface)
		if !ok {
			c.unsupported("Draggable", opts.Mode, ErrUnsupported)
			return n
		}
		n.native = ns
		ns.SetDraggable(true)
		n.cancels = append(n.cancels, s.Listen(transfer.Filter{Kinds: transfer.DragStart}, n.start))
		n.attached = true
		return n
	default:
		p := &PointerSource[T]{dragState: st}
		p.mode = Pointer
		if s == nil || s.Window() == nil {
			c.unsupported("Draggable", Pointer, fmt.Errorf("%w: no enclosing window", ErrUnsupported))
			return p
		}
		p.cancels = append(p.cancels, s.Listen(pointer.Filter{Kinds: pointer.Press}, p.press))
		p.attached = true
		return p
	}
}

func (c *Context[T]) unsupported(op string, m Mode, err error) {
	c.logger.Error().Err(&SurfaceError{Op: op, Mode: m, Err: err}).Msg("cannot attach to surface")
}

func (d *dragState[T]) AddListener(kinds Kind, l DragListener) Subscription {
	id, ok := d.events.add(kinds, l)
	if !ok {
		d.ctx.logger.Warn().Stringer("kinds", kinds).Msg("ignoring listener for non-source kinds")
	}
	return id
}

func (d *dragState[T]) RemoveListener(s Subscription) {
	d.events.remove(s)
}

func (d *dragState[T]) Item() T {
	return d.item
}

func (d *dragState[T]) Mode() Mode {
	return d.mode
}

func (d *dragState[T]) Attached() bool {
	return d.attached
}

func (d *dragState[T]) state() *dragState[T] {
	return d
}

// begin starts a drag at screen.
func (d *dragState[T]) begin(screen f32.Point) {
	d.ctx.reset(d)
	d.geom = &geometry{session: uuid.New(), source: screen, previous: screen}
	d.ctx.logger.Debug().Stringer("session", d.geom.session).Stringer("mode", d.mode).Stringer("source", screen).Msg("drag armed")
}

// sample records a motion sample at screen.
func (d *dragState[T]) sample(screen f32.Point) {
	g := d.geom
	g.vector = f32.VectorOf(screen, g.previous)
	g.previous = screen
	g.offset = f32.Offset(screen, g.source)
}

func (d *dragState[T]) snapshot(screen f32.Point) DragEvent {
	g := d.geom
	return DragEvent{
		Source: g.source,
		Offset: g.offset,
		Vector: g.vector,
		Screen: screen,
	}
}

// finish ends the drag.
func (d *dragState[T]) finish() {
	if d.ctx.isActiveDrag(d) {
		d.ctx.setDragging(false)
	}
	if d.geom == nil {
		// Disposed by a DragEnd listener.
		return
	}
	d.ctx.logger.Debug().Stringer("session", d.geom.session).Stringer("mode", d.mode).Msg("drag ended")
	d.geom = nil
}

// detach removes the surface listeners and subscribers, releasing
// the context if d is the active source.
func (d *dragState[T]) detach() {
	for _, cancel := range d.cancels {
		cancel()
	}
	d.cancels = nil
	d.events.clear()
	d.attached = false
	if d.ctx.isActiveDrag(d) {
		d.ctx.setDragging(false)
		d.ctx.clearDrags()
		d.ctx.clearDrops()
	}
	d.geom = nil
}

func (p *PointerSource[T]) press(e event.Event) {
	pe := e.(pointer.Event)
	win := p.surface.Window()
	if win == nil {
		p.ctx.unsupported("press", Pointer, fmt.Errorf("%w: no enclosing window", ErrUnsupported))
		return
	}
	p.stopTracking()
	p.started = false
	p.begin(pe.Screen)
	p.ctx.logger.Trace().Stringer("pointer", pe.Source).Stringer("buttons", pe.Buttons).Msg("press")
	p.untrack = win.Listen(pointer.Filter{Kinds: pointer.Move | pointer.Release | pointer.Cancel}, p.track)
}

func (p *PointerSource[T]) track(e event.Event) {
	pe := e.(pointer.Event)
	switch pe.Kind {
	case pointer.Move:
		p.move(pe)
	case pointer.Release:
		p.release(pe)
	case pointer.Cancel:
		p.cancel(pe)
	}
}

func (p *PointerSource[T]) move(e pointer.Event) {
	if p.geom == nil || !p.ctx.isActiveDrag(&p.dragState) {
		return
	}
	if !p.started {
		p.events.emit(DragStart, e, p.snapshot(e.Screen))
		p.ctx.setDragging(true)
		p.started = true
	}
	p.sample(e.Screen)
	p.events.emit(Drag, e, p.snapshot(e.Screen))
}

func (p *PointerSource[T]) release(e pointer.Event) {
	if p.geom == nil {
		return
	}
	p.events.emit(DragEnd, e, p.snapshot(e.Screen))
	p.stopTracking()
	p.started = false
	p.finish()
}

// cancel ends an interrupted drag like a release at the last
// sampled position. Armed targets are disarmed since no drop can
// follow.
func (p *PointerSource[T]) cancel(e pointer.Event) {
	if p.geom == nil {
		return
	}
	if p.ctx.isActiveDrag(&p.dragState) {
		p.ctx.clearDrops()
	}
	p.events.emit(DragEnd, e, p.snapshot(p.geom.previous))
	p.stopTracking()
	p.started = false
	p.finish()
}

func (p *PointerSource[T]) stopTracking() {
	if p.untrack != nil {
		p.untrack()
		p.untrack = nil
	}
}

// Dispose implements Source. Window listeners of a drag in progress
// are removed as well.
func (p *PointerSource[T]) Dispose() {
	p.stopTracking()
	p.started = false
	p.detach()
}

func (n *NativeSource[T]) start(e event.Event) {
	te := e.(transfer.Event)
	n.stopTracking()
	n.begin(te.Screen)
	n.events.emit(DragStart, te, n.snapshot(te.Screen))
	if !n.attached {
		// Disposed by a DragStart listener.
		return
	}
	n.ctx.setDragging(true)
	n.untrack = n.native.Listen(transfer.Filter{Kinds: transfer.Drag | transfer.DragEnd}, n.track)
}

func (n *NativeSource[T]) track(e event.Event) {
	te := e.(transfer.Event)
	if n.geom == nil {
		return
	}
	switch te.Kind {
	case transfer.Drag:
		n.sample(te.Screen)
		// Some platforms end a gesture with a Drag at the screen
		// origin.
		if te.Screen == (f32.Point{}) {
			return
		}
		n.events.emit(Drag, te, n.snapshot(te.Screen))
	case transfer.DragEnd:
		n.sample(te.Screen)
		ev := n.snapshot(te.Screen)
		ev.DropOut = !n.ctx.dropped && outside(te.Position, n.native.ContentBox())
		n.events.emit(DragEnd, te, ev)
		n.stopTracking()
		n.ctx.resetDropped()
		n.finish()
	}
}

func (n *NativeSource[T]) stopTracking() {
	if n.untrack != nil {
		n.untrack()
		n.untrack = nil
	}
}

// Dispose implements Source.
func (n *NativeSource[T]) Dispose() {
	n.stopTracking()
	if n.native != nil && n.attached {
		n.native.SetDraggable(false)
	}
	n.detach()
}

// outside reports whether the client position p lies beyond the
// edges of box. Points on the edges are inside; nothing is inside an
// empty box.
func outside(p f32.Point, box f32.Rectangle) bool {
	if box.Empty() {
		return true
	}
	return p.X < box.Min.X || p.Y < box.Min.Y || p.X > box.Max.X || p.Y > box.Max.Y
}
