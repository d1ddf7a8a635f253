// SPDX-License-Identifier: Unlicense OR MIT

package dnd

import (
	"testing"

	"gioui.org/dnd/f32"
)

func TestContextBookkeeping(t *testing.T) {
	ctx := newContext(t)
	r := newRouter()
	if _, ok := ctx.Item(); ok {
		t.Error("empty context reported an item")
	}
	a := ctx.Draggable(r.NewSurface(f32.Rect(0, 0, 10, 10)), DragOptions[string]{Item: "a"})
	t1 := ctx.Droppable(r.NewSurface(f32.Rect(20, 0, 30, 10)), DropOptions{})
	t2 := ctx.Droppable(r.NewSurface(f32.Rect(20, 0, 30, 10)), DropOptions{})

	ctx.reset(a.state())
	if !ctx.IsActive(a) {
		t.Fatal("reset did not activate the source")
	}
	if item, ok := ctx.Item(); !ok || item != "a" {
		t.Errorf("Item() = %q, %v; want a, true", item, ok)
	}

	ctx.activateDrop(t1)
	ctx.activateDrop(t1)
	ctx.activateDrop(t2)
	if n := ctx.ArmedTargets(); n != 2 {
		t.Errorf("%d armed targets; want 2", n)
	}
	ctx.deactivateDrop(t1)
	if ctx.Armed(t1) || !ctx.Armed(t2) {
		t.Error("deactivateDrop removed the wrong target")
	}

	ctx.setDragging(true)
	ctx.setDropped()
	b := ctx.Draggable(r.NewSurface(f32.Rect(0, 0, 10, 10)), DragOptions[string]{Item: "b"})
	ctx.reset(b.state())
	if ctx.IsActive(a) || !ctx.IsActive(b) {
		t.Error("reset kept the previous source active")
	}
	if ctx.ArmedTargets() != 0 || ctx.Dragging() {
		t.Error("reset left targets armed or the context dragging")
	}
	if !ctx.Dropped() {
		t.Error("reset must leave the dropped flag to the ending source")
	}
	ctx.resetDropped()
	if ctx.Dropped() {
		t.Error("resetDropped did not clear the flag")
	}
	if ctx.IsActive(nil) {
		t.Error("nil source reported active")
	}
}
