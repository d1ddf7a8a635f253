// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"golang.org/x/exp/slices"

	"gioui.org/dnd/io/pointer"
)

type pointerQueue struct {
	pressed bool
	// entered tracks the surfaces that contain the pointer.
	entered []*Surface
}

func (r *Router) pushPointer(e pointer.Event) {
	q := &r.pointer
	switch e.Kind {
	case pointer.Press:
		q.pressed = true
	case pointer.Move, pointer.Release:
	case pointer.Cancel:
		for _, s := range q.entered {
			s.listeners.dispatch(e)
		}
		q.entered = nil
		q.pressed = false
		r.window.listeners.dispatch(e)
		return
	default:
		return
	}
	hits := r.deliverEnterLeave(e)
	for _, s := range hits {
		s.listeners.dispatch(e)
	}
	r.window.listeners.dispatch(e)
	if e.Kind == pointer.Release {
		q.pressed = false
	}
}

// deliverEnterLeave updates the entered set for the position of e
// and returns the surfaces under it.
func (r *Router) deliverEnterLeave(e pointer.Event) []*Surface {
	q := &r.pointer
	hits := r.hits(e.Position)
	for _, s := range q.entered {
		if slices.Contains(hits, s) {
			continue
		}
		leave := e
		leave.Kind = pointer.Leave
		s.listeners.dispatch(leave)
	}
	for _, s := range hits {
		if slices.Contains(q.entered, s) {
			continue
		}
		enter := e
		enter.Kind = pointer.Enter
		s.listeners.dispatch(enter)
	}
	q.entered = hits
	return hits
}
