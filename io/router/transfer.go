// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"golang.org/x/exp/slices"

	"gioui.org/dnd/io/transfer"
)

// dragQueue tracks an in-flight native drag gesture.
type dragQueue struct {
	source *Surface
	// over tracks the surfaces under the dragged pointer.
	over []*Surface
	// accepting tracks the surfaces that prevented the default of
	// their most recent DragOver.
	accepting []*Surface
}

func (r *Router) pushTransfer(e transfer.Event) {
	q := &r.drag
	switch e.Kind {
	case transfer.DragStart:
		if q.source != nil {
			return
		}
		for _, s := range r.hits(e.Position) {
			if s.draggable {
				q.source = s
				break
			}
		}
		if q.source != nil {
			q.source.Dispatch(e)
		}
	case transfer.Drag:
		if q.source == nil {
			return
		}
		q.source.Dispatch(e)
		r.deliverDragOver(e)
	case transfer.DragEnd:
		if q.source == nil {
			return
		}
		src := q.source
		for _, s := range q.over {
			if s.removed {
				continue
			}
			if slices.Contains(q.accepting, s) {
				drop := e
				drop.Kind = transfer.Drop
				s.Dispatch(drop)
			} else {
				leave := e
				leave.Kind = transfer.DragLeave
				s.Dispatch(leave)
			}
		}
		*q = dragQueue{}
		if !src.removed {
			src.Dispatch(e)
		}
	}
}

// deliverDragOver sends DragLeave, DragEnter and DragOver for the
// position of e and records which surfaces accept the drop.
func (r *Router) deliverDragOver(e transfer.Event) {
	q := &r.drag
	hits := r.hits(e.Position)
	for _, s := range q.over {
		if slices.Contains(hits, s) {
			continue
		}
		leave := e
		leave.Kind = transfer.DragLeave
		s.Dispatch(leave)
	}
	for _, s := range hits {
		if slices.Contains(q.over, s) {
			continue
		}
		enter := e
		enter.Kind = transfer.DragEnter
		s.Dispatch(enter)
	}
	q.over = hits
	q.accepting = q.accepting[:0]
	for _, s := range hits {
		over := e
		over.Kind = transfer.DragOver
		if !s.Dispatch(over) {
			q.accepting = append(q.accepting, s)
		}
	}
}
