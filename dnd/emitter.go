// SPDX-License-Identifier: Unlicense OR MIT

package dnd

import (
	"golang.org/x/exp/slices"

	"gioui.org/dnd/io/event"
)

// Subscription identifies a listener added to a source or target.
// The zero Subscription is never issued.
type Subscription uint64

// emitter delivers lifecycle events of kinds in catalog to
// subscribers, synchronously and in subscription order.
type emitter[D any] struct {
	catalog Kind
	next    Subscription
	subs    []subscriber[D]
}

type subscriber[D any] struct {
	id    Subscription
	kinds Kind
	fn    func(raw event.Event, data D)
}

// add subscribes fn to kinds. Kinds outside the catalog are
// ignored; add reports false if none remain.
func (e *emitter[D]) add(kinds Kind, fn func(event.Event, D)) (Subscription, bool) {
	kinds &= e.catalog
	if kinds == 0 || fn == nil {
		return 0, false
	}
	e.next++
	e.subs = append(e.subs, subscriber[D]{id: e.next, kinds: kinds, fn: fn})
	return e.next, true
}

func (e *emitter[D]) remove(id Subscription) {
	e.subs = slices.DeleteFunc(e.subs, func(s subscriber[D]) bool { return s.id == id })
}

func (e *emitter[D]) clear() {
	e.subs = nil
}

func (e *emitter[D]) count() int {
	return len(e.subs)
}

// emit calls the subscribers present when emit began.
func (e *emitter[D]) emit(k Kind, raw event.Event, data D) {
	for _, s := range slices.Clone(e.subs) {
		if s.kinds&k != 0 {
			s.fn(raw, data)
		}
	}
}
