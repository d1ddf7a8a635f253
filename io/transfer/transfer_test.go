// SPDX-License-Identifier: Unlicense OR MIT

package transfer

import "testing"

func TestPreventDefault(t *testing.T) {
	e := Event{Kind: DragOver}
	e.PreventDefault()
	if e.DefaultPrevented() {
		t.Error("non-cancelable event reported a prevented default")
	}

	e = e.Cancelable()
	var handler func(Event) = func(ev Event) { ev.PreventDefault() }
	handler(e)
	if !e.DefaultPrevented() {
		t.Error("PreventDefault on a copy was not observed")
	}
	if e.Cancelable().DefaultPrevented() {
		t.Error("Cancelable must reset the prevented state")
	}
}

func TestKindString(t *testing.T) {
	for _, tc := range []struct {
		k   Kind
		res string
	}{
		{DragStart, "DragStart"},
		{Drop, "Drop"},
		{DragEnter | DragLeave, "DragEnter|DragLeave"},
		{Drag | DragEnd, "Drag|DragEnd"},
	} {
		if got := tc.k.String(); got != tc.res {
			t.Errorf("got %q; want %q", got, tc.res)
		}
	}
}
