// SPDX-License-Identifier: Unlicense OR MIT

package dnd

import "strings"

// Kind of a lifecycle event. Kinds may be combined to subscribe to
// several events at once.
type Kind uint

const (
	// DragStart is emitted by a source when a drag begins.
	DragStart Kind = 1 << iota
	// Drag is emitted by a source for every motion sample.
	Drag
	// DragEnd is emitted by a source when its drag terminates.
	DragEnd
	// DragEnter is emitted by a target when a drag enters it.
	DragEnter
	// DragOver is emitted by a target while a drag moves over it.
	DragOver
	// DragLeave is emitted by a target when a drag leaves it.
	DragLeave
	// Drop is emitted by a target receiving a drop.
	Drop
)

const (
	sourceKinds = DragStart | Drag | DragEnd
	targetKinds = DragEnter | DragOver | DragLeave | Drop
)

func (k Kind) String() string {
	var buf strings.Builder
	for kk := Kind(1); kk > 0 && kk <= Drop; kk <<= 1 {
		if k&kk > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((k & kk).string())
		}
	}
	return buf.String()
}

func (k Kind) string() string {
	switch k {
	case DragStart:
		return "DragStart"
	case Drag:
		return "Drag"
	case DragEnd:
		return "DragEnd"
	case DragEnter:
		return "DragEnter"
	case DragOver:
		return "DragOver"
	case DragLeave:
		return "DragLeave"
	case Drop:
		return "Drop"
	default:
		panic("unknown Kind")
	}
}
