// SPDX-License-Identifier: Unlicense OR MIT

package dnd

import (
	"errors"
	"fmt"

	"gioui.org/dnd/f32"
	"gioui.org/dnd/io/event"
)

// Surface is an element delivering pointer events.
type Surface interface {
	event.Listenable
	// Window returns the listenable enclosing the surface, or nil
	// if the surface is detached.
	Window() event.Listenable
}

// NativeSurface is a Surface delivering the platform's drag
// gesture events.
type NativeSurface interface {
	Surface
	// SetDraggable enables native drag gestures originating from
	// the surface.
	SetDraggable(draggable bool)
	// ContentBox returns the document's visible content box in
	// client coordinates.
	ContentBox() f32.Rectangle
}

// Mode selects the input mechanism of a source or target.
type Mode uint8

const (
	// Pointer emulates drag and drop from press, move and release.
	Pointer Mode = iota
	// Native uses the platform's drag gesture events.
	Native
)

// ErrUnsupported is reported when a surface cannot support the
// requested mode.
var ErrUnsupported = errors.New("surface does not support mode")

// SurfaceError describes a failure to attach a source or target to
// a surface.
type SurfaceError struct {
	// Op is the operation that failed, such as "Draggable".
	Op   string
	Mode Mode
	Err  error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("dnd: %s [%s]: %v", e.Op, e.Mode, e.Err)
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

func (m Mode) String() string {
	switch m {
	case Pointer:
		return "pointer"
	case Native:
		return "native"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}
