// SPDX-License-Identifier: Unlicense OR MIT

package dnd

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Context is the coordination state shared by the sources and
// targets created from it. T is the type of the payload carried by
// drags.
type Context[T any] struct {
	logger zerolog.Logger

	dragging bool
	// dropped is set by a native drop and cleared by the source
	// when its drag ends.
	dropped bool
	// drags holds the active source first. A new drag clears it
	// before registering.
	drags []*dragState[T]
	// drops holds the armed targets.
	drops []*Target[T]
}

// Option configures a Context.
type Option func(*config)

type config struct {
	logger zerolog.Logger
}

// WithLogger sets the logger of a Context. The default is the
// global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// New returns an empty Context.
func New[T any](options ...Option) *Context[T] {
	cfg := config{logger: log.Logger}
	for _, o := range options {
		o(&cfg)
	}
	return &Context[T]{
		logger: cfg.logger.With().Str("component", "dnd").Logger(),
	}
}

// Dragging reports whether a drag has started and not yet ended.
func (c *Context[T]) Dragging() bool {
	return c.dragging
}

// Dropped reports whether a native drop occurred during the current
// drag.
func (c *Context[T]) Dropped() bool {
	return c.dropped
}

// Item returns the payload of the active source. The boolean is
// false if no source is active.
func (c *Context[T]) Item() (T, bool) {
	if len(c.drags) == 0 {
		var zero T
		return zero, false
	}
	return c.drags[0].item, true
}

// IsActive reports whether s is the active source.
func (c *Context[T]) IsActive(s Source[T]) bool {
	return s != nil && c.isActiveDrag(s.state())
}

// Armed reports whether t is eligible to receive a pointer drop.
func (c *Context[T]) Armed(t *Target[T]) bool {
	return slices.Contains(c.drops, t)
}

// ArmedTargets returns the number of armed targets.
func (c *Context[T]) ArmedTargets() int {
	return len(c.drops)
}

func (c *Context[T]) setDragging(dragging bool) {
	c.dragging = dragging
}

func (c *Context[T]) setDropped() {
	c.dropped = true
}

func (c *Context[T]) resetDropped() {
	c.dropped = false
}

func (c *Context[T]) activateDrag(d *dragState[T]) {
	c.drags = append(c.drags, d)
}

func (c *Context[T]) clearDrags() {
	c.drags = nil
}

func (c *Context[T]) isActiveDrag(d *dragState[T]) bool {
	return len(c.drags) > 0 && c.drags[0] == d
}

func (c *Context[T]) activateDrop(t *Target[T]) {
	if !slices.Contains(c.drops, t) {
		c.drops = append(c.drops, t)
	}
}

func (c *Context[T]) deactivateDrop(t *Target[T]) {
	c.drops = slices.DeleteFunc(c.drops, func(o *Target[T]) bool { return o == t })
}

func (c *Context[T]) clearDrops() {
	c.drops = nil
}

// reset prepares the context for a new drag started by d, evicting
// any active source and disarming every target.
func (c *Context[T]) reset(d *dragState[T]) {
	c.setDragging(false)
	c.clearDrags()
	c.clearDrops()
	c.activateDrag(d)
}
