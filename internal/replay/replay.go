// SPDX-License-Identifier: Unlicense OR MIT

// Package replay plays recorded input against a scene of drag sources
// and drop targets and renders the resulting lifecycle events, one
// per line.
package replay

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"gioui.org/dnd/dnd"
	"gioui.org/dnd/f32"
	"gioui.org/dnd/io/event"
	"gioui.org/dnd/io/pointer"
	"gioui.org/dnd/io/router"
	"gioui.org/dnd/io/transfer"
)

// Player owns a router populated from a Scene.
type Player struct {
	out      io.Writer
	logger   zerolog.Logger
	router   *router.Router
	ctx      *dnd.Context[string]
	surfaces map[string]*router.Surface
	sources  []dnd.Source[string]
	targets  []*dnd.Target[string]
	err      error
}

// NewPlayer builds the scene. Lifecycle events are written to out.
func NewPlayer(sc Scene, out io.Writer, logger zerolog.Logger) (*Player, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	p := &Player{
		out:      out,
		logger:   logger,
		router:   new(router.Router),
		ctx:      dnd.New[string](dnd.WithLogger(logger)),
		surfaces: make(map[string]*router.Surface),
	}
	p.router.SetDocument(sc.Document.size())
	p.router.SetOrigin(sc.Document.origin())
	for _, cfg := range sc.Surfaces {
		mode, err := parseMode(cfg.Mode)
		if err != nil {
			return nil, fmt.Errorf("surface %q: %w", cfg.Name, err)
		}
		s := p.router.NewSurface(cfg.rect())
		p.surfaces[cfg.Name] = s
		name := cfg.Name
		switch cfg.Role {
		case RoleSource:
			src := p.ctx.Draggable(s, dnd.DragOptions[string]{Mode: mode, Item: cfg.Item})
			for _, k := range []dnd.Kind{dnd.DragStart, dnd.Drag, dnd.DragEnd} {
				src.AddListener(k, p.dragWriter(name, k))
			}
			p.sources = append(p.sources, src)
		case RoleTarget:
			tgt := p.ctx.Droppable(s, dnd.DropOptions{Mode: mode, AllowBubble: cfg.AllowBubble})
			for _, k := range []dnd.Kind{dnd.DragEnter, dnd.DragOver, dnd.DragLeave, dnd.Drop} {
				tgt.AddListener(k, p.dropWriter(name, k))
			}
			p.targets = append(p.targets, tgt)
		}
		logger.Debug().Str("surface", name).Str("role", cfg.Role).Stringer("mode", mode).Msg("surface added")
	}
	return p, nil
}

// Play queues the events of sc in order. It stops at the first
// step that cannot be played or output that cannot be written.
func (p *Player) Play(sc Script) error {
	for i, st := range sc.Events {
		ev, err := p.event(st)
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		if st.Target == "" {
			p.router.Queue(ev)
		} else {
			p.surfaces[st.Target].Dispatch(ev)
		}
		if p.err != nil {
			return p.err
		}
	}
	return nil
}

// Close disposes every source and target.
func (p *Player) Close() {
	for _, s := range p.sources {
		s.Dispose()
	}
	for _, t := range p.targets {
		t.Dispose()
	}
}

func (p *Player) event(st Step) (event.Event, error) {
	pos := f32.Pt(st.X, st.Y)
	var screen f32.Point
	if st.Target != "" {
		if _, ok := p.surfaces[st.Target]; !ok {
			return nil, fmt.Errorf("unknown surface %q", st.Target)
		}
		screen = pos
		if len(st.Screen) == 2 {
			screen = f32.Pt(st.Screen[0], st.Screen[1])
		}
	}
	switch st.Kind {
	case "press":
		return pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: pos, Screen: screen}, nil
	case "move":
		return pointer.Event{Kind: pointer.Move, Buttons: pointer.ButtonPrimary, Position: pos, Screen: screen}, nil
	case "release":
		return pointer.Event{Kind: pointer.Release, Position: pos, Screen: screen}, nil
	case "cancel":
		return pointer.Event{Kind: pointer.Cancel, Position: pos, Screen: screen}, nil
	case "dragstart":
		return transfer.Event{Kind: transfer.DragStart, Position: pos, Screen: screen}, nil
	case "drag":
		return transfer.Event{Kind: transfer.Drag, Position: pos, Screen: screen}, nil
	case "dragend":
		return transfer.Event{Kind: transfer.DragEnd, Position: pos, Screen: screen}, nil
	default:
		return nil, fmt.Errorf("unknown kind %q", st.Kind)
	}
}

func (p *Player) dragWriter(name string, k dnd.Kind) dnd.DragListener {
	return func(_ event.Event, e dnd.DragEvent) {
		line := fmt.Sprintf("%s %s source=%v offset=%v vector=%v screen=%v", name, k, e.Source, e.Offset, e.Vector, e.Screen)
		if k == dnd.DragEnd && e.DropOut {
			line += " dropout"
		}
		p.writeln(line)
	}
}

func (p *Player) dropWriter(name string, k dnd.Kind) dnd.DropListener[string] {
	return func(_ event.Event, e dnd.DropEvent[string]) {
		line := fmt.Sprintf("%s %s pos=%v", name, k, e.Position)
		if e.HasItem {
			line += " item=" + e.Item
		}
		if e.Native {
			line += " native"
		}
		p.writeln(line)
	}
}

func (p *Player) writeln(line string) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintln(p.out, line); err != nil {
		p.err = fmt.Errorf("write failed: %w", err)
	}
}
