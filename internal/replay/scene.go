// SPDX-License-Identifier: Unlicense OR MIT

package replay

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"gioui.org/dnd/dnd"
	"gioui.org/dnd/f32"
)

// Scene describes a document and the surfaces attached to it.
type Scene struct {
	Document Document        `toml:"document"`
	Surfaces []SurfaceConfig `toml:"surface"`
}

// Document describes the content box and its position on screen.
type Document struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	// Origin is the screen position of the content box, as [x, y].
	Origin []float64 `toml:"origin"`
}

// SurfaceConfig describes one surface, in paint order.
type SurfaceConfig struct {
	Name string `toml:"name"`
	// Bounds is [x0, y0, x1, y1] in client coordinates.
	Bounds []float64 `toml:"bounds"`
	// Role is "source", "target" or empty for a passive surface.
	Role string `toml:"role"`
	// Mode is "pointer" (the default) or "native".
	Mode        string `toml:"mode"`
	Item        string `toml:"item"`
	AllowBubble bool   `toml:"allow_bubble"`
}

const (
	RoleSource = "source"
	RoleTarget = "target"
)

// LoadScene reads and validates a TOML scene file.
func LoadScene(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene load failed (%s): %w", path, err)
	}
	sc, err := ParseScene(data)
	if err != nil {
		return Scene{}, fmt.Errorf("scene %s: %w", path, err)
	}
	return sc, nil
}

// ParseScene decodes and validates a TOML scene.
func ParseScene(data []byte) (Scene, error) {
	var sc Scene
	md, err := toml.Decode(string(data), &sc)
	if err != nil {
		return Scene{}, fmt.Errorf("parse failed: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return Scene{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	for i := range sc.Surfaces {
		if sc.Surfaces[i].Mode == "" {
			sc.Surfaces[i].Mode = dnd.Pointer.String()
		}
	}
	if err := sc.Validate(); err != nil {
		return Scene{}, err
	}
	return sc, nil
}

// Validate checks the scene for missing or inconsistent values.
func (sc Scene) Validate() error {
	if sc.Document.Width <= 0 || sc.Document.Height <= 0 {
		return fmt.Errorf("document size %vx%v must be positive", sc.Document.Width, sc.Document.Height)
	}
	if n := len(sc.Document.Origin); n != 0 && n != 2 {
		return fmt.Errorf("document origin needs 2 values, got %d", n)
	}
	seen := make(map[string]bool)
	for i, s := range sc.Surfaces {
		if s.Name == "" {
			return fmt.Errorf("surface %d: missing name", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("surface %q: duplicate name", s.Name)
		}
		seen[s.Name] = true
		if len(s.Bounds) != 4 {
			return fmt.Errorf("surface %q: bounds need 4 values, got %d", s.Name, len(s.Bounds))
		}
		switch s.Role {
		case "", RoleSource, RoleTarget:
		default:
			return fmt.Errorf("surface %q: invalid role %q", s.Name, s.Role)
		}
		if _, err := parseMode(s.Mode); err != nil {
			return fmt.Errorf("surface %q: %w", s.Name, err)
		}
	}
	return nil
}

func (d Document) size() f32.Point {
	return f32.Pt(float32(d.Width), float32(d.Height))
}

func (d Document) origin() f32.Point {
	if len(d.Origin) != 2 {
		return f32.Point{}
	}
	return f32.Pt(float32(d.Origin[0]), float32(d.Origin[1]))
}

func (s SurfaceConfig) rect() f32.Rectangle {
	b := s.Bounds
	return f32.Rect(float32(b[0]), float32(b[1]), float32(b[2]), float32(b[3]))
}

func parseMode(s string) (dnd.Mode, error) {
	switch s {
	case "", dnd.Pointer.String():
		return dnd.Pointer, nil
	case dnd.Native.String():
		return dnd.Native, nil
	default:
		return 0, fmt.Errorf("invalid mode %q", s)
	}
}
