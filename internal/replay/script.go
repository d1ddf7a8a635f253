// SPDX-License-Identifier: Unlicense OR MIT

package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a recorded sequence of input events.
type Script struct {
	Events []Step `yaml:"events"`
}

// Step is one input event. Kind is one of press, move, release,
// cancel, dragstart, drag and dragend.
type Step struct {
	Kind string  `yaml:"kind"`
	X    float32 `yaml:"x"`
	Y    float32 `yaml:"y"`
	// Target names a surface to receive the event directly instead
	// of routing it by position.
	Target string `yaml:"target,omitempty"`
	// Screen overrides the screen position of a targeted event.
	Screen []float32 `yaml:"screen,omitempty"`
}

var stepKinds = map[string]bool{
	"press": true, "move": true, "release": true, "cancel": true,
	"dragstart": true, "drag": true, "dragend": true,
}

// LoadScript reads and validates a YAML script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script: %w", err)
	}
	sc, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("script %s: %w", path, err)
	}
	return sc, nil
}

// ParseScript decodes and validates a YAML script. Unknown fields
// are rejected.
func ParseScript(data []byte) (Script, error) {
	var sc Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return Script{}, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, st := range sc.Events {
		if !stepKinds[st.Kind] {
			return Script{}, fmt.Errorf("event %d: unknown kind %q", i, st.Kind)
		}
		if n := len(st.Screen); n != 0 && n != 2 {
			return Script{}, fmt.Errorf("event %d: screen needs 2 values, got %d", i, n)
		}
		if st.Screen != nil && st.Target == "" {
			return Script{}, fmt.Errorf("event %d: screen requires a target", i)
		}
	}
	return sc, nil
}
