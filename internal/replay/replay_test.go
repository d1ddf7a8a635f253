// SPDX-License-Identifier: Unlicense OR MIT

package replay

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gioui.org/dnd/internal/testutil/testlog"
)

const nativeScene = `
[document]
width = 400.0
height = 200.0
origin = [10.0, 20.0]

[[surface]]
name = "file"
bounds = [0.0, 0.0, 50.0, 50.0]
role = "source"
mode = "native"
item = "file"

[[surface]]
name = "drop"
bounds = [100.0, 0.0, 200.0, 100.0]
role = "target"
mode = "native"
`

func play(t *testing.T, scene, script string) string {
	t.Helper()
	sc, err := ParseScene([]byte(scene))
	if err != nil {
		t.Fatal(err)
	}
	s, err := ParseScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	p, err := NewPlayer(sc, &out, testlog.Start(t))
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()
	if err := p.Play(s); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestPlayPointer(t *testing.T) {
	sc, err := LoadScene(filepath.Join("testdata", "scene.toml"))
	if err != nil {
		t.Fatal(err)
	}
	s, err := LoadScript(filepath.Join("testdata", "script.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile(filepath.Join("testdata", "play.golden"))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	p, err := NewPlayer(sc, &out, testlog.Start(t))
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()
	if err := p.Play(s); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != string(want) {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPlayNative(t *testing.T) {
	got := play(t, nativeScene, `
events:
  - {kind: dragstart, x: 10, y: 10}
  - {kind: drag, x: 150, y: 10}
  - {kind: dragend, x: 150, y: 10}
`)
	want := strings.Join([]string{
		"file DragStart source=(20,30) offset=(0,0) vector=(0,0) screen=(20,30)",
		"file Drag source=(20,30) offset=(140,0) vector=(1,0) screen=(160,30)",
		"drop DragEnter pos=(150,10) item=file",
		"drop DragOver pos=(150,10) item=file",
		"drop Drop pos=(150,10) item=file",
		"file DragEnd source=(20,30) offset=(140,0) vector=(0,0) screen=(160,30)",
		"",
	}, "\n")
	if got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPlayNativeDropOut(t *testing.T) {
	got := play(t, nativeScene, `
events:
  - {kind: dragstart, x: 10, y: 10}
  - {kind: dragend, x: -5, y: 50, target: file, screen: [0, 0]}
`)
	want := "file DragEnd source=(20,30) offset=(-20,-30) vector=(-1,-1) screen=(0,0) dropout\n"
	if !strings.HasSuffix(got, want) {
		t.Errorf("output %q does not end with %q", got, want)
	}
}

func TestPlayUnknownTarget(t *testing.T) {
	sc, err := ParseScene([]byte(nativeScene))
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPlayer(sc, new(bytes.Buffer), testlog.Start(t))
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()
	err = p.Play(Script{Events: []Step{{Kind: "drag", Target: "nowhere"}}})
	if err == nil || !strings.Contains(err.Error(), "nowhere") {
		t.Errorf("got error %v; want unknown surface", err)
	}
}

type failWriter struct{}

var errWrite = errors.New("disk full")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestPlayWriteError(t *testing.T) {
	sc, err := ParseScene([]byte(nativeScene))
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPlayer(sc, failWriter{}, testlog.Start(t))
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()
	err = p.Play(Script{Events: []Step{{Kind: "dragstart", X: 10, Y: 10}, {Kind: "drag", X: 20, Y: 10}}})
	if !errors.Is(err, errWrite) {
		t.Errorf("got error %v; want %v", err, errWrite)
	}
}

func TestCloseDetaches(t *testing.T) {
	sc, err := ParseScene([]byte(nativeScene))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	p, err := NewPlayer(sc, &out, testlog.Start(t))
	if err != nil {
		t.Fatal(err)
	}
	p.Close()
	for name, s := range p.surfaces {
		if n := s.Listeners(); n != 0 {
			t.Errorf("%s: %d listeners after Close", name, n)
		}
	}
	if err := p.Play(Script{Events: []Step{{Kind: "dragstart", X: 10, Y: 10}}}); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("closed player wrote %q", out.String())
	}
}

func TestNewPlayerInvalidMode(t *testing.T) {
	sc := Scene{
		Document: Document{Width: 100, Height: 100},
		Surfaces: []SurfaceConfig{{Name: "a", Bounds: []float64{0, 0, 10, 10}, Role: RoleSource, Mode: "touch"}},
	}
	if _, err := NewPlayer(sc, new(bytes.Buffer), testlog.Start(t)); err == nil || !strings.Contains(err.Error(), `invalid mode "touch"`) {
		t.Errorf("got error %v; want invalid mode", err)
	}
}
