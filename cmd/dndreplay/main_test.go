// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func setFlags(t *testing.T, args ...string) {
	t.Helper()
	prevScene, prevLevel := *scenePath, *logLevel
	prevGlobal, prevLogger := zerolog.GlobalLevel(), log.Logger
	t.Cleanup(func() {
		*scenePath, *logLevel = prevScene, prevLevel
		zerolog.SetGlobalLevel(prevGlobal)
		log.Logger = prevLogger
	})
	*scenePath, *logLevel = "", ""
	if err := flag.CommandLine.Parse(args); err != nil {
		t.Fatal(err)
	}
}

func TestMainErr(t *testing.T) {
	testdata := filepath.Join("..", "..", "internal", "replay", "testdata")
	scene := filepath.Join(testdata, "scene.toml")
	script := filepath.Join(testdata, "script.yaml")
	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{"no scene", []string{script}, "please specify -scene"},
		{"no script", []string{"-scene", scene}, "specify a script"},
		{"bad level", []string{"-scene", scene, "-log-level", "loud", script}, "invalid -log-level loud"},
		{"missing scene", []string{"-scene", "nope.toml", script}, "scene load failed"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			setFlags(t, tc.args...)
			err := mainErr(new(bytes.Buffer))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("got error %v; want %q", err, tc.want)
			}
		})
	}
}

func TestMainErrPlays(t *testing.T) {
	testdata := filepath.Join("..", "..", "internal", "replay", "testdata")
	setFlags(t, "-scene", filepath.Join(testdata, "scene.toml"), "-log-level", "off", filepath.Join(testdata, "script.yaml"))
	var out bytes.Buffer
	if err := mainErr(&out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "bin Drop pos=(120,10) item=card") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestMainErrLogLevel(t *testing.T) {
	testdata := filepath.Join("..", "..", "internal", "replay", "testdata")
	setFlags(t, "-scene", filepath.Join(testdata, "scene.toml"), "-log-level", "debug", filepath.Join(testdata, "script.yaml"))
	var logs bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(&logs).Level(zerolog.InfoLevel)
	if err := mainErr(new(bytes.Buffer)); err != nil {
		t.Fatal(err)
	}
	for _, msg := range []string{"surface added", "playing", "drag armed"} {
		if !strings.Contains(logs.String(), msg) {
			t.Errorf("debug log %q missing from:\n%s", msg, logs.String())
		}
	}
}
