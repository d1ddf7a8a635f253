// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"gioui.org/dnd/internal/logging"
	"gioui.org/dnd/internal/replay"
)

var (
	scenePath = flag.String("scene", "", "scene file (TOML).")
	logLevel  = flag.String("log-level", "", "diagnostics level (trace, debug, info, warn, error, off).")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	logging.ConfigureRuntime()
	if err := mainErr(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "dndreplay: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr(out io.Writer) error {
	if *scenePath == "" {
		return errors.New("please specify -scene")
	}
	scriptPath := flag.Arg(0)
	if scriptPath == "" {
		return errors.New("specify a script")
	}
	if *logLevel != "" {
		lvl, ok := logging.ParseLevel(*logLevel)
		if !ok {
			return fmt.Errorf("invalid -log-level %s", *logLevel)
		}
		logging.SetLevel(lvl)
	}
	logger := log.Logger
	scene, err := replay.LoadScene(*scenePath)
	if err != nil {
		return err
	}
	script, err := replay.LoadScript(scriptPath)
	if err != nil {
		return err
	}
	p, err := replay.NewPlayer(scene, out, logger)
	if err != nil {
		return err
	}
	defer p.Close()
	logger.Debug().Str("scene", *scenePath).Int("events", len(script.Events)).Msg("playing")
	return p.Play(script)
}
