// SPDX-License-Identifier: Unlicense OR MIT

// Package testlog routes log output of tests through testing.T.
package testlog

import (
	"testing"

	"github.com/rs/zerolog"

	"gioui.org/dnd/internal/logging"
)

// Start configures test logging and returns a logger writing to t.
func Start(t *testing.T) zerolog.Logger {
	t.Helper()
	logging.ConfigureTests()
	return zerolog.New(zerolog.NewConsoleWriter(zerolog.ConsoleTestWriter(t))).With().Str("test", t.Name()).Logger()
}
