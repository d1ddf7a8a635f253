// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The dndreplay command plays recorded input against a drag and drop scene.

Usage:

	dndreplay -scene <scene.toml> [flags] <script.yaml>

The scene file describes the document and its surfaces in paint order.
Each surface may act as a drag source or a drop target, in pointer or
native mode.

The script file lists the input events to play. Events without a target
are routed by position; events with a target are delivered directly to
the named surface.

Every lifecycle event emitted by the sources and targets of the scene is
printed to standard output, one per line.

The -log-level flag sets the diagnostics level: trace, debug, info, warn,
error or off. It overrides the DND_LOG_LEVEL environment variable.
`
