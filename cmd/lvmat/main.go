// SPDX-License-Identifier: MIT

// Command lvmat replays the matrix demonstration scenarios from the command
// line: rotating a column vector, building an identity and adding two
// literals. Results go to stdout; diagnostics go to stderr via zerolog.
package main

import (
	"os"

	xlog "github.com/katalvlaran/lvmat/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := xlog.Base()
		logger.Error().Err(err).Msg("lvmat failed")
		os.Exit(1)
	}
}
