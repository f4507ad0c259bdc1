// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// installLogger routes slog through a charmbracelet logger writing to w.
// Only warnings are shown unless verbose is set.
func installLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "irnix",
		Level:  log.WarnLevel,
	})
	setVerbose(logger, verbose)
	slog.SetDefault(slog.New(logger))
	return logger
}

func setVerbose(logger *log.Logger, verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
		return
	}
	logger.SetLevel(log.WarnLevel)
}
