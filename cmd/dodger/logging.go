package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// newLogger builds the session logger. The terminal belongs to the game, so
// logs go to path or nowhere. The returned close function is never nil.
func newLogger(path, level string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("log: failed to open %s: %w", path, err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodger",
		Level:           lvl,
	})
	return logger.With("session", uuid.NewString()), closeFn, nil
}
