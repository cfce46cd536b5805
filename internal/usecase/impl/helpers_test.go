package impl

import (
	"io"
	"log/slog"
)

// testLogger returns a logger that swallows output, so tests stay quiet.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
