package impl

import (
	"io"
	"log/slog"
)

// testLogger returns a logger that discards everything, for wiring services
// under test.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
