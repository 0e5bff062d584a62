package testutil

import (
	"bytes"

	"github.com/rs/zerolog"
)

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// BufferLogger returns a JSON logger writing into a fresh buffer
func BufferLogger() (zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return zerolog.New(&buf), &buf
}
