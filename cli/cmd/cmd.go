package cmd

import (
	"io"
	"log/slog"
	"os"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSource opens the named source file for reading, mapping "-" to stdin.
// Closing the returned reader is a no-op for stdin.
func openSource(path string) (io.ReadCloser, error) {
	if path == stdinSource {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, ErrOpenSource.Wrap(err).
			With(slog.String("path", path))
	}

	return file, nil
}
