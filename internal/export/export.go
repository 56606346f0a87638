// Package export writes the buffer to disk. It is a read-only
// consumer of the buffer: failures surface as errors for the status
// line and never touch editor state.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Save writes text verbatim to the configured filename under dir
// (working directory when empty). A .txt extension is enforced.
// Returns the path written.
func Save(dir, filename, text string) (string, error) {
	if filename == "" {
		filename = "cyphernote.txt"
	}
	if !strings.HasSuffix(filename, ".txt") {
		filename += ".txt"
	}

	path := filename
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating export directory: %w", err)
		}
		path = filepath.Join(dir, filename)
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}
	return path, nil
}
