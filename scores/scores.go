// Package scores persists level-complete highscore entries to an append-only
// text file.
package scores

import (
	"fmt"
	"os"
)

// Append records one level-complete entry. The line format is fixed:
// "<name>  Score: <score> " followed by a newline.
func Append(path, name string, score int) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("scores: open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s  Score: %d \n", name, score); err != nil {
		return fmt.Errorf("scores: append to %s: %w", path, err)
	}
	return nil
}

// Read returns the raw contents of the highscore file. A file that doesn't
// exist yet reads as empty.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("scores: read %s: %w", path, err)
	}
	return string(data), nil
}
