package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// InputName is the file name of day's puzzle input.
func InputName(day int) string {
	return fmt.Sprintf("input%02d.in", day)
}

// ExampleName is the file name of day's n-th example input. Days with a
// single example use n == 0.
func ExampleName(day, n int) string {
	if n == 0 {
		return fmt.Sprintf("example%02d.in", day)
	}
	return fmt.Sprintf("example%02d-%d.in", day, n)
}

// Load reads dir/name. A missing file yields ErrInputNotFound, any other
// read failure ErrInputUnreadable, and a zero-length file ErrEmptyInput.
func Load(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %s: %w", ErrInputNotFound, path, err)
	case err != nil:
		return "", fmt.Errorf("%w: %s: %w", ErrInputUnreadable, path, err)
	case len(b) == 0:
		return "", fmt.Errorf("%w: %s", ErrEmptyInput, path)
	}
	return string(b), nil
}
