// Package aoctest reads the example fixtures shared by the solver tests.
package aoctest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adventsolve/aoc"
)

// InputsDir returns the repository's inputs directory, found by walking
// up from the working directory to go.mod.
func InputsDir(t testing.TB) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "inputs")
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "go.mod not found above working directory")
		dir = parent
	}
}

// Example returns the contents of day's n-th example fixture.
func Example(t testing.TB, day, n int) string {
	t.Helper()
	input, err := aoc.Load(InputsDir(t), aoc.ExampleName(day, n))
	require.NoError(t, err)
	return input
}
