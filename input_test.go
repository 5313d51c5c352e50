package aoc

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, "input05.in", InputName(5))
	assert.Equal(t, "input12.in", InputName(12))
	assert.Equal(t, "example01.in", ExampleName(1, 0))
	assert.Equal(t, "example06-3.in", ExampleName(6, 3))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input01.in"), []byte("1\n2\n"), 0o644))

	got, err := Load(dir, InputName(1))
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", got)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir(), InputName(3))
	require.ErrorIs(t, err, ErrInputNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "input03.in")
}

func TestLoadEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input02.in"), nil, 0o644))

	_, err := Load(dir, InputName(2))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestLoadUnreadable(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be cannot be read as one.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "input04.in"), 0o755))

	_, err := Load(dir, InputName(4))
	assert.ErrorIs(t, err, ErrInputUnreadable)
}
