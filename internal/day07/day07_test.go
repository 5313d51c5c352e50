package day07

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adventsolve/aoc"
	"github.com/adventsolve/aoc/internal/aoctest"
)

func TestPartOne(t *testing.T) {
	got, err := PartOne(aoctest.Example(t, 7, 0))
	require.NoError(t, err)
	assert.Equal(t, 95437, got)
}

func TestPartTwo(t *testing.T) {
	got, err := PartTwo(aoctest.Example(t, 7, 0))
	require.NoError(t, err)
	assert.Equal(t, 24933642, got)
}

func TestParseSizes(t *testing.T) {
	root, err := Parse(aoctest.Example(t, 7, 0))
	require.NoError(t, err)

	got := map[string]int{}
	root.Walk(func(d *Dir) { got[d.Name] = d.Size() })
	want := map[string]int{
		"/": 48381165,
		"a": 94853,
		"e": 584,
		"d": 24933642,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("directory sizes mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, map[string]int{"b.txt": 14848514, "c.dat": 8504156}, root.Files)
}

func TestWalkOrder(t *testing.T) {
	root, err := Parse("$ cd /\n$ ls\ndir b\ndir a\n$ cd a\n$ ls\ndir c\n")
	require.NoError(t, err)

	var names []string
	root.Walk(func(d *Dir) { names = append(names, d.Name) })
	assert.Equal(t, []string{"/", "a", "c", "b"}, names)
}

func TestRepeatedListing(t *testing.T) {
	root, err := Parse("$ ls\n10 x\n$ ls\n10 x\n$ cd sub\n$ cd /\n")
	require.NoError(t, err)
	assert.Equal(t, 10, root.Size())
	assert.Contains(t, root.Dirs, "sub")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		line  int
	}{
		{"unknown command", "$ cd /\n$ rm -rf a\n", ErrMalformedCommand, 2},
		{"cd without target", "$ cd\n", ErrMalformedCommand, 1},
		{"ls with argument", "$ ls a\n", ErrMalformedCommand, 1},
		{"entry before ls", "$ cd /\n12 f\n", ErrMalformedEntry, 2},
		{"entry after cd", "$ ls\n1 f\n$ cd a\n2 g\n", ErrMalformedEntry, 4},
		{"bad size", "$ ls\nbig f\n", ErrMalformedEntry, 2},
		{"negative size", "$ ls\n-4 f\n", ErrMalformedEntry, 2},
		{"extra field", "$ ls\n4 f g\n", ErrMalformedEntry, 2},
		{"up from root", "$ cd /\n$ cd ..\n", ErrUnknownDirectory, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.ErrorIs(t, err, tt.want)
			var pe *aoc.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.line, pe.Line)
		})
	}
}

func TestDiskOverflow(t *testing.T) {
	_, err := PartTwo("$ ls\n70000001 huge\n")
	assert.ErrorIs(t, err, ErrDiskOverflow)
}

func TestEnoughFreeSpace(t *testing.T) {
	got, err := PartTwo("$ ls\n100 a\ndir x\ndir y\n$ cd x\n$ ls\n40 b\n")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestSmallestSufficientDir(t *testing.T) {
	// 45000000 used, so 5000000 more must be freed.
	input := "$ ls\n30000000 a\ndir x\ndir y\ndir z\n" +
		"$ cd x\n$ ls\n6000000 b\n$ cd ..\n" +
		"$ cd y\n$ ls\n9000000 c\n$ cd ..\n" +
		"$ cd z\n$ ls\n"
	got, err := PartTwo(input)
	require.NoError(t, err)
	assert.Equal(t, 6000000, got)
}
