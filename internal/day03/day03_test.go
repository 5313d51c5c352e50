package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adventsolve/aoc"
	"github.com/adventsolve/aoc/internal/aoctest"
)

func TestPartOne(t *testing.T) {
	got, err := PartOne(aoctest.Example(t, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, 157, got)
}

func TestPartTwo(t *testing.T) {
	got, err := PartTwo(aoctest.Example(t, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, 70, got)
}

func TestPriority(t *testing.T) {
	for r, want := range map[rune]int{'a': 1, 'p': 16, 'z': 26, 'A': 27, 'L': 38, 'Z': 52} {
		got, err := Priority(r)
		require.NoError(t, err)
		assert.Equal(t, want, got, "priority of %c", r)
	}
	for _, r := range []rune{'0', ' ', '[', 'é'} {
		_, err := Priority(r)
		assert.ErrorIs(t, err, ErrUnknownItem, "priority of %q", r)
	}
}

func TestItemSet(t *testing.T) {
	a, err := items("abcA")
	require.NoError(t, err)
	b, err := items("cAxx")
	require.NoError(t, err)
	assert.Equal(t, 3+27, (a & b).priorities())
}

func TestUnknownItem(t *testing.T) {
	_, err := PartOne("abcd\nab1d\n")
	require.ErrorIs(t, err, ErrUnknownItem)
	var pe *aoc.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)

	_, err = PartTwo("abc\nab-\nabc\n")
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestIncompleteGroup(t *testing.T) {
	_, err := PartTwo("abc\nabd\nabe\nxyz\n")
	require.ErrorIs(t, err, ErrIncompleteGroup)
	var pe *aoc.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 4, pe.Line)
}

func TestEmptyInput(t *testing.T) {
	got, err := PartOne("")
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = PartTwo("\n\n")
	require.NoError(t, err)
	assert.Zero(t, got)
}
