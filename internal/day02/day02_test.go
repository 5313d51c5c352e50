package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adventsolve/aoc"
	"github.com/adventsolve/aoc/internal/aoctest"
)

func TestPartOne(t *testing.T) {
	got, err := PartOne(aoctest.Example(t, 2, 0))
	require.NoError(t, err)
	assert.Equal(t, 15, got)
}

func TestPartTwo(t *testing.T) {
	got, err := PartTwo(aoctest.Example(t, 2, 0))
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestRules(t *testing.T) {
	hands := []Hand{Rock, Paper, Scissors}
	for _, h := range hands {
		assert.Equal(t, Draw, h.Play(h), "%v vs itself", h)
		assert.Equal(t, Win, h.Play(h.Beats()), "%v vs %v", h, h.Beats())
		assert.Equal(t, Loss, h.Beats().Play(h), "%v vs %v", h.Beats(), h)
		for _, o := range []Outcome{Win, Draw, Loss} {
			assert.Equal(t, o, o.Against(h).Play(h), "outcome %d against %v", o, h)
		}
	}
	assert.Equal(t, Scissors, Rock.Beats())
	assert.Equal(t, Paper, Scissors.Beats())
	assert.Equal(t, Rock, Paper.Beats())
}

func TestScore(t *testing.T) {
	assert.Equal(t, 8, Score(Paper, Rock))
	assert.Equal(t, 1, Score(Rock, Paper))
	assert.Equal(t, 6, Score(Scissors, Scissors))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		part  func(string) (int, error)
		want  error
	}{
		{"unknown opponent", "D X\n", PartOne, ErrUnknownHand},
		{"unknown own hand", "A W\n", PartOne, ErrUnknownHand},
		{"unknown outcome", "A A\n", PartTwo, ErrUnknownOutcome},
		{"one token", "A\n", PartOne, ErrMalformedRound},
		{"three tokens", "A X Y\n", PartTwo, ErrMalformedRound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.part(tt.input)
			require.ErrorIs(t, err, tt.want)
			var pe *aoc.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, 1, pe.Line)
		})
	}
}

func TestBlankLinesSkipped(t *testing.T) {
	got, err := PartOne("A Y\n\nB X\n\n")
	require.NoError(t, err)
	assert.Equal(t, 9, got)
}
