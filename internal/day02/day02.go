// Package day02 scores a rock-paper-scissors strategy guide.
package day02

import (
	"errors"
	"strings"

	"github.com/adventsolve/aoc"
)

var (
	ErrMalformedRound = errors.New("round needs two tokens")
	ErrUnknownHand    = errors.New("unknown hand shape")
	ErrUnknownOutcome = errors.New("unknown outcome")
)

// Hand is a shape; its value is the shape score.
type Hand int

const (
	Rock Hand = iota + 1
	Paper
	Scissors
)

func (h Hand) String() string {
	switch h {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	}
	return "Hand(?)"
}

// Beats returns the shape h defeats.
func (h Hand) Beats() Hand {
	switch h {
	case Rock:
		return Scissors
	case Scissors:
		return Paper
	default:
		return Rock
	}
}

// Play returns the outcome of h against opp, from h's side.
func (h Hand) Play(opp Hand) Outcome {
	switch opp {
	case h:
		return Draw
	case h.Beats():
		return Win
	}
	return Loss
}

// Outcome is a round result; its value is the outcome score.
type Outcome int

const (
	Loss Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

// Against returns the shape that produces o when played against opp.
func (o Outcome) Against(opp Hand) Hand {
	switch o {
	case Win:
		return opp.Beats().Beats()
	case Loss:
		return opp.Beats()
	}
	return opp
}

// Score is the points earned by playing own against opp.
func Score(own, opp Hand) int {
	return int(own) + int(own.Play(opp))
}

func parseHand(tok string) (Hand, error) {
	switch tok {
	case "A", "X":
		return Rock, nil
	case "B", "Y":
		return Paper, nil
	case "C", "Z":
		return Scissors, nil
	}
	return 0, ErrUnknownHand
}

func parseOutcome(tok string) (Outcome, error) {
	switch tok {
	case "X":
		return Loss, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Win, nil
	}
	return 0, ErrUnknownOutcome
}

// total sums the score of every round, choosing the own shape from the
// second column with pick.
func total(input string, pick func(opp Hand, tok string) (Hand, error)) (int, error) {
	var sum int
	for i, line := range aoc.Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			return 0, aoc.ParseErr(i+1, line, ErrMalformedRound)
		}
		opp, err := parseHand(f[0])
		if err != nil {
			return 0, aoc.ParseErr(i+1, line, err)
		}
		own, err := pick(opp, f[1])
		if err != nil {
			return 0, aoc.ParseErr(i+1, line, err)
		}
		sum += Score(own, opp)
	}
	return sum, nil
}

// PartOne reads the second column as the shape to play.
func PartOne(input string) (int, error) {
	return total(input, func(_ Hand, tok string) (Hand, error) {
		return parseHand(tok)
	})
}

// PartTwo reads the second column as the outcome to reach.
func PartTwo(input string) (int, error) {
	return total(input, func(opp Hand, tok string) (Hand, error) {
		o, err := parseOutcome(tok)
		if err != nil {
			return 0, err
		}
		return o.Against(opp), nil
	})
}
