// Package day01 totals the calories carried by each elf.
//
// The input lists one calorie count per line; a blank line ends one
// elf's inventory and starts the next.
package day01

import (
	"errors"
	"strconv"
	"strings"

	"github.com/adventsolve/aoc"
)

var ErrMalformedCalories = errors.New("malformed calorie count")

// totals returns the calorie sum of every inventory, in input order.
// Consecutive blank lines never produce an empty inventory.
func totals(input string) ([]int, error) {
	var (
		out  []int
		cur  int
		open bool
	)
	for i, line := range aoc.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			if open {
				out = append(out, cur)
				cur, open = 0, false
			}
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, aoc.ParseErr(i+1, line, ErrMalformedCalories)
		}
		cur += n
		open = true
	}
	if open {
		out = append(out, cur)
	}
	return out, nil
}

// top returns the n largest values of vs, largest first.
func top(vs []int, n int) []int {
	best := make([]int, 0, n)
	for _, v := range vs {
		for i := range best {
			if v > best[i] {
				v, best[i] = best[i], v
			}
		}
		if len(best) < n {
			best = append(best, v)
		}
	}
	return best
}

// PartOne returns the largest inventory total.
func PartOne(input string) (int, error) {
	t, err := totals(input)
	if err != nil {
		return 0, err
	}
	return aoc.Sum(top(t, 1)...), nil
}

// PartTwo returns the sum of the three largest inventory totals.
func PartTwo(input string) (int, error) {
	t, err := totals(input)
	if err != nil {
		return 0, err
	}
	return aoc.Sum(top(t, 3)...), nil
}
