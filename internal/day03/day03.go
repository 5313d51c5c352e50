// Package day03 finds misplaced rucksack items and group badges.
package day03

import (
	"errors"
	"math/bits"
	"strings"

	"github.com/adventsolve/aoc"
)

var (
	ErrUnknownItem     = errors.New("unknown item type")
	ErrIncompleteGroup = errors.New("group needs three rucksacks")
)

// Priority returns the priority of item type r: a-z are 1-26, A-Z 27-52.
func Priority(r rune) (int, error) {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 1, nil
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 27, nil
	}
	return 0, ErrUnknownItem
}

// itemSet holds item types, one bit per priority.
type itemSet uint64

func items(s string) (itemSet, error) {
	var set itemSet
	for _, r := range s {
		p, err := Priority(r)
		if err != nil {
			return 0, err
		}
		set |= 1 << p
	}
	return set, nil
}

// priorities sums the priority of every item in set.
func (set itemSet) priorities() int {
	var sum int
	for set != 0 {
		p := bits.TrailingZeros64(uint64(set))
		sum += p
		set &^= 1 << p
	}
	return sum
}

type rucksack struct {
	line  int
	items string
}

func rucksacks(input string) []rucksack {
	var out []rucksack
	for i, line := range aoc.Lines(input) {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, rucksack{i + 1, line})
		}
	}
	return out
}

// PartOne sums the priorities of items found in both compartments of
// each rucksack.
func PartOne(input string) (int, error) {
	var sum int
	for _, sack := range rucksacks(input) {
		half := len(sack.items) / 2
		a, err := items(sack.items[:half])
		if err != nil {
			return 0, aoc.ParseErr(sack.line, sack.items, err)
		}
		b, err := items(sack.items[half:])
		if err != nil {
			return 0, aoc.ParseErr(sack.line, sack.items, err)
		}
		sum += (a & b).priorities()
	}
	return sum, nil
}

// PartTwo sums the priorities of the badge shared by each group of three
// consecutive rucksacks.
func PartTwo(input string) (int, error) {
	sacks := rucksacks(input)
	if len(sacks)%3 != 0 {
		first := sacks[len(sacks)-len(sacks)%3]
		return 0, aoc.ParseErr(first.line, first.items, ErrIncompleteGroup)
	}
	var sum int
	for g := 0; g < len(sacks); g += 3 {
		common := ^itemSet(0)
		for _, sack := range sacks[g : g+3] {
			set, err := items(sack.items)
			if err != nil {
				return 0, aoc.ParseErr(sack.line, sack.items, err)
			}
			common &= set
		}
		sum += common.priorities()
	}
	return sum, nil
}
