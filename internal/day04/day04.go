// Package day04 compares the section ranges assigned to pairs of elves.
package day04

import (
	"errors"
	"strconv"
	"strings"

	"github.com/adventsolve/aoc"
)

var (
	ErrMalformedPair  = errors.New("pair needs two comma-separated ranges")
	ErrMalformedRange = errors.New("malformed section range")
)

// Section is the closed range of section ids [Low, High].
type Section struct {
	Low, High int
}

// ParseSection parses "low-high". Low may not exceed High.
func ParseSection(s string) (Section, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Section{}, ErrMalformedRange
	}
	low, err := strconv.Atoi(lo)
	if err != nil {
		return Section{}, ErrMalformedRange
	}
	high, err := strconv.Atoi(hi)
	if err != nil || high < low {
		return Section{}, ErrMalformedRange
	}
	return Section{low, high}, nil
}

// Contains reports whether o lies entirely within s.
func (s Section) Contains(o Section) bool {
	return s.Low <= o.Low && o.High <= s.High
}

// Overlaps reports whether s and o share at least one section.
func (s Section) Overlaps(o Section) bool {
	return s.High >= o.Low && s.Low <= o.High
}

// count returns the number of pairs for which match holds.
func count(input string, match func(a, b Section) bool) (int, error) {
	var n int
	for i, line := range aoc.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		l, r, ok := strings.Cut(line, ",")
		if !ok {
			return 0, aoc.ParseErr(i+1, line, ErrMalformedPair)
		}
		a, err := ParseSection(l)
		if err != nil {
			return 0, aoc.ParseErr(i+1, line, err)
		}
		b, err := ParseSection(r)
		if err != nil {
			return 0, aoc.ParseErr(i+1, line, err)
		}
		if match(a, b) {
			n++
		}
	}
	return n, nil
}

// PartOne counts pairs where one range fully contains the other.
func PartOne(input string) (int, error) {
	return count(input, func(a, b Section) bool {
		return a.Contains(b) || b.Contains(a)
	})
}

// PartTwo counts pairs whose ranges overlap at all.
func PartTwo(input string) (int, error) {
	return count(input, Section.Overlaps)
}
