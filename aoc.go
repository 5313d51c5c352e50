// Package aoc holds the day registry, the input loader and the small
// helpers the puzzle solvers share.
package aoc

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Answer is the type of value a part solver may produce.
type Answer interface {
	~int | ~string
}

// Part solves one half of a day's puzzle.
type Part func(input string) (any, error)

// Solve adapts a typed solver into a Part.
func Solve[T Answer](f func(input string) (T, error)) Part {
	return func(input string) (any, error) {
		v, err := f(input)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Day is a registered puzzle: one input format, two parts.
type Day struct {
	ID      int
	PartOne Part
	PartTwo Part
}

var puzzleByDay = map[int]Day{} // day id -> solvers

// Add registers the solvers for day id. It panics if id is already
// registered or either part is nil.
func Add(id int, partOne, partTwo Part) {
	if partOne == nil || partTwo == nil {
		panic(fmt.Sprintf("day %d registered without both parts", id))
	}
	if _, dup := puzzleByDay[id]; dup {
		panic(fmt.Sprintf("day %d registered twice", id))
	}
	puzzleByDay[id] = Day{ID: id, PartOne: partOne, PartTwo: partTwo}
}

// Lookup returns the solvers registered for day id.
func Lookup(id int) (Day, error) {
	d, ok := puzzleByDay[id]
	if !ok {
		return Day{}, &UnknownDayError{Day: id}
	}
	return d, nil
}

// Days returns the registered day ids in ascending order.
func Days() []int {
	ids := maps.Keys(puzzleByDay)
	slices.Sort(ids)
	return ids
}

// Lines splits input into lines. A single trailing newline does not
// produce a final empty line, and CRLF endings are accepted.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Or returns the first non-zero element of list, or else returns the zero T.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}

type Number interface {
	constraints.Float | constraints.Integer
}

func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Stack is a LIFO of T. The zero value is an empty stack.
type Stack[T any] struct {
	s []T
}

// Push adds vs to the top, in order, so the last of vs ends on top.
func (s *Stack[T]) Push(vs ...T) {
	s.s = append(s.s, vs...)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

// PopN removes the top n values and returns them bottom first.
// If fewer than n values are present, the stack is left untouched and
// ok is false.
func (s *Stack[T]) PopN(n int) (vs []T, ok bool) {
	if n < 0 || n > len(s.s) {
		return nil, false
	}
	vs = slices.Clone(s.s[len(s.s)-n:])
	s.s = s.s[:len(s.s)-n]
	return vs, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

func (s *Stack[T]) Len() int { return len(s.s) }

// Items returns a copy of the stack contents, bottom first.
func (s *Stack[T]) Items() []T { return slices.Clone(s.s) }
