// Package day05 simulates a crane rearranging stacks of crates.
//
// The input starts with a drawing of the stacks:
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
// followed by a blank line and one "move N from A to B" per line.
// Each cell of the drawing is three characters wide with one space
// between cells; the bottom row labels the stacks 1..n.
package day05

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/adventsolve/aoc"
)

var (
	ErrMalformedCrate       = errors.New("malformed crate cell")
	ErrMalformedLayout      = errors.New("malformed stack drawing")
	ErrMalformedInstruction = errors.New("malformed instruction")
	ErrInvalidMove          = errors.New("invalid move")
)

// Crate is the letter painted on a crate.
type Crate rune

// Crane selects how a move carries its crates.
type Crane int

const (
	// CrateMover9000 lifts one crate at a time, so a moved batch arrives
	// in reverse order.
	CrateMover9000 Crane = iota
	// CrateMover9001 lifts the whole batch at once, keeping its order.
	CrateMover9001
)

// Instruction moves Amount crates from stack From to stack To.
// Stacks are numbered from 1.
type Instruction struct {
	Amount, From, To int
}

func (in Instruction) String() string {
	return fmt.Sprintf("move %d from %d to %d", in.Amount, in.From, in.To)
}

// ParseInstruction parses exactly "move <amount> from <from> to <to>".
func ParseInstruction(s string) (Instruction, error) {
	f := strings.Split(s, " ")
	if len(f) != 6 || f[0] != "move" || f[2] != "from" || f[4] != "to" {
		return Instruction{}, ErrMalformedInstruction
	}
	var nums [3]int
	for i, tok := range []string{f[1], f[3], f[5]} {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 || tok[0] == '+' {
			return Instruction{}, ErrMalformedInstruction
		}
		nums[i] = n
	}
	return Instruction{Amount: nums[0], From: nums[1], To: nums[2]}, nil
}

// parseCell parses one three-character cell: "[X]" or blank.
func parseCell(cell string) (c Crate, ok bool, err error) {
	if strings.TrimSpace(cell) == "" {
		return 0, false, nil
	}
	if len(cell) != 3 || cell[0] != '[' || cell[2] != ']' || cell[1] == ' ' {
		return 0, false, ErrMalformedCrate
	}
	return Crate(cell[1]), true, nil
}

// Supplies is the set of stacks, indexed from 1 by stack label.
type Supplies struct {
	stacks []aoc.Stack[Crate]
}

// ParseDrawing builds the stacks from the lines of a drawing, the label
// row last. Line numbers in errors start at first.
func ParseDrawing(lines []string, first int) (*Supplies, error) {
	if len(lines) == 0 {
		return nil, aoc.ParseErr(first, "", ErrMalformedLayout)
	}
	labels := lines[len(lines)-1]
	f := strings.Fields(labels)
	if len(f) == 0 {
		return nil, aoc.ParseErr(first+len(lines)-1, labels, ErrMalformedLayout)
	}
	for i, tok := range f {
		if tok != strconv.Itoa(i+1) {
			return nil, aoc.ParseErr(first+len(lines)-1, labels, ErrMalformedLayout)
		}
	}
	n := len(f)
	width := 4*n - 1

	s := &Supplies{stacks: make([]aoc.Stack[Crate], n)}
	// under[i] is set once stack i has had a blank cell, walking upwards.
	under := make([]bool, n)
	for y := len(lines) - 2; y >= 0; y-- {
		row := strings.TrimRight(lines[y], " ")
		if len(row) > width {
			return nil, aoc.ParseErr(first+y, lines[y], ErrMalformedLayout)
		}
		for i := 0; i < n; i++ {
			start := 4 * i
			if start >= len(row) {
				under[i] = true
				continue
			}
			end := min(start+3, len(row))
			if end < len(row) && row[end] != ' ' {
				return nil, aoc.ParseErr(first+y, lines[y], ErrMalformedCrate)
			}
			c, ok, err := parseCell(row[start:end])
			if err != nil {
				return nil, aoc.ParseErr(first+y, lines[y], err)
			}
			if !ok {
				under[i] = true
				continue
			}
			if under[i] {
				// A crate floating above an empty slot.
				return nil, aoc.ParseErr(first+y, lines[y], ErrMalformedLayout)
			}
			s.stacks[i].Push(c)
		}
	}
	return s, nil
}

// Parse splits input into the drawing and the instruction list.
func Parse(input string) (*Supplies, []Instruction, error) {
	lines := aoc.Lines(input)
	sep := slices.IndexFunc(lines, func(l string) bool {
		return strings.TrimSpace(l) == ""
	})
	if sep < 0 {
		return nil, nil, aoc.ParseErr(len(lines), "", ErrMalformedLayout)
	}
	s, err := ParseDrawing(lines[:sep], 1)
	if err != nil {
		return nil, nil, err
	}
	var moves []Instruction
	for i := sep + 1; i < len(lines); i++ {
		if lines[i] == "" {
			continue
		}
		in, err := ParseInstruction(lines[i])
		if err != nil {
			return nil, nil, aoc.ParseErr(i+1, lines[i], err)
		}
		moves = append(moves, in)
	}
	return s, moves, nil
}

// Len returns the number of stacks.
func (s *Supplies) Len() int { return len(s.stacks) }

// Stack returns the crates of stack i, bottom first.
func (s *Supplies) Stack(i int) []Crate {
	return s.stacks[i-1].Items()
}

// Apply carries out in with the given crane. Naming a stack outside the
// drawing, or moving more crates than the source holds, is ErrInvalidMove
// and leaves s unchanged.
func (s *Supplies) Apply(in Instruction, crane Crane) error {
	if in.From < 1 || in.From > len(s.stacks) || in.To < 1 || in.To > len(s.stacks) {
		return fmt.Errorf("%v: no such stack: %w", in, ErrInvalidMove)
	}
	from := &s.stacks[in.From-1]
	if in.Amount > from.Len() {
		return fmt.Errorf("%v: stack %d holds %d: %w", in, in.From, from.Len(), ErrInvalidMove)
	}
	if in.From == in.To {
		return nil
	}
	crates, _ := from.PopN(in.Amount)
	if crane == CrateMover9000 {
		slices.Reverse(crates)
	}
	s.stacks[in.To-1].Push(crates...)
	return nil
}

// Tops returns the top crate of every stack in label order. Empty stacks
// contribute nothing.
func (s *Supplies) Tops() string {
	var b strings.Builder
	for i := range s.stacks {
		if c, ok := s.stacks[i].Peek(); ok {
			b.WriteRune(rune(c))
		}
	}
	return b.String()
}

// String draws the stacks in the input format, label row included.
func (s *Supplies) String() string {
	height := 0
	for i := range s.stacks {
		height = max(height, s.stacks[i].Len())
	}
	cols := make([][]Crate, len(s.stacks))
	for i := range s.stacks {
		cols[i] = s.stacks[i].Items()
	}
	var rows []string
	for y := height - 1; y >= 0; y-- {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = "   "
			if y < len(col) {
				cells[i] = fmt.Sprintf("[%c]", col[y])
			}
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	labels := make([]string, len(cols))
	for i := range cols {
		labels[i] = fmt.Sprintf(" %d ", i+1)
	}
	rows = append(rows, strings.Join(labels, " "))
	return strings.Join(rows, "\n")
}

func simulate(input string, crane Crane) (string, error) {
	s, moves, err := Parse(input)
	if err != nil {
		return "", err
	}
	for i, in := range moves {
		if err := s.Apply(in, crane); err != nil {
			return "", fmt.Errorf("instruction %d: %w", i+1, err)
		}
	}
	return s.Tops(), nil
}

// PartOne returns the top crates after rearranging with a CrateMover 9000.
func PartOne(input string) (string, error) {
	return simulate(input, CrateMover9000)
}

// PartTwo returns the top crates after rearranging with a CrateMover 9001.
func PartTwo(input string) (string, error) {
	return simulate(input, CrateMover9001)
}
