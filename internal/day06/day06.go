// Package day06 locates markers in the device's datastream.
package day06

import (
	"fmt"

	"github.com/adventsolve/aoc"
	"github.com/adventsolve/aoc/internal/window"
)

const (
	PacketMarker  = 4
	MessageMarker = 14
)

// marker scans the first line of input for size distinct characters.
func marker(input string, size int) (int, error) {
	lines := aoc.Lines(input)
	if len(lines) == 0 {
		return 0, fmt.Errorf("empty datastream: %w", window.ErrNoMarker)
	}
	pos, err := window.Find(lines[0], size)
	if err != nil {
		return 0, aoc.ParseErr(1, lines[0], err)
	}
	return pos, nil
}

// PartOne returns the position after the first start-of-packet marker.
func PartOne(input string) (int, error) {
	return marker(input, PacketMarker)
}

// PartTwo returns the position after the first start-of-message marker.
func PartTwo(input string) (int, error) {
	return marker(input, MessageMarker)
}
