package aoc

import (
	"errors"
	"fmt"
)

var (
	ErrInputNotFound   = errors.New("input not found")
	ErrInputUnreadable = errors.New("input unreadable")
	ErrEmptyInput      = errors.New("input is empty")
	ErrUnknownDay      = errors.New("not implemented")
	ErrNoSample        = errors.New("no sample configured")
)

// UnknownDayError reports a day id with no registered solvers.
// It matches ErrUnknownDay under errors.Is.
type UnknownDayError struct {
	Day int
}

func (e *UnknownDayError) Error() string {
	return fmt.Sprintf("day %d %v", e.Day, ErrUnknownDay)
}

func (e *UnknownDayError) Is(target error) bool { return target == ErrUnknownDay }

// ParseError locates a grammar violation in a puzzle input. Err is the
// day-specific kind, e.g. a malformed range or an unknown hand token.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

// ParseErr returns a *ParseError for the 1-based line holding text.
func ParseErr(line int, text string, kind error) error {
	return &ParseError{Line: line, Text: text, Err: kind}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SampleMismatchError is returned when a solver disagrees with the
// expected answer for a day's example input.
type SampleMismatchError struct {
	Day  int
	Part string
	Got  string
	Want string
}

func (e *SampleMismatchError) Error() string {
	return fmt.Sprintf("day %d %s sample: got %s; want %s", e.Day, e.Part, e.Got, e.Want)
}
