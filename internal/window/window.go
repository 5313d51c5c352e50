// Package window finds markers in a stream of text: the first point at
// which the most recent n grapheme clusters are pairwise distinct.
//
// A Scanner keeps the distinct suffix of the units seen so far in a ring
// buffer. When a new unit repeats one already in the window, everything
// up to and including the earlier copy is dropped, so each unit enters
// and leaves the window at most once.
package window

import (
	"errors"

	"github.com/rivo/uniseg"
)

var (
	ErrInvalidSize = errors.New("window size must be positive")
	ErrNoMarker    = errors.New("no marker found")
)

// Scanner is the state of one left-to-right scan.
type Scanner struct {
	buf   []string // ring buffer of capacity size
	start int      // index of the oldest unit in buf
	n     int      // units currently in the window
	pos   int      // units consumed so far
}

// NewScanner returns a Scanner looking for size distinct units.
func NewScanner(size int) (*Scanner, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}
	return &Scanner{buf: make([]string, size)}, nil
}

// Size returns the window size the scanner looks for.
func (s *Scanner) Size() int { return len(s.buf) }

// Pos returns the 1-based position of the last unit pushed.
func (s *Scanner) Pos() int { return s.pos }

// Full reports whether the window holds Size distinct units.
func (s *Scanner) Full() bool { return s.n == len(s.buf) }

// Window returns the current window contents, oldest first.
func (s *Scanner) Window() []string {
	out := make([]string, s.n)
	for i := range out {
		out[i] = s.at(i)
	}
	return out
}

func (s *Scanner) at(i int) string {
	return s.buf[(s.start+i)%len(s.buf)]
}

// Push consumes the next unit and reports whether the window is now full.
func (s *Scanner) Push(unit string) bool {
	s.pos++
	for i := 0; i < s.n; i++ {
		if s.at(i) == unit {
			s.drop(i + 1)
			break
		}
	}
	if s.n == len(s.buf) {
		s.drop(1)
	}
	s.buf[(s.start+s.n)%len(s.buf)] = unit
	s.n++
	return s.n == len(s.buf)
}

// drop evicts the k oldest units.
func (s *Scanner) drop(k int) {
	s.start = (s.start + k) % len(s.buf)
	s.n -= k
}

// Find returns the 1-based position in text of the first grapheme
// cluster that completes a window of size distinct clusters.
func Find(text string, size int) (int, error) {
	s, err := NewScanner(size)
	if err != nil {
		return 0, err
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		if s.Push(g.Str()) {
			return s.Pos(), nil
		}
	}
	return 0, ErrNoMarker
}
