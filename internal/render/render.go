// Package render prints answers as delimited blocks.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const rule = "-----------------------------"

var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
	answerStyle = lipgloss.NewStyle().Bold(true)
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#16858E")).
			Padding(0, 1)
)

// Printer writes one block per answer to w.
type Printer struct {
	w      io.Writer
	styled bool
}

// New returns a Printer for w. Output is boxed and coloured only when w
// is a terminal and plain is false.
func New(w io.Writer, plain bool) *Printer {
	return &Printer{w: w, styled: !plain && isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PrintAnswer writes label and answer as one block.
func (p *Printer) PrintAnswer(label string, answer any) error {
	var err error
	if p.styled {
		body := labelStyle.Render(label+":") + " " + answerStyle.Render(fmt.Sprint(answer))
		_, err = fmt.Fprintln(p.w, boxStyle.Render(body))
	} else {
		_, err = fmt.Fprintln(p.w, Plain(label, answer))
	}
	return err
}

// Plain renders the unstyled block for label and answer.
func Plain(label string, answer any) string {
	return strings.Join([]string{
		rule,
		fmt.Sprintf("%s: %v", label, answer),
		rule,
	}, "\n")
}
