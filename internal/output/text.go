package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/draftmsg/draftmsg/internal/classify"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	addedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	messageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// TextWriter renders the human-readable analysis report followed by the
// suggested commit message.
type TextWriter struct {
	NoColor bool
}

func (t *TextWriter) Write(w io.Writer, a classify.Analysis, msg classify.Message) error {
	ew := &errWriter{w: w}

	ew.println(t.style(headerStyle, "Change Analysis"))
	ew.println(strings.Repeat("─", 40))

	for _, c := range classify.Categories() {
		kws := a.Matched(c)
		if len(kws) == 0 {
			continue
		}
		ew.printf("%s: %s\n", t.style(categoryStyle, classify.Label(c)), strings.Join(kws, ", "))
	}

	ew.printf("%s: %d\n", t.style(addedStyle, "Lines added"), a.LinesAdded)
	ew.printf("%s: %d\n", t.style(removedStyle, "Lines removed"), a.LinesRemoved)

	ew.println("")
	ew.println(t.style(headerStyle, "Suggested commit message"))
	ew.println(strings.Repeat("─", 40))
	ew.println(t.style(messageStyle, msg.String()))

	return ew.err
}

func (t *TextWriter) style(s lipgloss.Style, text string) string {
	if t.NoColor {
		return text
	}
	return s.Render(text)
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
