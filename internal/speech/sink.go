// Package speech turns overlay facts into announcement strings and
// delivers them to a screen-reader sink.
package speech

import (
	"fmt"
	"io"
	"os"
)

// Sink delivers announcements. Fire-and-forget: delivery failures are
// logged by the implementation and dropped, callers never retry.
type Sink interface {
	Speak(text string, interrupt bool)
}

// Writer speaks by writing one line per announcement, used by the
// simulator when no bridge is configured.
type Writer struct {
	W io.Writer
}

// NewStdout returns a Writer sink on standard output.
func NewStdout() *Writer { return &Writer{W: os.Stdout} }

// Speak writes the announcement as a line; interrupts are marked so a
// transcript reader can tell them apart.
func (w *Writer) Speak(text string, interrupt bool) {
	marker := ""
	if interrupt {
		marker = "! "
	}
	fmt.Fprintf(w.W, "%s%s\n", marker, text)
}

// Memory captures announcements for tests.
type Memory struct {
	Lines      []string
	Interrupts []bool
}

// Speak records the announcement.
func (m *Memory) Speak(text string, interrupt bool) {
	m.Lines = append(m.Lines, text)
	m.Interrupts = append(m.Interrupts, interrupt)
}

// Last returns the most recent announcement, "" when nothing was spoken.
func (m *Memory) Last() string {
	if len(m.Lines) == 0 {
		return ""
	}
	return m.Lines[len(m.Lines)-1]
}
