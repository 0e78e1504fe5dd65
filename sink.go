package format

import (
	"io"
	"strings"
)

// Sink is an output destination shared by a whole interpretation, including
// recursive ~? calls. It tracks whether the most recently emitted character
// was a newline, which is what the ~& directive consults. The zero state
// counts as the start of a line, so a leading ~& emits nothing.
//
// A Sink may be reused across multiple Format calls to keep freshline state
// continuous over one output stream.
type Sink struct {
	w           io.Writer
	atLineStart bool
}

// NewSink returns a Sink forwarding to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w, atLineStart: true}
}

// Format interprets template against args and writes the output to the sink.
func (s *Sink) Format(template string, args ...any) error {
	cur := &argCursor{args: args}
	if err := interpret(s, template, cur); err != nil {
		return err
	}
	return cur.finish()
}

// WriteString emits text and updates the freshline flag.
func (s *Sink) WriteString(text string) error {
	if text == "" {
		return nil
	}
	if _, err := io.WriteString(s.w, text); err != nil {
		return err
	}
	s.atLineStart = strings.HasSuffix(text, "\n")
	return nil
}

// Freshline emits a newline unless the sink is already at the start of a
// line.
func (s *Sink) Freshline() error {
	if s.atLineStart {
		return nil
	}
	return s.WriteString("\n")
}
