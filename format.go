package format

import (
	"errors"
	"io"
	"os"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMalformedDirective = errors.New("malformed directive")
	ErrArgumentUnderflow  = errors.New("argument underflow")
	ErrArgumentOverflow   = errors.New("argument overflow")
	ErrTypeMismatch       = errors.New("type mismatch")
)

// String interprets template against args and returns the accumulated text.
func String(template string, args ...any) (string, error) {
	var b strings.Builder
	s := NewSink(&b)
	if err := s.Format(template, args...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write interprets template against args and writes the output to w. Output
// produced before an error is not rolled back.
func Write(w io.Writer, template string, args ...any) error {
	return NewSink(w).Format(template, args...)
}

// Print interprets template against args and writes the output to standard
// output.
func Print(template string, args ...any) error {
	return Write(os.Stdout, template, args...)
}
