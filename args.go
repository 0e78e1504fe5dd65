package format

import "fmt"

// argCursor walks an argument list exactly once. The cursor only ever moves
// forward; recursive ~? calls get their own cursor over their own list.
type argCursor struct {
	args []any
	pos  int
}

// next consumes and returns the next argument. code is the directive asking,
// used only for error context.
func (c *argCursor) next(code byte) (any, error) {
	if c.pos >= len(c.args) {
		return nil, fmt.Errorf("%w: directive ~%c has no argument (consumed %d)", ErrArgumentUnderflow, code, c.pos)
	}
	v := c.args[c.pos]
	c.pos++
	return v, nil
}

// finish reports whether every argument was consumed. Called once, after the
// template scan completes.
func (c *argCursor) finish() error {
	if rest := len(c.args) - c.pos; rest > 0 {
		return fmt.Errorf("%w: %d argument(s) left over", ErrArgumentOverflow, rest)
	}
	return nil
}
