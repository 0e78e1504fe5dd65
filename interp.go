package format

import "fmt"

// interpret drives one pass over template, consuming from args and writing to
// s. Recursive ~? calls re-enter here with a fresh cursor but the same sink,
// so freshline state spans the recursion boundary.
func interpret(s *Sink, template string, args *argCursor) error {
	sc := &scanner{src: template}
	for {
		tok, ok, err := sc.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if tok.kind == tokenLiteral {
			if err := s.WriteString(tok.text); err != nil {
				return err
			}
			continue
		}
		if err := dispatch(s, tok, args); err != nil {
			return err
		}
	}
}

func dispatch(s *Sink, tok token, args *argCursor) error {
	switch tok.code {
	case '~':
		return s.WriteString("~")
	case 't':
		return s.WriteString("\t")
	case '%':
		return s.WriteString("\n")
	case '&':
		return s.Freshline()
	case '_':
		return s.WriteString(" ")
	case 'h':
		return s.WriteString(helpText)
	}

	v, err := args.next(tok.code)
	if err != nil {
		return err
	}
	switch tok.code {
	case 'a':
		return s.WriteString(display(v))
	case 's':
		return s.WriteString(writeText(v))
	case 'w':
		return s.WriteString(writeShared(v))
	case 'y':
		return s.WriteString(prettyText(v))
	case 'd':
		return writeRadix(s, v, 10, tok.code)
	case 'x':
		return writeRadix(s, v, 16, tok.code)
	case 'o':
		return writeRadix(s, v, 8, tok.code)
	case 'b':
		return writeRadix(s, v, 2, tok.code)
	case 'c':
		text, err := renderChar(v)
		if err != nil {
			return err
		}
		return s.WriteString(text)
	case 'f':
		text, err := renderFixed(v, tok)
		if err != nil {
			return err
		}
		return s.WriteString(text)
	case '?', 'k':
		return recurse(s, tok.code, v, args)
	}
	return fmt.Errorf("%w: unknown directive ~%c", ErrMalformedDirective, tok.code)
}

func writeRadix(s *Sink, v any, base int, code byte) error {
	text, err := renderRadix(v, base, code)
	if err != nil {
		return err
	}
	return s.WriteString(text)
}

func renderChar(v any) (string, error) {
	switch x := v.(type) {
	case Char:
		return string(rune(x)), nil
	case rune:
		return string(x), nil
	}
	return "", fmt.Errorf("%w: directive ~c requires a character, got %T", ErrTypeMismatch, v)
}

// recurse runs a sub-template against its own argument list, writing into the
// same sink. The sub-template has already been consumed as v; the argument
// list is the next argument.
func recurse(s *Sink, code byte, v any, args *argCursor) error {
	sub, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: directive ~%c requires a template string, got %T", ErrTypeMismatch, code, v)
	}
	rest, err := args.next(code)
	if err != nil {
		return err
	}
	inner, err := argList(code, rest)
	if err != nil {
		return err
	}
	cur := &argCursor{args: inner}
	if err := interpret(s, sub, cur); err != nil {
		return err
	}
	return cur.finish()
}

// argList coerces the second ~? operand into an argument slice. Proper lists
// and []any slices qualify; anything else is a type error.
func argList(code byte, v any) ([]any, error) {
	switch x := v.(type) {
	case []any:
		return x, nil
	case nil:
		return nil, nil
	case *Pair:
		var out []any
		for p := x; p != nil; {
			out = append(out, p.Car)
			switch cdr := p.Cdr.(type) {
			case nil:
				return out, nil
			case *Pair:
				p = cdr
			default:
				return nil, fmt.Errorf("%w: directive ~%c requires a proper argument list", ErrTypeMismatch, code)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: directive ~%c requires an argument list, got %T", ErrTypeMismatch, code, v)
}
