package format

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Pair is a mutable cons cell. Proper lists are chains of Pairs whose final
// Cdr is nil; anything else in the final Cdr makes the list improper. A Pair
// is identified by its pointer, which is what the ~w directive's sharing
// detection keys on.
type Pair struct {
	Car, Cdr any
}

// List builds a proper list from items. List() returns nil, the empty list.
func List(items ...any) *Pair {
	var head *Pair
	for i := len(items) - 1; i >= 0; i-- {
		head = &Pair{Car: items[i], Cdr: headOrNil(head)}
	}
	return head
}

func headOrNil(p *Pair) any {
	if p == nil {
		return nil
	}
	return p
}

// Symbol renders bare under both the human-readable and machine-readable
// renderers.
type Symbol string

// Char is a single character. Under ~a it renders verbatim; under ~s and ~w
// it renders in #\x notation. Plain rune values are treated as integers by
// ~a/~s and as characters only by ~c.
type Char rune

// display renders v human-readably: strings raw, chars verbatim.
func display(v any) string {
	var b strings.Builder
	renderDatum(&b, v, false)
	return b.String()
}

// writeText renders v machine-readably: strings quoted, chars in #\x
// notation. Cyclic structure is not detected here; use ~w for that.
func writeText(v any) string {
	var b strings.Builder
	renderDatum(&b, v, true)
	return b.String()
}

func renderDatum(b *strings.Builder, v any, machine bool) {
	switch x := v.(type) {
	case nil:
		b.WriteString("()")
	case bool:
		if x {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case string:
		if machine {
			b.WriteString(quoteString(x))
		} else {
			b.WriteString(x)
		}
	case Symbol:
		b.WriteString(string(x))
	case Char:
		if machine {
			b.WriteString(charName(rune(x)))
		} else {
			b.WriteRune(rune(x))
		}
	case *Pair:
		renderList(b, x, machine)
	case []any:
		b.WriteString("#(")
		for i, e := range x {
			if i > 0 {
				b.WriteByte(' ')
			}
			renderDatum(b, e, machine)
		}
		b.WriteByte(')')
	case int:
		b.WriteString(strconv.Itoa(x))
	case int8:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case int16:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case int32:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case int64:
		b.WriteString(strconv.FormatInt(x, 10))
	case uint:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint8:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint16:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint32:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint64:
		b.WriteString(strconv.FormatUint(x, 10))
	case *big.Int:
		b.WriteString(x.String())
	case *big.Rat:
		b.WriteString(x.RatString())
	case float32:
		b.WriteString(naturalFloat(float64(x), 32))
	case float64:
		b.WriteString(naturalFloat(x, 64))
	case complex64:
		b.WriteString(naturalComplex(complex128(x)))
	case complex128:
		b.WriteString(naturalComplex(x))
	default:
		fmt.Fprintf(b, "%v", x)
	}
}

func renderList(b *strings.Builder, p *Pair, machine bool) {
	if p == nil {
		b.WriteString("()")
		return
	}
	b.WriteByte('(')
	renderDatum(b, p.Car, machine)
	rest := p.Cdr
	for {
		q, ok := rest.(*Pair)
		if !ok {
			break
		}
		if q == nil {
			rest = nil
			break
		}
		b.WriteByte(' ')
		renderDatum(b, q.Car, machine)
		rest = q.Cdr
	}
	if !isNilList(rest) {
		b.WriteString(" . ")
		renderDatum(b, rest, machine)
	}
	b.WriteByte(')')
}

// isNilList reports whether v is the empty list: a nil interface or a typed
// nil *Pair.
func isNilList(v any) bool {
	if v == nil {
		return true
	}
	p, ok := v.(*Pair)
	return ok && p == nil
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func charName(r rune) string {
	switch r {
	case ' ':
		return `#\space`
	case '\n':
		return `#\newline`
	case '\t':
		return `#\tab`
	default:
		return `#\` + string(r)
	}
}
