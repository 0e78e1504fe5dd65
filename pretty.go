package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// MaxInlineWidth controls when the ~y directive keeps a list on one line. A
// list whose one-line rendering exceeds this many display cells is broken
// across lines, one element per line, aligned by nesting depth.
//
// Read at call time; safe to change between calls.
var MaxInlineWidth = 80

// prettyText renders v for the ~y directive. Atoms and short lists render
// exactly like ~s; long lists and vectors spill onto multiple lines.
func prettyText(v any) string {
	var b strings.Builder
	prettyDatum(&b, v, 0)
	return b.String()
}

func prettyDatum(b *strings.Builder, v any, depth int) {
	one := writeText(v)
	if runewidth.StringWidth(one) <= MaxInlineWidth {
		b.WriteString(one)
		return
	}
	switch x := v.(type) {
	case *Pair:
		if x == nil {
			b.WriteString("()")
			return
		}
		b.WriteByte('(')
		prettyDatum(b, x.Car, depth+1)
		rest := x.Cdr
		for {
			q, ok := rest.(*Pair)
			if !ok || q == nil {
				break
			}
			prettyBreak(b, depth+1)
			prettyDatum(b, q.Car, depth+1)
			rest = q.Cdr
		}
		if !isNilList(rest) {
			prettyBreak(b, depth+1)
			b.WriteString(". ")
			prettyDatum(b, rest, depth+1)
		}
		b.WriteByte(')')
	case []any:
		b.WriteString("#(")
		for i, e := range x {
			if i > 0 {
				prettyBreak(b, depth+1)
			}
			prettyDatum(b, e, depth+1)
		}
		b.WriteByte(')')
	default:
		b.WriteString(one)
	}
}

func prettyBreak(b *strings.Builder, depth int) {
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}
