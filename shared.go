package format

import (
	"fmt"
	"strings"
)

// labelTable maps node identity to an assigned back-reference label. It lives
// for the duration of one ~w rendering.
type labelTable struct {
	labels  map[any]int
	emitted map[any]bool
	next    int
}

// writeShared renders v machine-readably with shared-structure labels. Every
// compound node reached more than once (by identity) is emitted once as
// #n=<datum> and as #n# thereafter, so the output is finite even for cyclic
// inputs.
func writeShared(v any) string {
	t := &labelTable{
		labels:  make(map[any]int),
		emitted: make(map[any]bool),
	}
	t.discover(v, make(map[any]bool))
	var b strings.Builder
	t.emit(&b, v)
	return b.String()
}

// nodeKey returns the identity key for compound values. Atoms have no key and
// are never shared. Slice identity is the address of the backing array's
// first element; empty slices have no cells to share.
func nodeKey(v any) (any, bool) {
	switch x := v.(type) {
	case *Pair:
		if x == nil {
			return nil, false
		}
		return x, true
	case []any:
		if len(x) == 0 {
			return nil, false
		}
		return &x[0], true
	}
	return nil, false
}

// discover walks the value graph depth-first. A compound node seen a second
// time gets a label; already-labeled nodes are not re-descended, which is
// what terminates the walk on cycles.
func (t *labelTable) discover(v any, seen map[any]bool) {
	key, ok := nodeKey(v)
	if !ok {
		return
	}
	if seen[key] {
		if _, dup := t.labels[key]; !dup {
			t.next++
			t.labels[key] = t.next
		}
		return
	}
	seen[key] = true
	switch x := v.(type) {
	case *Pair:
		t.discover(x.Car, seen)
		t.discover(x.Cdr, seen)
	case []any:
		for _, e := range x {
			t.discover(e, seen)
		}
	}
}

func (t *labelTable) emit(b *strings.Builder, v any) {
	if key, compound := nodeKey(v); compound {
		if n, labeled := t.labels[key]; labeled {
			if t.emitted[key] {
				fmt.Fprintf(b, "#%d#", n)
				return
			}
			t.emitted[key] = true
			fmt.Fprintf(b, "#%d=", n)
		}
	}
	switch x := v.(type) {
	case *Pair:
		t.emitList(b, x)
	case []any:
		b.WriteString("#(")
		for i, e := range x {
			if i > 0 {
				b.WriteByte(' ')
			}
			t.emit(b, e)
		}
		b.WriteByte(')')
	default:
		b.WriteString(writeText(v))
	}
}

func (t *labelTable) emitList(b *strings.Builder, p *Pair) {
	if p == nil {
		b.WriteString("()")
		return
	}
	b.WriteByte('(')
	t.emit(b, p.Car)
	rest := p.Cdr
	for {
		q, ok := rest.(*Pair)
		if !ok || q == nil {
			break
		}
		// A labeled tail must appear in dotted position so its label
		// wraps the whole sub-list.
		if key, _ := nodeKey(q); t.labels[key] != 0 {
			b.WriteString(" . ")
			t.emit(b, q)
			b.WriteByte(')')
			return
		}
		b.WriteByte(' ')
		t.emit(b, q.Car)
		rest = q.Cdr
	}
	if !isNilList(rest) {
		b.WriteString(" . ")
		t.emit(b, rest)
	}
	b.WriteByte(')')
}
