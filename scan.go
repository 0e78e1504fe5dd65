package format

import (
	"fmt"
	"strconv"
	"strings"
)

const directiveMarker = '~'

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenDirective
)

// token is a literal span of the template or a single directive descriptor.
// Only the fixed-format directive carries width/precision parameters.
type token struct {
	kind tokenKind
	text string // literal text, tokenLiteral only
	code byte   // case-folded directive code, tokenDirective only

	width, prec       int
	hasWidth, hasPrec bool
}

// directiveCodes holds every recognized (case-folded) directive code.
const directiveCodes = "aswdxobcy?kf~t%&_h"

// scanner tokenizes a template in a single forward pass. Tokens are produced
// on demand; callers never back up.
type scanner struct {
	src string
	pos int
}

// next returns the next token. The second result is false once the template
// is exhausted.
func (sc *scanner) next() (token, bool, error) {
	if sc.pos >= len(sc.src) {
		return token{}, false, nil
	}
	if sc.src[sc.pos] != directiveMarker {
		start := sc.pos
		if i := strings.IndexByte(sc.src[sc.pos:], directiveMarker); i >= 0 {
			sc.pos += i
		} else {
			sc.pos = len(sc.src)
		}
		return token{kind: tokenLiteral, text: sc.src[start:sc.pos]}, true, nil
	}
	sc.pos++ // marker
	if sc.pos >= len(sc.src) {
		return token{}, false, fmt.Errorf("%w: template ends with %q", ErrMalformedDirective, directiveMarker)
	}
	c := sc.src[sc.pos]
	if isParamByte(c) {
		return sc.scanFixed()
	}
	sc.pos++
	code := foldCode(c)
	if strings.IndexByte(directiveCodes, code) < 0 {
		return token{}, false, fmt.Errorf("%w: unknown directive ~%c", ErrMalformedDirective, c)
	}
	return token{kind: tokenDirective, code: code}, true, nil
}

// scanFixed parses the w[,d] parameter prefix of a fixed-format directive.
// The prefix must be terminated by the fixed-format code itself.
func (sc *scanner) scanFixed() (token, bool, error) {
	start := sc.pos
	for sc.pos < len(sc.src) && isParamByte(sc.src[sc.pos]) {
		sc.pos++
	}
	params := sc.src[start:sc.pos]
	if sc.pos >= len(sc.src) {
		return token{}, false, fmt.Errorf("%w: unterminated parameters %q", ErrMalformedDirective, params)
	}
	term := sc.src[sc.pos]
	if foldCode(term) != 'f' {
		return token{}, false, fmt.Errorf("%w: parameters %q terminated by ~%c, want ~F", ErrMalformedDirective, params, term)
	}
	sc.pos++
	tok := token{kind: tokenDirective, code: 'f'}
	parts := strings.Split(params, ",")
	if len(parts) > 2 {
		return token{}, false, fmt.Errorf("%w: too many parameters in %q", ErrMalformedDirective, params)
	}
	var err error
	if tok.width, tok.hasWidth, err = parseParam(parts[0]); err != nil {
		return token{}, false, err
	}
	if len(parts) == 2 {
		if tok.prec, tok.hasPrec, err = parseParam(parts[1]); err != nil {
			return token{}, false, err
		}
	}
	return tok, true, nil
}

func parseParam(s string) (int, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("%w: parameter %q: %v", ErrMalformedDirective, s, err)
	}
	return n, true, nil
}

func isParamByte(c byte) bool {
	return c == ',' || (c >= '0' && c <= '9')
}

func foldCode(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
