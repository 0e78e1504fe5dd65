package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerTokens(t *testing.T) {
	t.Parallel()
	sc := &scanner{src: "ab~a~8,2Fc"}

	tok, ok, err := sc.next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tokenLiteral, tok.kind)
	assert.Equal(t, "ab", tok.text)

	tok, ok, err = sc.next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tokenDirective, tok.kind)
	assert.Equal(t, byte('a'), tok.code)

	tok, ok, err = sc.next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, byte('f'), tok.code)
	assert.True(t, tok.hasWidth)
	assert.Equal(t, 8, tok.width)
	assert.True(t, tok.hasPrec)
	assert.Equal(t, 2, tok.prec)

	tok, ok, err = sc.next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tokenLiteral, tok.kind)
	assert.Equal(t, "c", tok.text)

	_, ok, err = sc.next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScannerEmptyParamSegments(t *testing.T) {
	t.Parallel()
	sc := &scanner{src: "~,3f"}
	tok, ok, err := sc.next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, tok.hasWidth)
	assert.True(t, tok.hasPrec)
	assert.Equal(t, 3, tok.prec)
}

func TestScannerFoldsUpperCase(t *testing.T) {
	t.Parallel()
	sc := &scanner{src: "~W"}
	tok, _, err := sc.next()
	require.NoError(t, err)
	assert.Equal(t, byte('w'), tok.code)
}

func TestPadLeftWideChars(t *testing.T) {
	t.Parallel()
	// "你" occupies two display cells, so only two pad spaces are needed.
	assert.Equal(t, "  你好", padLeft("你好", 6, true))
	assert.Equal(t, "abc", padLeft("abc", 2, true))
	assert.Equal(t, "abc", padLeft("abc", 0, false))
}

func TestArgCursor(t *testing.T) {
	t.Parallel()
	c := &argCursor{args: []any{1, 2}}

	v, err := c.next('a')
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Error(t, c.finish())

	v, err = c.next('a')
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.NoError(t, c.finish())

	_, err = c.next('a')
	assert.ErrorIs(t, err, ErrArgumentUnderflow)
}

func TestNodeKeyIdentity(t *testing.T) {
	t.Parallel()
	p := &Pair{Car: 1}
	k1, ok := nodeKey(p)
	require.True(t, ok)
	k2, _ := nodeKey(p)
	assert.Equal(t, k1, k2)

	_, ok = nodeKey((*Pair)(nil))
	assert.False(t, ok)
	_, ok = nodeKey([]any{})
	assert.False(t, ok)
	_, ok = nodeKey("atom")
	assert.False(t, ok)

	v := []any{1, 2}
	ka, ok := nodeKey(v)
	require.True(t, ok)
	kb, _ := nodeKey(v[:1])
	assert.Equal(t, ka, kb)
}

func TestFixedFloatStableCrossover(t *testing.T) {
	t.Parallel()
	below := fixedFloat(expCrossover/10, 2)
	at := fixedFloat(expCrossover, 2)
	assert.NotContains(t, below, "e")
	assert.Contains(t, at, "e")
	assert.Equal(t, at, fixedFloat(expCrossover, 2))
}

func TestListConstruction(t *testing.T) {
	t.Parallel()
	assert.Nil(t, List())
	l := List(1, 2)
	assert.Equal(t, 1, l.Car)
	assert.Equal(t, 2, l.Cdr.(*Pair).Car)
	assert.Nil(t, l.Cdr.(*Pair).Cdr)
}
