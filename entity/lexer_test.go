package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexCurlyEscapes(t *testing.T) {
	l := NewLexer(`{hello\nworld\{ok\}A\U000042}`)
	e, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, KindString, e.Kind)
	require.Equal(t, "hello\nworld{ok}AB", e.Text)
}

func TestLexCurlyNested(t *testing.T) {
	l := NewLexer(`{a{b}c}`)
	e, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, "a{b}c", e.Text)
}

func TestLexHexEscapeRequiresExactDigits(t *testing.T) {
	l := NewLexer(`{\u41}`)
	_, err := l.Next()
	require.Error(t, err)
}

func TestLexDotEscapeConsumesLine(t *testing.T) {
	l := NewLexer("{before\\.this is eaten\nafter}")
	e, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, "beforeafter", e.Text)
}

func TestLexAtomLiteral(t *testing.T) {
	l := NewLexer(`"Nonzero"`)
	e, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, KindAtomLit, e.Kind)
	require.Equal(t, "Nonzero", e.Text)
}

func TestLexNumeric(t *testing.T) {
	l := NewLexer(`-42`)
	e, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, KindNumeric, e.Kind)
	require.Equal(t, int64(-42), e.Number)
}

func TestLexVarConstDeclAssignGet(t *testing.T) {
	l := NewLexer(`:foo ::bar =foo $bar`)
	kinds := []Kind{KindVarDecl, KindConstDecl, KindAssign, KindGet}
	names := []string{"foo", "bar", "foo", "bar"}
	for i, k := range kinds {
		e, err := l.Next()
		require.NoError(t, err)
		require.Equal(t, k, e.Kind)
		require.Equal(t, names[i], e.Text)
	}
}

func TestLexGroupingAndArray(t *testing.T) {
	l := NewLexer(`( [ ] )`)
	kinds := []Kind{KindBeginGroup, KindBeginArray, KindEndArray, KindEndGroup}
	for _, k := range kinds {
		e, err := l.Next()
		require.NoError(t, err)
		require.Equal(t, k, e.Kind)
	}
}

func TestLexEOFMark(t *testing.T) {
	l := NewLexer("pop ## garbage that should be ignored ) ] {")
	e, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, KindOperation, e.Kind)
	e, err = l.Next()
	require.NoError(t, err)
	require.Equal(t, KindEOF, e.Kind)
	// subsequent reads keep returning EOF
	e, err = l.Next()
	require.NoError(t, err)
	require.Equal(t, KindEOF, e.Kind)
}

func TestReadHeaderDialectA(t *testing.T) {
	l := NewLexer(`%{ scent 1.0 %} pop`)
	h, err := ReadHeader(l)
	require.NoError(t, err)
	require.Equal(t, DialectA, h.Dialect)
	e, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, KindOperation, e.Kind)
	require.Equal(t, "pop", e.Text)
}

func TestReadHeaderDialectBReadsBounds(t *testing.T) {
	src := `%{ scent-embed 1.0 %} %{ bound-x 0 %} %{ bound-y 0 %} %{ bound-w 100 %} %{ bound-h 50 %} %{ body %} pop`
	l := NewLexer(src)
	h, err := ReadHeader(l)
	require.NoError(t, err)
	require.Equal(t, DialectB, h.Dialect)
	require.Equal(t, int64(100), h.BoundW)
}

func TestReadHeaderRejectsWrongVersion(t *testing.T) {
	l := NewLexer(`%{ scent 2.0 %}`)
	_, err := ReadHeader(l)
	require.Error(t, err)
}
