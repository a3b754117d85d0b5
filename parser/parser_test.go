// Copyright © 2026 The curt authors

package parser

import (
	"strings"
	"testing"

	"github.com/curtlang/curt/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAtoms(t *testing.T) {
	tests := []struct {
		text string
		typ  term.TType
		out  string
	}{
		{"12", term.TInt, "12"},
		{"-4", term.TInt, "-4"},
		{"+4", term.TInt, "4"},
		{"x", term.TSymbol, "'x"},
		{"'x", term.TSymbol, "'x"},
		{"carx", term.TSymbol, "'carx"},
		{"+", term.TOperator, "<+>"},
		{"-", term.TOperator, "<->"},
		{"*", term.TOperator, "<*>"},
		{"/", term.TOperator, "</>"},
		{`\`, term.TOperator, "<lambda>"},
		{"car", term.TOperator, "<car>"},
		{"cdr", term.TOperator, "<cdr>"},
		{"lambda", term.TOperator, "<lambda>"},
		// a leading quote forces symbolhood for operator tokens
		{"'+", term.TSymbol, "'+"},
		{"'lambda", term.TSymbol, "'lambda"},
	}
	for _, test := range tests {
		v, err := ParseString(test.text)
		require.NoError(t, err, "text %q", test.text)
		assert.Equal(t, test.typ, v.Type, "text %q", test.text)
		assert.Equal(t, test.out, v.String(), "text %q", test.text)
	}
}

func TestParseLists(t *testing.T) {
	tests := []struct {
		text string
		out  string
	}{
		{"()", "[]"},
		{"(x)", "['x]"},
		{"(+ 2 3)", "[<+>, 2, 3]"},
		{"(car x (cdr y z))", "[<car>, 'x, [<cdr>, 'y, 'z]]"},
		{`(\ x (+ x 1))`, "[<lambda>, 'x, [<+>, 'x, 1]]"},
		{"( x\n\ty )", "['x, 'y]"},
	}
	for _, test := range tests {
		v, err := ParseString(test.text)
		require.NoError(t, err, "text %q", test.text)
		require.Equal(t, term.TList, v.Type, "text %q", test.text)
		assert.Equal(t, test.out, v.String(), "text %q", test.text)
	}
}

func TestParseMulti(t *testing.T) {
	vals, n, err := Parse([]byte("(+ 1 2) (car x y)\n'z"))
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.Equal(t, len("(+ 1 2) (car x y)\n'z"), n)
	assert.Equal(t, "[<+>, 1, 2]", vals[0].String())
	assert.Equal(t, "[<car>, 'x, 'y]", vals[1].String())
	assert.Equal(t, "'z", vals[2].String())
}

func TestParseComments(t *testing.T) {
	vals, _, err := Parse([]byte("; leading comment\n(+ 1 2) ; trailing\n; only a comment"))
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Equal(t, "[<+>, 1, 2]", vals[0].String())

	vals, _, err = Parse([]byte("(car ; inline\n x y)"))
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Equal(t, "[<car>, 'x, 'y]", vals[0].String())
}

func TestParseWhitespaceOnly(t *testing.T) {
	vals, _, err := Parse([]byte("  \n\t "))
	require.NoError(t, err)
	assert.Len(t, vals, 0)

	v, err := ParseString("")
	require.NoError(t, err)
	assert.True(t, v.IsNil())
}

func TestParseUnmatched(t *testing.T) {
	_, _, err := Parse([]byte("(+ 1 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmatched")
}

func TestParseTrailingGarbage(t *testing.T) {
	_, _, err := Parse([]byte("(+ 1 2))"))
	require.Error(t, err)
}

func TestParseStringSingle(t *testing.T) {
	_, err := ParseString("(+ 1 2) (+ 3 4)")
	require.Error(t, err)
}

func TestReader(t *testing.T) {
	vals, err := Reader(strings.NewReader("(+ 1 2)\n(cdr x y z)\n"))
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.Equal(t, "[<cdr>, 'x, 'y, 'z]", vals[1].String())
}
