// Copyright © 2026 The curt authors

package term_test

import (
	"testing"

	"github.com/curtlang/curt/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAtoms(t *testing.T) {
	assert.True(t, term.Build("12").Equal(term.Int(12)))
	assert.True(t, term.Build("-4").Equal(term.Int(-4)))
	assert.True(t, term.Build(7).Equal(term.Int(7)))
	assert.True(t, term.Build("twelve").Equal(term.Symbol("twelve")))
}

func TestBuildList(t *testing.T) {
	v := term.Build([]interface{}{"x", "2", []interface{}{"y"}})
	require.Equal(t, term.TList, v.Type)
	assert.Equal(t, "['x, 2, ['y]]", v.String())
}

func TestBuildPassthrough(t *testing.T) {
	op := term.Op(term.OpPlus)
	v := term.Build([]interface{}{op, "1", "2"})
	require.Equal(t, term.TList, v.Type)
	assert.True(t, v.Head().Equal(op))
}

func TestBuildEmpty(t *testing.T) {
	v := term.Build([]interface{}{})
	require.Equal(t, term.TList, v.Type)
	assert.True(t, v.IsNil())
}

func TestBuildBadSource(t *testing.T) {
	v := term.Build(1.5)
	require.Equal(t, term.TError, v.Type)
	assert.Equal(t, term.TypeError, term.Condition(term.GoError(v)))

	// A bad element anywhere in a nested grouping poisons the whole build.
	v = term.Build([]interface{}{"x", []interface{}{nil}})
	require.Equal(t, term.TError, v.Type)
	assert.Equal(t, term.TypeError, term.Condition(term.GoError(v)))
}
