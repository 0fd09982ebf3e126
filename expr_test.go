package lust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertEvalError(t *testing.T, kind EvalErrorKind, name string, err error) {
	t.Helper()
	if assert.IsType(t, &EvalError{}, err) {
		assert.Equal(t, kind, err.(*EvalError).Kind)
		assert.Equal(t, name, err.(*EvalError).Name)
	}
}

func TestLiteral(t *testing.T) {
	env := NewEnv()
	for _, n := range []int64{0, 1, -1, 2701, -14, 1<<63 - 1, -1 << 63} {
		v, err := NewLiteral(n).Eval(env)
		require.NoError(t, err)
		assert.Equal(t, n, v)
	}
}

func TestReference(t *testing.T) {
	env := NewEnv()
	_, err := NewReference("foo").Eval(env)
	AssertEvalError(t, UndefinedName, "foo", err)

	env.Set("foo", 42)
	v, err := NewReference("foo").Eval(env)
	require.NoError(t, err)
	assert.EqualValues(t, 42, v)
}

func TestLvalue(t *testing.T) {
	env := NewEnv()
	name, err := NewReference("foo").Lvalue(env)
	require.NoError(t, err)
	assert.Equal(t, "foo", name)

	_, err = NewLiteral(1).Lvalue(env)
	AssertEvalError(t, NotAssignable, "1", err)

	_, err = NewCall(FuncIf, NewLiteral(1), NewReference("a"), NewReference("b")).Lvalue(env)
	AssertEvalError(t, NotAssignable, "(if 1 a b)", err)
}

func TestEvalCall(t *testing.T) {
	expr := NewCall(FuncAdd, NewLiteral(1), NewLiteral(2), NewLiteral(3))
	v, err := expr.Eval(NewEnv())
	require.NoError(t, err)
	assert.EqualValues(t, 6, v)
}

func TestEvalRecursive(t *testing.T) {
	expr := NewCall(FuncAdd,
		NewLiteral(1),
		NewCall(FuncAdd, NewLiteral(2), NewLiteral(3)))
	v, err := expr.Eval(NewEnv())
	require.NoError(t, err)
	assert.EqualValues(t, 6, v)
}

func TestExprString(t *testing.T) {
	tests := []struct {
		expr *Expr
		want string
	}{
		{NewLiteral(-14), "-14"},
		{NewReference("bar"), "bar"},
		{NewCall(FuncAdd), "(+)"},
		{NewCall(FuncSet, NewReference("bar"), NewLiteral(3)), "(set! bar 3)"},
		{NewCall(FuncIf, NewCall(FuncAdd, NewLiteral(1), NewLiteral(-1)), NewLiteral(1), NewLiteral(2)), "(if (+ 1 -1) 1 2)"},
	}
	for _, test := range tests {
		got := test.expr.String()
		if got != test.want {
			t.Errorf("want %q but got %q", test.want, got)
		}
	}
}
