package lust

import (
	"bytes"
	"fmt"
)

type ExprType int

const (
	ExprLiteral ExprType = iota
	ExprReference
	ExprCall
)

// Expr is a node of an expression tree. Trees are built once and never
// modified by evaluation.
type Expr struct {
	t    ExprType
	val  int64
	name string
	fn   Function
	args []*Expr
}

// NewLiteral returns an expression that always evaluates to v.
func NewLiteral(v int64) *Expr {
	return &Expr{
		t:   ExprLiteral,
		val: v,
	}
}

// NewReference returns an expression that looks up name in the environment.
func NewReference(name string) *Expr {
	return &Expr{
		t:    ExprReference,
		name: name,
	}
}

// NewCall returns an expression invoking fn on args.
func NewCall(fn Function, args ...*Expr) *Expr {
	return &Expr{
		t:    ExprCall,
		fn:   fn,
		args: args,
	}
}

func (e *Expr) Type() ExprType {
	return e.t
}

// Args returns the argument expressions of a call.
func (e *Expr) Args() []*Expr {
	return e.args
}

// Eval computes the value of e against env. Arguments are evaluated left to
// right, so assignments made by one argument are visible to the next.
func (e *Expr) Eval(env *Env) (int64, error) {
	switch e.t {
	case ExprLiteral:
		return e.val, nil
	case ExprReference:
		return env.Get(e.name)
	case ExprCall:
		return e.fn.Call(env, e.args)
	}
	return 0, fmt.Errorf("invalid expression type: %d", e.t)
}

// Lvalue returns the name e assigns to. Only references are assignable.
func (e *Expr) Lvalue(env *Env) (string, error) {
	if e.t == ExprReference {
		return e.name, nil
	}
	return "", &EvalError{Kind: NotAssignable, Name: e.String()}
}

func (e *Expr) String() string {
	if e == nil {
		return "nil"
	}
	var buf bytes.Buffer
	switch e.t {
	case ExprLiteral:
		fmt.Fprint(&buf, e.val)
	case ExprReference:
		fmt.Fprint(&buf, e.name)
	case ExprCall:
		fmt.Fprintf(&buf, "(%v", e.fn)
		for _, arg := range e.args {
			fmt.Fprint(&buf, " ")
			fmt.Fprint(&buf, arg)
		}
		fmt.Fprint(&buf, ")")
	}
	return buf.String()
}
