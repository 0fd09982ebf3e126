package lust

import (
	"fmt"
)

// Function is one of the builtin behaviors a call expression can invoke.
type Function int

const (
	FuncAdd Function = iota
	FuncIf
	FuncSet
)

var ops map[string]Function

func init() {
	ops = make(map[string]Function)
	ops["+"] = FuncAdd
	ops["if"] = FuncIf
	ops["set!"] = FuncSet
}

// LookupFunction returns the builtin spelled name.
func LookupFunction(name string) (Function, bool) {
	fn, ok := ops[name]
	return fn, ok
}

func (f Function) String() string {
	switch f {
	case FuncAdd:
		return "+"
	case FuncIf:
		return "if"
	case FuncSet:
		return "set!"
	}
	return fmt.Sprintf("Function(%d)", int(f))
}

// Call invokes f with the unevaluated argument expressions args.
func (f Function) Call(env *Env, args []*Expr) (int64, error) {
	switch f {
	case FuncAdd:
		return doAdd(env, args)
	case FuncIf:
		return doIf(env, args)
	case FuncSet:
		return doSet(env, args)
	}
	return 0, fmt.Errorf("invalid function: %v", f)
}

func checkArity(f Function, args []*Expr, n int) error {
	if len(args) != n {
		return &EvalError{
			Kind: WrongArity,
			Name: f.String(),
			Msg:  fmt.Sprintf("want %d arguments, got %d", n, len(args)),
		}
	}
	return nil
}

// doAdd sums args from left to right. Overflow wraps.
func doAdd(env *Env, args []*Expr) (int64, error) {
	var ret int64
	for _, arg := range args {
		v, err := arg.Eval(env)
		if err != nil {
			return 0, err
		}
		ret += v
	}
	return ret, nil
}

func doIf(env *Env, args []*Expr) (int64, error) {
	if err := checkArity(FuncIf, args, 3); err != nil {
		return 0, err
	}
	v, err := args[0].Eval(env)
	if err != nil {
		return 0, err
	}
	if v != 0 {
		return args[1].Eval(env)
	}
	return args[2].Eval(env)
}

// doSet resolves the target name before evaluating the value.
func doSet(env *Env, args []*Expr) (int64, error) {
	if err := checkArity(FuncSet, args, 2); err != nil {
		return 0, err
	}
	name, err := args[0].Lvalue(env)
	if err != nil {
		return 0, err
	}
	v, err := args[1].Eval(env)
	if err != nil {
		return 0, err
	}
	return env.Set(name, v), nil
}
