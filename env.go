package lust

import "sort"

// Env is the flat store of variables shared by every expression evaluated in
// one session.
type Env struct {
	vars map[string]int64
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{
		vars: make(map[string]int64),
	}
}

// Get returns the value bound to name, or an UndefinedName error.
func (e *Env) Get(name string) (int64, error) {
	v, ok := e.vars[name]
	if !ok {
		return 0, &EvalError{Kind: UndefinedName, Name: name}
	}
	return v, nil
}

// Set binds name to v and returns v.
func (e *Env) Set(name string, v int64) int64 {
	e.vars[name] = v
	return v
}

// Len returns the number of bound names.
func (e *Env) Len() int {
	return len(e.vars)
}

// Names returns the bound names in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Eval evaluates expr in e.
func (e *Env) Eval(expr *Expr) (int64, error) {
	return expr.Eval(e)
}
