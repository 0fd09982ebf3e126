package lust

import (
	"errors"
	"fmt"
)

// ErrEOF matches every ReadError of kind ReadEOF.
var ErrEOF = errors.New("end of input")

type EvalErrorKind int

const (
	UndefinedName EvalErrorKind = iota
	NotAssignable
	WrongArity
)

// EvalError is returned when evaluating an expression fails.
type EvalError struct {
	Kind EvalErrorKind
	Name string
	Msg  string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case UndefinedName:
		return fmt.Sprintf("undefined name: %s", e.Name)
	case NotAssignable:
		return fmt.Sprintf("not assignable: %s", e.Name)
	case WrongArity:
		return fmt.Sprintf("invalid arguments for %s: %s", e.Name, e.Msg)
	}
	return e.Msg
}

type ReadErrorKind int

const (
	ReadIO ReadErrorKind = iota
	ReadInvalid
	ReadParse
	ReadEOF
)

// ReadError is returned by the Parser. Err holds the stream error for ReadIO
// and the conversion error for ReadParse.
type ReadError struct {
	Kind ReadErrorKind
	Msg  string
	Pos  int
	Err  error
}

func (e *ReadError) Error() string {
	switch e.Kind {
	case ReadIO:
		return fmt.Sprintf("read error: %v", e.Err)
	case ReadInvalid:
		return fmt.Sprintf("%s (%d)", e.Msg, e.Pos)
	case ReadParse:
		return fmt.Sprintf("not a number: %v (%d)", e.Err, e.Pos)
	case ReadEOF:
		if e.Msg == "" {
			return ErrEOF.Error()
		}
		return fmt.Sprintf("unexpected end of input while reading %s", e.Msg)
	}
	return e.Msg
}

func (e *ReadError) Unwrap() error {
	if e.Kind == ReadEOF {
		return ErrEOF
	}
	return e.Err
}

// Truncated reports whether the input ended in the middle of an expression.
func (e *ReadError) Truncated() bool {
	return e.Kind == ReadEOF && e.Msg != ""
}
