// Package repl implements the read-eval-print loop around the lust reader and
// evaluator.
package repl

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/patrikn/lust"
)

// Options controls a session.
type Options struct {
	// Quiet suppresses printing of values.
	Quiet bool
	// Trace logs every expression before it is evaluated.
	Trace bool
}

// Run reads expressions from r until the input is exhausted, evaluating each
// one in env. Values are printed to out and failures are reported through
// logger. Run returns an error only when the stream itself fails.
func Run(env *lust.Env, r io.RuneReader, out io.Writer, logger *log.Logger, opts Options) error {
	parser := lust.NewRuneParser(r)
	for {
		expr, err := parser.ReadExpr()
		if err != nil {
			var re *lust.ReadError
			if !errors.As(err, &re) {
				return err
			}
			switch re.Kind {
			case lust.ReadEOF:
				if re.Truncated() {
					logger.Print(re)
				}
				return nil
			case lust.ReadIO:
				var de *DecodeError
				if !errors.As(re, &de) {
					return re
				}
			}
			logger.Print(re)
			continue
		}

		if opts.Trace {
			logger.Printf("eval %v", expr)
		}
		v, err := env.Eval(expr)
		if err != nil {
			logger.Print(err)
			continue
		}
		if !opts.Quiet {
			fmt.Fprintln(out, v)
		}
	}
}
