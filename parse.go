package lust

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Parser reads expressions from a character stream, looking at most one
// character ahead.
type Parser struct {
	r      io.RuneReader
	ch     rune
	peeked bool
	pos    int
}

// NewParser returns a Parser reading from r. If r is not an io.RuneReader it
// is wrapped in a bufio.Reader.
func NewParser(r io.Reader) *Parser {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return NewRuneParser(rr)
}

// NewRuneParser returns a Parser reading characters from r. Errors returned
// by r other than io.EOF are reported as ReadIO.
func NewRuneParser(r io.RuneReader) *Parser {
	return &Parser{
		r: r,
	}
}

// Pos returns the number of characters consumed so far.
func (p *Parser) Pos() int {
	return p.pos
}

// peek returns the next character without consuming it. When the stream is
// exhausted the error is a ReadEOF naming production.
func (p *Parser) peek(production string) (rune, error) {
	if p.peeked {
		return p.ch, nil
	}
	r, _, err := p.r.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, &ReadError{Kind: ReadEOF, Msg: production, Pos: p.pos}
		}
		return 0, &ReadError{Kind: ReadIO, Pos: p.pos, Err: err}
	}
	p.ch = r
	p.peeked = true
	return r, nil
}

func (p *Parser) advance() {
	if p.peeked {
		p.peeked = false
		p.pos++
	}
}

// unexpected consumes c and reports it as invalid.
func (p *Parser) unexpected(c rune) error {
	err := &ReadError{
		Kind: ReadInvalid,
		Msg:  fmt.Sprintf("invalid input '%c'", c),
		Pos:  p.pos,
	}
	p.advance()
	return err
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\n' || c == '\r'
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isNameStart(c rune) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// ReadExpr reads one expression. At end of input between expressions it
// returns a ReadError of kind ReadEOF that is not Truncated.
func (p *Parser) ReadExpr() (*Expr, error) {
	c, err := p.peek("")
	if err != nil {
		return nil, err
	}
	switch {
	case c == '(':
		p.advance()
		fn, err := p.ReadFunctionName()
		if err != nil {
			return nil, err
		}
		args, err := p.ReadFunctionParams()
		if err != nil {
			return nil, err
		}
		return NewCall(fn, args...), nil
	case isDigit(c) || c == '+' || c == '-':
		v, err := p.ReadNumber()
		if err != nil {
			return nil, err
		}
		return NewLiteral(v), nil
	case isSpace(c):
		p.advance()
		return p.ReadExpr()
	}
	return nil, p.unexpected(c)
}

// ReadFunctionName reads a function name up to and including the next
// whitespace character. A ')' ends the name without being consumed. End of
// input ends the name only if it is already a known function.
func (p *Parser) ReadFunctionName() (Function, error) {
	var buf bytes.Buffer
	start := p.pos
	for {
		c, err := p.peek("function name")
		if err != nil {
			// a complete name may end the input; anything else is truncated
			if fn, ok := LookupFunction(buf.String()); ok && errors.Is(err, ErrEOF) {
				return fn, nil
			}
			return 0, err
		}
		if c == ')' {
			break
		}
		p.advance()
		if isSpace(c) {
			break
		}
		buf.WriteRune(c)
	}

	name := buf.String()
	fn, ok := LookupFunction(name)
	if !ok {
		return 0, &ReadError{
			Kind: ReadInvalid,
			Msg:  fmt.Sprintf("unknown function '%s'", name),
			Pos:  start,
		}
	}
	return fn, nil
}

// ReadFunctionParams reads parameters up to and including the closing ')'.
func (p *Parser) ReadFunctionParams() ([]*Expr, error) {
	var params []*Expr
	for {
		c, err := p.peek("params")
		if err != nil {
			return nil, err
		}
		switch {
		case isDigit(c) || c == '-':
			v, err := p.ReadNumber()
			if err != nil {
				return nil, err
			}
			params = append(params, NewLiteral(v))
		case c == '(':
			expr, err := p.ReadExpr()
			if err != nil {
				return nil, err
			}
			params = append(params, expr)
		case isNameStart(c):
			name, err := p.readName()
			if err != nil {
				return nil, err
			}
			params = append(params, NewReference(name))
		case isSpace(c):
			p.advance()
		case c == ')':
			p.advance()
			return params, nil
		default:
			return nil, p.unexpected(c)
		}
	}
}

// readName reads a variable name. The terminating character is left in the
// stream.
func (p *Parser) readName() (string, error) {
	var buf bytes.Buffer
	for {
		c, err := p.peek("name")
		if err != nil {
			return "", err
		}
		if isSpace(c) || c == '(' || c == ')' {
			break
		}
		buf.WriteRune(c)
		p.advance()
	}
	return buf.String(), nil
}

// ReadNumber reads an integer with at most one leading minus sign. The
// terminating space or ')' is left in the stream.
func (p *Parser) ReadNumber() (int64, error) {
	var buf bytes.Buffer
	start := p.pos
loop:
	for {
		c, err := p.peek("number")
		if err != nil {
			return 0, err
		}
		switch {
		case c == '-':
			buf.WriteRune(c)
			p.advance()
			if buf.Len() > 1 {
				return 0, &ReadError{
					Kind: ReadInvalid,
					Msg:  fmt.Sprintf("invalid number %s", buf.String()),
					Pos:  start,
				}
			}
		case isDigit(c):
			buf.WriteRune(c)
			p.advance()
		case isSpace(c) || c == ')':
			break loop
		default:
			return 0, p.unexpected(c)
		}
	}

	v, err := strconv.ParseInt(buf.String(), 10, 64)
	if err != nil {
		return 0, &ReadError{Kind: ReadParse, Pos: start, Err: err}
	}
	return v, nil
}

// ReadAll reads expressions until the input is exhausted.
func (p *Parser) ReadAll() ([]*Expr, error) {
	var exprs []*Expr
	for {
		expr, err := p.ReadExpr()
		if err != nil {
			var re *ReadError
			if errors.As(err, &re) && re.Kind == ReadEOF && !re.Truncated() {
				return exprs, nil
			}
			return exprs, err
		}
		exprs = append(exprs, expr)
	}
}
