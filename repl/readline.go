package repl

import (
	"io"

	"github.com/chzyer/readline"
)

// LineReader feeds lines typed at a terminal to the parser one character at
// a time. Each line is followed by a newline, so an expression may span
// several lines.
type LineReader struct {
	rl  *readline.Instance
	buf []rune
}

func NewLineReader(prompt string) (*LineReader, error) {
	rl, err := readline.New(prompt)
	if err != nil {
		return nil, err
	}
	return &LineReader{rl: rl}, nil
}

func (l *LineReader) ReadRune() (rune, int, error) {
	for len(l.buf) == 0 {
		line, err := l.rl.Readline()
		if err == readline.ErrInterrupt {
			return 0, 0, io.EOF
		}
		if err != nil {
			return 0, 0, err
		}
		l.buf = append([]rune(line), '\n')
	}
	r := l.buf[0]
	l.buf = l.buf[1:]
	return r, len(string(r)), nil
}

func (l *LineReader) Close() error {
	return l.rl.Close()
}
