package repl

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

// DecodeError reports a byte that does not start a valid UTF-8 sequence.
type DecodeError struct {
	Offset int64
	Byte   byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 byte 0x%02x at offset %d", e.Byte, e.Offset)
}

// Decoder turns a byte stream into characters. Unlike bufio.Reader it
// reports malformed input as a DecodeError instead of substituting
// utf8.RuneError; the offending byte is skipped.
type Decoder struct {
	buf *bufio.Reader
	off int64
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		buf: bufio.NewReader(r),
	}
}

func (d *Decoder) ReadRune() (rune, int, error) {
	r, n, err := d.buf.ReadRune()
	if err != nil {
		return r, n, err
	}
	off := d.off
	d.off += int64(n)
	if r == utf8.RuneError && n == 1 {
		d.buf.UnreadRune()
		b, _ := d.buf.ReadByte()
		return 0, 0, &DecodeError{Offset: off, Byte: b}
	}
	return r, n, nil
}
