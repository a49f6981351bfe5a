// Package tokenizer splits an input byte stream into whitespace-delimited
// tokens and normalizes them into lookup keys.
package tokenizer

import (
	"bufio"
	"errors"
	"io"
)

// Token is one maximal run of non-separator bytes.
type Token struct {
	Text string
	// Boundary is set when Text contains the segment-boundary byte.
	Boundary bool
}

// Tokenizer reads tokens lazily from a stream. Calling Next after an
// error keeps returning that error.
type Tokenizer struct {
	r   *bufio.Reader
	buf []byte
	err error
}

// New returns a Tokenizer reading from r.
func New(r io.Reader) *Tokenizer {
	return &Tokenizer{r: bufio.NewReader(r)}
}

// Next returns the next token, or io.EOF once the stream is exhausted.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}

	t.buf = t.buf[:0]
	boundary := false
	for {
		c, err := t.r.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.err = err
				return Token{}, err
			}
			t.err = io.EOF
			if len(t.buf) > 0 {
				return Token{Text: string(t.buf), Boundary: boundary}, nil
			}
			return Token{}, io.EOF
		}
		if IsSeparator(c) {
			if len(t.buf) > 0 {
				return Token{Text: string(t.buf), Boundary: boundary}, nil
			}
			continue
		}
		if c == Boundary {
			boundary = true
		}
		t.buf = append(t.buf, c)
	}
}
