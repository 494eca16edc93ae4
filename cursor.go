package cssval

import "strings"

// A Mark is a saved cursor position for speculative parsing.
type Mark int

// Cursor is the token stream grammar components parse against. It keeps the
// full token history so speculative attempts can nest arbitrarily deep: a
// component that fails resets to its mark and the stream looks untouched to
// the next candidate (exactly-once-commit).
type Cursor struct {
	scanner *Scanner
	toks    []Token
	i       int
}

// NewCursor returns a cursor over the scanner s.
func NewCursor(s *Scanner) *Cursor {
	return &Cursor{scanner: s}
}

// NewStringCursor returns a cursor over the input text.
func NewStringCursor(input string) *Cursor {
	return NewCursor(NewScanner(strings.NewReader(input)))
}

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.i)
}

// ResetTo restores a position previously returned by Mark.
func (c *Cursor) ResetTo(m Mark) {
	c.i = int(m)
}

// token returns the token at index i, scanning forward as needed. The last
// token is EOF and repeats.
func (c *Cursor) token(i int) Token {
	for len(c.toks) <= i {
		if n := len(c.toks); n > 0 && c.toks[n-1].Tok == EOFToken {
			return c.toks[n-1]
		}
		c.toks = append(c.toks, c.scanner.Scan())
	}
	return c.toks[i]
}

// skipSpace advances past whitespace tokens.
func (c *Cursor) skipSpace() {
	for c.token(c.i).Tok == WhitespaceToken {
		c.i++
	}
}

// Peek returns the next significant token without consuming it.
func (c *Cursor) Peek() Token {
	c.skipSpace()
	return c.token(c.i)
}

// Next consumes and returns the next significant token.
func (c *Cursor) Next() Token {
	t := c.Peek()
	if t.Tok != EOFToken {
		c.i++
	}
	return t
}

// Pos reports the source location of the next significant token, for error
// attribution.
func (c *Cursor) Pos() Pos {
	return c.Peek().Pos
}

// AtEOF reports whether all significant input has been consumed.
func (c *Cursor) AtEOF() bool {
	return c.Peek().Tok == EOFToken
}

// ExpectIdent consumes the next token if it is an identifier and returns its
// text. Otherwise it returns ErrNoMatch and the cursor is unmoved.
func (c *Cursor) ExpectIdent() (string, error) {
	t := c.Peek()
	if t.Tok != IdentToken {
		return "", ErrNoMatch
	}
	c.i++
	return t.Value, nil
}
