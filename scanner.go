package cssval

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"golang.org/x/text/transform"
)

// eof represents the end of input. The normalize transformer replaces real
// NUL bytes, so the zero rune is unambiguous.
const eof rune = 0

// Scanner breaks a property value into tokens. It covers the token classes
// that value grammars consume: identifiers, functions, hashes, numerics,
// commas, parentheses, and whitespace. Anything else is returned as a DELIM
// token. Comments are consumed and discarded.
type Scanner struct {
	rd  io.RuneReader
	pos Pos // position of the next unconsumed rune

	buf  [8]rune // circular lookahead buffer
	bpos [8]Pos  // position after each buffered rune
	bufi int     // circular buffer index
	bufn int     // number of pushed-back runes
}

// NewScanner returns a new instance of Scanner. The input stream is
// preprocessed per CSS Syntax §3.3 (newline and NUL normalization).
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		rd: bufio.NewReader(transform.NewReader(r, &normalize{})),
	}
}

// Scan returns the next token in the input.
func (s *Scanner) Scan() Token {
	for {
		pos := s.pos
		ch := s.read()

		switch {
		case ch == eof:
			return Token{Tok: EOFToken, Pos: pos}

		case isWhitespace(ch):
			return Token{Tok: WhitespaceToken, Value: s.scanWhitespace(ch), Pos: pos}

		case ch == '#':
			ch1 := s.read()
			if isName(ch1) {
				s.unread(1)
				return Token{Tok: HashToken, Value: s.scanName(), Pos: pos}
			}
			if ch1 == '\\' {
				if ch2 := s.read(); ch2 != '\n' && ch2 != eof {
					s.unread(2)
					return Token{Tok: HashToken, Value: s.scanName(), Pos: pos}
				}
				s.unread(1)
			}
			s.unread(1)
			return Token{Tok: DelimToken, Value: "#", Pos: pos}

		case ch == ',':
			return Token{Tok: CommaToken, Value: ",", Pos: pos}

		case ch == '(':
			return Token{Tok: LParenToken, Value: "(", Pos: pos}

		case ch == ')':
			return Token{Tok: RParenToken, Value: ")", Pos: pos}

		case isDigit(ch):
			s.unread(1)
			return s.scanNumeric(pos)

		case ch == '+':
			if s.startsNumber() {
				s.unread(1)
				return s.scanNumeric(pos)
			}
			return Token{Tok: DelimToken, Value: "+", Pos: pos}

		case ch == '.':
			if ch1 := s.read(); isDigit(ch1) {
				s.unread(2)
				return s.scanNumeric(pos)
			}
			s.unread(1)
			return Token{Tok: DelimToken, Value: ".", Pos: pos}

		case ch == '-':
			if s.startsNumber() {
				s.unread(1)
				return s.scanNumeric(pos)
			}
			if s.startsIdent() {
				s.unread(1)
				return s.scanIdentish(pos)
			}
			return Token{Tok: DelimToken, Value: "-", Pos: pos}

		case ch == '/':
			if ch1 := s.read(); ch1 == '*' {
				s.scanComment()
				continue
			}
			s.unread(1)
			return Token{Tok: DelimToken, Value: "/", Pos: pos}

		case ch == '\\':
			if ch1 := s.read(); ch1 != '\n' && ch1 != eof {
				s.unread(2)
				return s.scanIdentish(pos)
			}
			s.unread(1)
			return Token{Tok: DelimToken, Value: "\\", Pos: pos}

		case isNameStart(ch):
			s.unread(1)
			return s.scanIdentish(pos)

		default:
			return Token{Tok: DelimToken, Value: string(ch), Pos: pos}
		}
	}
}

// scanWhitespace consumes the current code point and all subsequent
// whitespace.
func (s *Scanner) scanWhitespace(first rune) string {
	var buf bytes.Buffer
	_, _ = buf.WriteRune(first)
	for {
		ch := s.read()
		if !isWhitespace(ch) {
			s.unread(1)
			break
		}
		_, _ = buf.WriteRune(ch)
	}
	return buf.String()
}

// scanNumeric consumes a number, percentage, or dimension token.
func (s *Scanner) scanNumeric(pos Pos) Token {
	num, repr := s.scanNumber()

	// If the number is immediately followed by an identifier then scan a
	// dimension.
	if s.startsIdent() {
		unit := s.scanName()
		return Token{Tok: DimensionToken, Value: repr + unit, Number: num, Unit: unit, Pos: pos}
	}

	// If the number is followed by a percent sign then return a percentage.
	if ch := s.read(); ch == '%' {
		return Token{Tok: PercentageToken, Value: repr + "%", Number: num, Pos: pos}
	}
	s.unread(1)

	return Token{Tok: NumberToken, Value: repr, Number: num, Pos: pos}
}

// scanNumber consumes a number.
func (s *Scanner) scanNumber() (num float64, repr string) {
	var buf bytes.Buffer

	// If the initial code point is + or - then store it.
	if ch := s.read(); ch == '+' || ch == '-' {
		_, _ = buf.WriteRune(ch)
	} else {
		s.unread(1)
	}

	// Read as many digits as possible.
	_, _ = buf.WriteString(s.scanDigits())

	// If the next code points are a full stop and digit then consume them.
	if ch0 := s.read(); ch0 == '.' {
		if ch1 := s.read(); isDigit(ch1) {
			_, _ = buf.WriteRune(ch0)
			_, _ = buf.WriteRune(ch1)
			_, _ = buf.WriteString(s.scanDigits())
		} else {
			s.unread(2)
		}
	} else {
		s.unread(1)
	}

	// Consume scientific notation (e0, e+0, e-0, E0, E+0, E-0).
	if ch0 := s.read(); ch0 == 'e' || ch0 == 'E' {
		if ch1 := s.read(); ch1 == '+' || ch1 == '-' {
			if ch2 := s.read(); isDigit(ch2) {
				_, _ = buf.WriteRune(ch0)
				_, _ = buf.WriteRune(ch1)
				_, _ = buf.WriteRune(ch2)
				_, _ = buf.WriteString(s.scanDigits())
			} else {
				s.unread(3)
			}
		} else if isDigit(ch1) {
			_, _ = buf.WriteRune(ch0)
			_, _ = buf.WriteRune(ch1)
			_, _ = buf.WriteString(s.scanDigits())
		} else {
			s.unread(2)
		}
	} else {
		s.unread(1)
	}

	num, _ = strconv.ParseFloat(buf.String(), 64)
	return num, buf.String()
}

// scanDigits consumes a contiguous series of digits.
func (s *Scanner) scanDigits() string {
	var buf bytes.Buffer
	for {
		if ch := s.read(); isDigit(ch) {
			_, _ = buf.WriteRune(ch)
		} else {
			s.unread(1)
			break
		}
	}
	return buf.String()
}

// scanComment consumes all characters up to "*/", inclusive.
// This function assumes that the initial "/*" has just been consumed.
func (s *Scanner) scanComment() {
	for {
		ch0 := s.read()
		if ch0 == eof {
			break
		} else if ch0 == '*' {
			if ch1 := s.read(); ch1 == '/' {
				break
			} else {
				s.unread(1)
			}
		}
	}
}

// scanName consumes a run of name code points and escaped code points,
// starting at the next rune.
func (s *Scanner) scanName() string {
	var buf bytes.Buffer
	for {
		ch := s.read()
		switch {
		case isName(ch):
			_, _ = buf.WriteRune(ch)
		case ch == '\\':
			if ch1 := s.read(); ch1 == '\n' || ch1 == eof {
				s.unread(2)
				return buf.String()
			}
			s.unread(1)
			_, _ = buf.WriteRune(s.scanEscape())
		default:
			s.unread(1)
			return buf.String()
		}
	}
}

// scanIdentish consumes an ident-like token: an identifier, or a function
// when the name is immediately followed by an open parenthesis.
func (s *Scanner) scanIdentish(pos Pos) Token {
	v := s.scanName()
	if ch := s.read(); ch == '(' {
		return Token{Tok: FunctionToken, Value: v, Pos: pos}
	}
	s.unread(1)
	return Token{Tok: IdentToken, Value: v, Pos: pos}
}

// scanEscape consumes an escaped code point following a backslash.
func (s *Scanner) scanEscape() rune {
	var buf bytes.Buffer
	ch := s.read()
	if isHexDigit(ch) {
		_, _ = buf.WriteRune(ch)
		for i := 0; i < 5; i++ {
			next := s.read()
			if next == eof || isWhitespace(next) {
				break
			} else if !isHexDigit(next) {
				s.unread(1)
				break
			}
			_, _ = buf.WriteRune(next)
		}
		v, _ := strconv.ParseInt(buf.String(), 16, 32)
		return rune(v)
	} else if ch == eof {
		return '�'
	}
	return ch
}

// startsNumber reports whether a numeric token begins at the next rune,
// assuming any sign has already been consumed. The cursor is unmoved.
func (s *Scanner) startsNumber() bool {
	ch1 := s.read()
	if isDigit(ch1) {
		s.unread(1)
		return true
	}
	if ch1 == '.' {
		ch2 := s.read()
		s.unread(2)
		return isDigit(ch2)
	}
	s.unread(1)
	return false
}

// startsIdent reports whether an identifier begins at the next rune.
// The cursor is unmoved.
func (s *Scanner) startsIdent() bool {
	ch1 := s.read()
	if isNameStart(ch1) || ch1 == '-' {
		s.unread(1)
		return true
	}
	if ch1 == '\\' {
		ch2 := s.read()
		s.unread(2)
		return ch2 != '\n' && ch2 != eof
	}
	s.unread(1)
	return false
}

// read consumes and returns the next rune. Pushed-back runes are replayed
// first; source position is tracked across unread/re-read cycles.
func (s *Scanner) read() rune {
	if s.bufn > 0 {
		s.bufi = (s.bufi + 1) % len(s.buf)
		s.bufn--
		s.pos = s.bpos[s.bufi]
		return s.buf[s.bufi]
	}

	ch, _, err := s.rd.ReadRune()
	if err != nil {
		ch = eof
	}

	// Track scanner position. EOF occupies no space.
	if ch == '\n' {
		s.pos.Line++
		s.pos.Char = 0
	} else if ch != eof {
		s.pos.Char++
	}

	// Add to the circular buffer so the rune can be unread.
	s.bufi = (s.bufi + 1) % len(s.buf)
	s.buf[s.bufi] = ch
	s.bpos[s.bufi] = s.pos
	return ch
}

// unread pushes the previous n runes back onto the lookahead buffer.
func (s *Scanner) unread(n int) {
	for i := 0; i < n; i++ {
		s.bufi = (s.bufi + len(s.buf) - 1) % len(s.buf)
		s.bufn++
	}
	s.pos = s.bpos[s.bufi]
}

// isWhitespace returns true if the rune is a space, tab, or newline.
func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}

// isLetter returns true if the rune is a letter.
func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isDigit returns true if the rune is a digit.
func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// isHexDigit returns true if the rune is a hex digit.
func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// isNonASCII returns true if the rune is greater than U+0080.
func isNonASCII(ch rune) bool {
	return ch >= '\u0080'
}

// isNameStart returns true if the rune can start a name.
func isNameStart(ch rune) bool {
	return isLetter(ch) || isNonASCII(ch) || ch == '_'
}

// isName returns true if the character is a name code point.
func isName(ch rune) bool {
	return isNameStart(ch) || isDigit(ch) || ch == '-'
}
