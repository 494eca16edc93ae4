package cssval

// Tok identifies the kind of a lexical token.
type Tok int

const (
	// Special tokens
	EOFToken Tok = iota

	// Value-level CSS tokens
	IdentToken
	FunctionToken
	HashToken
	NumberToken
	PercentageToken
	DimensionToken
	WhitespaceToken
	CommaToken
	LParenToken
	RParenToken
	DelimToken
)

var tokNames = [...]string{
	EOFToken:        "EOF",
	IdentToken:      "IDENT",
	FunctionToken:   "FUNCTION",
	HashToken:       "HASH",
	NumberToken:     "NUMBER",
	PercentageToken: "PERCENTAGE",
	DimensionToken:  "DIMENSION",
	WhitespaceToken: "WHITESPACE",
	CommaToken:      "COMMA",
	LParenToken:     "LEFT-PAREN",
	RParenToken:     "RIGHT-PAREN",
	DelimToken:      "DELIM",
}

// String returns the string representation of the token kind.
func (t Tok) String() string {
	if t >= 0 && int(t) < len(tokNames) {
		return tokNames[t]
	}
	return "ILLEGAL"
}

// Token represents a lexical token and its source position.
type Token struct {
	Tok Tok

	// Value is the literal text of the token: the name of an ident,
	// function, or hash, or the full representation of a numeric token
	// including its unit or percent sign.
	Value string

	// Number is set for NUMBER, PERCENTAGE, and DIMENSION tokens.
	Number float64

	// Unit is the unit of a DIMENSION token.
	Unit string

	Pos Pos
}

// String returns the token text as it would appear in the input, for use in
// error messages.
func (t Token) String() string {
	switch t.Tok {
	case EOFToken:
		return "EOF"
	case WhitespaceToken:
		return "whitespace"
	case HashToken:
		return "#" + t.Value
	case FunctionToken:
		return t.Value + "("
	default:
		return t.Value
	}
}

// Pos specifies the line and character position of a token.
// The Char and Line are both zero-based indexes.
type Pos struct {
	Char int
	Line int
}
