package cssval

import "strings"

// KeywordSet is a closed set of mutually exclusive identifiers with a
// designated default. Matching is case-insensitive; serialization is the
// registered lowercase spelling.
type KeywordSet struct {
	name  string
	words []string
	def   Keyword
}

// NewKeywordSet builds a keyword table. The default must be one of the
// declared words. A misdeclared table is a programming defect and panics.
func NewKeywordSet(name, def string, words ...string) *KeywordSet {
	ks := &KeywordSet{name: name}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		w = strings.ToLower(w)
		if seen[w] {
			panic("cssval: duplicate keyword " + w + " in " + name)
		}
		seen[w] = true
		ks.words = append(ks.words, w)
	}
	def = strings.ToLower(def)
	if !seen[def] {
		panic("cssval: default " + def + " not declared in " + name)
	}
	ks.def = Keyword(def)
	return ks
}

// Parse matches the next identifier token case-insensitively against the
// table. The token is consumed only on a match.
func (ks *KeywordSet) Parse(c *Cursor) (Value, error) {
	t := c.Peek()
	if t.Tok != IdentToken {
		return nil, ErrNoMatch
	}
	for _, w := range ks.words {
		if strings.EqualFold(t.Value, w) {
			c.Next()
			return Keyword(w), nil
		}
	}
	return nil, ErrNoMatch
}

// Default returns the designated default tag.
func (ks *KeywordSet) Default() Value { return ks.def }
