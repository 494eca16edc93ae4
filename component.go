package cssval

import "errors"

// Component parses and defaults one slot of a composite grammar. Parse is
// speculative: on ErrNoMatch the cursor must be left unmoved so the caller
// can try alternatives.
type Component interface {
	Parse(c *Cursor) (Value, error)
	Default() Value
}

// ParseFunc adapts a typed sub-value parser into a Component.
type ParseFunc struct {
	Func func(c *Cursor) (Value, error)
	Def  Value
}

// Parse implements Component.
func (p ParseFunc) Parse(c *Cursor) (Value, error) { return p.Func(c) }

// Default implements Component.
func (p ParseFunc) Default() Value { return p.Def }

// OneOf tries each alternative in declared order; the first success wins.
// The declared order is the documented priority when a literal keyword and
// a typed sub-value could both accept the same token.
type OneOf struct {
	name string
	alts []Component
	def  Value
}

// NewOneOf builds a keyword-or-typed-value alternation with the given
// absent-slot default.
func NewOneOf(name string, def Value, alts ...Component) *OneOf {
	if len(alts) == 0 {
		panic("cssval: OneOf " + name + " declared with no alternatives")
	}
	return &OneOf{name: name, alts: alts, def: def}
}

// Parse implements Component.
func (o *OneOf) Parse(c *Cursor) (Value, error) {
	for _, a := range o.alts {
		v, err := a.Parse(c)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrNoMatch) {
			return nil, err
		}
	}
	return nil, ErrNoMatch
}

// Default implements Component.
func (o *OneOf) Default() Value { return o.def }

// ParseValue parses input as a complete standalone value of comp. The whole
// input must be consumed: trailing tokens make the value invalid.
func ParseValue(comp Component, input string) (Value, error) {
	c := NewStringCursor(input)
	v, err := comp.Parse(c)
	if err != nil {
		if errors.Is(err, ErrNoMatch) {
			return nil, invalidf(c.Pos(), "expected value, got %s", c.Peek())
		}
		return nil, err
	}
	if !c.AtEOF() {
		t := c.Peek()
		return nil, invalidf(t.Pos, "unexpected %s", t)
	}
	return v, nil
}
