package cssval

import "errors"

// PrintMode selects how a slot participates in canonical output.
type PrintMode int

const (
	// PrintIfChanged omits the slot when its value equals the default.
	PrintIfChanged PrintMode = iota

	// PrintAlways emits the slot even at its default value.
	PrintAlways

	// PrintIfAlone emits the slot when it is non-default, or when no other
	// slot is emitted, so an all-default value still has a canonical token.
	PrintIfAlone
)

// Slot is one named sub-component of a composite grammar.
type Slot struct {
	Name     string
	Comp     Component
	Required bool
	Mode     PrintMode

	// Stop, if non-nil, marks terminal values. When the slot fills with a
	// value v for which Stop(v) is true, the composite parse ends at once
	// and every other slot reverts to its default; when printing, such a
	// value suppresses all later slots.
	Stop func(v Value) bool
}

// Grammar is a static declaration of a composite, order-independent value:
// a fixed set of named slots that may appear in any input order, each at
// most once. The slot table order is both the deterministic parse priority
// when two slots could accept the same token, and the canonical emission
// order.
type Grammar struct {
	Name  string
	Slots []Slot
}

// NewGrammar validates and returns a slot table. A misdeclared table is a
// programming defect and panics.
func NewGrammar(name string, slots ...Slot) *Grammar {
	seen := make(map[string]bool, len(slots))
	for _, s := range slots {
		if s.Name == "" || s.Comp == nil {
			panic("cssval: incomplete slot in " + name)
		}
		if seen[s.Name] {
			panic("cssval: duplicate slot " + s.Name + " in " + name)
		}
		seen[s.Name] = true
	}
	return &Grammar{Name: name, Slots: slots}
}

// Composite is an immutable aggregate of slot values, constructed only by a
// successful parse (or Default). It is never partially valid.
type Composite struct {
	grammar *Grammar
	vals    []Value
}

// Grammar returns the grammar the composite was parsed by.
func (v *Composite) Grammar() *Grammar { return v.grammar }

// Slot returns the value of the named slot.
func (v *Composite) Slot(name string) Value {
	for i, s := range v.grammar.Slots {
		if s.Name == name {
			return v.vals[i]
		}
	}
	panic("cssval: unknown slot " + name + " in " + v.grammar.Name)
}

// Equal implements Value. Composites of different grammars are never equal.
func (v *Composite) Equal(o Value) bool {
	ov, ok := o.(*Composite)
	if !ok || ov.grammar != v.grammar {
		return false
	}
	for i := range v.vals {
		if !v.vals[i].Equal(ov.vals[i]) {
			return false
		}
	}
	return true
}

// Parse fills slots by repeatedly offering the remaining input to each
// not-yet-filled slot's parser, in table order, until a full pass matches
// nothing. Filling one slot restarts the pass, since it can change what the
// remaining slots accept. Each pass either fills a slot or ends the loop,
// so parsing terminates in time proportional to the input.
//
// A slot filling with a terminal value (Slot.Stop) ends the parse at once
// and discards every other slot back to its default. After the loop, a
// required slot left unfilled fails with an *Error located at the parse
// start; unfilled optional slots take their declared defaults. If no slot
// matched at all the result is ErrNoMatch with the cursor unmoved.
func (g *Grammar) Parse(c *Cursor) (Value, error) {
	start := c.Pos()
	vals := make([]Value, len(g.Slots))
	filled := make([]bool, len(g.Slots))
	stopped := false

	for !stopped {
		matched := false
		for i := range g.Slots {
			if filled[i] {
				continue
			}
			v, err := g.Slots[i].Comp.Parse(c)
			if errors.Is(err, ErrNoMatch) {
				continue
			}
			if err != nil {
				return nil, err
			}
			vals[i], filled[i] = v, true
			matched = true
			if g.Slots[i].Stop != nil && g.Slots[i].Stop(v) {
				for j := range vals {
					if j != i {
						vals[j], filled[j] = nil, false
					}
				}
				stopped = true
			}
			break
		}
		if !matched {
			break
		}
	}

	n := 0
	for _, ok := range filled {
		if ok {
			n++
		}
	}
	if n == 0 {
		for _, s := range g.Slots {
			if s.Required {
				return nil, invalidf(start, "%s: missing %s", g.Name, s.Name)
			}
		}
		return nil, ErrNoMatch
	}
	for i, s := range g.Slots {
		if filled[i] {
			continue
		}
		if s.Required {
			return nil, invalidf(start, "%s: missing %s", g.Name, s.Name)
		}
		vals[i] = s.Comp.Default()
	}
	return &Composite{grammar: g, vals: vals}, nil
}

// Default returns the all-default composite.
func (g *Grammar) Default() Value {
	vals := make([]Value, len(g.Slots))
	for i, s := range g.Slots {
		vals[i] = s.Comp.Default()
	}
	return &Composite{grammar: g, vals: vals}
}

// ParseString parses a complete property value: the whole input must be
// consumed.
func (g *Grammar) ParseString(input string) (*Composite, error) {
	v, err := ParseValue(g, input)
	if err != nil {
		return nil, err
	}
	return v.(*Composite), nil
}
