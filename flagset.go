package cssval

import (
	"io"
	"strings"
)

// Flag declares one member of a FlagSet. Bit may be zero for members that
// validly match but set nothing (an explicit "none"). When, if non-nil,
// gates eligibility on the bits accumulated so far.
type Flag struct {
	Name string
	Bit  uint8

	// Exclusive members forbid and suppress every other member: once one
	// is accepted no further flag matches, and serialization emits only
	// the exclusive member's text.
	Exclusive bool

	// When is evaluated against the accumulator before a candidate match
	// is accepted. A nil When is always eligible.
	When func(bits uint8) bool
}

// WhenEmpty is the eligibility predicate for flags that may only appear
// while no other flag has been accepted.
func WhenEmpty(bits uint8) bool { return bits == 0 }

// FlagSet is a static declaration of an unordered set of named boolean
// flags packed into a bitset. Declaration order is the canonical emission
// order.
type FlagSet struct {
	name      string
	flags     []Flag
	exclusive uint8  // union of exclusive members' bits
	empty     string // canonical token for the all-zero set; may be ""
}

// NewFlagSet builds a flag table. Duplicate names or overlapping bits are
// programming defects and panic.
func NewFlagSet(name, empty string, flags ...Flag) *FlagSet {
	fs := &FlagSet{name: name, empty: empty, flags: flags}
	var used uint8
	seen := make(map[string]bool, len(flags))
	for i, f := range flags {
		lower := strings.ToLower(f.Name)
		if seen[lower] {
			panic("cssval: duplicate flag " + lower + " in " + name)
		}
		seen[lower] = true
		if f.Bit&used != 0 {
			panic("cssval: overlapping flag bits in " + name)
		}
		used |= f.Bit
		if f.Exclusive {
			fs.exclusive |= f.Bit
		}
		fs.flags[i].Name = lower
	}
	return fs
}

// Parse accumulates flags until no remaining member matches. The cursor is
// left at the last successful match. It returns ErrNoMatch, cursor unmoved,
// when not even one member matched; an empty result from an explicit "none"
// member is a successful parse.
func (fs *FlagSet) Parse(c *Cursor) (Value, error) {
	var bits uint8
	any := false
	for {
		f, ok := fs.parseOne(c, bits)
		if !ok {
			break
		}
		bits |= f.Bit
		any = true
		if f.Bit == 0 {
			// An explicit empty member is terminal.
			break
		}
	}
	if !any {
		return nil, ErrNoMatch
	}
	return Flags{set: fs, bits: bits}, nil
}

// parseOne matches the next identifier against the eligible members: unset
// flags whose When predicate accepts the current accumulator. An exclusive
// member already present forecloses the whole set.
func (fs *FlagSet) parseOne(c *Cursor, bits uint8) (Flag, bool) {
	if bits&fs.exclusive != 0 {
		return Flag{}, false
	}
	t := c.Peek()
	if t.Tok != IdentToken {
		return Flag{}, false
	}
	for _, f := range fs.flags {
		if f.Bit != 0 && bits&f.Bit == f.Bit {
			continue // already set
		}
		if f.When != nil && !f.When(bits) {
			continue
		}
		if strings.EqualFold(t.Value, f.Name) {
			c.Next()
			return f, true
		}
	}
	return Flag{}, false
}

// Default returns the empty set.
func (fs *FlagSet) Default() Value { return Flags{set: fs} }

// Of builds a Flags value over this set with the given bits.
func (fs *FlagSet) Of(bits uint8) Flags { return Flags{set: fs, bits: bits} }

// Flags is a parsed FlagSet value: a bitset over the set's declared members.
type Flags struct {
	set  *FlagSet
	bits uint8
}

// Bits returns the raw bitset.
func (f Flags) Bits() uint8 { return f.bits }

// Empty reports whether no flag is set.
func (f Flags) Empty() bool { return f.bits == 0 }

// Has reports whether every bit of mask is set.
func (f Flags) Has(mask uint8) bool { return f.bits&mask == mask }

// Equal implements Value. Flag sets over different declarations are never
// equal.
func (f Flags) Equal(v Value) bool {
	o, ok := v.(Flags)
	return ok && o.set == f.set && o.bits == f.bits
}

// write emits the set flags in declaration order separated by single spaces.
// An exclusive member suppresses every other flag; the empty set emits the
// set's designated empty token.
func (f Flags) write(w io.Writer) error {
	if f.set == nil {
		return nil
	}
	if f.bits&f.set.exclusive != 0 {
		for _, fl := range f.set.flags {
			if fl.Exclusive && f.bits&fl.Bit != 0 {
				_, err := io.WriteString(w, fl.Name)
				return err
			}
		}
	}
	if f.bits == 0 {
		if f.set.empty == "" {
			return nil
		}
		_, err := io.WriteString(w, f.set.empty)
		return err
	}
	wrote := false
	for _, fl := range f.set.flags {
		if fl.Bit == 0 || f.bits&fl.Bit != fl.Bit {
			continue
		}
		if wrote {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, fl.Name); err != nil {
			return err
		}
		wrote = true
	}
	return nil
}
