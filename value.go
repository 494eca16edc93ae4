package cssval

import (
	"io"
	"strconv"
	"strings"
)

// Value is a parsed component value. Values are immutable, self-contained
// aggregates: copying one never shares mutable state, and equality is
// component-wise.
type Value interface {
	// Equal reports whether v is the same grammar value.
	Equal(v Value) bool

	// write emits the canonical text form.
	write(w io.Writer) error
}

// Keyword is a single tag from a closed keyword set, held as its canonical
// lowercase spelling.
type Keyword string

// Equal implements Value.
func (k Keyword) Equal(v Value) bool {
	o, ok := v.(Keyword)
	return ok && o == k
}

func (k Keyword) write(w io.Writer) error {
	_, err := io.WriteString(w, string(k))
	return err
}

// Length is a length, unitless zero, or percentage value. A Unit of "%"
// marks a percentage; an empty Unit is a bare zero.
type Length struct {
	Value float64
	Unit  string
}

// Equal implements Value.
func (l Length) Equal(v Value) bool {
	o, ok := v.(Length)
	return ok && o == l
}

func (l Length) write(w io.Writer) error {
	v := l.Value
	if v == 0 {
		// Fold negative zero so equal values print identically.
		v = 0
	}
	_, err := io.WriteString(w, strconv.FormatFloat(v, 'f', -1, 64)+l.Unit)
	return err
}

// Color is a named color, the currentcolor keyword, or a hex hash.
type Color struct {
	// Name is a lowercase color name or "currentcolor". Empty when Hash
	// is set.
	Name string

	// Hash is lowercase hex digits without the leading '#'.
	Hash string
}

// CurrentColor is the declared default for color-valued slots.
var CurrentColor = Color{Name: "currentcolor"}

// Equal implements Value.
func (c Color) Equal(v Value) bool {
	o, ok := v.(Color)
	return ok && o == c
}

func (c Color) write(w io.Writer) error {
	if c.Hash != "" {
		_, err := io.WriteString(w, "#"+c.Hash)
		return err
	}
	_, err := io.WriteString(w, c.Name)
	return err
}

// colorNames is the closed set of recognized color identifiers. A color slot
// must not swallow other grammars' keywords, so only known names match.
var colorNames = map[string]bool{
	"currentcolor": true,
	"transparent":  true,
	"aqua":         true,
	"black":        true,
	"blue":         true,
	"fuchsia":      true,
	"gray":         true,
	"green":        true,
	"lime":         true,
	"maroon":       true,
	"navy":         true,
	"olive":        true,
	"orange":       true,
	"purple":       true,
	"red":          true,
	"silver":       true,
	"teal":         true,
	"white":        true,
	"yellow":       true,
}

// lengthUnits is the set of accepted dimension units.
var lengthUnits = map[string]bool{
	"px": true, "em": true, "rem": true, "ex": true, "ch": true,
	"cap": true, "ic": true, "lh": true, "rlh": true,
	"vw": true, "vh": true, "vmin": true, "vmax": true, "vi": true, "vb": true,
	"cm": true, "mm": true, "q": true, "in": true, "pt": true, "pc": true,
}

// ParseColor parses a color value: a recognized color name, currentcolor,
// or a hex hash. It consumes input only on a match.
func ParseColor(c *Cursor) (Value, error) {
	t := c.Peek()
	switch t.Tok {
	case IdentToken:
		name := strings.ToLower(t.Value)
		if !colorNames[name] {
			return nil, ErrNoMatch
		}
		c.Next()
		return Color{Name: name}, nil

	case HashToken:
		h := strings.ToLower(t.Value)
		switch len(h) {
		case 3, 4, 6, 8:
			// valid hex lengths
		default:
			return nil, ErrNoMatch
		}
		for _, ch := range h {
			if !isHexDigit(ch) {
				return nil, ErrNoMatch
			}
		}
		c.Next()
		return Color{Hash: h}, nil
	}
	return nil, ErrNoMatch
}

// ParseLength parses a dimension with a known length unit, or a unitless
// zero. It consumes input only on a match.
func ParseLength(c *Cursor) (Value, error) {
	t := c.Peek()
	switch t.Tok {
	case DimensionToken:
		unit := strings.ToLower(t.Unit)
		if !lengthUnits[unit] {
			return nil, ErrNoMatch
		}
		c.Next()
		return Length{Value: t.Number, Unit: unit}, nil

	case NumberToken:
		if t.Number != 0 {
			return nil, ErrNoMatch
		}
		c.Next()
		return Length{}, nil
	}
	return nil, ErrNoMatch
}

// ParseLengthPercentage parses a length or a percentage.
func ParseLengthPercentage(c *Cursor) (Value, error) {
	if t := c.Peek(); t.Tok == PercentageToken {
		c.Next()
		return Length{Value: t.Number, Unit: "%"}, nil
	}
	return ParseLength(c)
}
