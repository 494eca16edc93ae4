package cssval_test

import (
	"testing"

	"github.com/cssval/cssval"
)

// Ensure lengths and percentages parse and serialize canonically.
func TestParseLengthPercentage(t *testing.T) {
	var tests = []struct {
		s   string
		v   cssval.Value
		out string
		err string
	}{
		{s: `2px`, v: cssval.Length{Value: 2, Unit: "px"}, out: `2px`},
		{s: `2PX`, v: cssval.Length{Value: 2, Unit: "px"}, out: `2px`},
		{s: `-1.5em`, v: cssval.Length{Value: -1.5, Unit: "em"}, out: `-1.5em`},
		{s: `2.50rem`, v: cssval.Length{Value: 2.5, Unit: "rem"}, out: `2.5rem`},
		{s: `10%`, v: cssval.Length{Value: 10, Unit: "%"}, out: `10%`},
		{s: `0`, v: cssval.Length{}, out: `0`},
		{s: `0px`, v: cssval.Length{Unit: "px"}, out: `0px`},
		{s: `-0px`, v: cssval.Length{Unit: "px"}, out: `0px`},
		{s: `-0%`, v: cssval.Length{Unit: "%"}, out: `0%`},
		{s: `-0`, v: cssval.Length{}, out: `0`},

		{s: `2`, err: `expected value, got 2`},
		{s: `2furlong`, err: `expected value, got 2furlong`},
		{s: `red`, err: `expected value, got red`},
	}

	comp := cssval.ParseFunc{Func: cssval.ParseLengthPercentage, Def: cssval.Length{}}
	for i, tt := range tests {
		if *testiter > -1 && *testiter != i {
			continue
		}
		v, err := cssval.ParseValue(comp, tt.s)
		if tt.err != "" {
			if err == nil || err.Error() != tt.err {
				t.Errorf("%d. <%q> error: got %v, want %q", i, tt.s, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%d. <%q> unexpected error: %v", i, tt.s, err)
			continue
		}
		if !v.Equal(tt.v) {
			t.Errorf("%d. <%q> value: got %#v, want %#v", i, tt.s, v, tt.v)
		}
		if out := cssval.Sprint(v); out != tt.out {
			t.Errorf("%d. <%q> print: got %q, want %q", i, tt.s, out, tt.out)
		}
	}
}

// Ensure colors parse names and hex hashes, and reject everything else.
func TestParseColor(t *testing.T) {
	var tests = []struct {
		s   string
		v   cssval.Value
		out string
		err string
	}{
		{s: `red`, v: cssval.Color{Name: "red"}, out: `red`},
		{s: `RED`, v: cssval.Color{Name: "red"}, out: `red`},
		{s: `currentColor`, v: cssval.CurrentColor, out: `currentcolor`},
		{s: `transparent`, v: cssval.Color{Name: "transparent"}, out: `transparent`},
		{s: `#fff`, v: cssval.Color{Hash: "fff"}, out: `#fff`},
		{s: `#FF0000`, v: cssval.Color{Hash: "ff0000"}, out: `#ff0000`},
		{s: `#ff000080`, v: cssval.Color{Hash: "ff000080"}, out: `#ff000080`},

		{s: `underline`, err: `expected value, got underline`},
		{s: `#ff00`, v: cssval.Color{Hash: "ff00"}, out: `#ff00`},
		{s: `#ff0000f`, err: `expected value, got #ff0000f`},
		{s: `#ggg`, err: `expected value, got #ggg`},
		{s: `2px`, err: `expected value, got 2px`},
	}

	comp := cssval.ParseFunc{Func: cssval.ParseColor, Def: cssval.CurrentColor}
	for i, tt := range tests {
		if *testiter > -1 && *testiter != i {
			continue
		}
		v, err := cssval.ParseValue(comp, tt.s)
		if tt.err != "" {
			if err == nil || err.Error() != tt.err {
				t.Errorf("%d. <%q> error: got %v, want %q", i, tt.s, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%d. <%q> unexpected error: %v", i, tt.s, err)
			continue
		}
		if !v.Equal(tt.v) {
			t.Errorf("%d. <%q> value: got %#v, want %#v", i, tt.s, v, tt.v)
		}
		if out := cssval.Sprint(v); out != tt.out {
			t.Errorf("%d. <%q> print: got %q, want %q", i, tt.s, out, tt.out)
		}
	}
}

// Ensure values only compare equal within their own type.
func TestValue_Equal(t *testing.T) {
	if cssval.Keyword("none").Equal(cssval.Length{}) {
		t.Errorf("keyword should not equal length")
	}
	if (cssval.Length{Value: 2, Unit: "px"}).Equal(cssval.Length{Value: 2, Unit: "em"}) {
		t.Errorf("different units should not be equal")
	}
	if !(cssval.Color{Name: "red"}).Equal(cssval.Color{Name: "red"}) {
		t.Errorf("identical colors should be equal")
	}
	if (cssval.Color{Name: "red"}).Equal(cssval.Color{Hash: "f00"}) {
		t.Errorf("name and hash spellings are distinct values")
	}
}
