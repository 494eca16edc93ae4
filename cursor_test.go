package cssval_test

import (
	"testing"

	"github.com/cssval/cssval"
)

// Ensure the cursor skips whitespace and hands out significant tokens.
func TestCursor_Next(t *testing.T) {
	c := cssval.NewStringCursor("  underline   2px ")

	if tok := c.Next(); tok.Tok != cssval.IdentToken || tok.Value != "underline" {
		t.Fatalf("expected <underline>, got %#v", tok)
	}
	if tok := c.Next(); tok.Tok != cssval.DimensionToken || tok.Value != "2px" {
		t.Fatalf("expected <2px>, got %#v", tok)
	}
	if !c.AtEOF() {
		t.Fatalf("expected EOF, got %#v", c.Peek())
	}

	// EOF repeats once reached.
	if tok := c.Next(); tok.Tok != cssval.EOFToken {
		t.Fatalf("expected EOF, got %#v", tok)
	}
}

// Ensure Peek does not consume.
func TestCursor_Peek(t *testing.T) {
	c := cssval.NewStringCursor("solid red")
	for i := 0; i < 3; i++ {
		if tok := c.Peek(); tok.Value != "solid" {
			t.Fatalf("%d. expected <solid>, got %#v", i, tok)
		}
	}
	c.Next()
	if tok := c.Peek(); tok.Value != "red" {
		t.Fatalf("expected <red>, got %#v", tok)
	}
}

// Ensure mark/reset restores the stream exactly, including nested marks.
func TestCursor_ResetTo(t *testing.T) {
	c := cssval.NewStringCursor("a b c d")

	m0 := c.Mark()
	c.Next() // a
	m1 := c.Mark()
	c.Next() // b
	c.Next() // c

	c.ResetTo(m1)
	if tok := c.Peek(); tok.Value != "b" {
		t.Fatalf("after inner reset: expected <b>, got %#v", tok)
	}

	c.ResetTo(m0)
	if tok := c.Peek(); tok.Value != "a" {
		t.Fatalf("after outer reset: expected <a>, got %#v", tok)
	}

	// Replayed tokens are the same ones.
	var vals []string
	for !c.AtEOF() {
		vals = append(vals, c.Next().Value)
	}
	if got, want := len(vals), 4; got != want {
		t.Fatalf("expected %d tokens, got %v", want, vals)
	}
}

// Ensure ExpectIdent consumes on a match and leaves the cursor unmoved on a
// mismatch.
func TestCursor_ExpectIdent(t *testing.T) {
	c := cssval.NewStringCursor("wavy 10%")

	if v, err := c.ExpectIdent(); err != nil || v != "wavy" {
		t.Fatalf("expected <wavy>, got %q, %v", v, err)
	}
	if _, err := c.ExpectIdent(); err != cssval.ErrNoMatch {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
	if tok := c.Peek(); tok.Tok != cssval.PercentageToken {
		t.Fatalf("cursor moved on failed expect: %#v", tok)
	}
}

// Ensure Pos reports the location of the next significant token.
func TestCursor_Pos(t *testing.T) {
	c := cssval.NewStringCursor("  x")
	if pos := c.Pos(); pos != (cssval.Pos{Char: 2, Line: 0}) {
		t.Fatalf("expected {2 0}, got %v", pos)
	}
}
