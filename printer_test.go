package cssval_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cssval/cssval"
)

// errWriter fails after n successful writes.
type errWriter struct {
	n   int
	err error
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, w.err
	}
	w.n--
	return len(p), nil
}

// Ensure Fprint writes the same text Sprint returns.
func TestFprint(t *testing.T) {
	v, err := cssval.TextDecoration.ParseString("underline wavy red")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := cssval.Fprint(&buf, v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != cssval.Sprint(v) {
		t.Fatalf("Fprint %q != Sprint %q", buf.String(), cssval.Sprint(v))
	}
}

// Ensure sink errors propagate unchanged, from any point in the value.
func TestFprint_WriterError(t *testing.T) {
	v, err := cssval.TextDecoration.ParseString("underline wavy red")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	werr := errors.New("sink closed")
	for n := 0; n < 5; n++ {
		w := &errWriter{n: n, err: werr}
		if err := cssval.Fprint(w, v); err != werr {
			t.Errorf("n=%d: expected sink error, got %v", n, err)
		}
	}
}
