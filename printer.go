package cssval

import (
	"bytes"
	"io"
)

// Fprint writes the canonical text form of v to w. Every value constructed
// by a successful parse is printable; only sink I/O errors are returned, and
// they propagate unchanged.
func Fprint(w io.Writer, v Value) error {
	return v.write(w)
}

// Sprint returns the canonical text form of v.
func Sprint(v Value) string {
	var buf bytes.Buffer
	_ = Fprint(&buf, v)
	return buf.String()
}

// write emits the composite's slots in table order with a single space
// between emitted components. A slot is omitted when its value equals its
// declared default, per its print mode; a printed terminal value (Slot.Stop)
// suppresses everything after it.
func (v *Composite) write(w io.Writer) error {
	slots := v.grammar.Slots
	emit := make([]bool, len(slots))
	any := false
	for i, s := range slots {
		if s.Mode == PrintAlways || !v.vals[i].Equal(s.Comp.Default()) {
			emit[i] = true
			any = true
		}
	}
	if !any {
		// An all-default value still prints one designated token.
		for i, s := range slots {
			if s.Mode == PrintIfAlone {
				emit[i] = true
				break
			}
		}
	}

	wrote := false
	for i, s := range slots {
		if !emit[i] {
			continue
		}
		if wrote {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if err := v.vals[i].write(w); err != nil {
			return err
		}
		wrote = true
		if s.Stop != nil && s.Stop(v.vals[i]) {
			break
		}
	}
	return nil
}
