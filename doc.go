/*
Package cssval implements a declarative grammar engine for parsing and
canonically serializing CSS property values whose components may appear in
any order.

This package can be used for building tools that validate, normalize and
minify property values.

# Basics

Value parsing occurs in two steps. First the scanner breaks up a stream of
code points (runes) into tokens. These tokens represent the most basic units
of a property value such as identifiers, numbers, dimensions and hashes. The
second step is to feed these tokens into a Component, which consumes tokens
through a Cursor and produces a Value.

A Cursor supports speculative parsing: a component marks its position, tries
to match, and resets to the mark if the input is not for it. Components
signal "not mine" by returning ErrNoMatch with the cursor unmoved, which
lets a caller try the next alternative. Any other error means the input was
recognized but invalid, and aborts the parse.

# Components

The basic components are KeywordSet, which matches one identifier from a
fixed list, FlagSet, which matches any number of identifiers and accumulates
them into a bitset, and OneOf, which tries a list of alternatives in order.
Function components (ParseFunc) wrap plain parse functions such as
ParseLength and ParseColor.

A Grammar composes components into slots that may be given in any input
order. Parsing repeatedly sweeps the slot table, letting each unfilled slot
try the input, until a pass fills nothing. When two slots could match the
same token, the slot listed first wins. Unfilled optional slots take their
component's default value; an unfilled required slot is an error.

# Printing

Sprint and Fprint serialize any Value to its canonical form: slots are
emitted in table order, separated by single spaces, and a slot whose value
equals its default is omitted unless its print mode says otherwise. A value
that round-trips through Sprint and ParseValue compares equal to itself.
*/
package cssval
