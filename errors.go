package u8

import (
	"fmt"
	"strings"
)

// Kind categorizes a strict-mode failure.
type Kind string

const (
	KindShortBuffer Kind = "short_buffer" // destination filled before input ran out
	KindIncomplete  Kind = "incomplete"   // input ends inside a multi-byte sequence
	KindOutOfRange  Kind = "out_of_range" // code point above MaxRune
)

// Error is returned by the strict variants. The permissive functions never
// return errors: they report truncation through short counts instead.
type Error struct {
	Op      string // operation that stopped, e.g. "encode"
	Kind    Kind
	Written int    // units fully produced before stopping
	Offset  int    // input index where processing stopped
	Value   uint32 // offending code point for KindOutOfRange
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("u8: ")
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(string(e.Kind))

	switch e.Kind {
	case KindOutOfRange:
		fmt.Fprintf(&b, " (code point %#x at index %d)", e.Value, e.Offset)
	default:
		fmt.Fprintf(&b, " (stopped at index %d after %d units)", e.Offset, e.Written)
	}
	return b.String()
}

// Is reports whether target is an *Error of the same Kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrShortBuffer = &Error{Kind: KindShortBuffer}
	ErrIncomplete  = &Error{Kind: KindIncomplete}
	ErrOutOfRange  = &Error{Kind: KindOutOfRange}
)
