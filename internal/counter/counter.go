// Package counter provides the streaming counting engine for the vwc CLI tool.
//
// A Stream consumes raw byte chunks and incrementally maintains line, word,
// byte, character and maximum display-width counts. State that straddles a
// chunk boundary (a word in progress, a partial multi-byte sequence, the
// width of an unfinished line) is carried between calls, so the final
// Counts do not depend on how the input was split.
//
// Usage Example:
//
//	s := counter.New(counter.DefaultFields, locale.Lookup("UTF-8").NewDecoder())
//	s.Feed([]byte("foo bar\nbaz\n"))
//	counts := s.Finalize()
//	// counts.Get(counter.Lines) == 2, counts.Get(counter.Words) == 3
package counter

import (
	"math/bits"
	"strings"
)

// Field identifies one of the quantities a Stream can count.
type Field int

const (
	// Lines counts newline bytes
	Lines Field = iota
	// Words counts runs of non-whitespace bytes
	Words
	// Chars counts decoded characters
	Chars
	// Bytes counts raw bytes
	Bytes
	// MaxLineLength tracks the widest line in display columns
	MaxLineLength

	numFields
)

// String returns the long option name of the field.
func (f Field) String() string {
	switch f {
	case Lines:
		return "lines"
	case Words:
		return "words"
	case Chars:
		return "chars"
	case Bytes:
		return "bytes"
	case MaxLineLength:
		return "max-line-length"
	default:
		return "unknown"
	}
}

// FieldSet is a set of enabled fields.
type FieldSet uint8

// DefaultFields is used when no field was selected explicitly.
var DefaultFields = NewFieldSet(Lines, Words, Bytes)

// NewFieldSet returns a set containing fields.
func NewFieldSet(fields ...Field) FieldSet {
	var s FieldSet
	for _, f := range fields {
		s = s.With(f)
	}
	return s
}

// With returns s with f added.
func (s FieldSet) With(f Field) FieldSet {
	if f < 0 || f >= numFields {
		return s
	}
	return s | 1<<uint(f)
}

// Has reports whether f is in s.
func (s FieldSet) Has(f Field) bool {
	return f >= 0 && f < numFields && s&(1<<uint(f)) != 0
}

// Len returns the number of fields in s.
func (s FieldSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// OrDefault returns DefaultFields when s is empty, s otherwise.
func (s FieldSet) OrDefault() FieldSet {
	if s == 0 {
		return DefaultFields
	}
	return s
}

// Selected returns the fields of s in output order.
func (s FieldSet) Selected() []Field {
	out := make([]Field, 0, s.Len())
	for f := Field(0); f < numFields; f++ {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// String returns the selected field names joined by commas.
func (s FieldSet) String() string {
	names := make([]string, 0, s.Len())
	for _, f := range s.Selected() {
		names = append(names, f.String())
	}
	return strings.Join(names, ",")
}
