package counter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFieldString(t *testing.T) {
	tests := []struct {
		field    Field
		expected string
	}{
		{Lines, "lines"},
		{Words, "words"},
		{Chars, "chars"},
		{Bytes, "bytes"},
		{MaxLineLength, "max-line-length"},
		{Field(999), "unknown"}, // invalid field
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.field.String()
			if result != tt.expected {
				t.Errorf("Field(%d).String() = %q, want %q", int(tt.field), result, tt.expected)
			}
		})
	}
}

func TestFieldSetSelected(t *testing.T) {
	tests := []struct {
		name     string
		set      FieldSet
		expected []Field
	}{
		{"empty", 0, []Field{}},
		{"default", DefaultFields, []Field{Lines, Words, Bytes}},
		{"output order ignores insertion order", NewFieldSet(MaxLineLength, Bytes, Lines), []Field{Lines, Bytes, MaxLineLength}},
		{"all", NewFieldSet(Bytes, Chars, Lines, Words, MaxLineLength), []Field{Lines, Words, Chars, Bytes, MaxLineLength}},
		{"invalid field ignored", NewFieldSet(Words, Field(42)), []Field{Words}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.set.Selected()
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Selected() mismatch (-want +got):\n%s", diff)
			}
			if tt.set.Len() != len(tt.expected) {
				t.Errorf("Len() = %d, want %d", tt.set.Len(), len(tt.expected))
			}
		})
	}
}

func TestFieldSetOrDefault(t *testing.T) {
	if got := FieldSet(0).OrDefault(); got != DefaultFields {
		t.Errorf("empty OrDefault() = %v, want %v", got, DefaultFields)
	}

	chars := NewFieldSet(Chars)
	if got := chars.OrDefault(); got != chars {
		t.Errorf("OrDefault() = %v, want %v", got, chars)
	}
}

func TestCountsMerge(t *testing.T) {
	tests := []struct {
		name     string
		total    Counts
		other    Counts
		expected Counts
	}{
		{
			name:     "into empty",
			total:    Counts{},
			other:    Counts{Lines: 2, Words: 3, Chars: 12, Bytes: 12, MaxLineLength: 7},
			expected: Counts{Lines: 2, Words: 3, Chars: 12, Bytes: 12, MaxLineLength: 7},
		},
		{
			name:     "sums counts and keeps wider line",
			total:    Counts{Lines: 1, Words: 1, Chars: 5, Bytes: 6, MaxLineLength: 9},
			other:    Counts{Lines: 4, Words: 10, Chars: 40, Bytes: 44, MaxLineLength: 3},
			expected: Counts{Lines: 5, Words: 11, Chars: 45, Bytes: 50, MaxLineLength: 9},
		},
		{
			name:     "width takes the larger value",
			total:    Counts{MaxLineLength: 3},
			other:    Counts{MaxLineLength: 80},
			expected: Counts{MaxLineLength: 80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.total
			got.Merge(tt.other)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCountsValues(t *testing.T) {
	c := Counts{Lines: 2, Words: 3, Chars: 11, Bytes: 12, MaxLineLength: 7}

	got := c.Values(NewFieldSet(Bytes, Lines, MaxLineLength))
	if diff := cmp.Diff([]int64{2, 12, 7}, got); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}

	if got := c.Get(Field(-1)); got != 0 {
		t.Errorf("Get(invalid) = %d, want 0", got)
	}
}
