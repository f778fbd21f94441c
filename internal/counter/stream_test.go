package counter

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chriscorrea/vwc/internal/locale"
)

var allFields = NewFieldSet(Lines, Words, Chars, Bytes, MaxLineLength)

// countChunks feeds chunks to a fresh Stream and finalizes it.
func countChunks(fields FieldSet, chunks ...[]byte) Counts {
	s := New(fields, locale.Lookup(locale.UTF8).NewDecoder())
	for _, c := range chunks {
		s.Feed(c)
	}
	return s.Finalize()
}

func TestStreamCounts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Counts
	}{
		{
			name:     "empty input",
			input:    "",
			expected: Counts{},
		},
		{
			name:     "two lines three words",
			input:    "foo bar\nbaz\n",
			expected: Counts{Lines: 2, Words: 3, Chars: 12, Bytes: 12, MaxLineLength: 7},
		},
		{
			name:     "no trailing newline",
			input:    "hello world",
			expected: Counts{Lines: 0, Words: 2, Chars: 11, Bytes: 11, MaxLineLength: 11},
		},
		{
			name:     "all whitespace kinds separate words",
			input:    "a b\tc\nd\ve\ff\rg",
			expected: Counts{Lines: 1, Words: 7, Chars: 13, Bytes: 13, MaxLineLength: 9},
		},
		{
			name:     "wide char then tab then ascii",
			input:    "中\tx",
			expected: Counts{Words: 2, Chars: 3, Bytes: 5, MaxLineLength: 9},
		},
		{
			name:     "tab stops",
			input:    "\t\tab\n",
			expected: Counts{Lines: 1, Words: 1, Chars: 5, Bytes: 5, MaxLineLength: 18},
		},
		{
			name:     "multibyte characters",
			input:    "café naïve\n",
			expected: Counts{Lines: 1, Words: 2, Chars: 11, Bytes: 13, MaxLineLength: 10},
		},
		{
			name:     "invalid bytes ignored for chars but counted as bytes and words",
			input:    "a\xffb\n",
			expected: Counts{Lines: 1, Words: 1, Chars: 3, Bytes: 4, MaxLineLength: 2},
		},
		{
			name:     "control characters have no width",
			input:    "a\x1b[0mb\n",
			expected: Counts{Lines: 1, Words: 1, Chars: 7, Bytes: 7, MaxLineLength: 5},
		},
		{
			name:     "widest line is not the last",
			input:    "longest line\nshort\n",
			expected: Counts{Lines: 2, Words: 3, Chars: 19, Bytes: 19, MaxLineLength: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := countChunks(allFields, []byte(tt.input))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("counts for %q mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestStreamDefaultFields(t *testing.T) {
	got := countChunks(DefaultFields, []byte("foo bar\nbaz\n"))

	if diff := cmp.Diff([]int64{2, 3, 12}, got.Values(DefaultFields)); diff != "" {
		t.Errorf("default field values mismatch (-want +got):\n%s", diff)
	}
	if got.Get(Chars) != 0 || got.Get(MaxLineLength) != 0 {
		t.Errorf("unselected fields were counted: %v", got)
	}
}

func TestStreamChunkBoundaryInvariance(t *testing.T) {
	inputs := []string{
		"foo bar\nbaz\n",
		"  leading and trailing  ",
		"word",
		"中文 字符\t和 tabs\n第二行",
		"café\xffnaïve \xe4\xb8\n",
		"a\tbb\tccc\tdddd\n\n\nx",
		"😀 emoji 😀\n",
		"한국어 Ｆｕｌｌ\n",
	}

	for _, input := range inputs {
		whole := countChunks(allFields, []byte(input))

		// every two-piece split
		for i := 0; i <= len(input); i++ {
			got := countChunks(allFields, []byte(input[:i]), []byte(input[i:]))
			if diff := cmp.Diff(whole, got); diff != "" {
				t.Errorf("split of %q at %d mismatch (-whole +split):\n%s", input, i, diff)
			}
		}

		// one byte at a time
		chunks := make([][]byte, len(input))
		for i := range input {
			chunks[i] = []byte{input[i]}
		}
		if diff := cmp.Diff(whole, countChunks(allFields, chunks...)); diff != "" {
			t.Errorf("byte-wise feed of %q mismatch (-whole +split):\n%s", input, diff)
		}
	}
}

func TestStreamASCIIWidthIsLongestLine(t *testing.T) {
	lines := []string{"short", "a considerably longer line of text", "", "mid length line"}
	got := countChunks(NewFieldSet(MaxLineLength), []byte(strings.Join(lines, "\n")))

	longest := 0
	for _, l := range lines {
		if len(l) > longest {
			longest = len(l)
		}
	}
	if got.Get(MaxLineLength) != int64(longest) {
		t.Errorf("MaxLineLength = %d, want %d", got.Get(MaxLineLength), longest)
	}
}

func TestStreamSnapshot(t *testing.T) {
	s := New(allFields, nil)
	s.Feed([]byte("one two\nthree"))

	snap := s.Snapshot()
	if snap.Get(Lines) != 1 || snap.Get(Words) != 3 || snap.Get(Bytes) != 13 {
		t.Errorf("Snapshot() = %v, want lines=1 words=3 bytes=13", snap)
	}
	if snap.Get(MaxLineLength) != 7 {
		t.Errorf("Snapshot() MaxLineLength = %d, want 7", snap.Get(MaxLineLength))
	}

	s.Feed([]byte(" four five six\n"))
	final := s.Finalize()
	if final.Get(MaxLineLength) != 19 {
		t.Errorf("Finalize() MaxLineLength = %d, want 19", final.Get(MaxLineLength))
	}

	// finalize is idempotent and later feeds are ignored
	s.Feed([]byte("ignored\n"))
	if diff := cmp.Diff(final, s.Finalize()); diff != "" {
		t.Errorf("second Finalize() mismatch (-first +second):\n%s", diff)
	}
}

func TestWordCounterAcrossChunks(t *testing.T) {
	tests := []struct {
		name     string
		chunks   []string
		expected int64
	}{
		{"word split in two", []string{"hel", "lo"}, 1},
		{"split at space", []string{"hello ", "world"}, 2},
		{"split before space", []string{"hello", " world"}, 2},
		{"word over three chunks", []string{"a", "b", "c"}, 1},
		{"whitespace only chunk between", []string{"a", " ", "b"}, 2},
		{"empty chunk keeps state", []string{"ab", "", "cd"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var wc wordCounter
			var total int64
			for _, c := range tt.chunks {
				total += wc.count([]byte(c))
			}
			if total != tt.expected {
				t.Errorf("words = %d, want %d", total, tt.expected)
			}
		})
	}
}
