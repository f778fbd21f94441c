package width

import "testing"

func TestRune(t *testing.T) {
	tests := []struct {
		name     string
		r        rune
		expected int
	}{
		{"ascii letter", 'a', 1},
		{"space", ' ', 1},
		{"nul", 0x00, 0},
		{"escape", 0x1B, 0},
		{"last c0", 0x1F, 0},
		{"delete", 0x7F, 0},
		{"c1 control", 0x85, 0},
		{"last c1", 0x9F, 0},
		{"nbsp", 0xA0, 1},
		{"latin e acute", 'é', 1},
		{"hangul jamo first", 0x1100, 2},
		{"hangul jamo last", 0x115F, 2},
		{"after hangul jamo", 0x1160, 1},
		{"cjk radical", 0x2E80, 2},
		{"hiragana", 'あ', 2},
		{"cjk ideograph", '中', 2},
		{"cjk unified last", 0x9FFF, 2},
		{"yi syllable", 0xA000, 1},
		{"jamo extended-a", 0xA960, 2},
		{"hangul syllable", '한', 2},
		{"hangul syllables last", 0xD7A3, 2},
		{"after hangul syllables", 0xD7A4, 1},
		{"compat ideograph", 0xF900, 2},
		{"fullwidth a", 'Ａ', 2},
		{"halfwidth katakana", 0xFF61, 1},
		{"fullwidth cent", 0xFFE0, 2},
		{"fullwidth won", 0xFFE6, 2},
		{"after fullwidth symbols", 0xFFE7, 1},
		{"emoji", 0x1F600, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rune(tt.r); got != tt.expected {
				t.Errorf("Rune(%U) = %d, want %d", tt.r, got, tt.expected)
			}
		})
	}
}

func TestTab(t *testing.T) {
	tests := []struct {
		from, expected int
	}{
		{0, 8},
		{1, 8},
		{2, 8},
		{7, 8},
		{8, 16},
		{15, 16},
		{16, 24},
	}

	for _, tt := range tests {
		if got := Tab(tt.from); got != tt.expected {
			t.Errorf("Tab(%d) = %d, want %d", tt.from, got, tt.expected)
		}
	}
}
