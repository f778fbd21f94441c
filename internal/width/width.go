// Package width maps codepoints to terminal display columns.
//
// The wide ranges follow the East Asian Wide blocks of Markus Kuhn's
// wcwidth table. This is a per-codepoint approximation: combining marks,
// emoji presentation and grapheme clusters are not modelled.
package width

// TabStop is the column multiple a horizontal tab advances to.
const TabStop = 8

type interval struct {
	first, last rune
}

// wide lists inclusive ranges rendered in two columns, sorted by first.
var wide = []interval{
	{0x1100, 0x115F}, // Hangul Jamo
	{0x2E80, 0x9FFF}, // CJK radicals .. CJK Unified Ideographs
	{0xA960, 0xA97F}, // Hangul Jamo Extended-A
	{0xAC00, 0xD7A3}, // Hangul Syllables
	{0xF900, 0xFAFF}, // CJK Compatibility Ideographs
	{0xFF00, 0xFF60}, // Fullwidth ASCII variants
	{0xFFE0, 0xFFE6}, // Fullwidth symbol variants
}

// Rune returns the number of columns r occupies: 0, 1 or 2.
func Rune(r rune) int {
	if r >= wide[0].first && r <= wide[len(wide)-1].last && isWide(r) {
		return 2
	}
	if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
		return 0
	}
	return 1
}

func isWide(r rune) bool {
	lo, hi := 0, len(wide)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case r < wide[mid].first:
			hi = mid - 1
		case r > wide[mid].last:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

// Tab returns the column reached by a tab typed at column w.
func Tab(w int) int {
	return (w/TabStop + 1) * TabStop
}
