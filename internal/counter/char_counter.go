package counter

import (
	"unicode/utf8"

	"github.com/chriscorrea/vwc/internal/width"
)

// charCount returns the number of characters in decoded UTF-8 text.
func charCount(text []byte) int64 {
	return int64(utf8.RuneCount(text))
}

// lineWidth tracks the display width of the current line and the widest
// completed line.
type lineWidth struct {
	current int
	max     int
}

// feed advances over decoded UTF-8 text. The width of an unfinished last
// line stays in current for the next call.
func (lw *lineWidth) feed(text []byte) {
	for len(text) > 0 {
		c := text[0]
		if c < utf8.RuneSelf {
			text = text[1:]
			switch c {
			case '\n':
				lw.endLine()
			case '\t':
				lw.current = width.Tab(lw.current)
			default:
				lw.current += width.Rune(rune(c))
			}
			continue
		}

		r, size := utf8.DecodeRune(text)
		text = text[size:]
		lw.current += width.Rune(r)
	}
}

func (lw *lineWidth) endLine() {
	if lw.current > lw.max {
		lw.max = lw.current
	}
	lw.current = 0
}

// peek returns the widest line so far, including the unfinished one.
func (lw *lineWidth) peek() int {
	if lw.current > lw.max {
		return lw.current
	}
	return lw.max
}
