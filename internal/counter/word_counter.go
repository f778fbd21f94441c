package counter

// space is the byte-level whitespace class: space, \t, \n, \v, \f and \r.
var space = [256]bool{' ': true, '\t': true, '\n': true, '\v': true, '\f': true, '\r': true}

// wordCounter counts runs of non-whitespace bytes across chunk boundaries.
type wordCounter struct {
	inWord bool // previous chunk ended inside a word
}

// count returns how many new words chunk contributes.
// A word continuing from the previous chunk was already counted there,
// so it is subtracted before the runs of this chunk are added.
func (wc *wordCounter) count(chunk []byte) int64 {
	if len(chunk) == 0 {
		return 0
	}

	var n int64
	if wc.inWord && !space[chunk[0]] {
		n--
	}

	prevSpace := true
	for _, c := range chunk {
		isSpace := space[c]
		if !isSpace && prevSpace {
			n++
		}
		prevSpace = isSpace
	}

	wc.inWord = !space[chunk[len(chunk)-1]]
	return n
}
