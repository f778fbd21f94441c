package locale

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Decoder converts a byte stream to UTF-8 one chunk at a time.
type Decoder interface {
	// Decode returns the UTF-8 text for every complete sequence in the
	// carried bytes followed by p. A trailing incomplete sequence is kept
	// for the next call. The returned slice is only valid until the next
	// call to Decode or Reset.
	Decode(p []byte) []byte

	// Reset drops any carried partial sequence.
	Reset()
}

// utf8Decoder validates UTF-8 in place and drops invalid bytes.
type utf8Decoder struct {
	carry []byte
	buf   []byte
	out   []byte
}

func (d *utf8Decoder) Decode(p []byte) []byte {
	src := p
	if len(d.carry) > 0 {
		d.buf = append(append(d.buf[:0], d.carry...), p...)
		d.carry = d.carry[:0]
		src = d.buf
	}

	if utf8.Valid(src) {
		return src
	}

	d.out = d.out[:0]
	for i := 0; i < len(src); {
		c := src[i]
		if c < utf8.RuneSelf {
			d.out = append(d.out, c)
			i++
			continue
		}
		if !utf8.FullRune(src[i:]) {
			d.carry = append(d.carry, src[i:]...)
			break
		}
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		d.out = append(d.out, src[i:i+size]...)
		i += size
	}
	return d.out
}

func (d *utf8Decoder) Reset() {
	d.carry = d.carry[:0]
}

// replacement is U+FFFD as emitted by x/text decoders for undecodable input.
var replacement = []byte("\uFFFD")

// textDecoder adapts an x/text transformer to the Decoder contract.
type textDecoder struct {
	t       transform.Transformer
	carry   []byte
	in      []byte
	out     []byte
	scratch []byte
}

func newTextDecoder(t transform.Transformer) *textDecoder {
	return &textDecoder{t: t, scratch: make([]byte, 4096)}
}

func (d *textDecoder) Decode(p []byte) []byte {
	d.in = append(append(d.in[:0], d.carry...), p...)
	d.carry = d.carry[:0]
	d.out = d.out[:0]

	src := d.in
	for len(src) > 0 {
		nDst, nSrc, err := d.t.Transform(d.scratch, src, false)
		d.out = dropReplacement(d.out, d.scratch[:nDst])
		src = src[nSrc:]

		switch {
		case err == nil:
			if nSrc == 0 {
				return d.out
			}
		case errors.Is(err, transform.ErrShortSrc):
			d.carry = append(d.carry, src...)
			return d.out
		case errors.Is(err, transform.ErrShortDst) && (nSrc > 0 || nDst > 0):
			// scratch filled up; go around again
		default:
			// skip the byte the transformer could not handle
			src = src[1:]
		}
	}
	return d.out
}

func (d *textDecoder) Reset() {
	d.t.Reset()
	d.carry = d.carry[:0]
}

func dropReplacement(dst, p []byte) []byte {
	for len(p) > 0 {
		i := bytes.Index(p, replacement)
		if i < 0 {
			return append(dst, p...)
		}
		dst = append(dst, p[:i]...)
		p = p[i+len(replacement):]
	}
	return dst
}
