package counter

import (
	"bytes"
	"log/slog"

	"github.com/chriscorrea/vwc/internal/locale"
)

// Stream accumulates Counts over a sequence of byte chunks.
// A Stream is not safe for concurrent use.
type Stream struct {
	fields FieldSet
	dec    locale.Decoder

	counts    Counts
	words     wordCounter
	width     lineWidth
	finalized bool
}

// New returns a Stream counting fields. dec decodes characters for the
// Chars and MaxLineLength fields; when nil, UTF-8 is assumed.
func New(fields FieldSet, dec locale.Decoder) *Stream {
	if dec == nil && (fields.Has(Chars) || fields.Has(MaxLineLength)) {
		dec = locale.Lookup(locale.UTF8).NewDecoder()
	}
	return &Stream{
		fields: fields,
		dec:    dec,
	}
}

// Feed counts one chunk. It never fails: undecodable bytes are skipped
// for the character and width counts.
func (s *Stream) Feed(chunk []byte) {
	if len(chunk) == 0 || s.finalized {
		return
	}

	s.counts[Bytes] += int64(len(chunk))

	if s.fields.Has(Lines) {
		s.counts[Lines] += int64(bytes.Count(chunk, []byte{'\n'}))
	}

	if s.fields.Has(Words) {
		s.counts[Words] += s.words.count(chunk)
	}

	// decode once and share the text between chars and width
	if s.fields.Has(Chars) || s.fields.Has(MaxLineLength) {
		text := s.dec.Decode(chunk)
		if s.fields.Has(Chars) {
			s.counts[Chars] += charCount(text)
		}
		if s.fields.Has(MaxLineLength) {
			s.width.feed(text)
		}
	}
}

// Snapshot returns the counts so far without finishing the stream.
func (s *Stream) Snapshot() Counts {
	c := s.counts
	if s.fields.Has(MaxLineLength) && !s.finalized {
		c[MaxLineLength] = int64(s.width.peek())
	}
	return c
}

// Finalize completes the last line and returns the final counts.
// Calls after the first return the same result.
func (s *Stream) Finalize() Counts {
	if s.finalized {
		return s.counts
	}
	s.finalized = true

	if s.fields.Has(MaxLineLength) {
		s.width.endLine()
		s.counts[MaxLineLength] = int64(s.width.max)
	}

	slog.Debug("Stream finalized", "fields", s.fields.String(), "bytes", s.counts[Bytes],
		"lines", s.counts[Lines], "words", s.counts[Words], "chars", s.counts[Chars],
		"maxLineLength", s.counts[MaxLineLength])
	return s.counts
}
