// Package locale resolves the process character set and decodes byte
// streams incrementally in that character set.
//
// Decoding follows "ignore" semantics: invalid byte sequences are dropped
// and never reported as errors. A multi-byte sequence split across two
// Decode calls is carried over instead of being treated as invalid.
package locale

import (
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// UTF8 is the canonical name of the default character set.
const UTF8 = "UTF-8"

// aliases maps glibc-style codeset spellings (lowercased, punctuation
// removed) to names the IANA index understands.
var aliases = map[string]string{
	"utf8":      UTF8,
	"iso88591":  "ISO-8859-1",
	"iso88592":  "ISO-8859-2",
	"iso88595":  "ISO-8859-5",
	"iso88597":  "ISO-8859-7",
	"iso885915": "ISO-8859-15",
	"koi8r":     "KOI8-R",
	"koi8u":     "KOI8-U",
	"eucjp":     "EUC-JP",
	"euckr":     "EUC-KR",
	"sjis":      "Shift_JIS",
	"shiftjis":  "Shift_JIS",
	"gbk":       "GBK",
	"gb2312":    "GB2312",
	"gb18030":   "GB18030",
	"big5":      "Big5",
	"cp1252":    "windows-1252",
	"cp1251":    "windows-1251",
}

// Charset returns the codeset named by the first non-empty of LC_ALL,
// LC_CTYPE and LANG, as looked up through getenv. The C and POSIX locales,
// and locales without an explicit codeset, map to UTF-8.
func Charset(getenv func(string) string) string {
	var name string
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := getenv(key); v != "" {
			name = v
			break
		}
	}

	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return UTF8
	}

	i := strings.IndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return UTF8
	}
	return name[i+1:]
}

// FromEnv returns the codeset of the current process environment.
func FromEnv() string {
	return Charset(os.Getenv)
}

// Encoding is a resolved character set.
type Encoding struct {
	name string
	enc  encoding.Encoding // nil for UTF-8
}

// Name returns the canonical character set name.
func (e Encoding) Name() string {
	return e.name
}

// NewDecoder returns a fresh incremental decoder for e.
func (e Encoding) NewDecoder() Decoder {
	if e.enc == nil {
		return &utf8Decoder{}
	}
	return newTextDecoder(e.enc.NewDecoder())
}

// Lookup resolves charset to an Encoding. Unknown or unsupported names
// fall back to UTF-8.
func Lookup(charset string) Encoding {
	name := charset
	if alias, ok := aliases[normalize(charset)]; ok {
		name = alias
	}
	if name == UTF8 {
		return Encoding{name: UTF8}
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		enc, err = htmlindex.Get(name)
	}
	if err != nil || enc == nil {
		slog.Debug("Unknown character set, using UTF-8", "charset", charset)
		return Encoding{name: UTF8}
	}

	if canonical, err := ianaindex.MIME.Name(enc); err == nil && canonical != "" {
		name = canonical
	}
	if name == UTF8 {
		return Encoding{name: UTF8}
	}

	slog.Debug("Resolved character set", "charset", charset, "encoding", name)
	return Encoding{name: name, enc: enc}
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r == '-' || r == '_' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
