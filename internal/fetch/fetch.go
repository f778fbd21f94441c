// Package fetch resolves wc operands into readable inputs: named files,
// standard input, and NUL-separated name lists.
package fetch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"
	"unicode"
	"unicode/utf8"

	"github.com/chriscorrea/vwc/internal/platform"
)

// ErrIsDirectory is returned by Open for a directory operand.
var ErrIsDirectory = errors.New("is a directory")

// Entry is one input to count.
type Entry struct {
	Name  string // display name; empty for implicit standard input
	Stdin bool
}

// Resolve turns operands into entries. With no operands the result is a
// single unnamed standard input entry. When dashIsStdin is false an operand
// of "-" is an ordinary file name.
func Resolve(names []string, dashIsStdin bool) []Entry {
	if len(names) == 0 {
		return []Entry{{Stdin: true}}
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{
			Name:  name,
			Stdin: dashIsStdin && name == "-",
		})
	}
	return entries
}

// Open returns a reader for e. Standard input is wrapped so that closing
// the result leaves stdin open.
func Open(e Entry, stdin io.Reader) (io.ReadCloser, error) {
	if e.Stdin {
		return io.NopCloser(stdin), nil
	}

	file, err := os.Open(e.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", e.Name, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat %q: %w", e.Name, err)
	}
	if info.IsDir() {
		file.Close()
		return nil, fmt.Errorf("%q: %w", e.Name, ErrIsDirectory)
	}

	return file, nil
}

// ReadNameList reads a NUL-separated list of file names from source, or
// from stdin when source is "-". A trailing NUL is optional and empty names
// are skipped. A list read from standard input may not itself name "-".
func ReadNameList(source string, stdin io.Reader) ([]string, error) {
	var (
		data []byte
		err  error
	)
	fromStdin := source == "-"
	if fromStdin {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open %s for reading: %w", quote(source), err)
	}

	var names []string
	for _, field := range bytes.Split(data, []byte{0}) {
		if len(field) == 0 {
			continue
		}
		name := string(field)
		if fromStdin && name == "-" {
			return nil, errors.New("when reading file names from standard input, no file name of '-' allowed")
		}
		names = append(names, name)
	}
	return names, nil
}

// Stat describes entries for column width computation. Symbolic links are
// followed. Standard input is never stat'ed.
func Stat(entries []Entry) []platform.FileMeta {
	metas := make([]platform.FileMeta, 0, len(entries))
	for _, e := range entries {
		meta := platform.FileMeta{Name: e.Name, Stdin: e.Stdin}
		if !e.Stdin {
			info, err := os.Stat(e.Name)
			if err != nil {
				meta.Err = err
			} else {
				meta.Regular = info.Mode().IsRegular()
				meta.Size = info.Size()
			}
		}
		metas = append(metas, meta)
	}
	return metas
}

// Reason returns the C library style description of err used in wc
// diagnostics.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrIsDirectory), errors.Is(err, syscall.EISDIR):
		return "Is a directory"
	case errors.Is(err, fs.ErrNotExist):
		return "No such file or directory"
	case errors.Is(err, fs.ErrPermission):
		return "Permission denied"
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return capitalize(errno.Error())
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return capitalize(pathErr.Err.Error())
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// quote renders a name the way GNU diagnostics do.
func quote(name string) string {
	if name == "-" {
		return "'-'"
	}
	return "'" + name + "'"
}
