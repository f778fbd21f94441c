// Package platform renders count rows the way a particular wc
// implementation does and describes how that implementation treats
// totals, directories and standard input.
//
// The supported variants form a closed set (GNU, BSD, BusyBox, Generic),
// all behind the Formatter interface. A variant is selected once at
// startup, either from configuration or by Detect.
package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// PreviewWidth is the column width used for live preview rows, which are
// drawn before any data-derived width is known.
const PreviewWidth = 7

// Variant identifies a reference wc implementation.
type Variant int

const (
	// Generic is a plain UNIX wc with fixed eight-column fields
	Generic Variant = iota
	// GNU is GNU coreutils wc
	GNU
	// BSD is the BSD and macOS wc
	BSD
	// BusyBox is the BusyBox applet
	BusyBox
)

// String returns the lower-case name of the variant.
func (v Variant) String() string {
	switch v {
	case Generic:
		return "generic"
	case GNU:
		return "gnu"
	case BSD:
		return "bsd"
	case BusyBox:
		return "busybox"
	default:
		return "unknown"
	}
}

// ParseVariant parses a variant name. "auto" and "" report auto=true so
// the caller can fall back to Detect.
func ParseVariant(s string) (v Variant, auto bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Generic, true, nil
	case "generic", "unix":
		return Generic, false, nil
	case "gnu", "linux":
		return GNU, false, nil
	case "bsd", "darwin", "macos", "freebsd":
		return BSD, false, nil
	case "busybox":
		return BusyBox, false, nil
	default:
		return Generic, false, fmt.Errorf("unknown platform %q", s)
	}
}

// TotalMode controls when a total row is printed.
type TotalMode int

const (
	// TotalAuto prints a total when more than one entry was given
	TotalAuto TotalMode = iota
	// TotalAlways prints a total even for a single entry
	TotalAlways
	// TotalOnly prints only the unlabeled total
	TotalOnly
	// TotalNever suppresses the total
	TotalNever
)

// String returns the --total argument spelling of m.
func (m TotalMode) String() string {
	switch m {
	case TotalAuto:
		return "auto"
	case TotalAlways:
		return "always"
	case TotalOnly:
		return "only"
	case TotalNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseTotalMode parses a --total argument.
func ParseTotalMode(s string) (TotalMode, error) {
	switch s {
	case "auto":
		return TotalAuto, nil
	case "always":
		return TotalAlways, nil
	case "only":
		return TotalOnly, nil
	case "never":
		return TotalNever, nil
	default:
		return TotalAuto, fmt.Errorf("invalid argument %q for '--total'", s)
	}
}

// DirPolicy says what happens when an entry is a directory.
type DirPolicy int

const (
	// DirError reports the directory and skips it
	DirError DirPolicy = iota
	// DirZeroRow prints an all-zero row and carries on without error
	DirZeroRow
)

// FileMeta is what the column width computation knows about an entry
// before it is read.
type FileMeta struct {
	Name    string
	Stdin   bool
	Regular bool
	Size    int64
	Err     error // stat failure; such entries are skipped
}

// Layout is the input to a column width computation.
type Layout struct {
	Mode   TotalMode
	Fields int // number of selected fields
	Files  []FileMeta
}

// Flags lists the command-line options a variant offers beyond the
// short -c, -m, -l and -w.
type Flags struct {
	MaxLineLength     bool // -L
	LongMaxLineLength bool // --max-line-length
	LongCounts        bool // --bytes, --chars, --lines, --words
	Files0From        bool // --files0-from
	Total             bool // --total
	Version           bool // --version
}

// Formatter is the behaviour profile of one wc implementation.
type Formatter interface {
	// Variant returns the implementation this formatter reproduces.
	Variant() Variant

	// FormatRow renders the selected field values, followed by label when
	// it is not empty. The result has no trailing newline.
	FormatRow(fields []int64, label string, columnWidth int) string

	// ColumnWidth returns the width used for every row of a run.
	ColumnWidth(l Layout) int

	// ShowTotal reports whether a total row follows the per-entry rows.
	ShowTotal(mode TotalMode, entries int) bool

	// DirectoryPolicy says how directories are treated.
	DirectoryPolicy() DirPolicy

	// DashIsStdin reports whether an operand of "-" means standard input.
	DashIsStdin() bool

	// Flags lists the options this implementation accepts.
	Flags() Flags
}

// New returns the Formatter for v.
func New(v Variant) Formatter {
	switch v {
	case GNU:
		return gnu{}
	case BSD:
		return bsd{}
	case BusyBox:
		return busybox{}
	default:
		return generic{}
	}
}

// joinPadded right-justifies each value to width and joins them with a
// single space.
func joinPadded(fields []int64, width int) string {
	var b strings.Builder
	for i, v := range fields {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%*d", width, v)
	}
	return b.String()
}

func withLabel(row, label string) string {
	if label == "" {
		return row
	}
	return row + " " + label
}

func digits(n int64) int {
	return len(strconv.FormatInt(n, 10))
}
