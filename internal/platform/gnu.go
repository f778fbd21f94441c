package platform

// gnuMaxWidth caps the data-derived column width.
const gnuMaxWidth = 7

type gnu struct{}

func (gnu) Variant() Variant { return GNU }

// FormatRow prints a single field bare; several fields are padded to
// columnWidth.
func (gnu) FormatRow(fields []int64, label string, columnWidth int) string {
	if len(fields) == 1 {
		return withLabel(joinPadded(fields, 0), label)
	}
	return withLabel(joinPadded(fields, columnWidth), label)
}

// ColumnWidth mirrors compute_number_width from coreutils wc.c: the width
// is the digit count of the summed sizes of the regular files, unless
// standard input or a non-regular file makes the sizes unknowable.
func (gnu) ColumnWidth(l Layout) int {
	if l.Mode == TotalOnly {
		return 1
	}
	if len(l.Files) == 0 {
		return gnuMaxWidth
	}

	width := 1
	var total int64
	for _, f := range l.Files {
		if f.Stdin {
			return gnuMaxWidth
		}
		if f.Err != nil {
			continue
		}
		if !f.Regular {
			return gnuMaxWidth
		}
		total += f.Size
		if d := digits(total); d > width {
			width = d
		}
		if width >= gnuMaxWidth {
			return gnuMaxWidth
		}
	}
	return width
}

func (gnu) ShowTotal(mode TotalMode, entries int) bool {
	switch mode {
	case TotalAlways, TotalOnly:
		return true
	case TotalNever:
		return false
	default:
		return entries > 1
	}
}

func (gnu) DirectoryPolicy() DirPolicy { return DirError }

func (gnu) DashIsStdin() bool { return true }

func (gnu) Flags() Flags {
	return Flags{
		MaxLineLength:     true,
		LongMaxLineLength: true,
		LongCounts:        true,
		Files0From:        true,
		Total:             true,
		Version:           true,
	}
}
