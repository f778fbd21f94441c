package platform

const bsdWidth = 7

type bsd struct{}

func (bsd) Variant() Variant { return BSD }

// FormatRow pads every field, a single one included.
func (bsd) FormatRow(fields []int64, label string, columnWidth int) string {
	return withLabel(joinPadded(fields, columnWidth), label)
}

func (bsd) ColumnWidth(Layout) int { return bsdWidth }

func (bsd) ShowTotal(_ TotalMode, entries int) bool { return entries > 1 }

func (bsd) DirectoryPolicy() DirPolicy { return DirZeroRow }

func (bsd) DashIsStdin() bool { return true }

func (bsd) Flags() Flags { return Flags{MaxLineLength: true} }
