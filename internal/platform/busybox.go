package platform

const busyboxWidth = 9

type busybox struct{}

func (busybox) Variant() Variant { return BusyBox }

// FormatRow prints a single field bare whatever the column width.
func (busybox) FormatRow(fields []int64, label string, columnWidth int) string {
	if len(fields) == 1 {
		return withLabel(joinPadded(fields, 0), label)
	}
	return withLabel(joinPadded(fields, columnWidth), label)
}

// ColumnWidth is nine columns, or 0 when a single field is selected.
func (busybox) ColumnWidth(l Layout) int {
	if l.Fields == 1 {
		return 0
	}
	return busyboxWidth
}

func (busybox) ShowTotal(_ TotalMode, entries int) bool { return entries > 1 }

func (busybox) DirectoryPolicy() DirPolicy { return DirError }

func (busybox) DashIsStdin() bool { return true }

func (busybox) Flags() Flags { return Flags{MaxLineLength: true} }
