package platform

const genericWidth = 8

type generic struct{}

func (generic) Variant() Variant { return Generic }

func (generic) FormatRow(fields []int64, label string, columnWidth int) string {
	return withLabel(joinPadded(fields, columnWidth), label)
}

func (generic) ColumnWidth(Layout) int { return genericWidth }

func (generic) ShowTotal(_ TotalMode, entries int) bool { return entries > 1 }

func (generic) DirectoryPolicy() DirPolicy { return DirError }

// DashIsStdin is false: a plain UNIX wc opens "-" as a file name.
func (generic) DashIsStdin() bool { return false }

func (generic) Flags() Flags { return Flags{} }
