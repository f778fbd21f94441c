package counter

// Counts holds one value per Field, indexed by Field.
type Counts [numFields]int64

// mergeFunc combines a running total with one file's value.
type mergeFunc func(total, v int64) int64

func sum(total, v int64) int64 {
	return total + v
}

func maxOf(total, v int64) int64 {
	if v > total {
		return v
	}
	return total
}

// mergeRules is the per-field rule used when folding a file into a total.
var mergeRules = [numFields]mergeFunc{
	Lines:         sum,
	Words:         sum,
	Chars:         sum,
	Bytes:         sum,
	MaxLineLength: maxOf,
}

// Get returns the value of f.
func (c Counts) Get(f Field) int64 {
	if f < 0 || f >= numFields {
		return 0
	}
	return c[f]
}

// Merge folds other into c using the per-field merge rules.
func (c *Counts) Merge(other Counts) {
	for f := range c {
		c[f] = mergeRules[f](c[f], other[f])
	}
}

// Values returns the values of the fields in set, in output order.
func (c Counts) Values(set FieldSet) []int64 {
	out := make([]int64, 0, set.Len())
	for _, f := range set.Selected() {
		out = append(out, c[f])
	}
	return out
}
