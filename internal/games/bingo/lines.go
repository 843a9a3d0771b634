package bingo

// Completion reports which rows and columns are fully marked.
type Completion struct {
	Rows [Size]bool
	Cols [Size]bool
}

// Detect derives line completion from a selection. It is recomputed from
// scratch on every call.
func Detect(sel Selection) Completion {
	var c Completion
	for r := 0; r < Size; r++ {
		c.Rows[r] = true
		for col := 0; col < Size; col++ {
			if !sel.Has(r*Size + col) {
				c.Rows[r] = false
				break
			}
		}
	}
	for col := 0; col < Size; col++ {
		c.Cols[col] = true
		for r := 0; r < Size; r++ {
			if !sel.Has(r*Size + col) {
				c.Cols[col] = false
				break
			}
		}
	}
	return c
}

// Lines returns the number of completed rows plus columns (0..10).
func (c Completion) Lines() int {
	n := 0
	for i := 0; i < Size; i++ {
		if c.Rows[i] {
			n++
		}
		if c.Cols[i] {
			n++
		}
	}
	return n
}

// StruckLetters returns how many BINGO letters are crossed out for the
// given line count: letters are struck left to right, one per line.
func StruckLetters(lines int) int {
	return min(max(lines, 0), len(Letters))
}
