package kmp

// BuildBorders returns the border-length table of seq: entry i is the length of
// the longest proper prefix of seq that is also a suffix of seq[:i+1], with
// symbol equality decided by m.
//
// The fallback chain calls m at every step. m is not transitive when it has a
// wildcard, so entries cannot be derived from equivalence classes of symbols.
func BuildBorders(seq []byte, m Matcher) []int {
	table := make([]int, len(seq))

	for i := 1; i < len(seq); i++ {
		j := table[i-1]

		for j > 0 && !m.Matches(seq[i], seq[j]) {
			j = table[j-1]
		}

		if m.Matches(seq[i], seq[j]) {
			j++
		}

		table[i] = j
	}

	return table
}

// BuildBordersSpecial returns the border-length table of seq with every entry
// zeroed whose successor extends it by exactly one.
func BuildBordersSpecial(seq []byte, m Matcher) []int {
	table := BuildBorders(seq, m)
	correctBorders(table)

	return table
}

// CorrectBorders applies the special correction to a copy of table.
func CorrectBorders(table []int) []int {
	corrected := make([]int, len(table))
	copy(corrected, table)
	correctBorders(corrected)

	return corrected
}

// correctBorders inspects table[i+1] before zeroing table[i], so it runs as a
// separate pass once the table is complete.
func correctBorders(table []int) {
	for i := 0; i+1 < len(table); i++ {
		if table[i+1] == table[i]+1 {
			table[i] = 0
		}
	}
}
