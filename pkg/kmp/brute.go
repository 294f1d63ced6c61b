package kmp

// BruteForce compares pattern against every alignment in text symbol by
// symbol. It is the reference the automaton searches are checked against.
func BruteForce(text, pattern []byte, m Matcher) []int {
	if len(pattern) == 0 {
		return nil
	}

	var offsets []int

	for i := 0; i+len(pattern) <= len(text); i++ {
		matched := true

		for j := range pattern {
			if !m.Matches(pattern[j], text[i+j]) {
				matched = false

				break
			}
		}

		if matched {
			offsets = append(offsets, i)
		}
	}

	return offsets
}
