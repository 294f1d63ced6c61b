package kmp

import (
	"bytes"
	"fmt"
)

type Mode int

const (
	ModeBase Mode = iota
	ModeSpecial
	ModeBruteForce
)

func (m Mode) String() string {
	switch m {
	case ModeBase:
		return "base"
	case ModeSpecial:
		return "special"
	case ModeBruteForce:
		return "brute"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "base", "kmp":
		return ModeBase, nil
	case "special", "kmp-special":
		return ModeSpecial, nil
	case "brute", "naive":
		return ModeBruteForce, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}

	*m = mode

	return nil
}

// Find runs the search selected by mode.
func Find(mode Mode, text, pattern []byte, cmp Comparator) ([]int, error) {
	switch mode {
	case ModeBase:
		return Search(text, pattern, cmp, false)
	case ModeSpecial:
		return Search(text, pattern, cmp, true)
	case ModeBruteForce:
		if len(pattern) == 0 {
			return nil, ErrEmptyPattern
		}

		return BruteForce(text, pattern, cmp), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

// Search returns the offsets in text at which pattern starts, in ascending
// order. The pattern is joined to the text with the comparator's separator and a
// single border table over the joined sequence yields the matches.
//
// Without special the base table is scanned. It is exact for wildcard-free
// patterns; with wildcards it may report alignments that do not match.
// With special the corrected table is used, and patterns holding wildcards are
// located run by run. The result always equals BruteForce: a text holding the
// wildcard is compared alignment by alignment.
func Search(text, pattern []byte, cmp Comparator, special bool) ([]int, error) {
	err := validate(text, pattern, cmp.Separator())
	if err != nil {
		return nil, err
	}

	if !special {
		return searchCombined(text, pattern, cmp, BuildBorders), nil
	}

	if containsWildcard(text, cmp) {
		return BruteForce(text, pattern, cmp), nil
	}

	runs := literalRuns(pattern, cmp)
	if len(runs) == 1 && len(runs[0].symbols) == len(pattern) {
		return searchCombined(text, pattern, cmp, BuildBordersSpecial), nil
	}

	return searchRuns(text, len(pattern), runs, cmp), nil
}

func SearchString(text, pattern string, cmp Comparator, special bool) ([]int, error) {
	return Search([]byte(text), []byte(pattern), cmp, special)
}

// Scan returns the text offsets at which a table built over
// pattern ++ separator ++ text reaches the pattern length m.
func Scan(table []int, m int) []int {
	var offsets []int

	for k := m + 1; k < len(table); k++ {
		if table[k] == m {
			offsets = append(offsets, k-2*m)
		}
	}

	return offsets
}

func validate(text, pattern []byte, separator byte) error {
	if len(pattern) == 0 {
		return ErrEmptyPattern
	}

	if bytes.IndexByte(pattern, separator) >= 0 {
		return fmt.Errorf("%w: pattern contains %q", ErrSeparatorInInput, separator)
	}

	if bytes.IndexByte(text, separator) >= 0 {
		return fmt.Errorf("%w: text contains %q", ErrSeparatorInInput, separator)
	}

	return nil
}

// combine builds the joined sequence owned by a single search call.
func combine(pattern, text []byte, separator byte) []byte {
	data := make([]byte, 0, len(pattern)+1+len(text))
	data = append(data, pattern...)
	data = append(data, separator)

	return append(data, text...)
}

func searchCombined(text, pattern []byte, cmp Comparator, build func([]byte, Matcher) []int) []int {
	data := combine(pattern, text, cmp.Separator())

	return Scan(build(data, barrier{cmp}), len(pattern))
}

type literalRun struct {
	offset  int
	symbols []byte
}

type wildcarder interface {
	IsWildcard(b byte) bool
}

// containsWildcard reports whether seq holds a wildcard of cmp. A text
// wildcard matches every pattern symbol, so text symbols stop being equal
// transitively and the automaton loses alignments.
func containsWildcard(seq []byte, cmp Comparator) bool {
	w, ok := cmp.(wildcarder)
	if !ok {
		return false
	}

	for _, b := range seq {
		if w.IsWildcard(b) {
			return true
		}
	}

	return false
}

// literalRuns splits pattern into maximal runs free of wildcards. Comparators
// that cannot tell wildcards apart yield the whole pattern as one run.
func literalRuns(pattern []byte, cmp Comparator) []literalRun {
	w, ok := cmp.(wildcarder)
	if !ok {
		return []literalRun{{symbols: pattern}}
	}

	var runs []literalRun

	start := -1

	for i, b := range pattern {
		switch {
		case w.IsWildcard(b) && start >= 0:
			runs = append(runs, literalRun{offset: start, symbols: pattern[start:i]})
			start = -1
		case !w.IsWildcard(b) && start < 0:
			start = i
		}
	}

	if start >= 0 {
		runs = append(runs, literalRun{offset: start, symbols: pattern[start:]})
	}

	return runs
}

// searchRuns locates every literal run with the corrected automaton and
// reports the alignments all runs agree on.
func searchRuns(text []byte, patternLen int, runs []literalRun, cmp Comparator) []int {
	if patternLen > len(text) {
		return nil
	}

	votes := make([]int, len(text)-patternLen+1)

	for _, run := range runs {
		for _, hit := range searchCombined(text, run.symbols, cmp, BuildBordersSpecial) {
			alignment := hit - run.offset
			if alignment >= 0 && alignment < len(votes) {
				votes[alignment]++
			}
		}
	}

	var offsets []int

	for alignment, n := range votes {
		if n == len(runs) {
			offsets = append(offsets, alignment)
		}
	}

	return offsets
}
