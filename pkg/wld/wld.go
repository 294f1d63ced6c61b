package wld

import (
	"strings"

	"github.com/samber/lo"
	"github.com/zhulik/wildkmp/pkg/kmp"
)

// separator never occurs in file names, which is what Match is used on.
const separator = 0

// Match reports whether string s matches pattern p.
// '*' matches any sequence of bytes (including empty).
// '?' matches any single byte.
//
// The pieces between stars are located with the wildcard-aware automaton
// search: the first piece is anchored at the start, the last at the end and
// the ones in between are taken leftmost-first.
func Match(p, s string) bool {
	if strings.IndexByte(s, separator) >= 0 || strings.IndexByte(p, separator) >= 0 {
		return false
	}

	symbols := lo.Must(kmp.Wildcard('?', separator))
	pieces := strings.Split(p, "*")

	if len(pieces) == 1 {
		return len(p) == len(s) && hasPrefix(s, p, symbols)
	}

	first, last := pieces[0], pieces[len(pieces)-1]
	if len(first)+len(last) > len(s) || !hasPrefix(s, first, symbols) || !hasSuffix(s, last, symbols) {
		return false
	}

	rest := s[len(first) : len(s)-len(last)]

	for _, piece := range pieces[1 : len(pieces)-1] {
		if piece == "" {
			continue
		}

		offsets, err := kmp.SearchString(rest, piece, symbols, true)
		if err != nil || len(offsets) == 0 {
			return false
		}

		rest = rest[offsets[0]+len(piece):]
	}

	return true
}

func hasPrefix(s, prefix string, symbols kmp.Symbols) bool {
	if len(prefix) > len(s) {
		return false
	}

	for i := range len(prefix) {
		if !symbols.Matches(prefix[i], s[i]) {
			return false
		}
	}

	return true
}

func hasSuffix(s, suffix string, symbols kmp.Symbols) bool {
	if len(suffix) > len(s) {
		return false
	}

	return hasPrefix(s[len(s)-len(suffix):], suffix, symbols)
}
