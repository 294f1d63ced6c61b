package kmp

import "fmt"

const (
	DefaultWildcard  = '?'
	DefaultSeparator = '#'
)

// Matcher decides whether two symbols are equal for matching purposes.
// Implementations are not required to be transitive.
type Matcher interface {
	Matches(a, b byte) bool
}

// Comparator is a Matcher that also knows the symbol reserved for joining
// a pattern and a text into one sequence.
type Comparator interface {
	Matcher
	Separator() byte
}

type MatcherFunc func(a, b byte) bool

func (f MatcherFunc) Matches(a, b byte) bool {
	return f(a, b)
}

// Symbols is the comparator used by the searches: identity plus an optional
// wildcard that matches any symbol.
type Symbols struct {
	wildcard    byte
	separator   byte
	hasWildcard bool
}

func Wildcard(wildcard, separator byte) (Symbols, error) {
	if wildcard == separator {
		return Symbols{}, fmt.Errorf("%w: %q", ErrReservedSymbols, wildcard)
	}

	return Symbols{wildcard: wildcard, separator: separator, hasWildcard: true}, nil
}

func Exact(separator byte) Symbols {
	return Symbols{separator: separator}
}

func Default() Symbols {
	return Symbols{wildcard: DefaultWildcard, separator: DefaultSeparator, hasWildcard: true}
}

func (s Symbols) Matches(a, b byte) bool {
	return a == b || s.IsWildcard(a) || s.IsWildcard(b)
}

func (s Symbols) Separator() byte {
	return s.separator
}

func (s Symbols) Wildcard() (byte, bool) {
	return s.wildcard, s.hasWildcard
}

func (s Symbols) IsWildcard(b byte) bool {
	return s.hasWildcard && b == s.wildcard
}

func (s Symbols) String() string {
	if !s.hasWildcard {
		return fmt.Sprintf("exact(separator=%q)", s.separator)
	}

	return fmt.Sprintf("wildcard(%q, separator=%q)", s.wildcard, s.separator)
}

// barrier keeps the separator from matching anything but itself, so borders
// of a combined sequence never reach across it.
type barrier struct {
	Comparator
}

func (b barrier) Matches(x, y byte) bool {
	sep := b.Separator()
	if x == sep || y == sep {
		return x == y
	}

	return b.Comparator.Matches(x, y)
}
