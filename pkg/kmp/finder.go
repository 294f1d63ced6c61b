package kmp

// Searcher finds the first occurrence of a pattern, -1 when there is none.
type Searcher interface {
	FindIndex(text, pattern []byte) int
	FindIndexString(text, pattern string) int
}

// Finder binds a comparator and a search mode.
type Finder struct {
	Comparator Comparator
	Mode       Mode
}

func NewFinder(cmp Comparator, mode Mode) *Finder {
	return &Finder{Comparator: cmp, Mode: mode}
}

func (f *Finder) String() string {
	return "KNUTH-MORRIS-PRATT(" + f.Mode.String() + ")"
}

func (f *Finder) FindAll(text, pattern []byte) ([]int, error) {
	return Find(f.Mode, text, pattern, f.Comparator)
}

func (f *Finder) FindIndex(text, pattern []byte) int {
	if text == nil || pattern == nil {
		return -1
	}

	nn, err := f.FindAll(text, pattern)
	if err != nil || len(nn) == 0 {
		return -1
	}

	return nn[0]
}

func (f *Finder) FindIndexString(text, pattern string) int {
	return f.FindIndex([]byte(text), []byte(pattern))
}
