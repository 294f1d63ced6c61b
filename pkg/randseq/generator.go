package randseq

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const MaxAlphabetSize = 26

var (
	ErrInvalidAlphabet  = errors.New("invalid alphabet size")
	ErrTooManyWildcards = errors.New("more wildcards than pattern symbols")
)

// Alphabet returns the first size capital letters.
func Alphabet(size int) (string, error) {
	if size < 1 || size > MaxAlphabetSize {
		return "", fmt.Errorf("%w: %d", ErrInvalidAlphabet, size)
	}

	letters := make([]byte, size)
	for i := range letters {
		letters[i] = 'A' + byte(i)
	}

	return string(letters), nil
}

// Generator produces random sequences. It owns its randomness source, two
// generators built from the same seed yield the same sequences.
type Generator struct {
	rand *rand.Rand
}

func New(seed uint64) *Generator {
	return NewFromRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))) //nolint:gosec
}

func NewFromRand(r *rand.Rand) *Generator {
	return &Generator{rand: r}
}

// Bytes returns size symbols drawn uniformly from the first alphabetSize
// capital letters.
func (g *Generator) Bytes(size, alphabetSize int) ([]byte, error) {
	alphabet, err := Alphabet(alphabetSize)
	if err != nil {
		return nil, err
	}

	result := make([]byte, size)
	for i := range result {
		result[i] = alphabet[g.rand.IntN(len(alphabet))]
	}

	return result, nil
}

func (g *Generator) String(size, alphabetSize int) (string, error) {
	b, err := g.Bytes(size, alphabetSize)

	return string(b), err
}

// IntN returns a uniform integer in [0, n).
func (g *Generator) IntN(n int) int {
	return g.rand.IntN(n)
}

// InjectWildcards overwrites count distinct positions of pattern with wildcard
// and returns the positions in the order they were drawn.
func (g *Generator) InjectWildcards(pattern []byte, count int, wildcard byte) ([]int, error) {
	if count < 0 || count > len(pattern) {
		return nil, fmt.Errorf("%w: %d of %d", ErrTooManyWildcards, count, len(pattern))
	}

	// Sparse Fisher-Yates: swapped holds the positions moved out of the
	// shrinking draw range.
	swapped := make(map[int]int, count)
	positions := make([]int, 0, count)

	for i := range count {
		last := len(pattern) - 1 - i
		drawn := g.rand.IntN(last + 1)

		position, ok := swapped[drawn]
		if !ok {
			position = drawn
		}

		replacement, ok := swapped[last]
		if !ok {
			replacement = last
		}

		swapped[drawn] = replacement
		positions = append(positions, position)
	}

	for _, position := range positions {
		pattern[position] = wildcard
	}

	return positions, nil
}
