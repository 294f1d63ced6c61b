package rangeparser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidRange = errors.New("invalid range")
)

// Range is an inclusive arithmetic progression of pattern lengths.
type Range struct {
	Start int
	End   int
	Step  int
}

// Parse reads "start-end/step". Any bound may be a percentage of textSize,
// e.g. "2%-50%/2%". A missing step defaults to start.
func Parse(spec string, textSize int) (*Range, error) {
	var (
		r   Range
		err error
	)

	bounds, step, hasStep := strings.Cut(spec, "/")

	parts := strings.Split(bounds, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: expected start-end in %q", ErrInvalidRange, spec)
	}

	r.Start, err = parseValue(parts[0], textSize)
	if err != nil || r.Start <= 0 {
		return nil, fmt.Errorf("%w: invalid start %q", ErrInvalidRange, parts[0])
	}

	r.End, err = parseValue(parts[1], textSize)
	if err != nil || r.End < r.Start {
		return nil, fmt.Errorf("%w: invalid end %q", ErrInvalidRange, parts[1])
	}

	r.Step = r.Start

	if hasStep {
		r.Step, err = parseValue(step, textSize)
		if err != nil || r.Step <= 0 {
			return nil, fmt.Errorf("%w: invalid step %q", ErrInvalidRange, step)
		}
	}

	if r.End > textSize {
		return nil, fmt.Errorf("%w: end %d beyond text size %d", ErrInvalidRange, r.End, textSize)
	}

	return &r, nil
}

// Lengths expands the range.
func (r *Range) Lengths() []int {
	var lengths []int

	for l := r.Start; l <= r.End; l += r.Step {
		lengths = append(lengths, l)
	}

	return lengths
}

func parseValue(s string, textSize int) (int, error) {
	percent, isPercent := strings.CutSuffix(s, "%")
	if !isPercent {
		return strconv.Atoi(s)
	}

	p, err := strconv.Atoi(percent)
	if err != nil {
		return 0, err
	}

	return textSize * p / 100, nil
}
