package series

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zhulik/wildkmp/pkg/iter"
)

const (
	fieldSeparator  = ","
	pointSeparator  = ";"
	seriesSeparator = "|"
)

var ErrInvalidFormat = errors.New("invalid series format")

// Point is one timing sample: the pattern length searched for and the mean
// time the search took.
type Point struct {
	PatternLength int
	Elapsed       time.Duration
}

type Series []Point

// Encode renders series as "length,ms;length,ms|length,ms". Elapsed times are
// truncated to whole milliseconds.
func Encode(all []Series) []byte {
	var buf bytes.Buffer

	for i, s := range all {
		if i > 0 {
			buf.WriteString(seriesSeparator)
		}

		for j, p := range s {
			if j > 0 {
				buf.WriteString(pointSeparator)
			}

			buf.WriteString(strconv.Itoa(p.PatternLength))
			buf.WriteString(fieldSeparator)
			buf.WriteString(strconv.FormatInt(p.Elapsed.Milliseconds(), 10))
		}
	}

	return buf.Bytes()
}

func Decode(data []byte) ([]Series, error) {
	content := strings.TrimSpace(string(data))
	if content == "" {
		return nil, nil
	}

	return iter.ErrMap(strings.Split(content, seriesSeparator), decodeSeries)
}

func decodeSeries(s string) (Series, error) {
	if s == "" {
		return Series{}, nil
	}

	return iter.ErrMap(strings.Split(s, pointSeparator), decodePoint)
}

func decodePoint(s string) (Point, error) {
	length, elapsed, ok := strings.Cut(s, fieldSeparator)
	if !ok {
		return Point{}, fmt.Errorf("%w: point %q has no %q", ErrInvalidFormat, s, fieldSeparator)
	}

	l, err := strconv.Atoi(length)
	if err != nil || l < 0 {
		return Point{}, fmt.Errorf("%w: invalid pattern length %q", ErrInvalidFormat, length)
	}

	ms, err := strconv.ParseInt(elapsed, 10, 64)
	if err != nil || ms < 0 {
		return Point{}, fmt.Errorf("%w: invalid elapsed time %q", ErrInvalidFormat, elapsed)
	}

	return Point{PatternLength: l, Elapsed: time.Duration(ms) * time.Millisecond}, nil
}
