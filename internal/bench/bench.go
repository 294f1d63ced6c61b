package bench

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidRuns = errors.New("runs must be positive")

// Measure runs fn runs times and returns the mean wall time of one run.
// Cancellation is checked between runs, a started run always completes.
func Measure(ctx context.Context, runs int, fn func()) (time.Duration, error) {
	if runs < 1 {
		return 0, ErrInvalidRuns
	}

	var total time.Duration

	for range runs {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		start := time.Now()
		fn()
		total += time.Since(start)
	}

	return total / time.Duration(runs), nil
}
