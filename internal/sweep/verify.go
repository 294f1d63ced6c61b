package sweep

import (
	"context"
	"fmt"
	"slices"

	"github.com/zhulik/wildkmp/internal/core"
	"github.com/zhulik/wildkmp/pkg/kmp"
	"github.com/zhulik/wildkmp/pkg/randseq"
)

const (
	DefaultTrials         = 1000
	DefaultMaxTextSize    = 64
	DefaultMaxPatternSize = 8
	DefaultAlphabetSize   = 4
	DefaultMaxExamples    = 5
)

// VerifyOptions bounds the random inputs of Verify. Zero values select the
// defaults, a zero Seed falls back to the configured one.
type VerifyOptions struct {
	Trials         int
	Seed           uint64
	MaxTextSize    int
	MaxPatternSize int
	AlphabetSize   int
	MaxExamples    int
}

type Mismatch struct {
	Mode    kmp.Mode `json:"mode"`
	Text    string   `json:"text"`
	Pattern string   `json:"pattern"`
	Got     []int    `json:"got"`
	Want    []int    `json:"want"`
}

type VerifyReport struct {
	Seed              uint64     `json:"seed"`
	Trials            int        `json:"trials"`
	BaseMismatches    int        `json:"base_mismatches"`
	SpecialMismatches int        `json:"special_mismatches"`
	Examples          []Mismatch `json:"examples"`
}

func (o VerifyOptions) withDefaults() VerifyOptions {
	if o.Trials <= 0 {
		o.Trials = DefaultTrials
	}

	if o.MaxTextSize <= 0 {
		o.MaxTextSize = DefaultMaxTextSize
	}

	if o.MaxPatternSize <= 0 {
		o.MaxPatternSize = DefaultMaxPatternSize
	}

	if o.AlphabetSize <= 0 {
		o.AlphabetSize = DefaultAlphabetSize
	}

	if o.MaxExamples <= 0 {
		o.MaxExamples = DefaultMaxExamples
	}

	return o
}

// Verify compares base and special searches against brute force on random
// inputs. Base mode is allowed to disagree when the pattern holds wildcards,
// any special mode disagreement fails with core.ErrVerificationFail.
func (r *Runner) Verify(ctx context.Context, opts VerifyOptions) (VerifyReport, error) {
	opts = opts.withDefaults()

	if opts.Seed == 0 {
		opts.Seed = r.Config.Seed
	}

	report := VerifyReport{Seed: r.seed(opts.Seed)}
	generator := randseq.New(report.Seed)
	symbols := r.Config.Symbols()
	wildcard, _ := symbols.Wildcard()

	for range opts.Trials {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		alphabetSize := 1 + generator.IntN(opts.AlphabetSize)

		text, err := generator.Bytes(1+generator.IntN(opts.MaxTextSize), alphabetSize)
		if err != nil {
			return report, err
		}

		pattern, err := generator.Bytes(1+generator.IntN(opts.MaxPatternSize), alphabetSize)
		if err != nil {
			return report, err
		}

		_, err = generator.InjectWildcards(pattern, generator.IntN(len(pattern)+1), wildcard)
		if err != nil {
			return report, err
		}

		want := kmp.BruteForce(text, pattern, symbols)

		for _, mode := range []kmp.Mode{kmp.ModeBase, kmp.ModeSpecial} {
			got, err := kmp.Find(mode, text, pattern, symbols)
			if err != nil {
				return report, err
			}

			if slices.Equal(got, want) {
				continue
			}

			if mode == kmp.ModeSpecial {
				report.SpecialMismatches++
			} else {
				report.BaseMismatches++
			}

			if len(report.Examples) < opts.MaxExamples {
				report.Examples = append(report.Examples, Mismatch{
					Mode:    mode,
					Text:    string(text),
					Pattern: string(pattern),
					Got:     got,
					Want:    want,
				})
			}
		}

		report.Trials++
	}

	r.Logger.Info("verification finished",
		"seed", report.Seed,
		"trials", report.Trials,
		"base_mismatches", report.BaseMismatches,
		"special_mismatches", report.SpecialMismatches,
	)

	if report.SpecialMismatches > 0 {
		return report, fmt.Errorf("%w: %d of %d trials", core.ErrVerificationFail, report.SpecialMismatches, report.Trials)
	}

	return report, nil
}
