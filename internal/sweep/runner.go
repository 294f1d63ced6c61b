package sweep

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/zhulik/wildkmp/internal/bench"
	"github.com/zhulik/wildkmp/internal/core"
	"github.com/zhulik/wildkmp/internal/results"
	"github.com/zhulik/wildkmp/pkg/kmp"
	"github.com/zhulik/wildkmp/pkg/randseq"
	"github.com/zhulik/wildkmp/pkg/series"
)

// Runner measures search timings over a plan and stores one result file per
// case.
type Runner struct {
	Config *core.Config
	Store  *results.Store
	Logger *slog.Logger
}

func (r *Runner) Sweep(ctx context.Context, plan *Plan) (*results.Run, error) {
	cases, err := plan.Cases()
	if err != nil {
		return nil, err
	}

	generator := randseq.New(r.seed(r.Config.Seed))

	run, err := r.Store.StartRun(ctx)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("sweep started", "run", run.ID, "cases", len(cases), "runs", r.Config.BenchRuns)

	for _, suite := range plan.Suites {
		suiteCases := lo.Filter(cases, func(c Case, _ int) bool {
			return c.Suite == suite.Name
		})
		start := time.Now()

		for i, c := range suiteCases {
			all, err := r.measure(ctx, generator, c)
			if err != nil {
				return nil, err
			}

			err = r.Store.Save(ctx, run, c.Filename(), all)
			if err != nil {
				return nil, err
			}

			r.Logger.Info("case processed",
				"suite", suite.Name,
				"file", c.Filename(),
				"progress", (i+1)*100/len(suiteCases),
				"minutes", int(time.Since(start).Minutes()),
			)
		}

		r.Logger.Info("suite processed", "suite", suite.Name)
	}

	err = r.Store.Finish(ctx, run)
	if err != nil {
		return nil, err
	}

	return run, nil
}

// measure times every pattern length of c. A fresh text and pattern are drawn
// for each length. Series order is base, special, then brute force.
func (r *Runner) measure(ctx context.Context, generator *randseq.Generator, c Case) ([]series.Series, error) {
	symbols := r.Config.Symbols()
	wildcard, _ := symbols.Wildcard()

	var base, special, naive series.Series

	for _, length := range c.Lengths {
		text, err := generator.Bytes(c.TextSize, c.AlphabetSize)
		if err != nil {
			return nil, err
		}

		pattern, err := generator.Bytes(length, c.AlphabetSize)
		if err != nil {
			return nil, err
		}

		_, err = generator.InjectWildcards(pattern, c.Wildcards, wildcard)
		if err != nil {
			return nil, err
		}

		if c.BruteForce {
			elapsed, err := bench.Measure(ctx, r.Config.BenchRuns, func() {
				kmp.BruteForce(text, pattern, symbols)
			})
			if err != nil {
				return nil, err
			}

			naive = append(naive, series.Point{PatternLength: length, Elapsed: elapsed})
		}

		elapsed, err := r.measureSearch(ctx, text, pattern, symbols, false)
		if err != nil {
			return nil, err
		}

		base = append(base, series.Point{PatternLength: length, Elapsed: elapsed})

		elapsed, err = r.measureSearch(ctx, text, pattern, symbols, true)
		if err != nil {
			return nil, err
		}

		special = append(special, series.Point{PatternLength: length, Elapsed: elapsed})
	}

	all := []series.Series{base, special}
	if c.BruteForce {
		all = append(all, naive)
	}

	return all, nil
}

func (r *Runner) measureSearch(ctx context.Context, text, pattern []byte, symbols kmp.Symbols, special bool) (time.Duration, error) {
	var searchErr error

	elapsed, err := bench.Measure(ctx, r.Config.BenchRuns, func() {
		_, searchErr = kmp.Search(text, pattern, symbols, special)
	})
	if err != nil {
		return 0, err
	}

	return elapsed, searchErr
}

// seed returns configured, or a clock based seed when it is zero.
func (r *Runner) seed(configured uint64) uint64 {
	seed := configured
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec
	}

	r.Logger.Debug("random seed", "seed", seed)

	return seed
}
