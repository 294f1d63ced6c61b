package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/wildkmp/internal/sweep"
	"github.com/zhulik/wildkmp/pkg/json"
)

func (r *Runner) verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Compare the automaton searches with brute force on random inputs",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "trials",
				Value: sweep.DefaultTrials,
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "SEED when unset",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the report as JSON",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			report, err := r.Sweep.Verify(ctx, sweep.VerifyOptions{
				Trials: cmd.Int("trials"),
				Seed:   cmd.Uint64("seed"),
			})

			w := cmd.Root().Writer

			if cmd.Bool("json") {
				if jsonErr := json.Write(w, report); jsonErr != nil {
					return jsonErr
				}

				return err
			}

			fmt.Fprintf(w, "seed: %d, trials: %d\n", report.Seed, report.Trials) //nolint:errcheck
			fmt.Fprintf(w, "base mismatches: %d\n", report.BaseMismatches)       //nolint:errcheck
			fmt.Fprintf(w, "special mismatches: %d\n", report.SpecialMismatches) //nolint:errcheck

			for _, m := range report.Examples {
				fmt.Fprintf(w, "%s: text %q pattern %q got %v want %v\n", m.Mode, m.Text, m.Pattern, m.Got, m.Want) //nolint:errcheck,lll
			}

			return err
		},
	}
}
