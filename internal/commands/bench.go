package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/wildkmp/internal/sweep"
	"github.com/zhulik/wildkmp/pkg/yaml"
)

func (r *Runner) benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "Run the timing sweep and store the results",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "plan",
				Usage: "plan file, PLAN_PATH or the default plan when empty",
			},
			&cli.IntFlag{
				Name:  "runs",
				Usage: "runs averaged per measurement, BENCH_RUNS when unset",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			plan, err := r.loadPlan(cmd.String("plan"))
			if err != nil {
				return err
			}

			if cmd.IsSet("runs") {
				r.Config.BenchRuns = cmd.Int("runs")

				err = r.Config.Validate()
				if err != nil {
					return err
				}
			}

			run, err := r.Sweep.Sweep(ctx, plan)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer

			fmt.Fprintf(w, "Run %s finished\n", run.ID) //nolint:errcheck

			for _, file := range run.Files {
				fmt.Fprintln(w, file) //nolint:errcheck
			}

			return nil
		},
	}
}

func (r *Runner) loadPlan(filename string) (*sweep.Plan, error) {
	if filename == "" {
		filename = r.Config.PlanPath
	}

	if filename == "" {
		return sweep.DefaultPlan(), nil
	}

	return sweep.LoadPlan(filename)
}

func (r *Runner) planCommand() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Print the default plan",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write the plan to a file instead",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			plan := sweep.DefaultPlan()

			if output := cmd.String("output"); output != "" {
				return yaml.MarshalToFile(plan, output)
			}

			content, err := yaml.Marshal(plan)
			if err != nil {
				return err
			}

			_, err = cmd.Root().Writer.Write(content)

			return err
		},
	}
}
