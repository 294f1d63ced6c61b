package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// seriesNames follows the order series are stored in.
var seriesNames = []string{"kmp", "kmp-special", "naive"} //nolint:gochecknoglobals

func (r *Runner) resultsCommand() *cli.Command {
	return &cli.Command{
		Name:    "results",
		Aliases: []string{"r"},
		Usage:   "Inspect stored results",
		Commands: []*cli.Command{
			{
				Name:  "ls",
				Usage: "List result files",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "match",
						Usage: "glob on the file name",
						Value: "*",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					names, err := r.Store.List(ctx, cmd.String("match"))
					if err != nil {
						return err
					}

					for _, name := range names {
						fmt.Fprintln(cmd.Root().Writer, name) //nolint:errcheck
					}

					return nil
				},
			},
			{
				Name:  "show",
				Usage: "Print a result file",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "file", Config: cli.StringConfig{}},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					name, err := requireArg(cmd, "file")
					if err != nil {
						return err
					}

					all, err := r.Store.Load(ctx, name)
					if err != nil {
						return err
					}

					w := cmd.Root().Writer

					for i, s := range all {
						label := fmt.Sprintf("series-%d", i)
						if i < len(seriesNames) {
							label = seriesNames[i]
						}

						fmt.Fprintf(w, "%s:", label) //nolint:errcheck

						for _, p := range s {
							fmt.Fprintf(w, " %d=%dms", p.PatternLength, p.Elapsed.Milliseconds()) //nolint:errcheck
						}

						fmt.Fprintln(w) //nolint:errcheck
					}

					return nil
				},
			},
		},
	}
}
