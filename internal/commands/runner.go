package commands

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/wildkmp/internal/core"
	"github.com/zhulik/wildkmp/internal/results"
	"github.com/zhulik/wildkmp/internal/sweep"
)

type Runner struct {
	Config *core.Config
	Sweep  *sweep.Runner
	Store  *results.Store
}

func (r *Runner) Run(ctx context.Context) error {
	return r.Command().Run(ctx, os.Args)
}

func (r *Runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "wildkmp",
		Usage: "Wildcard Knuth-Morris-Pratt search and benchmarks",
		Commands: []*cli.Command{
			r.searchCommand(),
			r.bordersCommand(),
			r.benchCommand(),
			r.planCommand(),
			r.verifyCommand(),
			r.resultsCommand(),
		},
	}
}
