package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/wildkmp/pkg/kmp"
)

func (r *Runner) searchCommand() *cli.Command {
	return &cli.Command{
		Name:    "search",
		Aliases: []string{"s"},
		Usage:   "Print the offsets of pattern in text",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "text", Config: cli.StringConfig{}},
			&cli.StringArg{Name: "pattern", Config: cli.StringConfig{}},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "mode",
				Usage: "base, special or brute",
				Value: kmp.ModeSpecial.String(),
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			text, err := requireArg(cmd, "text")
			if err != nil {
				return err
			}

			pattern, err := requireArg(cmd, "pattern")
			if err != nil {
				return err
			}

			mode, err := kmp.ParseMode(cmd.String("mode"))
			if err != nil {
				return err
			}

			offsets, err := kmp.Find(mode, []byte(text), []byte(pattern), r.Config.Symbols())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, offsets)

			return err
		},
	}
}

func (r *Runner) bordersCommand() *cli.Command {
	return &cli.Command{
		Name:    "borders",
		Aliases: []string{"b"},
		Usage:   "Print the border table of a sequence",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "sequence", Config: cli.StringConfig{}},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "special",
				Usage: "apply the special correction",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			sequence, err := requireArg(cmd, "sequence")
			if err != nil {
				return err
			}

			build := kmp.BuildBorders
			if cmd.Bool("special") {
				build = kmp.BuildBordersSpecial
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, build([]byte(sequence), r.Config.Symbols()))

			return err
		},
	}
}
