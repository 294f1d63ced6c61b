package commands

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"
)

var (
	ErrCLIError = errors.New("CLI error")

	ErrMissingArgument = fmt.Errorf("%w: missing argument", ErrCLIError)
)

func requireArg(cmd *cli.Command, name string) (string, error) {
	value := cmd.StringArg(name)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingArgument, name)
	}

	return value, nil
}
