package cll

import (
	"fmt"

	"github.com/urfave/cli/v3"
)

// ArgsBetween returns the positional arguments of cmd, or an error naming the
// command when there are fewer than lo or more than hi of them. A negative hi
// means no upper bound.
func ArgsBetween(cmd *cli.Command, lo, hi int) ([]string, error) {
	args := cmd.Args().Slice()

	switch {
	case len(args) < lo:
		return nil, fmt.Errorf("%s: expected at least %d argument(s), got %d", cmd.Name, lo, len(args))
	case hi >= 0 && len(args) > hi:
		return nil, fmt.Errorf("%s: expected at most %d argument(s), got %d", cmd.Name, hi, len(args))
	}

	return args, nil
}

// ExactArgs is ArgsBetween with equal bounds.
func ExactArgs(cmd *cli.Command, n int) ([]string, error) {
	return ArgsBetween(cmd, n, n)
}
