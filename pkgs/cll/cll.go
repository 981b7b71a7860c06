// Package cll holds small helpers for composing urfave/cli/v3 applications.
package cll

import "github.com/urfave/cli/v3"

// Registerable is implemented by command groups that attach themselves to a
// root command.
type Registerable interface {
	Register(*cli.Command) *cli.Command
}

// Register applies each Registerable to root in order.
//
//	app = cll.Register(app, commands.NewPathCmd(flags), commands.NewLsCmd(flags))
func Register(root *cli.Command, subs ...Registerable) *cli.Command {
	for _, s := range subs {
		root = s.Register(root)
	}

	return root
}

// EnvWithPrefix returns a constructor for environment variable sources that
// share prefix. With prefix "PATHUX_", env("HOME") reads PATHUX_HOME.
func EnvWithPrefix(prefix string) func(names ...string) cli.ValueSourceChain {
	return func(names ...string) cli.ValueSourceChain {
		prefixed := make([]string, len(names))
		for i, name := range names {
			prefixed[i] = prefix + name
		}

		return cli.EnvVars(prefixed...)
	}
}
