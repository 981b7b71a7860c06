package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/pathux/internal/core"
	"github.com/hay-kot/pathux/pkgs/cll"
	"github.com/hay-kot/pathux/pkgs/printer"
	"github.com/hay-kot/pathux/pkgs/strpath"
)

type PathCmd struct {
	coreFlags *core.Flags
}

func NewPathCmd(coreFlags *core.Flags) *PathCmd {
	return &PathCmd{coreFlags: coreFlags}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output format (text or yaml)",
	}
}

func (pc *PathCmd) Register(app *cli.Command) *cli.Command {
	cmds := []*cli.Command{
		{
			Name:      "components",
			Usage:     "split a path into its components",
			ArgsUsage: "<path>",
			Description: `Prints every component of the path together with its kind.

Kinds are prefix (Windows volume prefixes), root, home (a leading ~),
cur (.), parent (..) and normal. Separator runs and trailing separators
do not produce components.`,
			Flags:  []cli.Flag{formatFlag()},
			Action: pc.components,
		},
		{
			Name:      "check",
			Usage:     "report whether a path is absolute, relative or home relative",
			ArgsUsage: "<path>",
			Flags:     []cli.Flag{formatFlag()},
			Action:    pc.check,
		},
		{
			Name:      "abs",
			Usage:     "print paths as absolute paths",
			ArgsUsage: "<path>...",
			Action:    pc.each(func(r *strpath.Resolver, p string) (string, error) { return r.Absolute(p) }),
		},
		{
			Name:      "rel",
			Usage:     "print paths relative to the current directory",
			ArgsUsage: "<path>...",
			Action:    pc.each(func(r *strpath.Resolver, p string) (string, error) { return r.SimpleRelative(p) }),
		},
		{
			Name:      "home",
			Usage:     "print paths relative to the home directory using ~",
			ArgsUsage: "<path>...",
			Action:    pc.each(func(r *strpath.Resolver, p string) (string, error) { return r.RelativeToHome(p) }),
		},
		{
			Name:      "join",
			Usage:     "join a child path onto a base path",
			ArgsUsage: "<base> <child>",
			Action:    pc.join,
		},
		{
			Name:      "name",
			Usage:     "print the final named segment of a path",
			ArgsUsage: "<path>",
			Action: pc.single("file name", func(r *strpath.Resolver, p string) (string, bool) {
				return r.FileName(p)
			}),
		},
		{
			Name:      "parent",
			Usage:     "print a path without its final component",
			ArgsUsage: "<path>",
			Action: pc.single("parent", func(r *strpath.Resolver, p string) (string, bool) {
				return r.Parent(p)
			}),
		},
	}

	app.Commands = append(app.Commands, cmds...)
	return app
}

type componentView struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text"`
}

func (pc *PathCmd) components(ctx context.Context, cmd *cli.Command) error {
	args, err := cll.ExactArgs(cmd, 1)
	if err != nil {
		return err
	}

	cfg, paths, err := setupEnv(pc.coreFlags)
	if err != nil {
		return err
	}

	format, err := outputFormat(cmd.String("format"), cfg)
	if err != nil {
		return err
	}

	views := []componentView{}
	for comp := range paths.Classifier.Components(args[0]) {
		views = append(views, componentView{Kind: comp.Kind.String(), Text: comp.String()})
	}

	p := printer.Ctx(ctx)
	if format == core.FormatYAML {
		out, err := marshalYAML(views)
		if err != nil {
			return err
		}
		p.Line(strings.TrimSuffix(out, "\n"))
		return nil
	}

	kvs := make([]printer.KeyValue, 0, len(views))
	for _, v := range views {
		kvs = append(kvs, printer.KeyValue{Key: v.Kind, Value: v.Text})
	}
	p.KeyValues("", kvs)
	return nil
}

type checkView struct {
	Absolute       bool `yaml:"absolute"`
	Relative       bool `yaml:"relative"`
	RelativeToHome bool `yaml:"relative_to_home"`
}

func (pc *PathCmd) check(ctx context.Context, cmd *cli.Command) error {
	args, err := cll.ExactArgs(cmd, 1)
	if err != nil {
		return err
	}

	cfg, paths, err := setupEnv(pc.coreFlags)
	if err != nil {
		return err
	}

	format, err := outputFormat(cmd.String("format"), cfg)
	if err != nil {
		return err
	}

	view := checkView{
		Absolute:       paths.IsAbsolute(args[0]),
		Relative:       paths.IsRelative(args[0]),
		RelativeToHome: paths.IsRelativeToHome(args[0]),
	}

	p := printer.Ctx(ctx)
	if format == core.FormatYAML {
		out, err := marshalYAML(view)
		if err != nil {
			return err
		}
		p.Line(strings.TrimSuffix(out, "\n"))
		return nil
	}

	p.KeyValues("", []printer.KeyValue{
		{Key: "absolute", Value: strconv.FormatBool(view.Absolute)},
		{Key: "relative", Value: strconv.FormatBool(view.Relative)},
		{Key: "relative_to_home", Value: strconv.FormatBool(view.RelativeToHome)},
	})
	return nil
}

// each returns an action that converts every argument with fn, one per line.
// The first failure stops the command.
func (pc *PathCmd) each(fn func(*strpath.Resolver, string) (string, error)) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		args, err := cll.ArgsBetween(cmd, 1, -1)
		if err != nil {
			return err
		}

		_, paths, err := setupEnv(pc.coreFlags)
		if err != nil {
			return err
		}

		p := printer.Ctx(ctx)
		for _, arg := range args {
			out, err := fn(paths, arg)
			if err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
			p.Line(out)
		}
		return nil
	}
}

func (pc *PathCmd) single(what string, fn func(*strpath.Resolver, string) (string, bool)) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		args, err := cll.ExactArgs(cmd, 1)
		if err != nil {
			return err
		}

		_, paths, err := setupEnv(pc.coreFlags)
		if err != nil {
			return err
		}

		out, ok := fn(paths, args[0])
		if !ok {
			return fmt.Errorf("%q has no %s", args[0], what)
		}

		printer.Ctx(ctx).Line(out)
		return nil
	}
}

func (pc *PathCmd) join(ctx context.Context, cmd *cli.Command) error {
	args, err := cll.ExactArgs(cmd, 2)
	if err != nil {
		return err
	}

	_, paths, err := setupEnv(pc.coreFlags)
	if err != nil {
		return err
	}

	printer.Ctx(ctx).Line(paths.Join(args[0], args[1]))
	return nil
}
