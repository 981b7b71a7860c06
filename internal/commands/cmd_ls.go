package commands

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/pathux/internal/core"
	"github.com/hay-kot/pathux/pkgs/cll"
	"github.com/hay-kot/pathux/pkgs/dirent"
	"github.com/hay-kot/pathux/pkgs/printer"
	"github.com/hay-kot/pathux/pkgs/styles"
)

type LsCmd struct {
	coreFlags *core.Flags
	flags     struct {
		selectEntry   bool
		plain         bool
		maxGoroutines int
	}
}

func NewLsCmd(coreFlags *core.Flags) *LsCmd {
	return &LsCmd{coreFlags: coreFlags}
}

func (lc *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "list a directory, optionally filtered by an expression",
		ArgsUsage: "[dir] [expr]",
		Description: `Lists the entries of a directory (default: the current directory).

The optional expression is evaluated for every entry and must return a
boolean. Available variables:
  name     entry name
  path     directory joined with the entry name
  dir      true for directories
  file     true for regular files
  symlink  true for symbolic links

Examples:
  pathux ls ~/src 'dir'
  pathux ls . 'file && name endsWith ".go"'

Entries that vanish during the listing are skipped. Entries that cannot be
read are reported on stderr and skipped.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "select",
				Aliases:     []string{"s"},
				Usage:       "pick an entry interactively and print its path",
				Destination: &lc.flags.selectEntry,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "print one path per line without styling",
				Destination: &lc.flags.plain,
			},
			&cli.IntFlag{
				Name:        "max-goroutines",
				Usage:       "bound on concurrent entry inspection (0 uses the config value)",
				Destination: &lc.flags.maxGoroutines,
			},
		},
		Action: lc.list,
	})

	return app
}

func (lc *LsCmd) list(ctx context.Context, cmd *cli.Command) error {
	args, err := cll.ArgsBetween(cmd, 0, 2)
	if err != nil {
		return err
	}

	cfg, paths, err := setupEnv(lc.coreFlags)
	if err != nil {
		return err
	}

	dir, code := ".", cfg.List.Filter
	if len(args) > 0 {
		dir = args[0]
	}
	if len(args) > 1 {
		code = args[1]
	}

	program, err := compileExpr(code)
	if err != nil {
		return err
	}

	abs, err := paths.Absolute(dir)
	if err != nil {
		return err
	}

	denied := 0
	lister := dirent.Lister{
		MaxGoroutines: cmp.Or(lc.flags.maxGoroutines, cfg.List.MaxGoroutines),
		OnDenied: func(path string, err error) {
			denied++
		},
	}

	log.Debug().Str("dir", abs).Str("filter", code).Int("max-goroutines", lister.MaxGoroutines).Msg("listing")

	entries, err := lister.List(abs)
	if err != nil {
		return err
	}

	matched, err := filterEntries(program, entries)
	if err != nil {
		return err
	}

	p := printer.Ctx(ctx)

	if lc.flags.selectEntry {
		selected, err := selectEntry(matched)
		if err != nil {
			return err
		}
		p.Line(selected)
		return nil
	}

	if lc.flags.plain {
		for _, e := range matched {
			p.Line(e.Path())
		}
		return nil
	}

	header := abs
	if rel, err := paths.RelativeToHome(abs); err == nil {
		header = rel
	}

	p.Line(createStyledHeader("LS", header, terminalWidth()))
	for _, e := range matched {
		p.Line(decorate(e))
	}

	if skipped := len(entries) - len(matched); skipped > 0 || denied > 0 {
		p.Line(styles.Subtle(fmt.Sprintf("%d shown, %d filtered, %d unreadable", len(matched), skipped, denied)))
	}

	return nil
}

var errNoEntries = errors.New("no entries to select from")

func selectEntry(entries []dirent.Entry) (string, error) {
	if len(entries) == 0 {
		return "", errNoEntries
	}

	options := make([]huh.Option[string], 0, len(entries))
	for _, e := range entries {
		options = append(options, huh.NewOption(decorate(e), e.Path()))
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select an entry").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}

	return selected, nil
}
