package commands

import (
	"cmp"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/hay-kot/pathux/internal/core"
	"github.com/hay-kot/pathux/pkgs/strpath"
)

// setupEnv loads the config and builds the resolver every command works with.
func setupEnv(flags *core.Flags) (core.ConfigFile, *strpath.Resolver, error) {
	cfg, err := core.SetupEnv(flags)
	if err != nil {
		return cfg, nil, err
	}

	log.Debug().
		Str("home", cfg.HomeDir).
		Str("cwd", cfg.WorkDir).
		Str("format", cfg.Format).
		Msg("environment")

	return cfg, cfg.Resolver(), nil
}

// outputFormat picks the --format flag over the configured format.
func outputFormat(flag string, cfg core.ConfigFile) (string, error) {
	format := cmp.Or(flag, cfg.Format, core.FormatText)

	switch format {
	case core.FormatText, core.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q (expected %q or %q)", format, core.FormatText, core.FormatYAML)
	}
}

func marshalYAML(v any) (string, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode yaml: %w", err)
	}
	return string(out), nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		// Fallback to a default width if unable to get terminal size
		return 80
	}
	return width
}
