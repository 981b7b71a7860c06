package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/hay-kot/pathux/pkgs/strpath"
	"github.com/rs/zerolog/log"
)

const EnvPrefix = "PATHUX_"

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

type Flags struct {
	LogLevel       string
	ConfigFilePath string
	WorkDir        string
	HomeDir        string
}

type ConfigFile struct {
	// HomeDir and WorkDir replace the user's home directory and the process
	// working directory when set. Relative values are resolved against the
	// directory holding the config file.
	HomeDir string     `yaml:"home_dir"`
	WorkDir string     `yaml:"work_dir"`
	Format  string     `yaml:"format"`
	List    ListConfig `yaml:"list"`
}

type ListConfig struct {
	MaxGoroutines int    `yaml:"max_goroutines"`
	Filter        string `yaml:"filter"`
}

// SetupEnv loads the optional config file named in flags and applies the
// directory overrides given on the command line, which take precedence.
func SetupEnv(flags *Flags) (ConfigFile, error) {
	cfg := ConfigFile{
		Format: FormatText,
	}

	paths := strpath.Default()

	if flags.ConfigFilePath != "" {
		cfgpath, err := NewPathResolver("", paths).Resolve(flags.ConfigFilePath)
		if err != nil {
			return cfg, fmt.Errorf("failed to resolve config path: %w", err)
		}

		data, err := os.ReadFile(cfgpath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return cfg, fmt.Errorf("config file %s does not exist", cfgpath)
			}
			return cfg, err
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", cfgpath, err)
		}

		configDir, _ := paths.Parent(cfgpath)
		log.Debug().Str("config", cfgpath).Str("dir", configDir).Msg("loaded config file")

		if err := cfg.resolveDirs(NewPathResolver(configDir, paths)); err != nil {
			return cfg, err
		}
	}

	fromFlags := ConfigFile{HomeDir: flags.HomeDir, WorkDir: flags.WorkDir}
	if err := fromFlags.resolveDirs(NewPathResolver("", paths)); err != nil {
		return cfg, err
	}
	if fromFlags.HomeDir != "" {
		cfg.HomeDir = fromFlags.HomeDir
	}
	if fromFlags.WorkDir != "" {
		cfg.WorkDir = fromFlags.WorkDir
	}

	switch cfg.Format {
	case FormatText, FormatYAML:
	default:
		return cfg, fmt.Errorf("invalid format %q (expected %q or %q)", cfg.Format, FormatText, FormatYAML)
	}

	return cfg, nil
}

func (c *ConfigFile) resolveDirs(pr PathResolver) error {
	for _, dir := range []*string{&c.HomeDir, &c.WorkDir} {
		if *dir == "" {
			continue
		}

		resolved, err := pr.Resolve(*dir)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", *dir, err)
		}
		*dir = resolved
	}

	return nil
}

// Resolver returns a path resolver that honours the configured directory
// overrides and falls back to the process environment.
func (c ConfigFile) Resolver() *strpath.Resolver {
	cwd, home := strpath.WorkingDir, strpath.UserHomeDir
	if c.WorkDir != "" {
		cwd = strpath.StaticDir(c.WorkDir)
	}
	if c.HomeDir != "" {
		home = strpath.StaticDir(c.HomeDir)
	}

	return strpath.NewResolver(cwd, home)
}
