package core

import (
	"github.com/hay-kot/pathux/pkgs/strpath"
)

// PathResolver provides a resolving service for paths that turns a relative or
// paths with '~' type symbols into absolute paths.
type PathResolver struct {
	configDir string // config directory used to set relative path roots
	paths     *strpath.Resolver
}

func NewPathResolver(configDir string, paths *strpath.Resolver) PathResolver {
	return PathResolver{
		configDir: configDir,
		paths:     paths,
	}
}

func (pr PathResolver) Resolve(ip string) (string, error) {
	paths := pr.paths

	// Relative paths are rooted at the config directory instead of the cwd
	if pr.configDir != "" {
		paths = &strpath.Resolver{
			Classifier: pr.paths.Classifier,
			Cwd:        strpath.StaticDir(pr.configDir),
			Home:       pr.paths.Home,
		}
	}

	// If already absolute, only normalize separators
	if paths.IsAbsolute(ip) {
		return paths.Classifier.Normalize(ip), nil
	}

	return paths.Absolute(ip)
}
