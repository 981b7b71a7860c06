package strpath

import (
	"errors"
	"os"
)

// DirProvider supplies a directory path on demand, such as the current
// working directory or the user's home directory.
type DirProvider interface {
	Dir() (string, error)
}

// DirFunc adapts a function to a DirProvider.
type DirFunc func() (string, error)

func (f DirFunc) Dir() (string, error) {
	return f()
}

var (
	// WorkingDir reports the process working directory.
	WorkingDir DirProvider = DirFunc(os.Getwd)
	// UserHomeDir reports the home directory of the running account.
	UserHomeDir DirProvider = DirFunc(os.UserHomeDir)
)

var errEmptyDir = errors.New("directory is empty")

// StaticDir returns a provider that always reports path. An empty path is
// reported as an error.
func StaticDir(path string) DirProvider {
	return DirFunc(func() (string, error) {
		if path == "" {
			return "", errEmptyDir
		}
		return path, nil
	})
}
