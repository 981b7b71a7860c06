package strpath

import "fmt"

// Resolver converts paths between absolute, cwd relative and home relative
// forms. The current and home directories are read from the providers on
// every call; a Resolver holds no other state and is safe for concurrent use.
//
// Home relative paths (those starting with the `~` marker) are neither
// absolute nor relative: IsAbsolute, IsRelative and IsRelativeToHome
// partition every non-empty path.
type Resolver struct {
	Classifier Classifier
	Cwd        DirProvider
	Home       DirProvider
}

// NewResolver returns a Resolver for native paths.
func NewResolver(cwd, home DirProvider) *Resolver {
	return &Resolver{
		Classifier: native,
		Cwd:        cwd,
		Home:       home,
	}
}

var std = NewResolver(WorkingDir, UserHomeDir)

// Default returns the Resolver backed by the process working directory and
// the user's home directory.
func Default() *Resolver { return std }

func (r *Resolver) IsAbsolute(p string) bool {
	if r.IsRelativeToHome(p) {
		return false
	}
	return r.Classifier.IsNativeAbs(p)
}

func (r *Resolver) IsRelative(p string) bool {
	return !r.IsAbsolute(p) && !r.IsRelativeToHome(p)
}

func (r *Resolver) IsRelativeToHome(p string) bool {
	first, ok := r.Classifier.First(p)
	return ok && first.Kind == KindHomeDir
}

// Absolute returns p as an absolute path. Absolute paths are returned
// unchanged. Home relative paths are rebased onto the home directory and
// everything else onto the current directory, after dropping leading `.`
// segments. `..` segments are kept as written.
func (r *Resolver) Absolute(p string) (string, error) {
	if r.IsAbsolute(p) {
		return p, nil
	}

	components := r.Classifier.Classify(p)
	if len(components) > 0 && components[0].Kind == KindHomeDir {
		home, err := r.dir(r.Home, "home directory")
		if err != nil {
			return "", err
		}
		return r.rebase(home, components[1:]), nil
	}

	cwd, err := r.dir(r.Cwd, "current directory")
	if err != nil {
		return "", err
	}

	i := 0
	for i < len(components) && components[i].Kind == KindCurDir {
		i++
	}
	return r.rebase(cwd, components[i:]), nil
}

// SimpleRelative returns p relative to the current directory.
func (r *Resolver) SimpleRelative(p string) (string, error) {
	abs, err := r.Absolute(p)
	if err != nil {
		return "", err
	}

	cwd, err := r.dir(r.Cwd, "current directory")
	if err != nil {
		return "", err
	}

	rest, ok := r.strip(abs, cwd)
	if !ok {
		return "", newPrefixMismatchError(abs, cwd)
	}

	// A leading literal `~` would read back as the home marker.
	if len(rest) > 0 && rest[0] == Normal(homeToken) {
		rest = append([]Component{CurDir}, rest...)
	}
	return r.Classifier.Render(rest), nil
}

// RelativeToHome returns p in `~/...` form.
func (r *Resolver) RelativeToHome(p string) (string, error) {
	abs, err := r.Absolute(p)
	if err != nil {
		return "", err
	}

	home, err := r.dir(r.Home, "home directory")
	if err != nil {
		return "", err
	}

	rest, ok := r.strip(abs, home)
	if !ok {
		return "", newPrefixMismatchError(abs, home)
	}
	return r.Classifier.Render(append([]Component{HomeDir}, rest...)), nil
}

// Join appends child to base. An absolute child, or one that carries its own
// root or volume, replaces base entirely. Otherwise the components of both
// are joined with a single separator; a `~` in child is kept as a plain name.
func (r *Resolver) Join(base, child string) string {
	if r.IsAbsolute(child) {
		return child
	}

	tail := r.Classifier.raw(child)
	if len(tail) > 0 && (tail[0].Kind == KindRootDir || tail[0].Kind == KindPrefix) {
		return child
	}
	return r.rebase(base, tail)
}

// FileName returns the final named segment of p. Trailing `.` segments are
// skipped. There is no file name for an empty path, a root, or a path ending
// in `..`.
func (r *Resolver) FileName(p string) (string, bool) {
	components := trimCurDir(r.Classifier.Classify(p))
	if len(components) == 0 {
		return "", false
	}

	switch last := components[len(components)-1]; last.Kind {
	case KindNormal:
		return last.Text, true
	case KindHomeDir:
		return homeToken, true
	}
	return "", false
}

// Parent returns p without its final component. A single relative segment
// has the empty path as parent; a root or empty path has none.
func (r *Resolver) Parent(p string) (string, bool) {
	components := trimCurDir(r.Classifier.Classify(p))
	if len(components) == 0 {
		return "", false
	}

	switch components[len(components)-1].Kind {
	case KindRootDir, KindPrefix:
		return "", false
	}
	return r.Classifier.Render(components[:len(components)-1]), true
}

// ExpandHome expands a leading `~`. Absolute paths are returned as is and
// report true; plain relative paths are not expandable and report false.
func (r *Resolver) ExpandHome(p string) (string, bool, error) {
	switch {
	case r.IsAbsolute(p):
		return p, true, nil
	case !r.IsRelativeToHome(p):
		return "", false, nil
	}

	abs, err := r.Absolute(p)
	if err != nil {
		return "", false, err
	}
	return abs, true, nil
}

// ExpandHomeOrSelf is ExpandHome falling back to p.
func (r *Resolver) ExpandHomeOrSelf(p string) string {
	expanded, ok, err := r.ExpandHome(p)
	if err != nil || !ok {
		return p
	}
	return expanded
}

// RelativeOrSelf returns an absolute p relative to the current directory, or
// p itself when it is not absolute or lies outside the current directory.
func (r *Resolver) RelativeOrSelf(p string) string {
	if !r.IsAbsolute(p) {
		return p
	}
	rel, err := r.SimpleRelative(p)
	if err != nil {
		return p
	}
	return rel
}

func (r *Resolver) dir(provider DirProvider, what string) (string, error) {
	if provider == nil {
		return "", newEnvironmentError(what+" provider not configured", nil)
	}

	dir, err := provider.Dir()
	if err != nil {
		return "", newEnvironmentError("cannot determine "+what, err)
	}

	if !r.Classifier.IsNativeAbs(dir) {
		return "", newEnvironmentError(fmt.Sprintf("%s %q is not absolute", what, dir), nil)
	}
	return dir, nil
}

func (r *Resolver) rebase(base string, tail []Component) string {
	head := r.Classifier.raw(base)
	return r.Classifier.Render(append(head, tail...))
}

// strip removes the components of base from the front of path.
func (r *Resolver) strip(path, base string) ([]Component, bool) {
	pc, bc := r.Classifier.raw(path), r.Classifier.raw(base)
	if len(bc) > len(pc) {
		return nil, false
	}
	for i := range bc {
		if pc[i] != bc[i] {
			return nil, false
		}
	}
	return pc[len(bc):], true
}

// trimCurDir drops trailing CurDir components, keeping at least one.
func trimCurDir(components []Component) []Component {
	for len(components) > 1 && components[len(components)-1].Kind == KindCurDir {
		components = components[:len(components)-1]
	}
	return components
}
