package strpath

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

// Classifier decomposes path text into components using the lexical rules of
// a [Flavor]. The zero value classifies Unix paths.
type Classifier struct {
	Flavor Flavor
}

var native = Classifier{Flavor: Native}

// Components returns the components of text using the native flavor.
func Components(text string) iter.Seq[Component] {
	return native.Components(text)
}

// Classify returns the components of text using the native flavor.
func Classify(text string) []Component {
	return native.Classify(text)
}

// Render joins components back into path text using the native flavor.
func Render(components []Component) string {
	return native.Render(components)
}

// Components returns a lazy sequence over the components of text. Runs of
// separators collapse, a trailing separator is ignored and `.` and `..` are
// kept as CurDir and ParentDir wherever they appear. A first segment that is
// exactly `~` is reported as HomeDir. The sequence can be ranged over any
// number of times with identical results.
func (c Classifier) Components(text string) iter.Seq[Component] {
	return func(yield func(Component) bool) {
		c.walk(text, true, yield)
	}
}

// Classify collects [Classifier.Components] into a slice.
func (c Classifier) Classify(text string) []Component {
	return slices.Collect(c.Components(text))
}

// First returns the first component of text without classifying the rest.
func (c Classifier) First(text string) (Component, bool) {
	for comp := range c.Components(text) {
		return comp, true
	}
	return Component{}, false
}

// IsNativeAbs reports whether text is absolute under the flavor's own rules,
// without any knowledge of the `~` marker.
func (c Classifier) IsNativeAbs(text string) bool {
	return c.Flavor.isAbs(text)
}

// Render joins components with exactly one separator between named segments.
// Classifying the result yields the same components.
func (c Classifier) Render(components []Component) string {
	var (
		sb      strings.Builder
		sep     = c.Flavor.Separator()
		needSep = false
	)

	for _, comp := range components {
		switch comp.Kind {
		case KindPrefix:
			sb.WriteString(comp.Prefix.String())
			needSep = comp.Prefix.hasImplicitRoot()
		case KindRootDir:
			sb.WriteByte(sep)
			needSep = false
		default:
			if needSep {
				sb.WriteByte(sep)
			}
			sb.WriteString(comp.render(c.Flavor))
			needSep = true
		}
	}

	return sb.String()
}

// Normalize re-renders text from its components: separator runs collapse and
// trailing separators go away. `.` and `..` are left in place.
func (c Classifier) Normalize(text string) string {
	return c.Render(c.Classify(text))
}

// raw classifies text without applying the home directory rule. It is used
// for provider values and bases, where a literal `~` is just a name.
func (c Classifier) raw(text string) []Component {
	var out []Component
	c.walk(text, false, func(comp Component) bool {
		out = append(out, comp)
		return true
	})
	return out
}

func (c Classifier) walk(text string, home bool, yield func(Component) bool) {
	var (
		f     = c.Flavor
		isSep = f.isSeparator
		rest  = text
		index = 0
	)

	if p, n, ok := f.parsePrefix(text); ok {
		if !yield(VolumePrefix(p)) {
			return
		}
		index++
		rest = text[n:]

		if p.IsVerbatim() {
			isSep = isBackslash
		}

		switch {
		case rest != "" && isSep(rest[0]):
			if !yield(RootDir) {
				return
			}
		case p.hasImplicitRoot() && !p.IsVerbatim():
			if !yield(RootDir) {
				return
			}
		}
	} else if rest != "" && isSep(rest[0]) {
		if !yield(RootDir) {
			return
		}
		index++
	}

	for rest != "" {
		i := 0
		for i < len(rest) && !isSep(rest[i]) {
			i++
		}
		segment := rest[:i]
		rest = rest[min(i+1, len(rest)):]

		if segment == "" {
			continue
		}

		var comp Component
		switch {
		case segment == ".":
			comp = CurDir
		case segment == "..":
			comp = ParentDir
		case segment == homeToken && home && index == 0:
			comp = HomeDir
		default:
			comp = Normal(lossy(segment))
		}

		if !yield(comp) {
			return
		}
		index++
	}
}

func lossy(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}
