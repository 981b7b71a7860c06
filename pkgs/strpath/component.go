// Package strpath classifies and resolves filesystem paths held as plain text.
//
// Paths never need to exist on disk. A path is decomposed into an ordered
// sequence of [Component] values and every higher level operation (absolute,
// relative, home relative forms, joins, parents) works on that sequence and
// renders the result back to text.
//
// The leading `~` segment is understood as a reference to the user's home
// directory. It is classified as [KindHomeDir] only when it is the first
// component of a path; anywhere else it is an ordinary segment.
package strpath

// Kind identifies the variant of a [Component].
type Kind uint8

const (
	KindNormal Kind = iota
	KindPrefix
	KindRootDir
	KindHomeDir
	KindCurDir
	KindParentDir
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindPrefix:
		return "prefix"
	case KindRootDir:
		return "root"
	case KindHomeDir:
		return "home"
	case KindCurDir:
		return "cur"
	case KindParentDir:
		return "parent"
	default:
		return "unknown"
	}
}

// PrefixKind identifies a Windows volume designator.
type PrefixKind uint8

const (
	PrefixVerbatim     PrefixKind = iota + 1 // \\?\name
	PrefixVerbatimUNC                        // \\?\UNC\server\share
	PrefixVerbatimDisk                       // \\?\C:
	PrefixDeviceNS                           // \\.\name
	PrefixUNC                                // \\server\share
	PrefixDisk                               // C:
)

// Prefix is a parsed volume designator. Only the fields relevant to Kind are
// set: Name for Verbatim and DeviceNS, Server and Share for the UNC forms and
// Drive for the disk forms.
type Prefix struct {
	Kind   PrefixKind
	Name   string
	Server string
	Share  string
	Drive  byte
}

// String renders the prefix exactly as it was parsed.
func (p Prefix) String() string {
	switch p.Kind {
	case PrefixVerbatim:
		return `\\?\` + p.Name
	case PrefixVerbatimUNC:
		if p.Share == "" {
			return `\\?\UNC\` + p.Server
		}
		return `\\?\UNC\` + p.Server + `\` + p.Share
	case PrefixVerbatimDisk:
		return `\\?\` + string(rune(p.Drive)) + ":"
	case PrefixDeviceNS:
		return `\\.\` + p.Name
	case PrefixUNC:
		return `\\` + p.Server + `\` + p.Share
	case PrefixDisk:
		return string(rune(p.Drive)) + ":"
	default:
		return ""
	}
}

// IsVerbatim reports whether the prefix disables path normalization, in which
// case only `\` separates components after it.
func (p Prefix) IsVerbatim() bool {
	switch p.Kind {
	case PrefixVerbatim, PrefixVerbatimUNC, PrefixVerbatimDisk:
		return true
	}
	return false
}

// hasImplicitRoot is true for every prefix except a bare drive letter: `C:foo`
// is relative to the current directory of drive C, everything else is rooted.
func (p Prefix) hasImplicitRoot() bool {
	return p.Kind != PrefixDisk
}

// Component is one lexical segment of a path. Text is set only for
// KindNormal and Prefix only for KindPrefix, which keeps Component comparable
// with ==.
type Component struct {
	Kind   Kind
	Text   string
	Prefix Prefix
}

var (
	RootDir   = Component{Kind: KindRootDir}
	HomeDir   = Component{Kind: KindHomeDir}
	CurDir    = Component{Kind: KindCurDir}
	ParentDir = Component{Kind: KindParentDir}
)

// Normal returns a named segment component.
func Normal(text string) Component {
	return Component{Kind: KindNormal, Text: text}
}

// VolumePrefix returns a prefix component.
func VolumePrefix(p Prefix) Component {
	return Component{Kind: KindPrefix, Prefix: p}
}

// String renders the component using the native separator for RootDir.
func (c Component) String() string {
	return c.render(Native)
}

func (c Component) render(f Flavor) string {
	switch c.Kind {
	case KindPrefix:
		return c.Prefix.String()
	case KindRootDir:
		return string(f.Separator())
	case KindHomeDir:
		return homeToken
	case KindCurDir:
		return "."
	case KindParentDir:
		return ".."
	default:
		return c.Text
	}
}

const homeToken = "~"
