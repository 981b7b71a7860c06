package strpath

import (
	"runtime"
	"strings"
)

// Flavor selects the lexical rules used to split and render path text.
type Flavor uint8

const (
	Unix Flavor = iota
	Windows
)

// Native is the flavor of the running operating system.
var Native = nativeFlavor(runtime.GOOS)

func nativeFlavor(goos string) Flavor {
	if goos == "windows" {
		return Windows
	}
	return Unix
}

func (f Flavor) String() string {
	if f == Windows {
		return "windows"
	}
	return "unix"
}

// Separator returns the separator written when rendering paths.
func (f Flavor) Separator() byte {
	if f == Windows {
		return '\\'
	}
	return '/'
}

func (f Flavor) isSeparator(c byte) bool {
	if f == Windows {
		return c == '\\' || c == '/'
	}
	return c == '/'
}

func (f Flavor) separators() string {
	if f == Windows {
		return `\/`
	}
	return "/"
}

// parsePrefix reads a volume designator at the start of text. It returns the
// prefix and the number of bytes it occupies. Unix paths never have one.
func (f Flavor) parsePrefix(text string) (Prefix, int, bool) {
	if f != Windows {
		return Prefix{}, 0, false
	}

	if rest, ok := strings.CutPrefix(text, `\\?\`); ok {
		if rest, ok := strings.CutPrefix(rest, `UNC\`); ok {
			server := nextComponent(rest, isBackslash)
			n := len(`\\?\UNC\`) + len(server)

			var share string
			if n < len(text) {
				share = nextComponent(text[n+1:], isBackslash)
			}
			if share != "" {
				n += 1 + len(share)
			}
			return Prefix{Kind: PrefixVerbatimUNC, Server: server, Share: share}, n, true
		}

		if len(rest) >= 2 && isDriveLetter(rest[0]) && rest[1] == ':' && (len(rest) == 2 || rest[2] == '\\') {
			return Prefix{Kind: PrefixVerbatimDisk, Drive: rest[0]}, len(`\\?\`) + 2, true
		}

		name := nextComponent(rest, isBackslash)
		return Prefix{Kind: PrefixVerbatim, Name: name}, len(`\\?\`) + len(name), true
	}

	if len(text) >= 4 && f.isSeparator(text[0]) && f.isSeparator(text[1]) && text[2] == '.' && f.isSeparator(text[3]) {
		name := nextComponent(text[4:], f.isSeparator)
		return Prefix{Kind: PrefixDeviceNS, Name: name}, 4 + len(name), true
	}

	if len(text) >= 2 && f.isSeparator(text[0]) && f.isSeparator(text[1]) {
		server := nextComponent(text[2:], f.isSeparator)
		n := 2 + len(server)
		if server != "" && n < len(text) {
			share := nextComponent(text[n+1:], f.isSeparator)
			if share != "" {
				return Prefix{Kind: PrefixUNC, Server: server, Share: share}, n + 1 + len(share), true
			}
		}
		return Prefix{}, 0, false
	}

	if len(text) >= 2 && isDriveLetter(text[0]) && text[1] == ':' {
		return Prefix{Kind: PrefixDisk, Drive: text[0]}, 2, true
	}

	return Prefix{}, 0, false
}

// isAbs reports native absoluteness of text, ignoring the `~` marker.
func (f Flavor) isAbs(text string) bool {
	if f != Windows {
		return strings.HasPrefix(text, "/")
	}

	p, n, ok := f.parsePrefix(text)
	if !ok {
		return false
	}
	if p.Kind != PrefixDisk {
		return true
	}
	return n < len(text) && f.isSeparator(text[n])
}

func nextComponent(s string, isSep func(byte) bool) string {
	for i := 0; i < len(s); i++ {
		if isSep(s[i]) {
			return s[:i]
		}
	}
	return s
}

func isBackslash(c byte) bool { return c == '\\' }

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
