package strpath

import "strings"

// IsAbsolute reports whether p is absolute. See [Resolver.IsAbsolute].
func IsAbsolute(p string) bool { return std.IsAbsolute(p) }

// IsRelative reports whether p is relative to the current directory.
func IsRelative(p string) bool { return std.IsRelative(p) }

// IsRelativeToHome reports whether p starts with the `~` marker.
func IsRelativeToHome(p string) bool { return std.IsRelativeToHome(p) }

// Absolute resolves p against the process environment.
func Absolute(p string) (string, error) { return std.Absolute(p) }

// SimpleRelative returns p relative to the process working directory.
func SimpleRelative(p string) (string, error) { return std.SimpleRelative(p) }

// RelativeToHome returns p relative to the user's home directory.
func RelativeToHome(p string) (string, error) { return std.RelativeToHome(p) }

func Join(base, child string) string { return std.Join(base, child) }

func FileName(p string) (string, bool) { return std.FileName(p) }

func Parent(p string) (string, bool) { return std.Parent(p) }

// SplitText splits text immediately after its final separator. dir keeps the
// trailing separator so that dir+file == text.
func (c Classifier) SplitText(text string) (dir, file string) {
	i := strings.LastIndexAny(text, c.Flavor.separators())
	if i < 0 {
		return "", text
	}
	return text[:i+1], text[i+1:]
}

// DirText returns the directory half of [Classifier.SplitText].
func (c Classifier) DirText(text string) string {
	dir, _ := c.SplitText(text)
	return dir
}

// FileNameText returns the file half of [Classifier.SplitText].
func (c Classifier) FileNameText(text string) string {
	_, file := c.SplitText(text)
	return file
}

// FirstSegment returns the first named segment of text, skipping any root,
// volume prefix or `.` segments. A `~` is returned as written. There is no
// first segment once a `..` is reached.
func (c Classifier) FirstSegment(text string) (string, bool) {
	for _, comp := range c.raw(text) {
		switch comp.Kind {
		case KindNormal:
			return comp.Text, true
		case KindParentDir:
			return "", false
		}
	}
	return "", false
}

func SplitText(text string) (dir, file string) { return native.SplitText(text) }

func DirText(text string) string { return native.DirText(text) }

func FileNameText(text string) string { return native.FileNameText(text) }

func FirstSegment(text string) (string, bool) { return native.FirstSegment(text) }
