package strpath

import (
	"slices"
	"testing"
)

var unix = Classifier{Flavor: Unix}

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Component
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "root only",
			input: "/",
			want:  []Component{RootDir},
		},
		{
			name:  "repeated root",
			input: "///",
			want:  []Component{RootDir},
		},
		{
			name:  "absolute path",
			input: "/home/peter/SRC",
			want:  []Component{RootDir, Normal("home"), Normal("peter"), Normal("SRC")},
		},
		{
			name:  "home relative",
			input: "~/SRC",
			want:  []Component{HomeDir, Normal("SRC")},
		},
		{
			name:  "home only",
			input: "~",
			want:  []Component{HomeDir},
		},
		{
			name:  "tilde after root is a name",
			input: "/~/SRC",
			want:  []Component{RootDir, Normal("~"), Normal("SRC")},
		},
		{
			name:  "tilde in the middle is a name",
			input: "SRC/~",
			want:  []Component{Normal("SRC"), Normal("~")},
		},
		{
			name:  "tilde prefixed name",
			input: "~peter/SRC",
			want:  []Component{Normal("~peter"), Normal("SRC")},
		},
		{
			name:  "current dir",
			input: "./peter/SRC",
			want:  []Component{CurDir, Normal("peter"), Normal("SRC")},
		},
		{
			name:  "dots kept literally",
			input: "a/./b/../c",
			want:  []Component{Normal("a"), CurDir, Normal("b"), ParentDir, Normal("c")},
		},
		{
			name:  "collapsed separators and trailing slash",
			input: "a//b///c/",
			want:  []Component{Normal("a"), Normal("b"), Normal("c")},
		},
		{
			name:  "backslash is a name on unix",
			input: `C:\Users`,
			want:  []Component{Normal(`C:\Users`)},
		},
		{
			name:  "invalid utf8 is replaced",
			input: "a/\xffb",
			want:  []Component{Normal("a"), Normal("\uFFFDb")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unix.Classify(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassifier_Classify_Windows(t *testing.T) {
	windows := Classifier{Flavor: Windows}

	tests := []struct {
		name  string
		input string
		want  []Component
	}{
		{
			name:  "disk absolute",
			input: `C:\Users\peter`,
			want: []Component{
				VolumePrefix(Prefix{Kind: PrefixDisk, Drive: 'C'}),
				RootDir, Normal("Users"), Normal("peter"),
			},
		},
		{
			name:  "disk relative",
			input: `c:SRC`,
			want: []Component{
				VolumePrefix(Prefix{Kind: PrefixDisk, Drive: 'c'}),
				Normal("SRC"),
			},
		},
		{
			name:  "unc share",
			input: `\\server\share\dir`,
			want: []Component{
				VolumePrefix(Prefix{Kind: PrefixUNC, Server: "server", Share: "share"}),
				RootDir, Normal("dir"),
			},
		},
		{
			name:  "unc share with implicit root",
			input: `\\server\share`,
			want: []Component{
				VolumePrefix(Prefix{Kind: PrefixUNC, Server: "server", Share: "share"}),
				RootDir,
			},
		},
		{
			name:  "verbatim disk",
			input: `\\?\C:\Windows`,
			want: []Component{
				VolumePrefix(Prefix{Kind: PrefixVerbatimDisk, Drive: 'C'}),
				RootDir, Normal("Windows"),
			},
		},
		{
			name:  "verbatim unc keeps forward slashes",
			input: `\\?\UNC\server\share\a/b`,
			want: []Component{
				VolumePrefix(Prefix{Kind: PrefixVerbatimUNC, Server: "server", Share: "share"}),
				RootDir, Normal("a/b"),
			},
		},
		{
			name:  "verbatim name",
			input: `\\?\pictures\kittens`,
			want: []Component{
				VolumePrefix(Prefix{Kind: PrefixVerbatim, Name: "pictures"}),
				RootDir, Normal("kittens"),
			},
		},
		{
			name:  "device namespace",
			input: `\\.\COM42`,
			want: []Component{
				VolumePrefix(Prefix{Kind: PrefixDeviceNS, Name: "COM42"}),
				RootDir,
			},
		},
		{
			name:  "mixed separators",
			input: `~/a\b`,
			want:  []Component{HomeDir, Normal("a"), Normal("b")},
		},
		{
			name:  "rooted without prefix",
			input: `\temp`,
			want:  []Component{RootDir, Normal("temp")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := windows.Classify(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}

			again := windows.Classify(windows.Render(got))
			if !slices.Equal(again, got) {
				t.Errorf("Classify(Render(%v)) = %v", got, again)
			}
		})
	}
}

func TestClassifier_Render(t *testing.T) {
	tests := []struct {
		name       string
		components []Component
		want       string
	}{
		{
			name:       "empty",
			components: nil,
			want:       "",
		},
		{
			name:       "root",
			components: []Component{RootDir},
			want:       "/",
		},
		{
			name:       "absolute",
			components: []Component{RootDir, Normal("home"), Normal("peter")},
			want:       "/home/peter",
		},
		{
			name:       "home marker",
			components: []Component{HomeDir, Normal("SRC")},
			want:       "~/SRC",
		},
		{
			name:       "dots",
			components: []Component{CurDir, ParentDir, Normal("x")},
			want:       "./../x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unix.Render(tt.components); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifier_Components_Restartable(t *testing.T) {
	seq := unix.Components("~/a/b")

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second iteration = %v, want %v", second, first)
	}

	// Stopping early must not panic or leak.
	for comp := range seq {
		if comp != HomeDir {
			t.Errorf("first component = %v, want HomeDir", comp)
		}
		break
	}
}

func TestClassifier_First(t *testing.T) {
	if _, ok := unix.First(""); ok {
		t.Errorf("First(\"\") reported a component")
	}

	got, ok := unix.First("~/x")
	if !ok || got != HomeDir {
		t.Errorf("First(~/x) = %v, %v", got, ok)
	}
}

func TestNativeFlavor(t *testing.T) {
	if got := nativeFlavor("windows"); got != Windows {
		t.Errorf("nativeFlavor(windows) = %v", got)
	}
	if got := nativeFlavor("darwin"); got != Unix {
		t.Errorf("nativeFlavor(darwin) = %v", got)
	}
}

func TestFlavor_isAbs_Windows(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`C:\foo`, true},
		{`C:foo`, false},
		{`\foo`, false},
		{`\\server\share`, true},
		{`\\?\anything`, true},
		{`foo`, false},
	}

	for _, tt := range tests {
		if got := Windows.isAbs(tt.input); got != tt.want {
			t.Errorf("isAbs(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
