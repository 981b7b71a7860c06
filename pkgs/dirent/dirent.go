// Package dirent lists directory entries, tolerating entries that vanish or
// cannot be read while the listing is in progress.
package dirent

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/iter"

	"github.com/hay-kot/pathux/pkgs/strpath"
)

// ErrIO is the sentinel wrapped by every listing failure.
var ErrIO = errors.New("io error")

// Entry is a snapshot of a single directory entry.
type Entry struct {
	name  string
	path  string
	mode  fs.FileMode
	entry fs.DirEntry
}

func (e Entry) Name() string { return e.name }

// Path is the listed directory joined with the entry name.
func (e Entry) Path() string { return e.path }

// Type returns the type bits recorded when the entry was listed. Symlinks
// are not followed.
func (e Entry) Type() fs.FileMode { return e.mode.Type() }

func (e Entry) IsDir() bool { return e.mode.IsDir() }

func (e Entry) IsFile() bool { return e.mode.IsRegular() }

func (e Entry) IsSymlink() bool { return e.mode&fs.ModeSymlink != 0 }

// Info fetches fresh metadata for the entry.
func (e Entry) Info() (fs.FileInfo, error) {
	return e.entry.Info()
}

// Lister reads directories. The zero value is ready to use.
type Lister struct {
	// MaxGoroutines bounds the concurrent lstat calls. Zero means GOMAXPROCS.
	MaxGoroutines int
	// OnDenied is called for every entry skipped because of a permission
	// error, after the warning has been logged.
	OnDenied func(path string, err error)
}

// List reads dir with a default Lister.
func List(dir string) ([]Entry, error) {
	var l Lister
	return l.List(dir)
}

// List reads dir once and returns its entries in directory order. Entries
// that disappear before they can be inspected are skipped; entries that
// cannot be inspected for lack of permission are reported and skipped. Any
// other failure aborts the listing.
func (l *Lister) List(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newIOError("read directory "+dir, err)
	}
	return l.collect(dir, entries)
}

type statResult struct {
	entry Entry
	err   error
}

func (l *Lister) collect(dir string, entries []fs.DirEntry) ([]Entry, error) {
	mapper := iter.Mapper[fs.DirEntry, statResult]{MaxGoroutines: l.MaxGoroutines}

	results := mapper.Map(entries, func(d *fs.DirEntry) statResult {
		name := lossy((*d).Name())
		e := Entry{
			name:  name,
			path:  strpath.Join(dir, name),
			entry: *d,
		}

		info, err := (*d).Info()
		if err != nil {
			return statResult{entry: e, err: err}
		}
		e.mode = info.Mode()
		return statResult{entry: e}
	})

	out := make([]Entry, 0, len(results))
	for _, res := range results {
		switch {
		case res.err == nil:
			out = append(out, res.entry)
		case errors.Is(res.err, fs.ErrNotExist):
			log.Debug().Str("path", res.entry.path).Msg("dir entry vanished while listing")
		case errors.Is(res.err, fs.ErrPermission):
			l.denied(res.entry.path, res.err)
		default:
			return nil, newIOError("inspect "+res.entry.path, res.err)
		}
	}

	return out, nil
}

func (l *Lister) denied(path string, err error) {
	log.Warn().Err(err).Str("path", path).Msg("permission denied accessing dir entry")
	if l.OnDenied != nil {
		l.OnDenied(path, err)
	}
}

func lossy(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

type ioError struct {
	msg   string
	cause error
}

func newIOError(msg string, cause error) error {
	return &ioError{msg: msg, cause: cause}
}

func (err *ioError) Error() string {
	return ErrIO.Error() + ": " + err.msg + ": " + err.cause.Error()
}

func (err *ioError) Unwrap() []error {
	return []error{ErrIO, err.cause}
}
