// Package pathsyntax teaches the rest of the module about the string
// conventions of two families of filesystem paths:
// - Posix: `/` separated, a single root, no drives, case sensitive
// - Windows: `\` (or `/`) separated, drive letters and UNC shares, case insensitive
//
// A Syntax never touches the filesystem except to ask for the working
// directory in Abs and the home directory in ExpandUser. Every other
// operation is purely lexical, so a Windows path can be taken apart on a
// Linux host and vice versa.
//
// Both instances are immutable and safe for concurrent use.
package pathsyntax

import (
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

const (
	curdir = "."
	pardir = ".."
	extsep = "."
)

// Syntax is the set of primitive operations a path value is parameterized over.
type Syntax interface {
	// Name is the canonical lowercase name of this syntax, e.g. "posix".
	Name() string
	// Sep is the preferred separator.
	Sep() string
	// Curdir is the marker for the current directory.
	Curdir() string
	// Pardir is the marker for the parent directory.
	Pardir() string

	// Join joins path elements. An absolute element discards everything
	// before it.
	Join(elem string, more ...string) string
	// Split splits a path into everything before the final separator and
	// everything after it. Trailing separators are removed from head unless
	// head is the root.
	Split(path string) (head, tail string)
	// SplitDrive splits off a drive or share specifier. Syntaxes without a
	// drive concept always return an empty drive.
	SplitDrive(path string) (drive, rest string)
	// SplitExt splits off the extension of the final path component. The
	// extension includes the leading dot. root+ext is always the input.
	SplitExt(path string) (root, ext string)
	// NormCase maps a path to the form used for comparisons.
	NormCase(path string) string
	// NormPath lexically collapses redundant separators, `.` and `a/..`.
	NormPath(path string) string
	// IsAbs reports whether the path is absolute.
	IsAbs(path string) bool
	// Abs returns a normalized absolute version of path, resolved against the
	// process working directory when necessary.
	Abs(path string) (string, error)
	// ExpandUser replaces a leading `~` component with the user's home directory.
	ExpandUser(path string) (string, error)
	// ExpandVars substitutes environment variables. Unknown variables are
	// left unchanged.
	ExpandVars(path string) string
}

// UNCSplitter is implemented by syntaxes that understand UNC mount points
// (`\\host\share`). Check for it with a type assertion.
type UNCSplitter interface {
	// SplitUNC returns the UNC mount point and the remainder of the path.
	// unc is empty for paths on local drives.
	SplitUNC(path string) (unc, rest string)
}

// ErrUnknownSyntax is returned by Lookup for names it does not recognize.
var ErrUnknownSyntax = errors.New("unknown path syntax")

var (
	// Posix is the syntax of Unix-like systems.
	Posix Syntax = posixSyntax{}
	// Windows is the syntax of Windows systems.
	Windows Syntax = windowsSyntax{}
	// Native is the syntax of the host running this process.
	Native = nativeSyntax()
)

// getwd is swapped out in tests.
var getwd = os.Getwd

func nativeSyntax() Syntax {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}

// Names lists the values accepted by Lookup.
var Names = []string{"native", "posix", "windows"}

// Lookup returns the Syntax registered under name. "nt" is accepted as an
// alias for "windows" and the empty string means "native".
func Lookup(name string) (Syntax, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "native":
		return Native, nil
	case "posix", "unix":
		return Posix, nil
	case "windows", "nt":
		return Windows, nil
	default:
		return nil, errors.Wrapf(ErrUnknownSyntax, "%q", name)
	}
}

// abs is the lexical fallback shared by both syntaxes.
func abs(s Syntax, path string) (string, error) {
	if !s.IsAbs(path) {
		cwd, err := getwd()
		if err != nil {
			return "", err
		}
		path = s.Join(cwd, path)
	}
	return s.NormPath(path), nil
}

// splitExt finds the last extension separator that follows the last path
// separator. Leading dots of the final component are part of the name.
func splitExt(path string, seps string) (string, string) {
	sepIndex := strings.LastIndexAny(path, seps)
	dotIndex := strings.LastIndex(path, extsep)
	if dotIndex > sepIndex {
		for i := sepIndex + 1; i < dotIndex; i++ {
			if path[i] != extsep[0] {
				return path[:dotIndex], path[dotIndex:]
			}
		}
	}
	return path, ""
}
