// Package pathobject provides Path, an immutable pathname bound to the
// pathsyntax.Syntax that knows how to take it apart.
//
// A Path created with New uses the host's syntax. A Flavor binds Paths to
// any other syntax so that, for example, Windows paths can be manipulated
// on a Linux host:
//
//	nt := pathobject.For(pathsyntax.Windows)
//	drive, rest := nt.New(`C:\A\B\C`).SplitDrive() // "C:", `\A\B\C`
//
// Paths compare by their string payload only; the bound syntax does not
// participate. Use Equal (or String as a map key) rather than ==.
//
// Every method is a pure function of its inputs except Cwd, Absolute,
// RealPath, RelPath, RelPathTo and RelPathFrom (which may consult the
// working directory), ExpandUser and ExpandVars (which read the
// environment) and Glob (which reads the filesystem).
package pathobject

import (
	"os"
	"strconv"

	"github.com/vercel/pathobject/internal/pathsyntax"
)

// getwd is swapped out in tests.
var getwd = os.Getwd

// Path is an immutable pathname bound to exactly one syntax.
//
// The == operator compares the bound syntax as well as the characters, so
// posix and windows Paths holding the same string are != and would be
// distinct map keys. Compare with Equal and key maps by String.
type Path struct {
	value  string
	syntax pathsyntax.Syntax
}

// Flavor creates Paths bound to a particular syntax.
type Flavor struct {
	syntax pathsyntax.Syntax
}

// Native is the Flavor of the host operating system.
var Native = For(pathsyntax.Native)

// For returns the Flavor for syntax. A nil syntax means the native one.
func For(syntax pathsyntax.Syntax) Flavor {
	if syntax == nil {
		syntax = pathsyntax.Native
	}
	return Flavor{syntax: syntax}
}

// Syntax returns the syntax this Flavor binds to.
func (f Flavor) Syntax() pathsyntax.Syntax {
	return f.syntax
}

// New wraps a raw string.
func (f Flavor) New(value string) Path {
	return Path{value: value, syntax: f.syntax}
}

// From rebinds the payload of p to this Flavor's syntax.
func (f Flavor) From(p Path) Path {
	return f.New(p.value)
}

// Cwd returns the current working directory.
func (f Flavor) Cwd() (Path, error) {
	cwd, err := getwd()
	if err != nil {
		return Path{}, err
	}
	return f.New(cwd), nil
}

// New wraps a raw string using the native syntax.
func New(value string) Path {
	return Native.New(value)
}

// Cwd returns the current working directory using the native syntax.
func Cwd() (Path, error) {
	return Native.Cwd()
}

// String returns the raw path. Used for interfacing with APIs that require a string.
func (p Path) String() string {
	return p.value
}

// GoString makes %#v print something readable in test failures.
func (p Path) GoString() string {
	return "Path(" + p.Syntax().Name() + ", " + strconv.Quote(p.value) + ")"
}

// Syntax returns the bound syntax.
func (p Path) Syntax() pathsyntax.Syntax {
	if p.syntax == nil {
		return pathsyntax.Native
	}
	return p.syntax
}

// Flavor returns the Flavor that created p.
func (p Path) Flavor() Flavor {
	return For(p.syntax)
}

// Equal reports whether p and other hold the same characters, whatever
// syntax each is bound to.
func (p Path) Equal(other Path) bool {
	return p.value == other.value
}

// IsEmpty is true for the zero Path and Paths wrapping "".
func (p Path) IsEmpty() bool {
	return p.value == ""
}

// wrap returns a new Path bound to the same syntax as p.
func (p Path) wrap(value string) Path {
	return Path{value: value, syntax: p.syntax}
}

// Concat appends s to the raw string, without inserting a separator.
func (p Path) Concat(s string) Path {
	return p.wrap(p.value + s)
}

// Prefix prepends s to the raw string, without inserting a separator.
func (p Path) Prefix(s string) Path {
	return p.wrap(s + p.value)
}

// Join appends path elements using the bound syntax.
func (p Path) Join(elem ...string) Path {
	return p.wrap(p.Syntax().Join(p.value, elem...))
}

// JoinPath appends other Paths using the bound syntax of p.
func (p Path) JoinPath(other ...Path) Path {
	return p.Join(toStrings(other)...)
}

// IsAbsolute reports whether the path is absolute.
func (p Path) IsAbsolute() bool {
	return p.Syntax().IsAbs(p.value)
}

// Absolute returns a normalized absolute version of p. The only failure is
// being unable to determine the working directory.
func (p Path) Absolute() (Path, error) {
	abs, err := p.Syntax().Abs(p.value)
	if err != nil {
		return Path{}, err
	}
	return p.wrap(abs), nil
}

// NormCase returns p in the form the syntax uses for comparisons.
func (p Path) NormCase() Path {
	return p.wrap(p.Syntax().NormCase(p.value))
}

// Normalize lexically collapses redundant separators and up-level references.
func (p Path) Normalize() Path {
	return p.wrap(p.Syntax().NormPath(p.value))
}

// ExpandUser replaces a leading `~` with the current user's home directory.
func (p Path) ExpandUser() (Path, error) {
	expanded, err := p.Syntax().ExpandUser(p.value)
	if err != nil {
		return Path{}, err
	}
	return p.wrap(expanded), nil
}

// ExpandVars substitutes environment variable references.
func (p Path) ExpandVars() Path {
	return p.wrap(p.Syntax().ExpandVars(p.value))
}

// Dir returns everything but the final component.
func (p Path) Dir() Path {
	parent, _ := p.SplitPath()
	return parent
}

// Parent is a synonym for Dir.
func (p Path) Parent() Path {
	return p.Dir()
}

// Name returns the final component, e.g. "libpython.so" for
// "/usr/local/lib/libpython.so".
func (p Path) Name() string {
	_, name := p.Syntax().Split(p.value)
	return name
}

// Base is a synonym for Name.
func (p Path) Base() string {
	return p.Name()
}

// Ext returns the file extension including its dot, e.g. ".py".
func (p Path) Ext() string {
	_, ext := p.Syntax().SplitExt(p.value)
	return ext
}

// Drive returns the drive specifier, e.g. "C:". It is always empty for
// syntaxes without drives.
func (p Path) Drive() Path {
	drive, _ := p.SplitDrive()
	return drive
}

// StripExt removes one file extension, e.g. "/home/guido/python.tar.gz"
// becomes "/home/guido/python.tar".
func (p Path) StripExt() Path {
	stem, _ := p.SplitExt()
	return stem
}

// HasPrefix is strings.HasPrefix for paths, ensuring that it matches on
// separator boundaries. It does not normalize either side first.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix.value) > len(p.value) {
		return false
	} else if len(prefix.value) == len(p.value) {
		return p.value == prefix.value
	}
	if prefix.value == "" || p.value[:len(prefix.value)] != prefix.value {
		return false
	}
	// A root prefix such as "/" or `C:\` already ends in a separator.
	if isSep(p.Syntax(), prefix.value[len(prefix.value)-1]) {
		return true
	}
	return isSep(p.Syntax(), p.value[len(prefix.value)])
}

func isSep(syntax pathsyntax.Syntax, c byte) bool {
	return syntax.NormCase(string(c)) == syntax.Sep()
}

func toStrings(paths []Path) []string {
	output := make([]string, len(paths))
	for index, path := range paths {
		output[index] = path.value
	}
	return output
}
