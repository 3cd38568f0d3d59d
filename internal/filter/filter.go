// Package filter selects paths by matching their final component against
// include and exclude glob lists.
package filter

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/vercel/pathobject/internal/pathobject"
)

type matcher interface {
	Match(string) bool
}

// literals matches exact names with a set lookup.
type literals map[string]struct{}

func (l literals) Match(s string) bool {
	_, ok := l[s]
	return ok
}

// anyOf matches when any of its globs does.
type anyOf []glob.Glob

func (a anyOf) Match(s string) bool {
	for _, g := range a {
		if g.Match(s) {
			return true
		}
	}
	return false
}

// hasMeta reports whether s contains any glob metacharacters.
func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

func compile(patterns []string, fold bool) (matcher, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	noGlob := true
	for _, pattern := range patterns {
		if hasMeta(pattern) {
			noGlob = false
			break
		}
	}
	if noGlob {
		out := make(literals, len(patterns))
		for _, pattern := range patterns {
			out[foldCase(pattern, fold)] = struct{}{}
		}
		return out, nil
	}
	out := make(anyOf, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(foldCase(pattern, fold))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
		}
		out = append(out, g)
	}
	return out, nil
}

func foldCase(s string, fold bool) string {
	if fold {
		return strings.ToLower(s)
	}
	return s
}

// Filter is a compiled include/exclude pair.
//
//	f, _ := filter.New([]string{"*.go"}, []string{"*_test.go"}, false)
//	f.Match(pathobject.New("main.go"))      // true
//	f.Match(pathobject.New("main_test.go")) // false
//	f.Match(pathobject.New("README.md"))    // false
type Filter struct {
	include matcher
	exclude matcher
	fold    bool
}

// New compiles include and exclude. An empty include list admits every
// name; an empty exclude list rejects none. When caseInsensitive is set,
// names and patterns are compared after lowercasing.
func New(include []string, exclude []string, caseInsensitive bool) (*Filter, error) {
	in, err := compile(include, caseInsensitive)
	if err != nil {
		return nil, err
	}
	ex, err := compile(exclude, caseInsensitive)
	if err != nil {
		return nil, err
	}
	return &Filter{include: in, exclude: ex, fold: caseInsensitive}, nil
}

// ForSyntax is New with case sensitivity taken from flavor's syntax.
func ForSyntax(flavor pathobject.Flavor, include []string, exclude []string) (*Filter, error) {
	return New(include, exclude, pathobject.IsCaseInsensitive(flavor.Syntax()))
}

// MatchName reports whether name passes the filter.
func (f *Filter) MatchName(name string) bool {
	name = foldCase(name, f.fold)
	if f.include != nil && !f.include.Match(name) {
		return false
	}
	if f.exclude != nil && f.exclude.Match(name) {
		return false
	}
	return true
}

// Match reports whether the final component of p passes the filter.
func (f *Filter) Match(p pathobject.Path) bool {
	return f.MatchName(p.Name())
}

// Select returns the paths that pass the filter, in their original order.
func (f *Filter) Select(paths []pathobject.Path) []pathobject.Path {
	var out []pathobject.Path
	for _, p := range paths {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
