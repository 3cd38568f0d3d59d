package pathobject

import (
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/vercel/pathobject/internal/pathsyntax"
)

// ErrForeignSyntax is returned by operations that need the host filesystem
// when called on a Path bound to a different syntax.
var ErrForeignSyntax = errors.New("path syntax does not match the host")

// FnMatch reports whether p.Name() matches the shell-style pattern.
// `*` and `?` match any characters, `[seq]` and `[!seq]` match character
// classes. Braces and backslashes have no special meaning. Case is ignored
// for case-insensitive syntaxes.
func (p Path) FnMatch(pattern string) bool {
	name := p.Name()
	if IsCaseInsensitive(p.Syntax()) {
		name = strings.ToLower(name)
		pattern = strings.ToLower(pattern)
	}
	g, err := glob.Compile(quoteGlobExtensions(pattern))
	if err != nil {
		// An unparseable pattern can only match itself.
		return name == pattern
	}
	return g.Match(name)
}

// quoteGlobExtensions escapes the glob syntax that shell patterns lack:
// `{a,b}` alternatives and `\` escapes. Braces inside a `[...]` class are
// already literal.
func quoteGlobExtensions(pattern string) string {
	var b strings.Builder
	inClass := false
	for _, r := range pattern {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
			continue
		case inClass:
			inClass = r != ']'
		case r == '[':
			inClass = true
		case r == '{' || r == '}':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Glob returns the existing paths under p that match pattern. `**` matches
// any number of directories. Results are bound to p's syntax, which must
// be the host's.
func (p Path) Glob(pattern string) ([]Path, error) {
	if p.Syntax() != pathsyntax.Native {
		return nil, errors.Wrapf(ErrForeignSyntax, "glob %v", p.value)
	}
	matches, err := doublestar.Glob(p.Join(pattern).value)
	if err != nil {
		return nil, errors.Wrapf(err, "glob %v", pattern)
	}
	paths := make([]Path, len(matches))
	for i, match := range matches {
		paths[i] = p.wrap(match)
	}
	return paths, nil
}

// IsCaseInsensitive reports whether syntax folds case when comparing paths.
func IsCaseInsensitive(syntax pathsyntax.Syntax) bool {
	return syntax.NormCase("A") != "A"
}
