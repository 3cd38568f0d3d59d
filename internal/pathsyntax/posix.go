package pathsyntax

import (
	"strings"

	"github.com/mitchellh/go-homedir"
)

const posixSep = "/"

type posixSyntax struct{}

func (posixSyntax) Name() string   { return "posix" }
func (posixSyntax) Sep() string    { return posixSep }
func (posixSyntax) Curdir() string { return curdir }
func (posixSyntax) Pardir() string { return pardir }

func (posixSyntax) Join(elem string, more ...string) string {
	path := elem
	for _, b := range more {
		switch {
		case strings.HasPrefix(b, posixSep):
			path = b
		case path == "" || strings.HasSuffix(path, posixSep):
			path += b
		default:
			path += posixSep + b
		}
	}
	return path
}

func (posixSyntax) Split(path string) (string, string) {
	i := strings.LastIndex(path, posixSep) + 1
	head, tail := path[:i], path[i:]
	if head != "" && strings.Trim(head, posixSep) != "" {
		head = strings.TrimRight(head, posixSep)
	}
	return head, tail
}

func (posixSyntax) SplitDrive(path string) (string, string) {
	return "", path
}

func (posixSyntax) SplitExt(path string) (string, string) {
	return splitExt(path, posixSep)
}

func (posixSyntax) NormCase(path string) string {
	return path
}

func (posixSyntax) NormPath(path string) string {
	if path == "" {
		return curdir
	}
	// POSIX allows one implementation-defined meaning for exactly two
	// leading slashes, so they are preserved. Three or more collapse to one.
	initialSlashes := 0
	if strings.HasPrefix(path, posixSep) {
		initialSlashes = 1
		if strings.HasPrefix(path, "//") && !strings.HasPrefix(path, "///") {
			initialSlashes = 2
		}
	}
	var comps []string
	for _, comp := range strings.Split(path, posixSep) {
		if comp == "" || comp == curdir {
			continue
		}
		if comp != pardir ||
			(initialSlashes == 0 && len(comps) == 0) ||
			(len(comps) > 0 && comps[len(comps)-1] == pardir) {
			comps = append(comps, comp)
		} else if len(comps) > 0 {
			comps = comps[:len(comps)-1]
		}
	}
	result := strings.Repeat(posixSep, initialSlashes) + strings.Join(comps, posixSep)
	if result == "" {
		return curdir
	}
	return result
}

func (posixSyntax) IsAbs(path string) bool {
	return strings.HasPrefix(path, posixSep)
}

func (p posixSyntax) Abs(path string) (string, error) {
	return abs(p, path)
}

// ExpandUser only knows about the current user; `~name` is returned unchanged.
func (posixSyntax) ExpandUser(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	i := strings.Index(path[1:], posixSep) + 1
	if i == 0 {
		i = len(path)
	}
	if i != 1 {
		return path, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	expanded := strings.TrimRight(home, posixSep) + path[i:]
	if expanded == "" {
		return posixSep, nil
	}
	return expanded, nil
}

func (posixSyntax) ExpandVars(path string) string {
	return expandVars(path, posixVarPattern)
}
