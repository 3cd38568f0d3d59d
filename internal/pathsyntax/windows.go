package pathsyntax

import (
	"strings"

	"github.com/mitchellh/go-homedir"
)

const (
	windowsSep    = `\`
	windowsAltSep = "/"
	windowsSeps   = windowsSep + windowsAltSep
)

type windowsSyntax struct{}

var _ UNCSplitter = windowsSyntax{}

func isWindowsSep(c byte) bool {
	return c == '\\' || c == '/'
}

func (windowsSyntax) Name() string   { return "windows" }
func (windowsSyntax) Sep() string    { return windowsSep }
func (windowsSyntax) Curdir() string { return curdir }
func (windowsSyntax) Pardir() string { return pardir }

func (w windowsSyntax) Join(elem string, more ...string) string {
	resultDrive, resultPath := w.SplitDrive(elem)
	for _, p := range more {
		pDrive, pPath := w.SplitDrive(p)
		if pPath != "" && isWindowsSep(pPath[0]) {
			// Rooted: keep the current drive unless p names its own.
			if pDrive != "" || resultDrive == "" {
				resultDrive = pDrive
			}
			resultPath = pPath
			continue
		} else if pDrive != "" && pDrive != resultDrive {
			if !strings.EqualFold(pDrive, resultDrive) {
				// A different drive discards everything before it.
				resultDrive = pDrive
				resultPath = pPath
				continue
			}
			resultDrive = pDrive
		}
		if resultPath != "" && !isWindowsSep(resultPath[len(resultPath)-1]) {
			resultPath += windowsSep
		}
		resultPath += pPath
	}
	// A UNC share needs a separator before a relative remainder.
	if resultPath != "" && !isWindowsSep(resultPath[0]) &&
		resultDrive != "" && !strings.HasSuffix(resultDrive, ":") {
		return resultDrive + windowsSep + resultPath
	}
	return resultDrive + resultPath
}

func (w windowsSyntax) Split(path string) (string, string) {
	drive, rest := w.SplitDrive(path)
	i := len(rest)
	for i > 0 && !isWindowsSep(rest[i-1]) {
		i--
	}
	head, tail := rest[:i], rest[i:]
	if trimmed := strings.TrimRight(head, windowsSeps); trimmed != "" {
		head = trimmed
	}
	return drive + head, tail
}

// SplitDrive recognizes `X:` drive letters and `\\host\share` UNC prefixes.
func (windowsSyntax) SplitDrive(path string) (string, string) {
	if len(path) < 2 {
		return "", path
	}
	normp := strings.ReplaceAll(path, windowsAltSep, windowsSep)
	if normp[:2] == `\\` && (len(normp) == 2 || normp[2] != '\\') {
		index := strings.Index(normp[2:], windowsSep)
		if index == -1 {
			return "", path
		}
		index += 2
		index2 := strings.Index(normp[index+1:], windowsSep)
		if index2 == 0 {
			// `\\host\\share` is not a valid share.
			return "", path
		}
		if index2 == -1 {
			index2 = len(path)
		} else {
			index2 += index + 1
		}
		return path[:index2], path[index2:]
	}
	if normp[1] == ':' {
		return path[:2], path[2:]
	}
	return "", path
}

func (windowsSyntax) SplitUNC(path string) (string, string) {
	if len(path) < 2 || path[1] == ':' {
		return "", path
	}
	if firstTwo := path[:2]; firstTwo != "//" && firstTwo != `\\` {
		return "", path
	}
	normp := strings.ReplaceAll(path, windowsSep, windowsAltSep)
	index := strings.Index(normp[2:], windowsAltSep)
	if index <= 0 {
		return "", path
	}
	index += 2
	index2 := strings.Index(normp[index+1:], windowsAltSep)
	if index2 == 0 {
		return "", path
	}
	if index2 == -1 {
		index2 = len(path)
	} else {
		index2 += index + 1
	}
	return path[:index2], path[index2:]
}

func (windowsSyntax) SplitExt(path string) (string, string) {
	return splitExt(path, windowsSeps)
}

func (windowsSyntax) NormCase(path string) string {
	return strings.ToLower(strings.ReplaceAll(path, windowsAltSep, windowsSep))
}

func (w windowsSyntax) NormPath(path string) string {
	// Device and extended-length paths are taken literally by Windows.
	if strings.HasPrefix(path, `\\.\`) || strings.HasPrefix(path, `\\?\`) {
		return path
	}
	path = strings.ReplaceAll(path, windowsAltSep, windowsSep)
	prefix, rest := w.SplitDrive(path)
	if strings.HasPrefix(rest, windowsSep) {
		prefix += windowsSep
		rest = strings.TrimLeft(rest, windowsSep)
	}
	var comps []string
	for _, comp := range strings.Split(rest, windowsSep) {
		switch {
		case comp == "" || comp == curdir:
		case comp != pardir:
			comps = append(comps, comp)
		case len(comps) > 0 && comps[len(comps)-1] != pardir:
			comps = comps[:len(comps)-1]
		case len(comps) == 0 && strings.HasSuffix(prefix, windowsSep):
			// `..` above the root is the root.
		default:
			comps = append(comps, comp)
		}
	}
	if prefix == "" && len(comps) == 0 {
		return curdir
	}
	return prefix + strings.Join(comps, windowsSep)
}

func (w windowsSyntax) IsAbs(path string) bool {
	_, rest := w.SplitDrive(path)
	return rest != "" && isWindowsSep(rest[0])
}

func (w windowsSyntax) Abs(path string) (string, error) {
	return abs(w, path)
}

// ExpandUser only knows about the current user; `~name` is returned unchanged.
func (windowsSyntax) ExpandUser(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	i := 1
	for i < len(path) && !isWindowsSep(path[i]) {
		i++
	}
	if i != 1 {
		return path, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return home + path[i:], nil
}

func (windowsSyntax) ExpandVars(path string) string {
	return expandVars(path, windowsVarPattern)
}
