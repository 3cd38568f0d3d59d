package pathobject

import "github.com/vercel/pathobject/internal/pathsyntax"

// SplitPath returns (p.Dir(), p.Name()). When name is not empty,
// parent.Join(name) yields p again.
func (p Path) SplitPath() (Path, string) {
	parent, name := p.Syntax().Split(p.value)
	return p.wrap(parent), name
}

// SplitDrive returns (p.Drive(), <the rest of p>). If there is no drive
// specifier, as is always the case for posix paths, the drive is empty
// and rest is all of p.
func (p Path) SplitDrive() (Path, string) {
	drive, rest := p.Syntax().SplitDrive(p.value)
	return p.wrap(drive), rest
}

// SplitExt splits the final component on its last `.`. The extension keeps
// its dot, so stem.String()+ext == p.String().
func (p Path) SplitExt() (Path, string) {
	stem, ext := p.Syntax().SplitExt(p.value)
	return p.wrap(stem), ext
}

// SplitUNC returns the UNC mount point (`\\host\share`) and the rest of the
// path. ok is false when the bound syntax has no notion of UNC shares.
func (p Path) SplitUNC() (unc Path, rest string, ok bool) {
	splitter, ok := p.Syntax().(pathsyntax.UNCSplitter)
	if !ok {
		return Path{}, "", false
	}
	share, rest := splitter.SplitUNC(p.value)
	return p.wrap(share), rest, true
}

// UNCShare returns the UNC mount point of p. It is empty for paths on local
// drives, and ok is false when the bound syntax has no notion of UNC shares.
func (p Path) UNCShare() (Path, bool) {
	unc, _, ok := p.SplitUNC()
	return unc, ok
}

// SplitAll returns the components of p. The first element is the root
// marker: the root directory ("/" or `C:\`), the current or parent
// directory marker, or empty for a plain relative path. The remaining
// elements are plain path segments in order, so that
// p.Flavor().JoinAll(p.SplitAll()) yields p again.
//
//	New("/home/guido/python.tar.gz").SplitAll() // ["/", "home", "guido", "python.tar.gz"]
func (p Path) SplitAll() []string {
	syntax := p.Syntax()
	var parts []string
	location := p
	for location.value != syntax.Curdir() && location.value != syntax.Pardir() {
		previous := location
		var child string
		location, child = previous.SplitPath()
		// Splitting the root yields the root again.
		if location.value == previous.value {
			break
		}
		parts = append(parts, child)
	}
	parts = append(parts, location.value)
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return parts
}

// JoinAll is the inverse of SplitAll: the first part is the root marker and
// the rest are joined onto it using the syntax of this Flavor.
func (f Flavor) JoinAll(parts []string) Path {
	if len(parts) == 0 {
		return f.New("")
	}
	return f.New(parts[0]).Join(parts[1:]...)
}
