package pathobject

// RelPath returns the relative path from the current working directory to p.
func (p Path) RelPath() (Path, error) {
	cwd, err := p.Flavor().Cwd()
	if err != nil {
		return Path{}, err
	}
	return p.RelPathFrom(cwd.value)
}

// RelPathFrom returns the relative path from origin to p. It is RelPathTo
// seen from the other end.
func (p Path) RelPathFrom(origin string) (Path, error) {
	return p.wrap(origin).RelPathTo(p.value)
}

// RelPathTo returns the shortest relative path from p to destination,
// interpreted with p's syntax.
//
//	New("/a/b/c").RelPathTo("/a/d/e") // "../../d/e"
//
// If no relative path exists, for example because the two paths reside on
// different Windows drives, the absolute destination is returned instead.
// That is a valid answer, not an error: the only error is being unable to
// determine the working directory when either path is relative.
func (p Path) RelPathTo(destination string) (Path, error) {
	syntax := p.Syntax()

	origin, err := p.Absolute()
	if err != nil {
		return Path{}, err
	}
	dest, err := p.wrap(destination).Absolute()
	if err != nil {
		return Path{}, err
	}

	origList := origin.NormCase().SplitAll()
	destList := dest.SplitAll()

	if origList[0] != syntax.NormCase(destList[0]) {
		return dest, nil
	}

	// Find the location where the two paths diverge.
	common := 0
	for common < len(origList) && common < len(destList) {
		if origList[common] != syntax.NormCase(destList[common]) {
			break
		}
		common++
	}

	// One pardir for every origin component below the divergence point.
	segments := make([]string, 0, len(origList)-common+len(destList)-common)
	for i := common; i < len(origList); i++ {
		segments = append(segments, syntax.Pardir())
	}
	segments = append(segments, destList[common:]...)
	if len(segments) == 0 {
		return p.wrap(syntax.Curdir()), nil
	}
	return p.wrap(syntax.Join(segments[0], segments[1:]...)), nil
}
