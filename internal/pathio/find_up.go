package pathio

import (
	"github.com/pkg/errors"
	"github.com/vercel/pathobject/internal/pathobject"
)

func (io *IO) hasFile(name string, dir pathobject.Path) (bool, error) {
	entries, err := io.readDir(dir.String())
	if err != nil {
		return false, errors.Wrapf(err, "listing %v", dir)
	}
	for _, entry := range entries {
		if name == entry.Name() {
			return true, nil
		}
	}
	return false, nil
}

// Findup looks for name in dir and then in each of its parents, stopping at
// the root. The returned ok is false when no directory contains name.
func (io *IO) Findup(dir pathobject.Path, name string) (found pathobject.Path, ok bool, err error) {
	dir, err = dir.Absolute()
	if err != nil {
		return pathobject.Path{}, false, err
	}
	for {
		hit, err := io.hasFile(name, dir)
		if err != nil {
			return pathobject.Path{}, false, err
		}
		if hit {
			found = dir.Join(name)
			io.logger.Debug("found", "name", name, "path", found.String())
			return found, true, nil
		}
		parent := dir.Parent()
		if parent.Equal(dir) {
			return pathobject.Path{}, false, nil
		}
		dir = parent
	}
}
