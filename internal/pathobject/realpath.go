package pathobject

import (
	"io/fs"

	"github.com/pkg/errors"
	"github.com/vercel/pathobject/internal/pathsyntax"
	"github.com/yookoala/realpath"
)

// RealPath returns the canonical absolute path of p, with symbolic links
// resolved. A path that does not exist is only made absolute, as are paths
// bound to a foreign syntax, which cannot be resolved against this host.
func (p Path) RealPath() (Path, error) {
	abs, err := p.Absolute()
	if err != nil {
		return Path{}, err
	}
	if p.Syntax() != pathsyntax.Native {
		return abs, nil
	}
	resolved, err := realpath.Realpath(abs.value)
	if errors.Is(err, fs.ErrNotExist) {
		return abs, nil
	} else if err != nil {
		return Path{}, errors.Wrapf(err, "resolving %v", abs.value)
	}
	return p.wrap(resolved), nil
}
