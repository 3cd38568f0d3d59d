// Package pathio performs plain file I/O on pathobject.Path values.
//
// Nothing here interprets contents: bytes go in and come out unchanged, and
// errors from the operating system are wrapped with the offending path but
// otherwise passed through.
package pathio

import (
	"io/fs"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/vercel/pathobject/internal/pathobject"
)

// _dirPermissions are the default permission bits we apply to directories.
const _dirPermissions = os.ModeDir | 0775

// _filePermissions are applied to files created by WriteBytes.
const _filePermissions = 0644

type readDir func(string) ([]fs.DirEntry, error)

// IO performs file operations, logging anything it changes on disk.
type IO struct {
	logger  hclog.Logger
	readDir readDir
}

// New returns an IO that logs to logger. A nil logger discards output.
func New(logger hclog.Logger) *IO {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &IO{
		logger:  logger.Named("pathio"),
		readDir: os.ReadDir,
	}
}

// Bytes reads the whole file at p.
func (io *IO) Bytes(p pathobject.Path) ([]byte, error) {
	data, err := os.ReadFile(p.String())
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", p)
	}
	return data, nil
}

// WriteBytes writes data to p, creating it if needed. When appending is false
// any existing contents are replaced.
func (io *IO) WriteBytes(p pathobject.Path, data []byte, appending bool) error {
	flags := os.O_WRONLY | os.O_CREATE
	if appending {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(p.String(), flags, _filePermissions)
	if err != nil {
		return errors.Wrapf(err, "opening %v", p)
	}
	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrapf(err, "writing %v", p)
	}
	io.logger.Debug("wrote file", "path", p.String(), "bytes", len(data), "append", appending)
	return nil
}

// Exists returns true if the given path exists.
func (io *IO) Exists(p pathobject.Path) bool {
	_, err := os.Lstat(p.String())
	return err == nil
}

// DirExists returns true if the given path exists and is a directory.
func (io *IO) DirExists(p pathobject.Path) bool {
	info, err := os.Lstat(p.String())
	return err == nil && info.IsDir()
}

// FileExists returns true if the given path exists and is a file.
func (io *IO) FileExists(p pathobject.Path) bool {
	info, err := os.Lstat(p.String())
	return err == nil && !info.IsDir()
}

// EnsureDir ensures that the directory containing p exists.
func (io *IO) EnsureDir(p pathobject.Path) error {
	dir := p.Dir()
	if dir.IsEmpty() {
		return nil
	}
	err := os.MkdirAll(dir.String(), _dirPermissions)
	if err != nil && io.FileExists(dir) {
		// A file is sitting where the directory needs to go.
		io.logger.Warn("replacing file with directory", "path", dir.String())
		if err2 := os.Remove(dir.String()); err2 != nil {
			return errors.Wrapf(err, "creating %v", dir)
		}
		err = os.MkdirAll(dir.String(), _dirPermissions)
	}
	if err != nil {
		return errors.Wrapf(err, "creating %v", dir)
	}
	return nil
}
