package pathobject

import (
	"errors"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/vercel/pathobject/internal/pathsyntax"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"
)

func TestFnMatch(t *testing.T) {
	cases := []struct {
		p        Path
		pattern  string
		expected bool
	}{
		{posix.New("/usr/local/lib/libpython.so"), "*.so", true},
		{posix.New("/usr/local/lib/libpython.so"), "lib*", true},
		{posix.New("/usr/local/lib/libpython.so"), "libpython.s?", true},
		{posix.New("/usr/local/lib/libpython.so"), "usr*", false},
		{posix.New("/usr/local/lib/libpython.so"), "*/libpython.so", false},
		{posix.New("/usr/local/lib/libpython.so"), "LIB*", false},
		{posix.New("/tmp/a1"), "a[0-9]", true},
		{posix.New("/tmp/ab"), "a[!0-9]", true},
		{posix.New("/tmp/a1"), "a[!0-9]", false},
		{posix.New("/tmp/weird["), "weird[", true},
		{posix.New("/x/a.b"), "{a,c}.b", false},
		{posix.New("/x/{a,c}.b"), "{a,c}.b", true},
		{posix.New("/x/{a,c}.b"), "{a,c}.*", true},
		{posix.New(`/x/a\b`), `a\b`, true},
		{posix.New(`/x/a\xyz`), `a\*`, true},
		{posix.New("/x/a*"), `a\*`, false},
		{posix.New("/x/a{"), "a[{]", true},
		{nt.New(`C:\Windows\System32\KERNEL32.DLL`), "*.dll", true},
		{nt.New(`C:\Windows\System32\kernel32.dll`), "Kernel32.*", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.p.FnMatch(tc.pattern), tc.expected, "%#v.FnMatch(%q)", tc.p, tc.pattern)
	}
}

func TestIsCaseInsensitive(t *testing.T) {
	assert.Check(t, !IsCaseInsensitive(pathsyntax.Posix))
	assert.Check(t, IsCaseInsensitive(pathsyntax.Windows))
}

func TestGlob(t *testing.T) {
	dir := fs.NewDir(t, "pathobject-glob",
		fs.WithFile("a.txt", ""),
		fs.WithFile("b.go", ""),
		fs.WithDir("sub",
			fs.WithFile("c.txt", ""),
			fs.WithDir("deeper", fs.WithFile("d.txt", "")),
		),
	)
	root := New(dir.Path())

	matches, err := root.Glob("*.txt")
	assert.NilError(t, err)
	assert.DeepEqual(t, relNames(t, root, matches), []string{"a.txt"})

	matches, err = root.Glob(filepath.Join("**", "*.txt"))
	assert.NilError(t, err)
	assert.DeepEqual(t, relNames(t, root, matches), []string{
		"a.txt",
		filepath.Join("sub", "c.txt"),
		filepath.Join("sub", "deeper", "d.txt"),
	})

	matches, err = root.Glob("*.rs")
	assert.NilError(t, err)
	assert.Equal(t, len(matches), 0)
}

func TestGlob_ForeignSyntax(t *testing.T) {
	foreign := nt
	if runtime.GOOS == "windows" {
		foreign = posix
	}
	_, err := foreign.New("anything").Glob("*")
	assert.Assert(t, errors.Is(err, ErrForeignSyntax))
}

func relNames(t *testing.T, root Path, matches []Path) []string {
	t.Helper()
	names := make([]string, len(matches))
	for i, match := range matches {
		rel, err := match.RelPathFrom(root.String())
		assert.NilError(t, err)
		names[i] = rel.String()
	}
	sort.Strings(names)
	return names
}
