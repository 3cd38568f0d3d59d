package pathobject

import (
	"testing"

	"github.com/vercel/pathobject/internal/pathsyntax"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

var (
	posix = For(pathsyntax.Posix)
	nt    = For(pathsyntax.Windows)
)

var posixSamples = []string{
	"/home/guido/python.tar.gz",
	"/usr/local/lib/libpython.so",
	"/a",
	"/",
	"a",
	"a/b/c",
	"./a/b",
	"../a/b",
	"..",
	".",
	"/a/b/",
	"",
	"//",
	".bashrc",
}

var ntSamples = []string{
	`C:\A\B\C`,
	`C:\`,
	`C:`,
	`C:A\B`,
	`c:/mixed\seps/file.txt`,
	`\\host\share\dir\file`,
	`\\host\share`,
	`\rooted\no\drive`,
	`..\up`,
	`relative\file.tar.gz`,
}

func TestSplitPath_JoinRestores(t *testing.T) {
	check := func(p Path) {
		parent, name := p.SplitPath()
		if name == "" {
			return
		}
		assert.Check(t, parent.Join(name).Equal(p), "%#v: %#v + %q", p, parent, name)
	}
	for _, s := range posixSamples {
		check(posix.New(s))
	}
	for _, s := range ntSamples {
		if s == `c:/mixed\seps/file.txt` {
			// Join inserts the preferred separator, so only the normalized
			// forms agree.
			continue
		}
		check(nt.New(s))
	}
}

func TestSplitPath_RedundantSeparators(t *testing.T) {
	p := posix.New("a//b")
	parent, name := p.SplitPath()
	assert.Equal(t, parent.String(), "a")
	assert.Equal(t, name, "b")
	assert.Check(t, parent.Join(name).Normalize().Equal(p.Normalize()))
}

func TestSplitPath(t *testing.T) {
	parent, name := posix.New("/usr/local/lib/libpython.so").SplitPath()
	assert.Equal(t, parent.String(), "/usr/local/lib")
	assert.Equal(t, name, "libpython.so")
	assert.Equal(t, parent.Syntax(), pathsyntax.Posix)

	parent, name = nt.New(`C:\A\B`).SplitPath()
	assert.Equal(t, parent.String(), `C:\A`)
	assert.Equal(t, name, "B")
	assert.Equal(t, parent.Syntax(), pathsyntax.Windows)
}

func TestSplitAll(t *testing.T) {
	cases := []struct {
		p        Path
		expected []string
	}{
		{posix.New("/home/guido/python.tar.gz"), []string{"/", "home", "guido", "python.tar.gz"}},
		{posix.New("a/b"), []string{"", "a", "b"}},
		{posix.New("./a/b"), []string{".", "a", "b"}},
		{posix.New("../a/b"), []string{"..", "a", "b"}},
		{posix.New("/"), []string{"/"}},
		{posix.New("."), []string{"."}},
		{posix.New(""), []string{""}},
		{posix.New("/a/b/"), []string{"/", "a", "b", ""}},
		{nt.New(`C:\A\B\C`), []string{`C:\`, "A", "B", "C"}},
		{nt.New(`C:A\B`), []string{"C:", "A", "B"}},
		{nt.New(`\\host\share\dir\file`), []string{`\\host\share\`, "dir", "file"}},
		{nt.New(`..\up`), []string{"..", "up"}},
	}
	for _, tc := range cases {
		assert.DeepEqual(t, tc.p.SplitAll(), tc.expected)
	}
}

func TestSplitAll_JoinAllRestores(t *testing.T) {
	for _, s := range posixSamples {
		p := posix.New(s)
		assert.Check(t, posix.JoinAll(p.SplitAll()).Equal(p), "%#v: %v", p, p.SplitAll())
	}
	for _, s := range ntSamples {
		p := nt.New(s)
		if s == `c:/mixed\seps/file.txt` {
			assert.Check(t, nt.JoinAll(p.SplitAll()).Normalize().Equal(p.Normalize()))
			continue
		}
		assert.Check(t, nt.JoinAll(p.SplitAll()).Equal(p), "%#v: %v", p, p.SplitAll())
	}
}

func TestSplitAll_Terminates(t *testing.T) {
	// Inputs whose parent never shrinks are their own root.
	for _, p := range []Path{posix.New("//"), posix.New("///"), nt.New(`\\host\share`), nt.New(`\\`)} {
		parts := p.SplitAll()
		assert.Check(t, len(parts) >= 1)
		assert.Check(t, p.Flavor().JoinAll(parts).Equal(p), "%#v", p)
	}
}

func TestJoinAll_Empty(t *testing.T) {
	assert.Equal(t, posix.JoinAll(nil).String(), "")
}

func TestSplitExt(t *testing.T) {
	stem, ext := posix.New("/home/zack/filename.tar.gz").SplitExt()
	assert.Equal(t, stem.String(), "/home/zack/filename.tar")
	assert.Equal(t, ext, ".gz")

	for _, s := range posixSamples {
		stem, ext := posix.New(s).SplitExt()
		assert.Equal(t, stem.String()+ext, s)
	}
	for _, s := range ntSamples {
		stem, ext := nt.New(s).SplitExt()
		assert.Equal(t, stem.String()+ext, s)
	}
}

func TestSplitExt_OnlyFinalComponent(t *testing.T) {
	stem, ext := posix.New("/some.dir/file").SplitExt()
	assert.Equal(t, stem.String(), "/some.dir/file")
	assert.Equal(t, ext, "")
}

func TestSplitDrive(t *testing.T) {
	for _, s := range posixSamples {
		p := posix.New(s)
		drive, rest := p.SplitDrive()
		assert.Equal(t, drive.String(), "")
		assert.Equal(t, rest, s)
	}

	drive, rest := nt.New(`C:\A\B\C`).SplitDrive()
	assert.Equal(t, drive.String(), "C:")
	assert.Equal(t, rest, `\A\B\C`)
}

func TestSplitUNC(t *testing.T) {
	_, _, ok := posix.New("//host/share/dir").SplitUNC()
	assert.Check(t, !ok)
	_, ok = posix.New("//host/share/dir").UNCShare()
	assert.Check(t, !ok)

	unc, rest, ok := nt.New(`\\host\share\dir`).SplitUNC()
	assert.Check(t, ok)
	assert.Equal(t, unc.String(), `\\host\share`)
	assert.Equal(t, rest, `\dir`)

	share, ok := nt.New(`C:\dir`).UNCShare()
	assert.Check(t, ok)
	assert.Check(t, share.IsEmpty())
}

func TestStripExtAndFriends(t *testing.T) {
	p := posix.New("/home/guido/python.tar.gz")
	assert.Equal(t, p.StripExt().String(), "/home/guido/python.tar")
	assert.Equal(t, p.Ext(), ".gz")
	assert.Equal(t, p.Name(), "python.tar.gz")
	assert.Equal(t, p.Base(), "python.tar.gz")
	assert.Equal(t, p.Dir().String(), "/home/guido")
	assert.Equal(t, p.Parent().String(), "/home/guido")
	assert.Check(t, p.Drive().IsEmpty())
	assert.Equal(t, nt.New(`D:\x`).Drive().String(), "D:")
	assert.Check(t, is.Len(p.SplitAll(), 4))
}
