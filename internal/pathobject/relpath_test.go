package pathobject

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

func TestRelPathTo(t *testing.T) {
	cases := []struct {
		name        string
		origin      Path
		destination string
		expected    string
	}{
		{"diverging siblings", posix.New("/a/b/c"), "/a/d/e", "../../d/e"},
		{"identical", posix.New("/a/b/c"), "/a/b/c", "."},
		{"identical root", posix.New("/"), "/", "."},
		{"ancestor", posix.New("/a/b/c"), "/a", "../.."},
		{"descendant", posix.New("/a"), "/a/b/c", "b/c"},
		{"from root", posix.New("/"), "/usr/lib", "usr/lib"},
		{"to root", posix.New("/usr/lib"), "/", "../.."},
		{"unnormalized inputs", posix.New("/a/./b/"), "/a//x/../c", "../c"},
		{"case sensitive", posix.New("/A/b"), "/a/b", "../../a/b"},
		{"windows siblings", nt.New(`C:\A\B\C`), `C:\A\D\E`, `..\..\D\E`},
		{"windows case folded", nt.New(`C:\Foo\Bar`), `c:\foo\baz`, `..\baz`},
		{"windows keeps destination case", nt.New(`c:\a`), `C:\A\Sub`, `Sub`},
		{"windows different drive", nt.New(`C:\A\B`), `D:\X`, `D:\X`},
		{"windows drive letter case", nt.New(`C:\A`), `c:\a`, `.`},
		{"unc siblings", nt.New(`\\host\share\a`), `\\host\share\b`, `..\b`},
		{"unc different share", nt.New(`\\host\share\a`), `\\other\share\a`, `\\other\share\a`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.origin.RelPathTo(tc.destination)
			assert.NilError(t, err)
			assert.Equal(t, got.String(), tc.expected)
			assert.Equal(t, got.Syntax(), tc.origin.Syntax())
		})
	}
}

func TestRelPathTo_Identity(t *testing.T) {
	for _, s := range []string{"/", "/a", "/a/b/c", "/a/b/c/"} {
		got, err := posix.New(s).RelPathTo(s)
		assert.NilError(t, err)
		assert.Equal(t, got.String(), ".")
	}
	for _, s := range []string{`C:\`, `C:\A\B`, `\\host\share\x`} {
		got, err := nt.New(s).RelPathTo(s)
		assert.NilError(t, err)
		assert.Equal(t, got.String(), ".")
	}
}

func TestRelPathTo_RoundTrip(t *testing.T) {
	origins := []string{"/", "/a", "/a/b/c", "/x/y"}
	destinations := []string{"/", "/a/b", "/a/d/e", "/x/y/z", "/q"}
	for _, o := range origins {
		for _, d := range destinations {
			origin := posix.New(o)
			rel, err := origin.RelPathTo(d)
			assert.NilError(t, err)
			assert.Check(t, !rel.IsAbsolute(), "%s -> %s = %s", o, d, rel)
			assert.Equal(t, origin.Join(rel.String()).Normalize().String(), d, "%s -> %s = %s", o, d, rel)
		}
	}
}

func TestRelPathFrom(t *testing.T) {
	got, err := posix.New("/a/d/e").RelPathFrom("/a/b/c")
	assert.NilError(t, err)
	assert.Equal(t, got.String(), "../../d/e")

	got, err = nt.New(`D:\X`).RelPathFrom(`C:\A\B`)
	assert.NilError(t, err)
	assert.Equal(t, got.String(), `D:\X`)
}

func TestRelPath(t *testing.T) {
	cwd, err := Cwd()
	assert.NilError(t, err)

	got, err := cwd.Join("sub", "file.txt").RelPath()
	assert.NilError(t, err)
	assert.Equal(t, got.String(), New("sub").Join("file.txt").String())

	got, err = cwd.RelPath()
	assert.NilError(t, err)
	assert.Equal(t, got.String(), ".")
}

func TestRelPath_CwdError(t *testing.T) {
	restore := getwd
	t.Cleanup(func() { getwd = restore })
	getwd = func() (string, error) { return "", errors.New("cwd removed") }

	_, err := posix.New("/a").RelPath()
	assert.ErrorContains(t, err, "cwd removed")

	_, err = Cwd()
	assert.ErrorContains(t, err, "cwd removed")
}
