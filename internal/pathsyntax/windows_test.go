package pathsyntax

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestWindows_SplitDrive(t *testing.T) {
	cases := []struct {
		path  string
		drive string
		rest  string
	}{
		{`C:\A\B\C`, `C:`, `\A\B\C`},
		{`c:/foo`, `c:`, `/foo`},
		{`\\host\share\dir\file`, `\\host\share`, `\dir\file`},
		{`//host/share/dir`, `//host/share`, `/dir`},
		{`\\host\share`, `\\host\share`, ``},
		{`\\host\\share`, ``, `\\host\\share`},
		{`\\host`, ``, `\\host`},
		{`\\\host\share`, ``, `\\\host\share`},
		{`\foo`, ``, `\foo`},
		{`x`, ``, `x`},
		{``, ``, ``},
	}
	for _, tc := range cases {
		drive, rest := Windows.SplitDrive(tc.path)
		assert.Equal(t, drive, tc.drive, "drive of %q", tc.path)
		assert.Equal(t, rest, tc.rest, "rest of %q", tc.path)
	}
}

func TestWindows_Split(t *testing.T) {
	cases := []struct {
		path string
		head string
		tail string
	}{
		{`C:\A\B\C`, `C:\A\B`, `C`},
		{`C:\A`, `C:\`, `A`},
		{`C:\`, `C:\`, ``},
		{`C:`, `C:`, ``},
		{`C:foo`, `C:`, `foo`},
		{`\\host\share\dir\file`, `\\host\share\dir`, `file`},
		{`\\host\share\`, `\\host\share\`, ``},
		{`a/b\c`, `a/b`, `c`},
		{`file`, ``, `file`},
	}
	for _, tc := range cases {
		head, tail := Windows.Split(tc.path)
		assert.Equal(t, head, tc.head, "head of %q", tc.path)
		assert.Equal(t, tail, tc.tail, "tail of %q", tc.path)
	}
}

func TestWindows_Join(t *testing.T) {
	cases := []struct {
		elem     []string
		expected string
	}{
		{[]string{`C:\`, `A`, `B`}, `C:\A\B`},
		{[]string{`C:\A`, `B`}, `C:\A\B`},
		{[]string{`C:`, `A`}, `C:A`},
		{[]string{`C:\A`, `\B`}, `C:\B`},
		{[]string{`C:\A`, `D:\B`}, `D:\B`},
		{[]string{`C:\A`, `D:B`}, `D:B`},
		{[]string{`C:\A`, `c:B`}, `c:\A\B`},
		{[]string{`\\host\share`, `dir`}, `\\host\share\dir`},
		{[]string{`..`, `..`, `d`, `e`}, `..\..\d\e`},
		{[]string{``, `x`}, `x`},
	}
	for _, tc := range cases {
		got := Windows.Join(tc.elem[0], tc.elem[1:]...)
		assert.Equal(t, got, tc.expected, "join %v", tc.elem)
	}
}

func TestWindows_SplitUNC(t *testing.T) {
	splitter, ok := Windows.(UNCSplitter)
	assert.Assert(t, ok)
	_, ok = Posix.(UNCSplitter)
	assert.Assert(t, !ok)

	cases := []struct {
		path string
		unc  string
		rest string
	}{
		{`\\host\share\dir`, `\\host\share`, `\dir`},
		{`//host/share`, `//host/share`, ``},
		{`C:\dir`, ``, `C:\dir`},
		{`\\\host`, ``, `\\\host`},
		{`\dir`, ``, `\dir`},
	}
	for _, tc := range cases {
		unc, rest := splitter.SplitUNC(tc.path)
		assert.Equal(t, unc, tc.unc, "unc of %q", tc.path)
		assert.Equal(t, rest, tc.rest, "rest of %q", tc.path)
	}
}

func TestWindows_NormPath(t *testing.T) {
	cases := map[string]string{
		`C:\A\.\B\..\C\`:  `C:\A\C`,
		`C:/A/B`:          `C:\A\B`,
		`C:\..\..`:        `C:\`,
		`C:..\x`:          `C:..\x`,
		`\\host\share\..`: `\\host\share\`,
		`a\..\..`:         `..`,
		``:                `.`,
		`\\.\COM1`:        `\\.\COM1`,
		`\\?\C:\a\..\b`:   `\\?\C:\a\..\b`,
	}
	for path, expected := range cases {
		assert.Equal(t, Windows.NormPath(path), expected, "normpath %q", path)
	}
}

func TestWindows_IsAbsNormCase(t *testing.T) {
	assert.Assert(t, Windows.IsAbs(`C:\A`))
	assert.Assert(t, Windows.IsAbs(`\A`))
	assert.Assert(t, Windows.IsAbs(`/A`))
	assert.Assert(t, !Windows.IsAbs(`C:A`))
	assert.Assert(t, !Windows.IsAbs(`A\B`))
	assert.Equal(t, Windows.NormCase(`C:/Program Files/App`), `c:\program files\app`)
}

func TestWindows_SplitExt(t *testing.T) {
	root, ext := Windows.SplitExt(`C:\dir.d\file.TXT`)
	assert.Equal(t, root, `C:\dir.d\file`)
	assert.Equal(t, ext, `.TXT`)

	root, ext = Windows.SplitExt(`C:\dir.d/noext`)
	assert.Equal(t, root, `C:\dir.d/noext`)
	assert.Equal(t, ext, ``)
}

func TestWindows_Abs(t *testing.T) {
	restore := getwd
	t.Cleanup(func() { getwd = restore })
	getwd = func() (string, error) { return `C:\Users\guido`, nil }

	got, err := Windows.Abs(`src\..\bin`)
	assert.NilError(t, err)
	assert.Equal(t, got, `C:\Users\guido\bin`)

	got, err = Windows.Abs(`D:\X\`)
	assert.NilError(t, err)
	assert.Equal(t, got, `D:\X`)
}

func TestWindows_ExpandVars(t *testing.T) {
	t.Setenv("PATHOBJECT_TEST_APP", "App")
	assert.Equal(t, Windows.ExpandVars(`C:\%PATHOBJECT_TEST_APP%\bin`), `C:\App\bin`)
	assert.Equal(t, Windows.ExpandVars(`C:\$PATHOBJECT_TEST_APP`), `C:\App`)
	assert.Equal(t, Windows.ExpandVars(`C:\%PATHOBJECT_TEST_UNSET%`), `C:\%PATHOBJECT_TEST_UNSET%`)
}
