package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseComponents(t *testing.T) {
	u := Parse("gemini://user@example.org:1965/docs/index.gmi?q=1#top")
	require.Equal(t, "gemini", u.Scheme())
	require.Equal(t, "example.org", u.Host())
	require.Equal(t, "1965", u.Port())
	require.Equal(t, "/docs/index.gmi", u.Path())
	require.Equal(t, "?q=1", u.Query())
	require.Equal(t, "#top", u.Fragment())
}

func TestParseIPv6Host(t *testing.T) {
	u := Parse("gemini://[2001:DB8::1]:1966/x")
	require.Equal(t, "[2001:DB8::1]", u.Host())
	require.Equal(t, "1966", u.Port())
	require.Equal(t, "/x", u.Path())
}

func TestParseUppercaseScheme(t *testing.T) {
	u := Parse("GEMINI://Example.org")
	require.Equal(t, "GEMINI", u.Scheme())
	require.Equal(t, "Example.org", u.Host())
	require.False(t, u.HasPath())
	require.False(t, u.HasPort())
}

func TestParseFileURL(t *testing.T) {
	u := Parse("file:///home/me/notes?.gmi")
	require.Equal(t, "file", u.Scheme())
	require.Equal(t, "/home/me/notes?.gmi", u.Path())
	require.False(t, u.HasHost())
	require.False(t, u.HasQuery())
}

func TestParseEmptyButPresentQuery(t *testing.T) {
	u := Parse("gemini://h/a?")
	require.True(t, u.HasQuery())
	require.Equal(t, "?", u.Query())

	u = Parse("gemini://h/a")
	require.False(t, u.HasQuery())
	require.Equal(t, "", u.Query())
}

func TestParseGarbageNeverPanics(t *testing.T) {
	for _, text := range []string{"", ":", "//", "?", "#", "://", "a:b:c", "gemini://[zz]/p", "gemini://host:/p", "@@@"} {
		u := Parse(text)
		require.Equal(t, text, u.String())
	}
	u := Parse("gemini://[zz]/p")
	require.Equal(t, "[zz]", u.Host())
	require.Equal(t, "", u.Port())
	require.Equal(t, "/p", u.Path())
}

func TestParseRelativeReference(t *testing.T) {
	u := Parse("../c?x")
	require.False(t, u.HasScheme())
	require.False(t, u.HasHost())
	require.Equal(t, "../c", u.Path())
	require.Equal(t, "?x", u.Query())
}

func TestOwnDetachesComponents(t *testing.T) {
	o := Parse("gemini://h:1/p?q#f").Own()
	require.Equal(t, Owned{Scheme: "gemini", Host: "h", Port: "1", Path: "/p", Query: "?q", Fragment: "#f"}, o)
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"":              "",
		"/":             "/",
		"/a/b/../c":     "/a/c",
		"/a/./b/":       "/a/b/",
		"/../a":         "/a",
		"/..":           "",
		"a/../b":        "b",
		"../../x/y":     "x/y",
		"//a//b//":      "/a/b/",
		"/a/b/c/../../": "/a/",
		"./":            "/",
	}
	for in, want := range cases {
		require.Equal(t, want, NormalizePath(in), "input %q", in)
	}
}

func TestNormalizePathIdempotent(t *testing.T) {
	inputs := []string{"", "/", "/a/../b/./c/", "a/b/../../..", "/x//y/.", "../", "/a/b/..", "./a/", "a/./b/../../c/d/"}
	for _, in := range inputs {
		once := NormalizePath(in)
		require.Equal(t, once, NormalizePath(once), "input %q", in)
	}
}

func TestCleanPathLeavesCleanURLUntouched(t *testing.T) {
	in := "gemini://h/a/b?x=../y"
	require.Equal(t, in, CleanPath(in))
	require.Equal(t, "gemini://h/b?x", CleanPath("gemini://h/a/../b?x"))
}

func TestResolve(t *testing.T) {
	cases := []struct {
		base, ref, want string
	}{
		{"scheme://h/a/b", "../c", "scheme://h/c"},
		{"scheme://h/a/b", "./d", "scheme://h/a/d"},
		{"scheme://h/a/", "d", "scheme://h/a/d"},
		{"scheme://h/a/b?x", "?y", "scheme://h/a/b?y"},
		{"scheme://h/a/b?x", "", "scheme://h/a/b?x"},
		{"scheme://h/a/b?x", "#frag", "scheme://h/a/b?x"},
		{"gemini://h:1965/a/b", "/c/./d", "gemini://h:1965/c/d"},
		{"gemini://h/a/b", "//other/x", "gemini://other/x"},
		{"gemini://h/a/b", "gopher://g/1", "gopher://g/1"},
		{"gemini://h/a/b", "%2Fabs", "gemini://h/%2Fabs"},
		{"gemini://h", "page.gmi", "gemini://h/page.gmi"},
		{"file:///home/u/doc.gmi", "other.gmi", "file:///home/u/other.gmi"},
		{"", "//example.org/x", "gemini://example.org/x"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Resolve(tc.base, tc.ref), "base %q ref %q", tc.base, tc.ref)
	}
}

func TestResolveOpaqueSchemesUnchanged(t *testing.T) {
	for _, ref := range []string{"data:text/plain,../x", "about:blank", "MAILTO:me@example.org"} {
		require.Equal(t, ref, Resolve("gemini://h/a/b", ref))
		require.Equal(t, ref, Resolve("", ref))
	}
}

func TestResolveAbsolutePathNeverMergesWithBaseDirectory(t *testing.T) {
	require.Equal(t, "gemini://h/x", Resolve("gemini://h/a/b/", "/x"))
}

func TestMakeFileURL(t *testing.T) {
	require.Equal(t, "file:///tmp/my%20notes/a.gmi", MakeFileURL("/tmp/my notes/./a.gmi"))
}

func TestEncodeSpaces(t *testing.T) {
	require.Equal(t, "a%20b%20c", EncodeSpaces("a b c"))
}

func TestSchemeAndHostHelpers(t *testing.T) {
	require.Equal(t, "gemini", Scheme("gemini://h/p"))
	require.Equal(t, "h", Host("gemini://h/p"))
	require.True(t, IsOpaque("About"))
	require.False(t, IsOpaque("gemini"))
}

func TestFromInput(t *testing.T) {
	dir := t.TempDir()
	require.Equal(t, MakeFileURL(dir), FromInput(dir))
	require.Equal(t, "gemini://example.org/x", FromInput("example.org/x"))
	require.Equal(t, "gemini://localhost:1965/", FromInput(" localhost:1965/ "))
	require.Equal(t, "gemini://h/p", FromInput("gemini://h/p"))
	require.Equal(t, "about:help", FromInput("about:help"))
	require.Equal(t, "", FromInput("   "))
}
