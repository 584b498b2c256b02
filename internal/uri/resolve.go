package uri

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// DefaultScheme is used when neither the reference nor the base has one.
const DefaultScheme = "gemini"

// opaqueSchemes have bodies that are not hierarchical; references using them
// are never merged with a base.
var opaqueSchemes = []string{"data", "about", "mailto"}

// IsOpaque reports whether scheme is one of the non-hierarchical schemes.
func IsOpaque(scheme string) bool {
	for _, s := range opaqueSchemes {
		if strings.EqualFold(s, scheme) {
			return true
		}
	}
	return false
}

// Resolve computes the absolute URL for ref relative to base.
func Resolve(base, ref string) string {
	orig := Parse(base)
	rel := Parse(ref)
	if IsOpaque(rel.Scheme()) {
		return ref
	}
	scheme := DefaultScheme
	if rel.HasScheme() {
		scheme = rel.Scheme()
	} else if !rel.HasHost() && orig.HasScheme() {
		scheme = orig.Scheme()
	}

	var b strings.Builder
	b.Grow(len(base) + len(ref))
	b.WriteString(scheme)
	b.WriteString("://")
	authority := orig
	if rel.HasHost() {
		authority = rel
	}
	b.WriteString(authority.Host())
	if authority.HasPort() {
		b.WriteByte(':')
		b.WriteString(authority.Port())
	}

	switch {
	case rel.HasScheme() || rel.HasHost() || isAbsolutePath(rel.Path()):
		if !strings.HasPrefix(rel.Path(), "/") {
			b.WriteByte('/')
		}
		b.WriteString(rel.Path())
		b.WriteString(rel.Query())
	case rel.HasPath():
		dir := dirOf(orig.Path())
		b.WriteString(dir)
		if !strings.HasSuffix(dir, "/") {
			b.WriteByte('/')
		}
		b.WriteString(rel.Path())
		b.WriteString(rel.Query())
	case rel.HasQuery():
		b.WriteString(orig.Path())
		b.WriteString(rel.Query())
	default:
		b.WriteString(orig.Path())
		b.WriteString(orig.Query())
	}
	return CleanPath(b.String())
}

// dirOf drops the final segment of a file path; directory paths (ending in
// '/') are kept whole.
func dirOf(path string) string {
	if strings.HasSuffix(path, "/") {
		return path
	}
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return ""
	}
	return path[:i]
}

func isAbsolutePath(path string) bool {
	if decoded, err := url.PathUnescape(path); err == nil {
		path = decoded
	}
	return strings.HasPrefix(path, "/")
}

// MakeFileURL converts a local filesystem path into a file:// URL.
func MakeFileURL(localPath string) string {
	p := filepath.Clean(localPath)
	p = strings.ReplaceAll(p, "\\", "/")
	segs := strings.Split(p, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return "file://" + strings.Join(segs, "/")
}

// EncodeSpaces replaces every space with %20.
func EncodeSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "%20")
}

// FromInput turns user input into a URL. Paths of existing local files become
// file:// URLs. Input without a recognisable scheme and authority is treated
// as a host name under the default scheme.
func FromInput(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if _, err := os.Stat(text); err == nil {
		if abs, err := filepath.Abs(text); err == nil {
			return MakeFileURL(abs)
		}
	}
	u := Parse(text)
	if u.HasScheme() && (u.HasHost() || IsOpaque(u.Scheme()) || strings.EqualFold(u.Scheme(), "file")) {
		return text
	}
	return Resolve("", "//"+strings.TrimPrefix(text, "//"))
}
