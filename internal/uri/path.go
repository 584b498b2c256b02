package uri

import (
	"bytes"
	"strings"
)

// NormalizePath collapses "." and ".." segments. A ".." with nothing left to
// remove is dropped. Empty segments disappear, a leading slash is kept only in
// front of emitted segments, and a trailing slash survives iff the input had
// one.
func NormalizePath(path string) string {
	abs := strings.HasPrefix(path, "/")
	clean := make([]byte, 0, len(path))
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "..":
			i := bytes.LastIndexByte(clean, '/')
			if i < 0 {
				i = 0
			}
			clean = clean[:i]
		case ".", "":
		default:
			if len(clean) > 0 || abs {
				clean = append(clean, '/')
			}
			clean = append(clean, seg...)
		}
	}
	if strings.HasSuffix(path, "/") {
		clean = append(clean, '/')
	}
	return string(clean)
}

// CleanPath normalizes the path component of a full URL. The input is
// returned as-is when the path is already clean.
func CleanPath(text string) string {
	u := Parse(text)
	path := u.Path()
	clean := NormalizePath(path)
	if clean == path {
		return text
	}
	return text[:u.path.start] + clean + text[u.path.end:]
}
