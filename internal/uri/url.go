// Package uri parses, normalizes, and resolves the URLs the browser navigates
// to. Parsing never fails: components that cannot be matched come back empty.
package uri

import "strings"

// span is a half-open byte range into the source string.
type span struct {
	start, end int
}

func (s span) empty() bool { return s.end <= s.start }

// URL is a zero-copy view over a URL string. Every accessor returns a
// substring of the source, so a URL stays valid for as long as the caller
// keeps the source string around.
type URL struct {
	src      string
	scheme   span
	host     span
	port     span
	path     span
	query    span
	fragment span
}

// Parse splits text into its components. The grammar is
// (scheme ":")? ("//" authority)? path ("?" query)? ("#" fragment)? where
// authority is (userinfo "@")? host (":" port)?.
func Parse(text string) URL {
	u := URL{src: text}
	if hasPrefixFold(text, "file://") {
		u.scheme = span{0, 4}
		u.path = span{7, len(text)}
		u.host = span{7, 7}
		u.port = span{7, 7}
		u.query = span{len(text), len(text)}
		u.fragment = u.query
		return u
	}
	pos := 0
	if i := strings.IndexAny(text, ":/?#"); i > 0 && text[i] == ':' {
		u.scheme = span{0, i}
		pos = i + 1
	} else {
		u.scheme = span{0, 0}
	}
	u.host = span{pos, pos}
	u.port = span{pos, pos}
	if strings.HasPrefix(text[pos:], "//") {
		authStart := pos + 2
		authEnd := len(text)
		if i := strings.IndexAny(text[authStart:], "/?#"); i >= 0 {
			authEnd = authStart + i
		}
		u.host, u.port = splitAuthority(text, authStart, authEnd)
		pos = authEnd
	}
	pathEnd := len(text)
	if i := strings.IndexAny(text[pos:], "?#"); i >= 0 {
		pathEnd = pos + i
	}
	u.path = span{pos, pathEnd}
	pos = pathEnd
	u.query = span{pos, pos}
	if pos < len(text) && text[pos] == '?' {
		end := len(text)
		if i := strings.IndexByte(text[pos:], '#'); i >= 0 {
			end = pos + i
		}
		u.query = span{pos, end}
		pos = end
	}
	u.fragment = span{pos, len(text)}
	if pos >= len(text) || text[pos] != '#' {
		u.fragment = span{pos, pos}
	}
	return u
}

// splitAuthority locates host and port inside text[start:end]. When the
// authority does not look like host(:port) the whole authority is kept as the
// host and the port is left empty.
func splitAuthority(text string, start, end int) (span, span) {
	auth := text[start:end]
	hostStart := 0
	if at := strings.IndexByte(auth, '@'); at >= 0 {
		hostStart = at + 1
	}
	rest := auth[hostStart:]
	hostLen := 0
	if strings.HasPrefix(rest, "[") {
		closing := strings.IndexByte(rest, ']')
		if closing > 1 && isIPv6Literal(rest[1:closing]) {
			hostLen = closing + 1
		}
	} else {
		hostLen = len(rest)
		if i := strings.IndexAny(rest, ":[]"); i >= 0 {
			hostLen = i
		}
	}
	if hostLen == 0 {
		return span{start, end}, span{end, end}
	}
	host := span{start + hostStart, start + hostStart + hostLen}
	port := span{host.end, host.end}
	tail := rest[hostLen:]
	if len(tail) > 1 && tail[0] == ':' {
		digits := 0
		for digits < len(tail)-1 && isDigit(tail[1+digits]) {
			digits++
		}
		if digits > 0 {
			port = span{host.end + 1, host.end + 1 + digits}
		}
	}
	return host, port
}

func isIPv6Literal(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c), c == ':':
		case c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return s != ""
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func (u URL) slice(s span) string {
	if s.empty() {
		return ""
	}
	return u.src[s.start:s.end]
}

// String returns the source text the view was parsed from.
func (u URL) String() string { return u.src }

// Scheme returns the scheme without the trailing colon.
func (u URL) Scheme() string { return u.slice(u.scheme) }

// Host returns the host, including brackets for IPv6 literals.
func (u URL) Host() string { return u.slice(u.host) }

// Port returns the port digits, or "" when no port was given.
func (u URL) Port() string { return u.slice(u.port) }

// Path returns the path component.
func (u URL) Path() string { return u.slice(u.path) }

// Query returns the query including its leading '?'. A lone "?" means the
// query is present but empty.
func (u URL) Query() string { return u.slice(u.query) }

// Fragment returns the fragment including its leading '#'.
func (u URL) Fragment() string { return u.slice(u.fragment) }

func (u URL) HasScheme() bool { return !u.scheme.empty() }
func (u URL) HasHost() bool   { return !u.host.empty() }
func (u URL) HasPort() bool   { return !u.port.empty() }
func (u URL) HasPath() bool   { return !u.path.empty() }
func (u URL) HasQuery() bool  { return !u.query.empty() }

// Owned is a URL whose components are detached from the source string.
type Owned struct {
	Scheme   string
	Host     string
	Port     string
	Path     string
	Query    string
	Fragment string
}

// Own copies every component into independent storage.
func (u URL) Own() Owned {
	return Owned{
		Scheme:   strings.Clone(u.Scheme()),
		Host:     strings.Clone(u.Host()),
		Port:     strings.Clone(u.Port()),
		Path:     strings.Clone(u.Path()),
		Query:    strings.Clone(u.Query()),
		Fragment: strings.Clone(u.Fragment()),
	}
}

// Scheme is a shorthand for Parse(text).Scheme().
func Scheme(text string) string { return Parse(text).Scheme() }

// Host is a shorthand for Parse(text).Host().
func Host(text string) string { return Parse(text).Host() }
