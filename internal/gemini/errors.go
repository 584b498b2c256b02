package gemini

// Error is the presentation of a failure status.
type Error struct {
	Icon    rune
	Title   string
	Message string
}

type errorEntry struct {
	code StatusCode
	err  Error
}

// errorTable's first entry is the fallback for codes not listed.
var errorTable = []errorEntry{
	{StatusUnknown, Error{0x1f4ab, "Unknown Status Code",
		"The server responded with a status code that is not in the Gemini specification. " +
			"Maybe the server is from the future? Or just malfunctioning."}},
	{StatusFailedToOpenFile, Error{0x1f4c1, "Failed to Open File",
		"The requested file does not exist or is inaccessible. Please check the file path."}},
	{StatusInvalidLocalResource, Error{0, "Invalid Resource",
		"The requested resource does not exist."}},
	{StatusUnsupportedMimeType, Error{0x1f47d, "Unsupported Content Type",
		"The received content cannot be viewed with this application."}},
	{StatusUnsupportedProtocol, Error{0x1f61e, "Unsupported Protocol",
		"The requested protocol is not supported by this application."}},
	{StatusInvalidHeader, Error{0x1f4a9, "Invalid Header",
		"The received header did not conform to the Gemini specification. " +
			"Perhaps the server is malfunctioning or you tried to contact a non-Gemini server."}},
	{StatusInvalidRedirect, Error{0x27a0, "Invalid Redirect",
		"The server responded with a redirect but did not provide a valid destination URL. " +
			"Perhaps the server is malfunctioning."}},
	{StatusSchemeChangeRedirect, Error{0x27a0, "Scheme-Changing Redirect",
		"The server attempted to redirect us to a URL whose scheme is different than the " +
			"originating URL's scheme. Here is the link so you can open it manually if appropriate."}},
	{StatusTooManyRedirects, Error{0x27a0, "Too Many Redirects",
		"You may be stuck in a redirection loop. The next redirected URL is below if you " +
			"want to continue manually."}},
	{StatusTLSFailure, Error{0x1f5a7, "Network/TLS Failure",
		"Failed to communicate with the host. Here is the error message:"}},
	{StatusTemporaryFailure, Error{0x1f50c, "Temporary Failure",
		"The request has failed, but may succeed if you try again in the future."}},
	{StatusServerUnavailable, Error{0x1f525, "Server Unavailable",
		"The server is unavailable due to overload or maintenance. Check back later."}},
	{StatusCGIError, Error{0x1f4a5, "CGI Error",
		"Failure during dynamic content generation on the server. This may be due " +
			"to buggy serverside software."}},
	{StatusProxyError, Error{0x1f310, "Proxy Error",
		"A proxy request failed because the server was unable to successfully " +
			"complete a transaction with the remote host. Perhaps there are difficulties " +
			"with network connectivity."}},
	{StatusSlowDown, Error{0x1f40c, "Slow Down",
		"The server is rate limiting requests. Please wait..."}},
	{StatusPermanentFailure, Error{0x1f6ab, "Permanent Failure",
		"Your request has failed and will fail in the future as well if repeated."}},
	{StatusNotFound, Error{0x1f50d, "Not Found",
		"The requested resource could not be found at this time."}},
	{StatusGone, Error{0x1f47b, "Gone",
		"The resource requested is no longer available and will not be available again."}},
	{StatusProxyRequestRefused, Error{0x1f6c2, "Proxy Request Refused",
		"The request was for a resource at a domain not served by the server and the " +
			"server does not accept proxy requests."}},
	{StatusBadRequest, Error{0x1f44e, "Bad Request",
		"The server was unable to parse your request, presumably due to the " +
			"request being malformed."}},
	{StatusClientCertificateRequired, Error{0x1f511, "Certificate Required",
		"Access to the requested resource requires identification via a client certificate."}},
	{StatusCertificateNotAuthorized, Error{0x1f512, "Certificate Not Authorized",
		"The provided client certificate is valid but is not authorized for accessing " +
			"the requested resource."}},
	{StatusCertificateNotValid, Error{0x1f6a8, "Invalid Certificate",
		"The provided client certificate is expired or invalid."}},
}

// IsDefined reports whether code has its own table entry.
func IsDefined(code StatusCode) bool {
	for _, e := range errorTable {
		if e.code == code {
			return true
		}
	}
	return false
}

// ErrorInfo describes code. StatusNone yields the zero Error; anything
// without an entry yields the "Unknown Status Code" description.
func ErrorInfo(code StatusCode) Error {
	if code == StatusNone {
		return Error{}
	}
	for _, e := range errorTable {
		if e.code == code {
			return e.err
		}
	}
	return errorTable[0].err
}

// Codes lists every status with a table entry, in table order.
func Codes() []StatusCode {
	out := make([]StatusCode, len(errorTable))
	for i, e := range errorTable {
		out[i] = e.code
	}
	return out
}
