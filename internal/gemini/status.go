// Package gemini holds the protocol status codes and the user-facing error
// descriptions shown for them.
package gemini

// StatusCode is a Gemini response status. Negative values are produced by the
// client itself and never appear on the wire.
type StatusCode int

const (
	StatusNone StatusCode = 0

	StatusInput                     StatusCode = 10
	StatusSensitiveInput            StatusCode = 11
	StatusSuccess                   StatusCode = 20
	StatusRedirectTemporary         StatusCode = 30
	StatusRedirectPermanent         StatusCode = 31
	StatusTemporaryFailure          StatusCode = 40
	StatusServerUnavailable         StatusCode = 41
	StatusCGIError                  StatusCode = 42
	StatusProxyError                StatusCode = 43
	StatusSlowDown                  StatusCode = 44
	StatusPermanentFailure          StatusCode = 50
	StatusNotFound                  StatusCode = 51
	StatusGone                      StatusCode = 52
	StatusProxyRequestRefused       StatusCode = 53
	StatusBadRequest                StatusCode = 59
	StatusClientCertificateRequired StatusCode = 60
	StatusCertificateNotAuthorized  StatusCode = 61
	StatusCertificateNotValid       StatusCode = 62
)

const (
	StatusUnknown StatusCode = -(iota + 1)
	StatusFailedToOpenFile
	StatusInvalidLocalResource
	StatusUnsupportedMimeType
	StatusUnsupportedProtocol
	StatusInvalidHeader
	StatusInvalidRedirect
	StatusSchemeChangeRedirect
	StatusTooManyRedirects
	StatusTLSFailure
)

// Category returns the first digit of a wire status, or 0 for client codes.
func (c StatusCode) Category() int {
	if c < 10 || c > 99 {
		return 0
	}
	return int(c) / 10
}

func (c StatusCode) IsInput() bool    { return c.Category() == 1 }
func (c StatusCode) IsSuccess() bool  { return c.Category() == 2 }
func (c StatusCode) IsRedirect() bool { return c.Category() == 3 }

// IsFailure reports whether the status describes an error, including every
// client-side code.
func (c StatusCode) IsFailure() bool {
	return c < 0 || c.Category() >= 4
}
