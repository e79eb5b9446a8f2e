package dbl

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies an Error
type ErrorKind int

const (
	// KindUnknown is returned by KindOf for errors not produced by this package
	KindUnknown ErrorKind = iota
	// InvalidURL indicates a URL or query string could not be built
	InvalidURL
	// JSONDecode indicates a body did not match the expected shape, or a
	// payload could not be encoded
	JSONDecode
	// Transport indicates the HTTP round trip itself failed
	Transport
	// BadResponse indicates the service rejected the request (4xx)
	BadResponse
	// InvalidResponse indicates a server error or unexpected status
	InvalidResponse
	// Unauthorized indicates a missing or rejected token (401/403)
	Unauthorized
	// InvalidHeaderValue indicates the token cannot be sent as a header
	InvalidHeaderValue
)

// String returns the string representation of an ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case InvalidURL:
		return "invalid url"
	case JSONDecode:
		return "json decode"
	case Transport:
		return "transport"
	case BadResponse:
		return "bad response"
	case InvalidResponse:
		return "invalid response"
	case Unauthorized:
		return "unauthorized"
	case InvalidHeaderValue:
		return "invalid header value"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per kind. errors.Is(err, ErrUnauthorized) matches any
// *Error of kind Unauthorized.
var (
	ErrInvalidURL         = errors.New("dbl: invalid url")
	ErrJSONDecode         = errors.New("dbl: json decode failed")
	ErrTransport          = errors.New("dbl: transport failure")
	ErrBadResponse        = errors.New("dbl: bad response")
	ErrInvalidResponse    = errors.New("dbl: invalid response")
	ErrUnauthorized       = errors.New("dbl: unauthorized")
	ErrInvalidHeaderValue = errors.New("dbl: invalid header value")

	// ErrBuilderConsumed is returned when Build is called twice on a builder
	ErrBuilderConsumed = errors.New("dbl: builder already consumed")
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("dbl: invalid client configuration")
)

var kindSentinels = map[ErrorKind]error{
	InvalidURL:         ErrInvalidURL,
	JSONDecode:         ErrJSONDecode,
	Transport:          ErrTransport,
	BadResponse:        ErrBadResponse,
	InvalidResponse:    ErrInvalidResponse,
	Unauthorized:       ErrUnauthorized,
	InvalidHeaderValue: ErrInvalidHeaderValue,
}

// Error is returned by every fallible operation in this package
type Error struct {
	Kind ErrorKind
	// Op is the client operation that failed, e.g. "GetBot"
	Op  string
	URL string
	// StatusCode and Body are set for BadResponse, InvalidResponse and
	// Unauthorized.
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := "dbl"
	if e.Op != "" {
		msg += ": " + e.Op
	}
	msg += ": " + e.Kind.String()
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
		if len(e.Body) > 0 {
			msg += ": " + truncate(string(e.Body), 200)
		}
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind
func (e *Error) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// IsNotFound checks if the error indicates a not found response
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *Error) IsUnauthorized() bool {
	return e.Kind == Unauthorized
}

// Retryable reports whether repeating the same call could succeed.
// The client itself never retries.
func (e *Error) Retryable() bool {
	return e.Kind == Transport || e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// KindOf returns the ErrorKind of err, or KindUnknown
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// statusKind maps a non-2xx status code to an ErrorKind
func statusKind(code int) ErrorKind {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return Unauthorized
	case code >= 400 && code < 500:
		return BadResponse
	default:
		return InvalidResponse
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
