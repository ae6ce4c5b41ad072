package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned before any request when the input
	// cannot be geocoded, e.g. a blank address.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedResponse is returned when the provider body is not XML.
	ErrMalformedResponse = errors.New("invalid XML returned")
)

// Error kinds reported by ErrorKind.
const (
	KindInvalidArgument   = "invalid_argument"
	KindMalformedResponse = "malformed_response"
	KindProvider          = "provider"
	KindTimeout           = "timeout"
	KindTransport         = "transport"
)

var statusCodes = map[int]string{
	200: "No errors occurred; the address was successfully parsed and its geocode was returned.",
	500: "A geocoding or directions request could not be successfully processed, yet the exact reason for the failure is unknown.",
	601: "An empty address was specified in the HTTP q parameter.",
	602: "No corresponding geographic location could be found for the specified address, possibly because the address is relatively new, or because it may be incorrect.",
	603: "The geocode for the given address or the route for the given directions query cannot be returned due to legal or contractual reasons.",
	610: "The given key is either invalid or does not match the domain for which it was given.",
	620: "The given key has gone over the requests limit in the 24 hour period or has submitted too many requests in too short a period of time. If you're sending multiple requests in parallel or in a tight loop, use a timer or pause in your code to make sure you don't send the requests too quickly.",
}

// StatusDescription returns the provider's description of a status code.
func StatusDescription(code int) (string, bool) {
	desc, ok := statusCodes[code]
	return desc, ok
}

// ProviderError reports a non-success status from the geocoding service.
type ProviderError struct {
	Code    int
	Message string
}

// NewProviderError builds a ProviderError. An empty message is resolved from
// the status table, falling back to a generic one for unknown codes.
func NewProviderError(code int, message string) *ProviderError {
	if message == "" {
		if desc, ok := StatusDescription(code); ok {
			message = desc
		} else {
			message = fmt.Sprintf("provider returned status %d", code)
		}
	}
	return &ProviderError{Code: code, Message: message}
}

func (e *ProviderError) Error() string {
	return e.Message
}

// ErrorKind classifies an error returned by a Geocoder.
func ErrorKind(err error) string {
	var perr *ProviderError
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformedResponse
	case errors.As(err, &perr):
		return KindProvider
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	default:
		return KindTransport
	}
}
