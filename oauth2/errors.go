package oauth2

import (
	"errors"
	"fmt"
)

// Sentinels for the error taxonomy. Match them with errors.Is; use errors.As
// with the typed errors below to get at the details.
var (
	ErrConfiguration  = errors.New("invalid configuration")
	ErrTransport      = errors.New("transport failure")
	ErrResponseFormat = errors.New("malformed server response")
	ErrEmptyResponse  = errors.New("empty response body")
	ErrServer         = errors.New("server returned an error response")
	ErrStateMismatch  = errors.New("CSRF state mismatch")
)

// ConfigurationError reports an invalid URL, a missing required field or an
// extra parameter colliding with a required one. It is always returned before
// any network access.
type ConfigurationError struct {
	Field  string
	Reason string
}

// NewConfigurationError returns a *ConfigurationError for field.
func NewConfigurationError(field, reason string) error {
	return &ConfigurationError{Field: field, Reason: reason}
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrConfiguration, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration, e.Field, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// TransportError wraps a failure of the injected transport, e.g. a network
// error, timeout or cancellation. It is never retried.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// ResponseFormatError means the body could be parsed neither as a token nor
// as an OAuth2 error response. Status and Body are kept for diagnostics.
type ResponseFormatError struct {
	Status int
	Body   []byte
	Err    error
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("%s (status %d): %v", ErrResponseFormat, e.Status, e.Err)
}

func (e *ResponseFormatError) Unwrap() error { return e.Err }

func (e *ResponseFormatError) Is(target error) bool { return target == ErrResponseFormat }

// ServerError is a well-formed OAuth2 error response returned by the server.
type ServerError struct {
	Status   int
	Response ErrorResponse
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s (status %d): %s", ErrServer, e.Status, e.Response)
}

func (e *ServerError) Is(target error) bool { return target == ErrServer }

// Code returns the OAuth2 error code.
func (e *ServerError) Code() ErrorCode { return e.Response.Error }
