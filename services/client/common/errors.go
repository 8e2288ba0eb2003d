package common

import (
	"fmt"

	"github.com/tidwall/gjson"
)

const errorDetailPath = "detail"

// ConnectionError signals that the remote host could not be reached. There is
// no HTTP status code in this case since no response was produced.
type ConnectionError struct {
	URL string
	Err error
}

// Error returns the string representation of the error
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("could not connect to the API at %s: %v", e.URL, e.Err)
}

// Unwrap returns the inner error
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// DecodeError signals that a response body could not be parsed as JSON
type DecodeError struct {
	Err error
}

// Error returns the string representation of the error
func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON response from server: %v", e.Err)
}

// Unwrap returns the inner error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError signals a non-200 response from the remote service. Body holds the
// server-provided payload verbatim, Detail is extracted from it best-effort.
type APIError struct {
	StatusCode int
	Body       []byte
	Detail     string
}

// NewAPIError creates a new APIError instance, extracting the conventional
// "detail" field from the body when one is present
func NewAPIError(statusCode int, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Body:       body,
		Detail:     gjson.GetBytes(body, errorDetailPath).String(),
	}
}

// Error returns the string representation of the error
func (e *APIError) Error() string {
	if len(e.Detail) > 0 {
		return fmt.Sprintf("request failed with status code %d: %s", e.StatusCode, e.Detail)
	}

	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}
