package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the code and message returned to API clients.
// Codes in the HTTP status range double as the response status; any other
// code is an application code answered with 400.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// StatusCode returns the HTTP status to answer with.
func (e *HTTPError) StatusCode() int {
	if e.Code >= 100 && e.Code <= 599 {
		return e.Code
	}
	return http.StatusBadRequest
}
