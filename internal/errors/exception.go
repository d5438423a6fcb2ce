package errors

import (
	"errors"
	"net/http"
)

// Exception is a sentinel error carrying the HTTP status the API should
// answer with. Services return these; the HTTP layer maps them via
// StatusCode.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode extracts the declared status from an error chain, defaulting
// to 500 for anything that is not an Exception.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
