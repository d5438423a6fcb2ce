package errors

import "net/http"

var ErrInvalidViewMode = &Exception{
	Message:    "viewMode must be public or private",
	StatusCode: http.StatusBadRequest,
}
