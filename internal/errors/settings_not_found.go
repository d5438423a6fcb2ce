package errors

import "net/http"

var ErrSettingsNotFound = &Exception{
	Message:    "board settings not found",
	StatusCode: http.StatusNotFound,
}
