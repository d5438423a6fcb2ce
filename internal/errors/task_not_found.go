package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Message:    "no task with this id",
	StatusCode: http.StatusNotFound,
}
