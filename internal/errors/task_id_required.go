package errors

import "net/http"

var ErrTaskIDRequired = &Exception{
	Message:    "a task id is required",
	StatusCode: http.StatusBadRequest,
}
