package errors

import "net/http"

// ErrorResp carries the HTTP code a failure should surface as. Handlers never
// inspect messages, only the code.
type ErrorResp struct {
	Code    int
	Message string
}

func (e *ErrorResp) Error() string {
	return e.Message
}

func BadRequest(message string) error {
	return &ErrorResp{Code: http.StatusBadRequest, Message: message}
}

func UnauthorizedError(message string) error {
	return &ErrorResp{Code: http.StatusUnauthorized, Message: message}
}

func ForbiddenError(message string) error {
	return &ErrorResp{Code: http.StatusForbidden, Message: message}
}

func NotFound(message string) error {
	return &ErrorResp{Code: http.StatusNotFound, Message: message}
}

func Conflict(message string) error {
	return &ErrorResp{Code: http.StatusConflict, Message: message}
}

func InternalServerError(message string) error {
	return &ErrorResp{Code: http.StatusInternalServerError, Message: message}
}

// HttpCode extracts the carried status code, defaulting to 500 for errors
// that did not come from this package.
func HttpCode(err error) int {
	if e, ok := err.(*ErrorResp); ok {
		return e.Code
	}
	return http.StatusInternalServerError
}
