package handler

import "net/http"

// errorResponse hands err to the error handler by failing Render.
type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that routes err through the configured
// ErrorHandler, so handlers don't need access to it.
//
//	if err != nil {
//		return handler.Error(err)
//	}
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
