package handler

import "net/http"

type emptyResponse int

func (status emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(int(status))
	return nil
}

// Empty answers 204 No Content.
func Empty() Response {
	return emptyResponse(http.StatusNoContent)
}

// EmptyWithStatus answers with status and no body.
func EmptyWithStatus(status int) Response {
	return emptyResponse(status)
}
