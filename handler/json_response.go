package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/starterkit/pkg/validator"
)

// JSONResponse is the envelope written by JSON and JSONError.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail is the "error" member of the envelope. Details maps a field
// to its validation messages.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status  int
	body    any
	noStore bool
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	if j.noStore {
		h.Set("Cache-Control", "no-store")
	}
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON and JSONError.
type JSONOption func(status *int, env *JSONResponse)

// WithJSONStatus overrides the status code.
func WithJSONStatus(status int) JSONOption {
	return func(s *int, _ *JSONResponse) { *s = status }
}

// WithJSONMeta sets the "meta" member.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(_ *int, env *JSONResponse) { env.Meta = meta }
}

// JSON writes v inside the envelope. An error value is routed to JSONError
// and a ready-made JSONResponse is written unchanged.
func JSON(v any, opts ...JSONOption) Response {
	switch val := v.(type) {
	case *ErrorDetail, error:
		return JSONError(val, opts...)
	case JSONResponse:
		return envelope(http.StatusOK, val, opts)
	default:
		return envelope(http.StatusOK, JSONResponse{Data: v}, opts)
	}
}

// JSONError writes err as the "error" member. Validation errors become 422
// with per-field details and an HTTPError keeps its code; the text of any
// other error is never sent.
func JSONError(err any, opts ...JSONOption) Response {
	status := http.StatusInternalServerError
	var detail *ErrorDetail

	switch e := err.(type) {
	case *ErrorDetail:
		detail = e
	case error:
		status, detail = describeJSON(e)
	}

	return envelope(status, JSONResponse{Error: detail}, opts)
}

func envelope(status int, env JSONResponse, opts []JSONOption) Response {
	for _, opt := range opts {
		opt(&status, &env)
	}
	return &jsonResponse{status: status, body: env}
}

func describeJSON(err error) (int, *ErrorDetail) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		detail := &ErrorDetail{
			Code:    "validation_error",
			Message: "validation failed",
			Details: make(map[string][]string, len(verrs)),
		}
		for _, fe := range verrs {
			detail.Details[fe.Field] = append(detail.Details[fe.Field], fe.Message)
		}
		return http.StatusUnprocessableEntity, detail
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	return http.StatusInternalServerError, &ErrorDetail{
		Code:    "internal_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

// JSONRaw encodes v as-is without the envelope, for endpoints whose wire
// shape is fixed, e.g. {"user": null}. The response is never cached.
func JSONRaw(v any, status int) Response {
	return &jsonResponse{status: status, body: v, noStore: true}
}
