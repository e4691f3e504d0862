package handler

import "net/http"

// WithStatus makes resp answer with code on regular requests, e.g. 422 for a
// form re-rendered with errors. DataStar streams keep their 200 so the
// client applies the patches.
func WithStatus(resp Response, code int) Response {
	return statusResponse{next: resp, code: code}
}

type statusResponse struct {
	next Response
	code int
}

func (s statusResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return s.next.Render(w, r)
	}
	return s.next.Render(&statusWriter{ResponseWriter: w, code: s.code}, r)
}

// statusWriter replaces the first status written, explicit or implicit.
type statusWriter struct {
	http.ResponseWriter
	code  int
	wrote bool
}

func (w *statusWriter) WriteHeader(int) {
	if w.wrote {
		return
	}
	w.wrote = true
	w.ResponseWriter.WriteHeader(w.code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(w.code)
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
