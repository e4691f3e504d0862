package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form binds application/x-www-form-urlencoded and multipart/form-data bodies
// into fields tagged `form:"name"`. Requests without a body content type
// (GET, HEAD, bodiless POST) return ErrNotApplicable.
//
//	type SignInRequest struct {
//		Email    string `form:"email"`
//		Password string `form:"password"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" || r.Method == http.MethodGet || r.Method == http.MethodHead {
			return ErrNotApplicable
		}

		mediaType, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: malformed content type", ErrInvalidForm)
		}

		var values map[string][]string

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.PostForm

		case "multipart/form-data":
			if params["boundary"] == "" {
				return fmt.Errorf("%w: missing boundary in content type", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.MultipartForm.Value

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
		}

		return decode(v, "form", values, ErrInvalidForm)
	}
}
