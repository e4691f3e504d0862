package binder

import "net/http"

// Query binds URL query parameters into fields tagged `query:"name"`.
//
//	type SignInPage struct {
//		Next string `query:"next"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return decode(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
