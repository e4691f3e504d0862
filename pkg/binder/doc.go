// Package binder fills request structs from HTTP form bodies and query strings.
//
// Binders are plain functions with the handler.Bind signature and read only
// fields carrying their own struct tag, so Form and Query can populate the
// same struct:
//
//	type SignInRequest struct {
//		Next     string `query:"next"`
//		Email    string `form:"email"`
//		Password string `form:"password"`
//	}
//
//	mux.Post("/auth/sign-in", handler.Wrap(signIn,
//		handler.WithBinders[handler.Context, SignInRequest](binder.Query(), binder.Form()),
//	))
//
// Supported field types are strings, integers, floats, bools, pointers to
// those and slices of them. Form returns ErrNotApplicable for requests
// without a body so it can be attached to GET routes as well.
package binder
