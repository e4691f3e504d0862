package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/starterkit/pkg/binder"
)

// HandlerFunc handles a request already bound into R.
//
//	func (s *PasswordService) signIn(ctx handler.Context, req SignInRequest) handler.Response {
//		user, err := s.accounts.Authenticate(ctx, req.Email, req.Password)
//		if err != nil {
//			return handler.TemplPartial(form, page)
//		}
//		...
//		return handler.Redirect(next)
//	}
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response writes headers, status and body. A returned error goes to the
// route's ErrorHandler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind fills v from r. See package binder.
type Bind func(r *http.Request, v any) error

// ErrorHandler turns a binding, handler or render error into a response.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc, e.g. to throttle or authorize it.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures Wrap.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []Bind
	decorators     []Decorator[C, R]
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
}

// WithBinders appends binders. Each one reads only its own struct tags.
//
//	r.Post("/auth/sign-in", handler.Wrap(signIn,
//		handler.WithBinders[handler.Context, SignInRequest](binder.Query(), binder.Form()),
//	))
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler replaces the plain-text fallback.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory builds C for each request. Required when C is not
// the package's Context.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators appends decorators; the first one runs first.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// plainErrorHandler is used when no ErrorHandler is configured. Only an
// HTTPError's key reaches the client; anything else is a bare 500.
func plainErrorHandler[C Context](ctx C, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// defaultContext adapts NewContext to C. It panics on first use when C is a
// custom context type and no WithContextFactory was given.
func defaultContext[C Context](w http.ResponseWriter, r *http.Request) C {
	c, ok := any(NewContext(w, r)).(C)
	if !ok {
		panic("handler: custom context type requires WithContextFactory")
	}
	return c
}

// bind fills req from r. Binders that find nothing to read are skipped.
func (c *wrapConfig[C, R]) bind(r *http.Request, req *R) error {
	for _, b := range c.binders {
		err := b(r, req)
		if err == nil || errors.Is(err, binder.ErrNotApplicable) {
			continue
		}
		return err
	}
	return nil
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc. Binders run in
// order (ErrNotApplicable skips one), then decorators, then the handler;
// binding and render failures go to the error handler.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler:   plainErrorHandler[C],
		contextFactory: defaultContext[C],
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// First decorator ends up outermost.
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		h = cfg.decorators[i](h)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R
		if err := cfg.bind(r, &req); err != nil {
			cfg.errorHandler(ctx, err)
			return
		}

		resp := h(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
