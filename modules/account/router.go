package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which services to mount in the account module.
// Each service is optional and will only be mounted if provided.
type RouterOptions struct {
	Password Mountable // /auth/sign-in, /auth/sign-up, /auth/sign-out
	Session  Mountable // /api/auth/session
	Home     Mountable // GET /
}

// Router creates the account module router. Session middleware must run
// before it so handlers can read the current session.
//
//	r := chi.NewRouter()
//	r.Use(sessions.Middleware)
//	r.Mount("/", account.Router(account.RouterOptions{
//	    Password: account.NewPasswordService(accounts, sessions, cookies, views),
//	    Session:  account.NewSessionAPI(),
//	    Home:     account.NewHomePage("Starter Kit", views, errorHandler),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.Home != nil {
		r.Method(http.MethodGet, "/", opts.Home.Handle())
	}
	if opts.Password != nil {
		r.Mount("/auth", opts.Password.Handle())
	}
	if opts.Session != nil {
		r.Mount("/api/auth", opts.Session.Handle())
	}

	return r
}
