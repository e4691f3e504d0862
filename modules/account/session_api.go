package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/starterkit/handler"
	"github.com/dmitrymomot/starterkit/pkg/session"
)

// SessionResponse is the body of GET /api/auth/session.
type SessionResponse struct {
	User *session.User `json:"user"`
}

// SessionAPI exposes the current session's identity as JSON.
type SessionAPI struct{}

func NewSessionAPI() *SessionAPI {
	return &SessionAPI{}
}

// Handle returns the /api/auth sub-router.
func (a *SessionAPI) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/session", handler.Wrap(a.current))
	return r
}

// current answers {"user": null} for anonymous requests. Store failures get a
// 500 with the generic {"error":{"code":"internal_error",...}} envelope.
func (a *SessionAPI) current(ctx handler.Context, _ struct{}) handler.Response {
	res, err := session.Current(ctx)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSONRaw(SessionResponse{User: res.User}, http.StatusOK)
}
