package account

import (
	"net/http"

	"github.com/dmitrymomot/starterkit/handler"
	"github.com/dmitrymomot/starterkit/pkg/session"
)

// HomePage renders the landing page with the signed-in identity, if any.
type HomePage struct {
	appName      string
	view         Views
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewHomePage(appName string, views Views, errorHandler handler.ErrorHandler[handler.Context]) *HomePage {
	return &HomePage{appName: appName, view: views, errorHandler: errorHandler}
}

func (h *HomePage) Handle() http.Handler {
	opts := []handler.WrapOption[handler.Context, struct{}]{}
	if h.errorHandler != nil {
		opts = append(opts, handler.WithErrorHandler[handler.Context, struct{}](h.errorHandler))
	}
	return handler.Wrap(h.render, opts...)
}

func (h *HomePage) render(ctx handler.Context, _ struct{}) handler.Response {
	res, err := session.Current(ctx)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(h.view.HomePage(HomePageParams{AppName: h.appName, User: res.User}))
}
