package account

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/starterkit/handler"
	"github.com/dmitrymomot/starterkit/pkg/auth"
	"github.com/dmitrymomot/starterkit/pkg/binder"
	"github.com/dmitrymomot/starterkit/pkg/cookie"
	"github.com/dmitrymomot/starterkit/pkg/logger"
	"github.com/dmitrymomot/starterkit/pkg/ratelimiter"
	"github.com/dmitrymomot/starterkit/pkg/session"
	"github.com/dmitrymomot/starterkit/pkg/validator"
)

const (
	homePath   = "/"
	signInPath = "/auth/sign-in"
)

// PasswordService serves the email/password sign-in, sign-up and sign-out flows.
type PasswordService struct {
	accounts     auth.PasswordAuthenticator
	sessions     *session.Manager
	cookies      *cookie.Manager
	views        Views
	errorHandler handler.ErrorHandler[handler.Context]
	logger       *slog.Logger
	limiter      ratelimiter.RateLimiter
}

// PasswordOption configures a PasswordService.
type PasswordOption func(*PasswordService)

// WithErrorHandler routes binding, store and render failures through h.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) PasswordOption {
	return func(s *PasswordService) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) PasswordOption {
	return func(s *PasswordService) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewPasswordService(
	accounts auth.PasswordAuthenticator,
	sessions *session.Manager,
	cookies *cookie.Manager,
	views Views,
	opts ...PasswordOption,
) *PasswordService {
	s := &PasswordService{
		accounts: accounts,
		sessions: sessions,
		cookies:  cookies,
		views:    views,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.logger, handler.ErrorHandlerConfig{})
	}
	return s
}

// Handle returns the /auth sub-router.
func (s *PasswordService) Handle() http.Handler {
	r := chi.NewRouter()

	signIn := handler.Wrap(s.signIn,
		handler.WithBinders[handler.Context, SignInRequest](
			binder.Query(), // ?next=
			binder.Form(),  // skipped for GET
		),
		handler.WithDecorators[handler.Context, SignInRequest](s.throttle),
		handler.WithErrorHandler[handler.Context, SignInRequest](s.errorHandler),
	)
	r.Get("/sign-in", signIn)
	r.Post("/sign-in", signIn)

	signUp := handler.Wrap(s.signUp,
		handler.WithBinders[handler.Context, SignUpRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, SignUpRequest](s.errorHandler),
	)
	r.Get("/sign-up", signUp)
	r.Post("/sign-up", signUp)

	r.Post("/sign-out", handler.Wrap(s.signOut,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

// SignInRequest handles both GET (query params) and POST (form data).
type SignInRequest struct {
	Next     string `query:"next" form:"next"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (s *PasswordService) signIn(ctx handler.Context, req SignInRequest) handler.Response {
	next := handler.SafeRedirectPath(req.Next, homePath)

	if ctx.Request().Method != http.MethodPost {
		res, err := session.Current(ctx)
		if err != nil {
			return handler.Error(err)
		}
		if res.Valid() {
			return handler.Redirect(next)
		}

		params := SignInParams{Next: req.Next, Flash: s.popFlash(ctx)}
		return handler.Templ(s.views.SignInPage(params))
	}

	params := SignInParams{Email: req.Email, Next: req.Next}

	user, err := s.accounts.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
			params.Errors = verrs.Messages()
		} else {
			params.Error = MsgInvalidCredentials
		}
		return handler.WithStatus(
			handler.TemplPartial(s.views.SignInForm(params), s.views.SignInPage(params)),
			http.StatusUnprocessableEntity,
		)
	}

	if _, err := s.sessions.SignIn(ctx, ctx.ResponseWriter(), user.ID); err != nil {
		s.logger.ErrorContext(ctx, "failed to start session",
			logger.Component("account"),
			logger.UserID(user.ID.String()),
			logger.Error(err),
		)
		return handler.Error(err)
	}

	return handler.Redirect(next)
}

// SignUpRequest is the sign-up form.
type SignUpRequest struct {
	Name                 string `form:"name"`
	Email                string `form:"email"`
	Password             string `form:"password"`
	PasswordConfirmation string `form:"password_confirmation"`
}

func (s *PasswordService) signUp(ctx handler.Context, req SignUpRequest) handler.Response {
	if ctx.Request().Method != http.MethodPost {
		return handler.Templ(s.views.SignUpPage(SignUpParams{}))
	}

	params := SignUpParams{Name: req.Name, Email: req.Email}

	// Sign-up does not sign the user in; they are sent to the sign-in page.
	_, err := s.accounts.Register(ctx, req.Name, req.Email, req.Password, req.PasswordConfirmation)
	switch {
	case err == nil:
	case validator.IsValidationError(err):
		params.Errors = validator.ExtractValidationErrors(err).Messages()
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		params.Error = MsgEmailTaken
	default:
		s.logger.ErrorContext(ctx, "failed to register account",
			logger.Component("account"),
			logger.Error(err),
		)
		params.Error = MsgSomethingWentWrong
	}

	if err != nil {
		return handler.WithStatus(
			handler.TemplPartial(s.views.SignUpForm(params), s.views.SignUpPage(params)),
			http.StatusUnprocessableEntity,
		)
	}

	if s.cookies != nil {
		flash := Flash{Title: MsgAccountCreatedTitle, Message: MsgAccountCreatedBody}
		if err := s.cookies.SetFlash(ctx.ResponseWriter(), flashKey, flash); err != nil {
			s.logger.WarnContext(ctx, "failed to set flash", logger.Component("account"), logger.Error(err))
		}
	}

	return handler.Redirect(signInPath)
}

func (s *PasswordService) signOut(ctx handler.Context, _ struct{}) handler.Response {
	res, err := session.Current(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if !res.Valid() {
		return handler.Error(handler.NewHTTPError(http.StatusUnauthorized, MsgNotSignedIn))
	}

	if err := s.sessions.SignOut(ctx, ctx.ResponseWriter(), res.Session.ID); err != nil {
		return handler.Error(err)
	}

	return handler.Redirect(homePath)
}

// popFlash returns and clears the pending flash, if any.
func (s *PasswordService) popFlash(ctx handler.Context) *Flash {
	if s.cookies == nil {
		return nil
	}

	var f Flash
	err := s.cookies.GetFlash(ctx.ResponseWriter(), ctx.Request(), flashKey, &f)
	if err != nil {
		if !errors.Is(err, cookie.ErrCookieNotFound) {
			s.logger.WarnContext(ctx, "failed to read flash", logger.Component("account"), logger.Error(err))
		}
		return nil
	}
	return &f
}
