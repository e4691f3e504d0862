package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/starterkit/pkg/binder"
	"github.com/dmitrymomot/starterkit/pkg/logger"
	"github.com/dmitrymomot/starterkit/pkg/validator"
)

// Generic messages. The underlying error is only ever logged.
const (
	msgInternal        = "An error occurred processing your request"
	msgUnreadable      = "The request could not be read"
	msgUnsupported     = "Unsupported request format"
	msgValidationEmpty = "Validation failed"
)

// ErrorPageParams is passed to ErrorHandlerConfig.ErrorPage.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string // set for GET requests only
}

// ErrorToastParams is passed to ErrorHandlerConfig.ErrorToast.
type ErrorToastParams struct {
	Message   string
	Type      string // "error" for 5xx, "warning" for 4xx
	RequestID string
}

// ErrorHandlerConfig supplies the components used by NewErrorHandler.
// A nil ErrorPage falls back to a plain text response; a nil ErrorToast
// leaves the DataStar stream empty.
type ErrorHandlerConfig struct {
	ErrorPage  func(ErrorPageParams) templ.Component
	ErrorToast func(ErrorToastParams) templ.Component

	ToastTarget string                    // default "#toast-container"
	ToastMode   datastar.ElementPatchMode // default PatchPrepend
}

// problem is what the user gets to see about a failed request.
type problem struct {
	status  int
	message string
}

func (p problem) severity() string {
	if p.status < http.StatusInternalServerError {
		return "warning"
	}
	return "error"
}

func (p problem) level() slog.Level {
	if p.status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// describe maps err to a status and a message that is safe to display.
// Validation errors win over an HTTPError wrapped in the same chain.
func describe(err error) problem {
	p := problem{status: http.StatusInternalServerError, message: msgInternal}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		p = problem{status: http.StatusUnsupportedMediaType, message: msgUnsupported}
	case errors.Is(err, binder.ErrInvalidForm), errors.Is(err, binder.ErrInvalidQuery):
		p = problem{status: http.StatusBadRequest, message: msgUnreadable}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		p = problem{status: httpErr.Code, message: httpErr.Key}
	}

	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		p = problem{status: http.StatusUnprocessableEntity, message: joinFieldErrors(verrs)}
	}

	return p
}

// joinFieldErrors renders "field: message; field: message" in rule order.
func joinFieldErrors(verrs validator.ValidationErrors) string {
	if len(verrs) == 0 {
		return msgValidationEmpty
	}
	var b strings.Builder
	for i, fe := range verrs {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field)
		b.WriteString(": ")
		b.WriteString(fe.Message)
	}
	return b.String()
}

type errorResponder struct {
	log *slog.Logger
	cfg ErrorHandlerConfig
}

// NewErrorHandler returns the error handler shared by all routes. Regular
// requests get cfg.ErrorPage with the matching status; DataStar requests get
// cfg.ErrorToast patched into cfg.ToastTarget.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}

	er := &errorResponder{log: log.With(logger.Component("error_handler")), cfg: cfg}
	return er.handle
}

func (er *errorResponder) handle(ctx Context, err error) {
	r := ctx.Request()
	reqID := middleware.GetReqID(r.Context())
	p := describe(err)

	er.log.LogAttrs(r.Context(), p.level(), "request failed",
		logger.RequestID(reqID),
		logger.Error(err),
		slog.Int("status", p.status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("datastar", IsDataStar(r)),
	)

	if IsDataStar(r) {
		er.toast(ctx, p, reqID)
		return
	}
	er.page(ctx, p, reqID)
}

// toast keeps the SSE stream at 200; the message carries the failure.
func (er *errorResponder) toast(ctx Context, p problem, reqID string) {
	if er.cfg.ErrorToast == nil {
		er.log.Warn("error toast component not configured", logger.RequestID(reqID))
		return
	}

	component := er.cfg.ErrorToast(ErrorToastParams{
		Message:   p.message,
		Type:      p.severity(),
		RequestID: reqID,
	})
	resp := Templ(component, WithTarget(er.cfg.ToastTarget), WithPatchMode(er.cfg.ToastMode))
	if err := resp.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		er.log.Error("failed to render error toast", logger.RequestID(reqID), logger.Error(err))
	}
}

func (er *errorResponder) page(ctx Context, p problem, reqID string) {
	w := ctx.ResponseWriter()
	if er.cfg.ErrorPage == nil {
		http.Error(w, p.message, p.status)
		return
	}

	params := ErrorPageParams{
		Error:      p.message,
		StatusCode: p.status,
		RequestID:  reqID,
	}
	if ctx.Request().Method == http.MethodGet {
		params.RetryURL = ctx.Request().URL.RequestURI()
	}

	resp := WithStatus(Templ(er.cfg.ErrorPage(params)), p.status)
	if err := resp.Render(w, ctx.Request()); err != nil {
		er.log.Error("failed to render error page", logger.RequestID(reqID), logger.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
