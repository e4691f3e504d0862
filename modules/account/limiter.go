package account

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/starterkit/handler"
	"github.com/dmitrymomot/starterkit/pkg/logger"
	"github.com/dmitrymomot/starterkit/pkg/ratelimiter"
)

// WithSignInLimiter throttles sign-in form submissions per client address.
func WithSignInLimiter(l ratelimiter.RateLimiter) PasswordOption {
	return func(s *PasswordService) {
		s.limiter = l
	}
}

var signInKey = ratelimiter.ByRemoteIP("sign-in:")

// throttle rejects POSTs once the client has used up its budget. Limiter
// failures let the request through.
func (s *PasswordService) throttle(next handler.HandlerFunc[handler.Context, SignInRequest]) handler.HandlerFunc[handler.Context, SignInRequest] {
	return func(ctx handler.Context, req SignInRequest) handler.Response {
		if s.limiter == nil || ctx.Request().Method != http.MethodPost {
			return next(ctx, req)
		}

		res, err := s.limiter.Allow(ctx, signInKey(ctx.Request()))
		if err != nil {
			s.logger.WarnContext(ctx, "sign-in rate limiter unavailable",
				logger.Component("account"),
				logger.Error(err),
			)
			return next(ctx, req)
		}

		ratelimiter.SetHeaders(ctx.ResponseWriter(), res, time.Now())
		if !res.Allowed() {
			return handler.Error(handler.NewHTTPError(http.StatusTooManyRequests, MsgTooManyAttempts))
		}
		return next(ctx, req)
	}
}
