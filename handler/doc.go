// Package handler provides type-safe HTTP request handling for server-rendered
// pages, DataStar fragments and small JSON endpoints.
//
// A HandlerFunc receives a bound request value and returns a Response. Wrap
// turns it into an http.HandlerFunc that binds the request, runs decorators,
// renders the response and routes failures to an ErrorHandler:
//
//	type SignInRequest struct {
//		Next     string `query:"next"`
//		Email    string `form:"email"`
//		Password string `form:"password"`
//	}
//
//	func signIn(ctx handler.Context, req SignInRequest) handler.Response {
//		user, err := accounts.Authenticate(ctx, req.Email, req.Password)
//		if err != nil {
//			return handler.WithStatus(
//				handler.TemplPartial(views.SignInForm(form), views.SignInPage(form)),
//				http.StatusUnprocessableEntity,
//			)
//		}
//		if _, err := sessions.SignIn(ctx, ctx.ResponseWriter(), user.ID); err != nil {
//			return handler.Error(err)
//		}
//		return handler.Redirect(handler.SafeRedirectPath(req.Next, "/"))
//	}
//
//	r.Post("/auth/sign-in", handler.Wrap(signIn,
//		handler.WithBinders[handler.Context, SignInRequest](binder.Query(), binder.Form()),
//		handler.WithErrorHandler[handler.Context, SignInRequest](errorHandler),
//	))
//
// # Responses
//
//	handler.Templ(component)                 // full HTML or a DataStar patch
//	handler.TemplPartial(partial, full)      // patch only the partial for DataStar
//	handler.Redirect("/")                    // 303, or an SSE redirect for DataStar
//	handler.JSON(v) / handler.JSONError(err) // enveloped JSON
//	handler.JSONRaw(v, http.StatusOK)        // fixed wire shape, no envelope
//	handler.Empty()                          // 204
//	handler.WithStatus(resp, code)           // override the status of resp
//	handler.Error(err)                       // delegate to the ErrorHandler
//
// # DataStar
//
// Requests sent by the DataStar client (Datastar-Request header, an
// text/event-stream Accept header or the datastar query parameter) receive
// Server-Sent Events instead of a full page. IsDataStar reports which case
// applies.
//
// # Errors
//
// NewErrorHandler classifies errors into a status and a user-facing message.
// Validation errors become 422 with their field messages, HTTPError keeps its
// code and key, and everything else becomes a generic 500 so internal details
// never reach the browser. Regular requests get an error page, DataStar
// requests get a toast patch.
package handler
