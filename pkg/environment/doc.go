// Package environment carries the application environment (development,
// staging or production) through context.Context and HTTP requests.
//
// Parse normalises APP_ENV values. Middleware attaches the environment to
// every request; FromContext and IsProduction read it back, e.g. for the
// non-production badge in the page layout.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	r.Use(environment.Middleware(env))
package environment
