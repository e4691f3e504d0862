// Package account mounts the email/password account pages on a chi router:
// sign-in, sign-up and sign-out under /auth, the session JSON endpoint under
// /api/auth and the home page at /.
//
// Pages are rendered through the component functions in Views so the module
// carries no markup of its own. Sign-up never signs the user in; it redirects
// to the sign-in page with a flash notice instead.
package account
