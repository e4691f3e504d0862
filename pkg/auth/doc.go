// Package auth implements password-based accounts: registration, credential
// checks and the storage those need.
//
// The password service normalises and validates input with the sanitizer and
// validator packages, hashes passwords with bcrypt and persists accounts
// through a Storage implementation (memory, PostgreSQL or MongoDB):
//
//	accounts := auth.NewPasswordService(auth.NewPostgresStorage(pool),
//		auth.WithBcryptCost(cfg.BcryptCost),
//		auth.WithPasswordLogger(log),
//	)
//
//	user, err := accounts.Authenticate(ctx, email, password)
//	if errors.Is(err, auth.ErrInvalidCredentials) {
//		// show the generic "invalid email or password" message
//	}
//
// Register never signs the user in; callers create a session separately.
//
// User.Identity projects an account onto the session.User shape, and
// IdentityFinder adapts a Storage for session stores that cannot join users
// in the backend themselves.
package auth
