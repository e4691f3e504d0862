package account

// User-facing messages. Authentication failures always read the same
// regardless of which check failed.
const (
	MsgInvalidCredentials = "Invalid email or password. Please try again."
	MsgNotSignedIn        = "You're not signed in."
	MsgSomethingWentWrong = "Something went wrong. Please try again."
	MsgTooManyAttempts    = "Too many sign-in attempts. Please try again later."
	MsgEmailTaken         = "An account with that email already exists."

	MsgAccountCreatedTitle = "Account created successfully."
	MsgAccountCreatedBody  = "You can now sign in using your email and password."
)

const flashKey = "auth"
