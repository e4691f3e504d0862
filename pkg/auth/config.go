package auth

// Config holds account subsystem settings.
type Config struct {
	// BcryptCost is passed to bcrypt.GenerateFromPassword.
	BcryptCost int `env:"AUTH_BCRYPT_COST" envDefault:"10"`
}
