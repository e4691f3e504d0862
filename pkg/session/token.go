package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"errors"
	"strings"
)

// tokenBytes is the amount of entropy behind every token.
const tokenBytes = 64

var tokenEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// GenerateToken returns a fresh bearer credential: 64 bytes from the system
// CSPRNG encoded as lowercase base32 without padding (103 characters of
// [a-z2-7]). The token goes to the client only; the server keeps SessionID(token).
func GenerateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return strings.ToLower(tokenEncoding.EncodeToString(b)), nil
}

// SessionID maps a token to its storage key: lowercase hex of SHA-256 over the
// token's UTF-8 bytes. A leaked store therefore never exposes usable tokens.
func SessionID(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
