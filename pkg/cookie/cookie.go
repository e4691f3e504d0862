package cookie

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	ErrNoSecret         = errors.New("cookie: no secret configured")
	ErrSecretTooShort   = errors.New("cookie: secret shorter than 32 bytes")
	ErrDecryptionFailed = errors.New("cookie: value cannot be decrypted")
	ErrCookieNotFound   = errors.New("cookie: not found")
	ErrInvalidFormat    = errors.New("cookie: malformed value")
)

const (
	minSecretLength = 32
	flashPrefix     = "__flash_"
)

// Manager writes and reads cookies with shared defaults. Encrypted values
// are sealed with the first secret; every secret is tried when opening, so
// keys can be rotated by prepending a new one.
type Manager struct {
	keys     []cipher.AEAD
	defaults Options
}

// New validates secrets and derives one AES-256-GCM key per secret.
// Empty entries are ignored.
func New(secrets []string, opts ...Option) (*Manager, error) {
	m := &Manager{
		defaults: applyOptions(Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode}, opts),
	}

	for i, s := range secrets {
		if s == "" {
			continue
		}
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
		key := sha256.Sum256([]byte(s))
		block, err := aes.NewCipher(key[:])
		if err != nil {
			return nil, err
		}
		aead, err := cipher.NewGCM(block)
		if err != nil {
			return nil, err
		}
		m.keys = append(m.keys, aead)
	}
	if len(m.keys) == 0 {
		return nil, ErrNoSecret
	}

	return m, nil
}

// Set writes a plain cookie. opts are applied over the manager defaults.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	http.SetCookie(w, applyOptions(m.defaults, opts).cookie(name, value))
	return nil
}

// Get returns the raw value of name, or ErrCookieNotFound.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if errors.Is(err, http.ErrNoCookie) {
		return "", ErrCookieNotFound
	}
	if err != nil {
		return "", err
	}
	return c.Value, nil
}

// Delete expires the cookie immediately (Max-Age=0). Pass the same path,
// domain and flags the cookie was set with so the browser matches it.
func (m *Manager) Delete(w http.ResponseWriter, name string, opts ...Option) {
	o := applyOptions(m.defaults, opts)
	o.MaxAge = -1
	o.Expires = time.Unix(0, 0)
	http.SetCookie(w, o.cookie(name, ""))
}

// SetEncrypted seals value before writing it.
func (m *Manager) SetEncrypted(w http.ResponseWriter, name, value string, opts ...Option) error {
	sealed, err := m.seal([]byte(value))
	if err != nil {
		return err
	}
	return m.Set(w, name, sealed, opts...)
}

// GetEncrypted reads and opens a cookie written by SetEncrypted.
func (m *Manager) GetEncrypted(r *http.Request, name string) (string, error) {
	sealed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	plain, err := m.open(sealed)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// SetFlash stores value as JSON for exactly one subsequent GetFlash.
func (m *Manager) SetFlash(w http.ResponseWriter, key string, value any, opts ...Option) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cookie: encode flash %q: %w", key, err)
	}
	return m.SetEncrypted(w, flashPrefix+key, string(data), opts...)
}

// GetFlash decodes the flash into dest and deletes it. A missing flash
// returns ErrCookieNotFound.
func (m *Manager) GetFlash(w http.ResponseWriter, r *http.Request, key string, dest any, opts ...Option) error {
	name := flashPrefix + key
	data, err := m.GetEncrypted(r, name)
	if err != nil {
		return err
	}
	m.Delete(w, name, opts...)

	if err := json.NewDecoder(strings.NewReader(data)).Decode(dest); err != nil {
		return fmt.Errorf("cookie: decode flash %q: %w", key, err)
	}
	return nil
}

// seal returns base64url(nonce || ciphertext).
func (m *Manager) seal(plain []byte) (string, error) {
	aead := m.keys[0]
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plain)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(aead.Seal(nonce, nonce, plain, nil)), nil
}

func (m *Manager) open(sealed string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	for _, aead := range m.keys {
		n := aead.NonceSize()
		if len(raw) < n {
			return nil, ErrInvalidFormat
		}
		if plain, err := aead.Open(nil, raw[:n], raw[n:], nil); err == nil {
			return plain, nil
		}
	}
	return nil, ErrDecryptionFailed
}
