package session

import (
	"context"
	"sync"
)

// Accessor resolves the current session of one request at most once.
//
// The first call to Current performs validation, including any expiry delete
// or renewal write; every later call returns the same result or the same
// error. An Accessor must not outlive its request.
type Accessor struct {
	manager *Manager
	token   string
	onRenew func(*Session)

	once   sync.Once
	result ValidationResult
	err    error
}

// NewAccessor binds an inbound token to m. An empty token resolves to the
// empty result without touching the store. onRenew, when set, runs once if
// validation extended the session.
func NewAccessor(m *Manager, token string, onRenew func(*Session)) *Accessor {
	return &Accessor{
		manager: m,
		token:   token,
		onRenew: onRenew,
	}
}

// Current returns the memoised validation result.
func (a *Accessor) Current(ctx context.Context) (ValidationResult, error) {
	a.once.Do(func() {
		if a.token == "" {
			return
		}

		var renewed bool
		a.result, renewed, a.err = a.manager.validate(ctx, a.token)
		if renewed && a.onRenew != nil {
			a.onRenew(a.result.Session)
		}
	})
	return a.result, a.err
}
