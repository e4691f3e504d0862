package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/starterkit/pkg/cookie"
	"github.com/dmitrymomot/starterkit/pkg/session"
)

const cookieName = "test-session"

var epoch = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// userDirectory is an in-memory UserFinder.
type userDirectory struct {
	mu    sync.RWMutex
	users map[uuid.UUID]session.User
	err   error
}

func newUserDirectory() *userDirectory {
	return &userDirectory{users: make(map[uuid.UUID]session.User)}
}

func (d *userDirectory) Add(name, email string) session.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	u := session.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		CreatedAt: epoch,
		UpdatedAt: epoch,
	}
	d.users[u.ID] = u
	return u
}

func (d *userDirectory) Remove(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.users, id)
}

func (d *userDirectory) FindUser(_ context.Context, id uuid.UUID) (*session.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.err != nil {
		return nil, d.err
	}
	u, ok := d.users[id]
	if !ok {
		return nil, session.ErrUserNotFound
	}
	return &u, nil
}

// countingStore records calls and can be switched into a failing mode.
type countingStore struct {
	session.Store

	inserts atomic.Int32
	finds   atomic.Int32
	updates atomic.Int32
	deletes atomic.Int32

	mu  sync.Mutex
	err error
}

func (s *countingStore) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *countingStore) failure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *countingStore) Insert(ctx context.Context, sess session.Session) error {
	s.inserts.Add(1)
	if err := s.failure(); err != nil {
		return err
	}
	return s.Store.Insert(ctx, sess)
}

func (s *countingStore) FindByID(ctx context.Context, id string) (*session.Session, *session.User, error) {
	s.finds.Add(1)
	if err := s.failure(); err != nil {
		return nil, nil, err
	}
	return s.Store.FindByID(ctx, id)
}

func (s *countingStore) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	s.updates.Add(1)
	if err := s.failure(); err != nil {
		return err
	}
	return s.Store.UpdateExpiry(ctx, id, expiresAt)
}

func (s *countingStore) DeleteByID(ctx context.Context, id string) error {
	s.deletes.Add(1)
	if err := s.failure(); err != nil {
		return err
	}
	return s.Store.DeleteByID(ctx, id)
}

type fixture struct {
	manager *session.Manager
	store   *countingStore
	memory  *session.MemoryStore
	users   *userDirectory
	clock   *fakeClock
	user    session.User
}

func setup(t *testing.T, opts ...session.Option) *fixture {
	t.Helper()

	cookieMgr, err := cookie.New([]string{"test-secret-key-that-is-long-enough"})
	require.NoError(t, err)

	users := newUserDirectory()
	memory := session.NewMemoryStore(users)
	store := &countingStore{Store: memory}
	clock := &fakeClock{now: epoch}

	base := []session.Option{
		session.WithStore(store),
		session.WithCookieManager(cookieMgr),
		session.WithCookieName(cookieName),
		session.WithClock(clock.Now),
	}

	return &fixture{
		manager: session.New(append(base, opts...)...),
		store:   store,
		memory:  memory,
		users:   users,
		clock:   clock,
		user:    users.Add("Jane Doe", "jane@example.com"),
	}
}

// signIn creates a session for the fixture user and returns its token.
func (f *fixture) signIn(t *testing.T) (string, *session.Session) {
	t.Helper()
	token, err := session.GenerateToken()
	require.NoError(t, err)
	sess, err := f.manager.CreateSession(context.Background(), token, f.user.ID)
	require.NoError(t, err)
	return token, sess
}

func requestWithToken(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		r.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}
	return r
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
