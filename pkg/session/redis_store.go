package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKeyPrefix = "session:"

// RedisStore keeps each session as a JSON value whose key expires together
// with the session. Identities come from a UserFinder.
type RedisStore struct {
	client redis.UniversalClient
	users  UserFinder
	prefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithRedisKeyPrefix overrides the "session:" key prefix.
func WithRedisKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

func NewRedisStore(client redis.UniversalClient, users UserFinder, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client: client,
		users:  users,
		prefix: defaultRedisKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore) Insert(ctx context.Context, sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Join(ErrStore, err)
	}

	err = s.client.SetArgs(ctx, s.key(sess.ID), data, redis.SetArgs{
		Mode:     "NX",
		ExpireAt: sess.ExpiresAt,
	}).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrDuplicateSession
		}
		return errors.Join(ErrStore, err)
	}
	return nil
}

func (s *RedisStore) get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, errors.Join(ErrStore, err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	return &sess, nil
}

func (s *RedisStore) FindByID(ctx context.Context, id string) (*Session, *User, error) {
	sess, err := s.get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.users.FindUser(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, errors.Join(ErrStore, err)
	}

	return sess, user, nil
}

// UpdateExpiry rewrites the value and moves the key expiry. XX keeps a
// concurrently deleted session deleted.
func (s *RedisStore) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	sess, err := s.get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}
	sess.ExpiresAt = expiresAt

	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Join(ErrStore, err)
	}

	err = s.client.SetArgs(ctx, s.key(id), data, redis.SetArgs{
		Mode:     "XX",
		ExpireAt: expiresAt,
	}).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return errors.Join(ErrStore, err)
	}
	return nil
}

func (s *RedisStore) DeleteByID(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}
