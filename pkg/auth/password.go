package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/starterkit/pkg/logger"
	"github.com/dmitrymomot/starterkit/pkg/sanitizer"
	"github.com/dmitrymomot/starterkit/pkg/validator"
)

const (
	nameMinLen     = 3
	nameMaxLen     = 50
	passwordMinLen = 8
)

// PasswordAuthenticator defines password-based account operations.
type PasswordAuthenticator interface {
	Register(ctx context.Context, name, email, password, passwordConfirmation string) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
}

type passwordService struct {
	storage    Storage
	bcryptCost int
	logger     *slog.Logger
	now        func() time.Time

	afterRegister func(ctx context.Context, user *User) error
}

type PasswordOption func(*passwordService)

// WithPasswordLogger sets a custom logger for the service
func WithPasswordLogger(l *slog.Logger) PasswordOption {
	return func(s *passwordService) {
		s.logger = l
	}
}

// WithBcryptCost sets the bcrypt cost for password hashing.
// Values outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func WithBcryptCost(cost int) PasswordOption {
	return func(s *passwordService) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

// WithPasswordClock overrides the time source used for account timestamps.
func WithPasswordClock(now func() time.Time) PasswordOption {
	return func(s *passwordService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithAfterRegister sets a hook that runs after successful registration.
// The hook runs asynchronously and its error is only logged.
func WithAfterRegister(fn func(context.Context, *User) error) PasswordOption {
	return func(s *passwordService) {
		s.afterRegister = fn
	}
}

// NewPasswordService creates a new password authentication service
func NewPasswordService(storage Storage, opts ...PasswordOption) PasswordAuthenticator {
	s := &passwordService{
		storage:    storage,
		bcryptCost: bcrypt.DefaultCost,
		logger:     slog.New(slog.DiscardHandler),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewPasswordServiceFromConfig applies cfg before opts.
func NewPasswordServiceFromConfig(storage Storage, cfg Config, opts ...PasswordOption) PasswordAuthenticator {
	return NewPasswordService(storage, append([]PasswordOption{WithBcryptCost(cfg.BcryptCost)}, opts...)...)
}

// Register creates an account. It does not sign the user in.
func (s *passwordService) Register(ctx context.Context, name, email, password, passwordConfirmation string) (*User, error) {
	name = sanitizer.NormalizeName(name)
	email = sanitizer.NormalizeEmail(email)

	if err := validator.Apply(
		validator.MinLen("name", name, nameMinLen).WithMessage("Name must be at least 3 characters."),
		validator.MaxLen("name", name, nameMaxLen).WithMessage("Name must be at most 50 characters."),
		validator.ValidEmail("email", email).WithMessage("Invalid email address."),
		validator.MinLen("password", password, passwordMinLen).WithMessage("Password must be at least 8 characters."),
		validator.MinLen("password_confirmation", passwordConfirmation, passwordMinLen).
			WithMessage("Password confirmation must be at least 8 characters."),
		validator.Matches("password_confirmation", passwordConfirmation, password).
			WithMessage("Passwords do not match."),
	); err != nil {
		return nil, err
	}

	_, err := s.storage.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now().UTC()
	user := &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		// Unique index catches a concurrent registration with the same email.
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.DebugContext(ctx, "account registered",
		logger.Component("password"),
		logger.Event("register"),
		logger.UserID(user.ID.String()),
	)

	if s.afterRegister != nil {
		go s.runAfterRegister(user)
	}

	return user, nil
}

func (s *passwordService) runAfterRegister(user *User) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("afterRegister hook panicked",
				logger.UserID(user.ID.String()),
				slog.Any("panic", r),
				logger.Component("password"),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.afterRegister(ctx, user); err != nil {
		s.logger.Error("afterRegister hook failed",
			logger.UserID(user.ID.String()),
			logger.Error(err),
			logger.Component("password"),
		)
	}
}

// Authenticate verifies credentials. Every failure after input validation is
// reported as ErrInvalidCredentials so callers cannot tell which check failed.
func (s *passwordService) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = sanitizer.NormalizeEmail(email)

	if err := validator.Apply(
		validator.ValidEmail("email", email).WithMessage("Email is invalid."),
		validator.MinLen("password", password, passwordMinLen).WithMessage("Password must be at least 8 characters."),
	); err != nil {
		return nil, err
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			s.logger.ErrorContext(ctx, "failed to load account",
				logger.Component("password"),
				logger.Email(sanitizer.MaskEmail(email)),
				logger.Error(err),
			)
		}
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		s.logger.DebugContext(ctx, "password mismatch",
			logger.Component("password"),
			logger.UserID(user.ID.String()),
		)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

var _ PasswordAuthenticator = (*passwordService)(nil)
