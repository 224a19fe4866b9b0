// Package auth registers users, checks their credentials and issues the
// signed session tokens that gate every protected route.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"
	"finance-tracker/internal/storage"
)

// UserStore persists user identities.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service implements registration, login and token authentication.
type Service struct {
	users  UserStore
	hasher *Hasher
	tokens *TokenIssuer
}

// NewService creates a Service from the auth section of the configuration.
func NewService(users UserStore, cfg config.Auth) *Service {
	return &Service{
		users:  users,
		hasher: NewHasher(cfg.BcryptCost),
		tokens: NewTokenIssuer(cfg.Secret(), cfg.TokenTTL),
	}
}

// Register creates a user with a hashed password.
func (s *Service) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	existing, err := s.users.GetUserByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrAlreadyExists
	}
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, name, email, hash)
	if errors.Is(err, storage.ErrDuplicate) {
		// Lost a race with a concurrent registration for the same email.
		return nil, ErrAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login checks credentials and returns a signed session token.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", time.Time{}, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Authenticate validates the bearer token in an Authorization header value
// and returns the user ID it was issued for.
func (s *Service) Authenticate(_ context.Context, authorization string) (int64, error) {
	token := bearerToken(authorization)
	if token == "" {
		return 0, ErrTokenMissing
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
