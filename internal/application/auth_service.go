package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/phishguard/phishguard-api/internal/domain/entity"
	"github.com/phishguard/phishguard-api/internal/domain/repository"
	"github.com/phishguard/phishguard-api/pkg/helpers"
)

// AuthService issues credentials and verifies logins. The JWT manager is an
// explicit dependency so the service is testable with any signing secret.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// AuthResult is a freshly registered or authenticated user plus their token.
type AuthResult struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// Register creates a user with the default role and issues a token. The
// password is stored only as a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	_, err := s.Users.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Error("create user failed")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issue(u)
}

// Login validates email/password. Both "unknown email" and "wrong password"
// collapse to ErrInvalidCredentials so the caller cannot probe registrations.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *AuthService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, err
	}
	return &AuthResult{User: u, Token: token, ExpiresAt: exp}, nil
}
