package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/cfm-kit/complaint-service/internal/auth"
	"github.com/cfm-kit/complaint-service/internal/domain"
	"github.com/cfm-kit/complaint-service/internal/repository"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

// AuthService coordinates login and logout against the session store.
type AuthService struct {
	users    repository.UserRepository
	sessions *auth.SessionStore
}

// NewAuthService builds the service.
func NewAuthService(users repository.UserRepository, sessions *auth.SessionStore) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// LoginResult carries the session token and the role-based landing page.
type LoginResult struct {
	User     *domain.User
	Token    string
	Redirect string
}

// Login verifies credentials and creates a session. Unknown email and wrong
// password produce the same error so the response is no credential oracle.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("invalid email or password")
		}
		return nil, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid email or password")
	}

	token, err := s.sessions.Create(ctx, user)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	redirect := "/dashboard"
	if user.Role == domain.RoleAdmin {
		redirect = "/admin/complaints"
	}
	return &LoginResult{User: user, Token: token, Redirect: redirect}, nil
}

// Logout destroys the session referenced by token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Destroy(ctx, token)
}
