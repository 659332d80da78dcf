package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/cfm-kit/complaint-service/internal/auth"
	"github.com/cfm-kit/complaint-service/internal/domain"
	"github.com/cfm-kit/complaint-service/internal/repository"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

// UserAdminService manages application accounts and profile edits.
type UserAdminService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserAdminService builds the service.
func NewUserAdminService(users repository.UserRepository, bcryptCost int) *UserAdminService {
	return &UserAdminService{users: users, bcryptCost: bcryptCost}
}

// Create hashes the password and inserts the account. A duplicate email
// surfaces as a conflict from the store's unique constraint.
func (s *UserAdminService) Create(ctx context.Context, username, email, password string, role domain.Role) (*domain.User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, apperrors.NewValidationError("username, email and password are required", nil)
	}
	if role == "" {
		role = domain.RoleStaff
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("email already in use", map[string]any{"email": email})
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// List returns all accounts, newest first.
func (s *UserAdminService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// Get loads one account.
func (s *UserAdminService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Update edits username, email and role of an account.
func (s *UserAdminService) Update(ctx context.Context, id int64, username, email string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Username = username
	user.Email = email
	user.Role = role

	if err := s.users.Update(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("email already in use", map[string]any{"email": email})
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Delete removes an account. Deleting the acting admin's own account is
// rejected at this boundary, regardless of what the store would allow.
func (s *UserAdminService) Delete(ctx context.Context, actor *auth.Principal, id int64) error {
	if actor == nil {
		return apperrors.NewUnauthorized("login required")
	}
	if actor.UserID == id {
		return apperrors.NewForbidden("you can't delete your own account")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"user_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

// UpdateProfile edits the actor's own username/email. When both current and
// new password are supplied the current password is verified against the
// stored hash before the replacement is written; the whole edit is one
// transaction with a single terminal result.
func (s *UserAdminService) UpdateProfile(ctx context.Context, actor *auth.Principal, username, email, currentPassword, newPassword string) (*domain.User, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("login required")
	}
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" {
		return nil, apperrors.NewValidationError("username and email are required", nil)
	}

	var newHash *string
	if currentPassword != "" && newPassword != "" {
		user, err := s.Get(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
			return nil, apperrors.NewValidationError("current password is incorrect", nil)
		}
		hash, err := auth.HashPassword(newPassword, s.bcryptCost)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		newHash = &hash
	}

	if err := s.users.UpdateProfile(ctx, actor.UserID, username, email, newHash); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("email already in use", map[string]any{"email": email})
		}
		return nil, apperrors.MapError(err)
	}

	return s.Get(ctx, actor.UserID)
}
