package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cfm-kit/complaint-service/internal/auth"
	"github.com/cfm-kit/complaint-service/internal/domain"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

func authFixture(t *testing.T) (*AuthService, *fakeUserRepo, *auth.SessionStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	sessions := auth.NewSessionStore(client, time.Hour)
	users := newFakeUserRepo()
	return NewAuthService(users, sessions), users, sessions
}

func seedUser(t *testing.T, users *fakeUserRepo, email, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return users.add(&domain.User{
		Username:     "someone",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
}

func TestLoginCreatesSession(t *testing.T) {
	svc, users, sessions := authFixture(t)
	seeded := seedUser(t, users, "staff@example.org", "pw", domain.RoleStaff)

	result, err := svc.Login(context.Background(), "staff@example.org", "pw")
	require.NoError(t, err)
	assert.Equal(t, "/dashboard", result.Redirect)
	assert.NotEmpty(t, result.Token)

	session, err := sessions.Get(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, session.UserID)
	assert.Equal(t, domain.RoleStaff, session.Role)
}

func TestLoginAdminLandsOnComplaintList(t *testing.T) {
	svc, users, _ := authFixture(t)
	seedUser(t, users, "admin@example.org", "pw", domain.RoleAdmin)

	result, err := svc.Login(context.Background(), "admin@example.org", "pw")
	require.NoError(t, err)
	assert.Equal(t, "/admin/complaints", result.Redirect)
}

func TestLoginSameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	svc, users, _ := authFixture(t)
	seedUser(t, users, "staff@example.org", "pw", domain.RoleStaff)

	_, unknownErr := svc.Login(context.Background(), "nobody@example.org", "pw")
	_, wrongErr := svc.Login(context.Background(), "staff@example.org", "not-pw")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, apperrors.ToDomainError(unknownErr).Code, apperrors.ToDomainError(wrongErr).Code)
	assert.Equal(t, apperrors.ToDomainError(unknownErr).Message, apperrors.ToDomainError(wrongErr).Message)
}

func TestLogoutDestroysSession(t *testing.T) {
	svc, users, sessions := authFixture(t)
	seedUser(t, users, "staff@example.org", "pw", domain.RoleStaff)

	result, err := svc.Login(context.Background(), "staff@example.org", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.Token))

	_, err = sessions.Get(context.Background(), result.Token)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestLogoutWithoutTokenIsNoop(t *testing.T) {
	svc, _, _ := authFixture(t)
	assert.NoError(t, svc.Logout(context.Background(), ""))
}
