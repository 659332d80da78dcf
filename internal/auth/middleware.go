package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cfm-kit/complaint-service/internal/domain"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal is the explicit per-request identity threaded into handlers and
// services in place of ambient session state.
type Principal struct {
	UserID   int64
	Username string
	Role     domain.Role
}

// SessionMiddleware resolves the session cookie into a Principal.
type SessionMiddleware struct {
	sessions   *SessionStore
	cookieName string
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(sessions *SessionStore, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, cookieName: cookieName}
}

// LoadPrincipal attaches the authenticated principal to the request when a
// valid session cookie is present. It never rejects: the guards decide what
// an absent principal means per route.
func (m *SessionMiddleware) LoadPrincipal(c *fiber.Ctx) error {
	token := c.Cookies(m.cookieName)
	if token == "" {
		return c.Next()
	}

	session, err := m.sessions.Get(c.UserContext(), token)
	if err != nil {
		// Expired or destroyed sessions fall through as anonymous; a
		// failing session store must not.
		if errors.Is(err, ErrSessionNotFound) {
			return c.Next()
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, &Principal{
		UserID:   session.UserID,
		Username: session.Username,
		Role:     session.Role,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated principal.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
