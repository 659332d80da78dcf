package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfm-kit/complaint-service/internal/domain"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

// guardApp wires a guard in front of a trivial handler, with an error
// handler that maps domain errors onto their HTTP status.
func guardApp(guard fiber.Handler, principal *Principal) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		},
	})
	app.Use(func(c *fiber.Ctx) error {
		if principal != nil {
			c.Locals(principalKey, principal)
		}
		return c.Next()
	})
	app.Get("/guarded", guard, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func doGet(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	return resp
}

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	resp := doGet(t, guardApp(RequireLogin(), nil))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestRequireLoginPassesAuthenticated(t *testing.T) {
	principal := &Principal{UserID: 1, Role: domain.RoleStaff}
	resp := doGet(t, guardApp(RequireLogin(), principal))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireStaffPassesEveryKnownRole(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleStaff, domain.RoleManager, domain.RoleAdmin} {
		resp := doGet(t, guardApp(RequireStaff(), &Principal{UserID: 1, Role: role}))
		assert.Equal(t, http.StatusOK, resp.StatusCode, "role %s", role)
	}
}

func TestRequireStaffRedirectsAnonymous(t *testing.T) {
	resp := doGet(t, guardApp(RequireStaff(), nil))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestRequireAdminDeniesAnonymousWith403(t *testing.T) {
	// Not a redirect: anonymous callers of admin routes get an explicit
	// denial.
	resp := doGet(t, guardApp(RequireAdmin(), nil))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireAdminDeniesLesserRoles(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleStaff, domain.RoleManager} {
		resp := doGet(t, guardApp(RequireAdmin(), &Principal{UserID: 1, Role: role}))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, "role %s", role)
	}
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	resp := doGet(t, guardApp(RequireAdmin(), &Principal{UserID: 1, Role: domain.RoleAdmin}))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
