package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cfm-kit/complaint-service/internal/domain"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

// entryPath is where unauthenticated browsers are sent.
const entryPath = "/"

// RequireLogin redirects anonymous callers to the entry page.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return c.Redirect(entryPath, fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireStaff passes callers whose role is at least staff (staff, manager
// or admin) and redirects everyone else to the entry page.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || !principal.Role.AtLeast(domain.RoleStaff) {
			return c.Redirect(entryPath, fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireAdmin denies non-admin callers with 403. Unlike RequireLogin this
// applies to anonymous callers too: an unauthenticated request to an
// admin-only route gets an explicit denial, not a login redirect.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Role != domain.RoleAdmin {
			return apperrors.NewForbidden("admin access required")
		}
		return c.Next()
	}
}
