package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cfm-kit/complaint-service/internal/api/http/handlers"
	"github.com/cfm-kit/complaint-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Auth              *handlers.AuthHandler
	Public            *handlers.PublicHandler
	Staff             *handlers.StaffHandler
	Admin             *handlers.AdminHandler
	Users             *handlers.UsersHandler
	Notifications     *handlers.NotificationsHandler
	SessionMiddleware *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes. The session middleware runs on every
// route; the guards decide per group what an absent principal means.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.SessionMiddleware.LoadPrincipal)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Public surface: intake, tracking, cascading lookups, login.
	app.Post("/login", cfg.Auth.Login)
	app.Post("/logout", cfg.Auth.Logout)
	app.Post("/submit", cfg.Public.SubmitComplaint)
	app.Get("/track/:trackingID", cfg.Public.Track)
	app.Get("/api/form-lookups", cfg.Public.FormLookups)
	app.Get("/api/districts/:governorateID", cfg.Public.Districts)
	app.Get("/api/sub-districts/:districtID", cfg.Public.SubDistricts)
	app.Get("/api/communities/:subDistrictID", cfg.Public.Communities)

	// Guards are attached per route: Fiber registers group handlers on an
	// empty prefix as app-wide middleware, which would put every route
	// registered after the group behind its guard.
	loginRequired := auth.RequireLogin()
	staffOnly := auth.RequireStaff()
	adminOnly := auth.RequireAdmin()

	// Staff surface: dashboard and responses.
	app.Get("/dashboard", loginRequired, staffOnly, cfg.Staff.Dashboard)
	app.Get("/staff/complaints/:id", loginRequired, staffOnly, cfg.Staff.ComplaintDetail)
	app.Post("/staff/respond", loginRequired, staffOnly, cfg.Staff.Respond)

	// Any authenticated user: profile and notification feed.
	app.Get("/profile", loginRequired, cfg.Users.Profile)
	app.Put("/profile", loginRequired, cfg.Users.UpdateProfile)
	app.Get("/api/notifications", loginRequired, cfg.Notifications.List)
	app.Post("/api/notifications/:id/read", loginRequired, cfg.Notifications.MarkRead)

	// Admin surface. The complaint detail route carries the admin guard
	// alone, so an anonymous request there gets an explicit 403 rather than
	// a login redirect.
	app.Get("/admin/complaints", loginRequired, adminOnly, cfg.Admin.ListComplaints)
	app.Get("/admin/complaints/:id", adminOnly, cfg.Admin.ComplaintDetail)
	app.Get("/admin/complaints/:id/assign", loginRequired, adminOnly, cfg.Admin.AssignForm)
	app.Post("/admin/complaints/:id/assign", loginRequired, adminOnly, cfg.Admin.Assign)

	app.Get("/users", loginRequired, adminOnly, cfg.Users.List)
	app.Post("/users", loginRequired, adminOnly, cfg.Users.Create)
	app.Get("/users/:id", loginRequired, adminOnly, cfg.Users.Get)
	app.Put("/users/:id", loginRequired, adminOnly, cfg.Users.Update)
	app.Delete("/users/:id", loginRequired, adminOnly, cfg.Users.Delete)
}
