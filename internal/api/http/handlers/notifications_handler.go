package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cfm-kit/complaint-service/internal/api/dto"
	"github.com/cfm-kit/complaint-service/internal/auth"
	"github.com/cfm-kit/complaint-service/internal/service"
)

// NotificationsHandler exposes the per-user notification feed.
type NotificationsHandler struct {
	notifications *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notifications *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications}
}

// List handles GET /api/notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	list, err := h.notifications.ListRecent(c.UserContext(), principal)
	if err != nil {
		return err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// MarkRead handles POST /api/notifications/:id/read.
func (h *NotificationsHandler) MarkRead(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	id, err := parseID(c.Params("id"))
	if err != nil {
		return err
	}
	if err := h.notifications.MarkRead(c.UserContext(), principal, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusOK)
}
