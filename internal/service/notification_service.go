package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/cfm-kit/complaint-service/internal/auth"
	"github.com/cfm-kit/complaint-service/internal/domain"
	"github.com/cfm-kit/complaint-service/internal/events"
	"github.com/cfm-kit/complaint-service/internal/repository"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

// NotificationService serves the per-user notification feed and produces
// notification rows from domain events.
type NotificationService struct {
	notifications repository.NotificationRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(notifications repository.NotificationRepository, dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// ListRecent returns the actor's feed, most recent first, capped at 10.
func (n *NotificationService) ListRecent(ctx context.Context, actor *auth.Principal) ([]domain.Notification, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("login required")
	}
	list, err := n.notifications.ListRecent(ctx, actor.UserID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// MarkRead flags one of the actor's notifications as read. A notification
// owned by someone else reports not-found before any mutation.
func (n *NotificationService) MarkRead(ctx context.Context, actor *auth.Principal, notificationID int64) error {
	if actor == nil {
		return apperrors.NewUnauthorized("login required")
	}
	if err := n.notifications.MarkRead(ctx, notificationID, actor.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("notification", map[string]any{"notification_id": notificationID})
		}
		return apperrors.MapError(err)
	}
	return nil
}

// RegisterHandlers subscribes to events that produce notifications.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventComplaintAssigned, n.handleComplaintAssigned)
}

func (n *NotificationService) handleComplaintAssigned(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ComplaintAssignedPayload)
	if !ok {
		return nil
	}

	notification := &domain.Notification{
		UserID: payload.AssigneeUserID,
		Message: fmt.Sprintf("Complaint #%d has been assigned to you, due %s.",
			event.ComplaintID, payload.DueDate.Format("2006-01-02")),
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		n.logger.Error("failed to create assignment notification",
			zap.Int64("complaint_id", event.ComplaintID),
			zap.Int64("user_id", payload.AssigneeUserID),
			zap.Error(err))
		return err
	}

	n.logger.Info("assignment notification created",
		zap.Int64("complaint_id", event.ComplaintID),
		zap.Int64("user_id", payload.AssigneeUserID))
	return nil
}
