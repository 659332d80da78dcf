package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cfm-kit/complaint-service/internal/auth"
	"github.com/cfm-kit/complaint-service/internal/domain"
	"github.com/cfm-kit/complaint-service/internal/events"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

func TestAssignmentEventCreatesNotification(t *testing.T) {
	repo := &fakeNotificationRepo{}
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewNotificationService(repo, dispatcher, zap.NewNop())
	svc.RegisterHandlers()

	due := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	err := dispatcher.Publish(context.Background(), events.Event{
		ID:          uuid.NewString(),
		Type:        events.EventComplaintAssigned,
		ComplaintID: 17,
		Timestamp:   time.Now(),
		Payload: events.ComplaintAssignedPayload{
			AssigneeUserID: 42,
			DueDate:        due,
		},
	})
	require.NoError(t, err)

	require.Len(t, repo.rows, 1)
	assert.Equal(t, int64(42), repo.rows[0].UserID)
	assert.Contains(t, repo.rows[0].Message, "Complaint #17")
	assert.Contains(t, repo.rows[0].Message, "2024-06-10")
}

func TestSubmittedEventProducesNoNotification(t *testing.T) {
	repo := &fakeNotificationRepo{}
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewNotificationService(repo, dispatcher, zap.NewNop())
	svc.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:          uuid.NewString(),
		Type:        events.EventComplaintSubmitted,
		ComplaintID: 17,
		Timestamp:   time.Now(),
		Payload:     events.ComplaintSubmittedPayload{TrackingID: "ab12cd34"},
	})
	require.NoError(t, err)
	assert.Empty(t, repo.rows)
}

func TestListRecentRequiresActor(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationRepo{}, nil, zap.NewNop())

	_, err := svc.ListRecent(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}

func TestMarkReadForeignNotificationNotFound(t *testing.T) {
	repo := &fakeNotificationRepo{}
	require.NoError(t, repo.Create(context.Background(), &domain.Notification{UserID: 9, Message: "hi"}))
	svc := NewNotificationService(repo, nil, zap.NewNop())

	actor := &auth.Principal{UserID: 4, Role: domain.RoleStaff}
	err := svc.MarkRead(context.Background(), actor, 1)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
	assert.False(t, repo.rows[0].IsRead)
}

func TestMarkReadOwnNotification(t *testing.T) {
	repo := &fakeNotificationRepo{}
	require.NoError(t, repo.Create(context.Background(), &domain.Notification{UserID: 4, Message: "hi"}))
	svc := NewNotificationService(repo, nil, zap.NewNop())

	actor := &auth.Principal{UserID: 4, Role: domain.RoleStaff}
	require.NoError(t, svc.MarkRead(context.Background(), actor, 1))
	assert.True(t, repo.rows[0].IsRead)
}
