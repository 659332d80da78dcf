package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfm-kit/complaint-service/internal/domain"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

func TestTrackTrimsTokenAndResolvesStatus(t *testing.T) {
	complaints := newFakeComplaintRepo()
	status := "open"
	complaints.statuses["ab12cd34"] = &domain.PublicStatus{
		TrackingID: "ab12cd34",
		Name:       "someone",
		CreatedAt:  time.Now(),
		Status:     &status,
	}
	svc := NewTrackingService(complaints)

	found, err := svc.TrackByPublicID(context.Background(), "  ab12cd34  ")
	require.NoError(t, err)
	assert.Equal(t, "ab12cd34", found.TrackingID)
	require.NotNil(t, found.Status)
	assert.Equal(t, "open", *found.Status)
}

func TestTrackUnknownTokenNotFound(t *testing.T) {
	svc := NewTrackingService(newFakeComplaintRepo())

	_, err := svc.TrackByPublicID(context.Background(), "deadbeef")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestTrackEmptyTokenFailsValidation(t *testing.T) {
	svc := NewTrackingService(newFakeComplaintRepo())

	_, err := svc.TrackByPublicID(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}
