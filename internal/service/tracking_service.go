package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/cfm-kit/complaint-service/internal/domain"
	"github.com/cfm-kit/complaint-service/internal/repository"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

// TrackingService resolves public tracking tokens to a reduced status view.
type TrackingService struct {
	complaints repository.ComplaintRepository
}

// NewTrackingService creates the service.
func NewTrackingService(complaints repository.ComplaintRepository) *TrackingService {
	return &TrackingService{complaints: complaints}
}

// TrackByPublicID looks up the anonymous-safe status projection for a
// tracking token. Unknown tokens report not-found without leaking whether
// any nearby token exists.
func (s *TrackingService) TrackByPublicID(ctx context.Context, trackingID string) (*domain.PublicStatus, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return nil, apperrors.NewValidationError("tracking id is required", nil)
	}

	status, err := s.complaints.GetPublicStatus(ctx, trackingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"tracking_id": trackingID})
		}
		return nil, apperrors.MapError(err)
	}
	return status, nil
}
