package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/cfm-kit/complaint-service/internal/domain"
	"github.com/cfm-kit/complaint-service/internal/repository"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

// AdminService serves the administrator's complaint views.
type AdminService struct {
	complaints repository.ComplaintRepository
}

// NewAdminService creates the service.
func NewAdminService(complaints repository.ComplaintRepository) *AdminService {
	return &AdminService{complaints: complaints}
}

// ListComplaints returns the full joined listing, newest first.
func (s *AdminService) ListComplaints(ctx context.Context, filter repository.ComplaintFilter) ([]domain.ComplaintRecord, error) {
	records, err := s.complaints.ListRecords(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return records, nil
}

// ComplaintDetail returns one complaint's joined record.
func (s *AdminService) ComplaintDetail(ctx context.Context, id int64) (*domain.ComplaintRecord, error) {
	record, err := s.complaints.GetRecord(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"complaint_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return record, nil
}
