package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cfm-kit/complaint-service/internal/auth"
	"github.com/cfm-kit/complaint-service/internal/domain"
	"github.com/cfm-kit/complaint-service/internal/events"
	"github.com/cfm-kit/complaint-service/internal/repository"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

// ResponseService records staff responses to assigned complaints.
type ResponseService struct {
	responses   repository.ResponseRepository
	assignments repository.AssignmentRepository
	dispatcher  events.Dispatcher
}

// ResponseDependencies bundles repositories.
type ResponseDependencies struct {
	ResponseRepo   repository.ResponseRepository
	AssignmentRepo repository.AssignmentRepository
	Dispatcher     events.Dispatcher
}

// NewResponseService creates the service.
func NewResponseService(deps ResponseDependencies) *ResponseService {
	return &ResponseService{
		responses:   deps.ResponseRepo,
		assignments: deps.AssignmentRepo,
		dispatcher:  deps.Dispatcher,
	}
}

// Respond stores the actor's response and resolves their assignment, as one
// transaction. Preconditions in order: the actor must be assigned to the
// complaint, and must not have responded before. The unique constraint on
// (complaint_id, user_id) is the authoritative duplicate guard.
func (s *ResponseService) Respond(ctx context.Context, actor *auth.Principal, complaintID int64, text string) (*domain.Response, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("login required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("response text is required", nil)
	}

	if _, err := s.assignments.GetByComplaintAndUser(ctx, complaintID, actor.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewForbidden("you are not assigned to this complaint")
		}
		return nil, apperrors.MapError(err)
	}

	if _, err := s.responses.GetByComplaintAndUser(ctx, complaintID, actor.UserID); err == nil {
		return nil, apperrors.NewConflict("you have already responded to this complaint", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	response := &domain.Response{
		ComplaintID:  complaintID,
		UserID:       actor.UserID,
		ResponseText: text,
	}
	if err := s.responses.CreateAndResolve(ctx, response); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("you have already responded to this complaint", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		actorID := actor.UserID
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:          uuid.NewString(),
			Type:        events.EventComplaintResponded,
			ComplaintID: complaintID,
			ActorID:     &actorID,
			Timestamp:   time.Now(),
			Payload:     events.ComplaintRespondedPayload{ResponderUserID: actorID},
		})
	}

	return response, nil
}

// Dashboard lists the complaints assigned to the actor, newest first.
func (s *ResponseService) Dashboard(ctx context.Context, actor *auth.Principal) ([]domain.AssignedComplaint, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("login required")
	}
	list, err := s.assignments.ListForUser(ctx, actor.UserID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// ComplaintDetail returns a complaint's record only when it is assigned to
// the actor; anything else is a 404 to avoid disclosing other cases.
func (s *ResponseService) ComplaintDetail(ctx context.Context, actor *auth.Principal, complaintID int64) (*domain.ComplaintRecord, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("login required")
	}
	record, err := s.assignments.GetDetailForUser(ctx, complaintID, actor.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"complaint_id": complaintID})
		}
		return nil, apperrors.MapError(err)
	}
	return record, nil
}
