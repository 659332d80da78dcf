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
	"github.com/cfm-kit/complaint-service/internal/workday"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

// defaultWorkingDaysLimit applies when a category has no limit configured.
const defaultWorkingDaysLimit = 5

// AssignmentService links complaints to handling staff.
type AssignmentService struct {
	assignments repository.AssignmentRepository
	complaints  repository.ComplaintRepository
	lookups     repository.LookupRepository
	users       repository.UserRepository
	dispatcher  events.Dispatcher
	now         func() time.Time
}

// AssignmentDependencies bundles repositories.
type AssignmentDependencies struct {
	AssignmentRepo repository.AssignmentRepository
	ComplaintRepo  repository.ComplaintRepository
	LookupRepo     repository.LookupRepository
	UserRepo       repository.UserRepository
	Dispatcher     events.Dispatcher
	Now            func() time.Time
}

// NewAssignmentService creates the service.
func NewAssignmentService(deps AssignmentDependencies) *AssignmentService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &AssignmentService{
		assignments: deps.AssignmentRepo,
		complaints:  deps.ComplaintRepo,
		lookups:     deps.LookupRepo,
		users:       deps.UserRepo,
		dispatcher:  deps.Dispatcher,
		now:         now,
	}
}

// AssignInput carries the assignment form fields.
type AssignInput struct {
	UserID     int64
	ProjectID  *int64
	ChannelID  *int64
	CategoryID *int64
	FollowUp   string
	Status     domain.AssignmentStatus
	Sensitive  bool
}

// AssignmentForm bundles the data driving the assignment form, or reports
// the existing assignment when the complaint is already handled.
type AssignmentForm struct {
	Complaint  *domain.Complaint
	Users      []domain.User
	Projects   []domain.Project
	Channels   []domain.Lookup
	Categories []domain.Category
}

// FormData loads the complaint and the selectable references for the
// assignment form. An already-assigned complaint short-circuits with a
// conflict so the caller can bounce back to the listing.
func (s *AssignmentService) FormData(ctx context.Context, complaintID int64) (*AssignmentForm, error) {
	if _, err := s.assignments.GetByComplaint(ctx, complaintID); err == nil {
		return nil, apperrors.NewConflict("complaint already assigned", map[string]any{"complaint_id": complaintID})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	complaint, err := s.complaints.GetByID(ctx, complaintID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"complaint_id": complaintID})
		}
		return nil, apperrors.MapError(err)
	}

	users, err := s.users.ListAssignable(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	projects, err := s.lookups.Projects(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	channels, err := s.lookups.Channels(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	categories, err := s.lookups.Categories(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	return &AssignmentForm{
		Complaint:  complaint,
		Users:      users,
		Projects:   projects,
		Channels:   channels,
		Categories: categories,
	}, nil
}

// Assign creates the single assignment for a complaint. The referral date is
// now; the due date is the category's working-day limit (default 5) of
// working days later. The pre-check is a fast path only: the unique
// constraint on assignments.complaint_id is the authoritative guard, so a
// concurrent double assignment surfaces as the same conflict.
func (s *AssignmentService) Assign(ctx context.Context, actor *auth.Principal, complaintID int64, input AssignInput) (*domain.Assignment, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("login required")
	}

	if _, err := s.assignments.GetByComplaint(ctx, complaintID); err == nil {
		return nil, apperrors.NewConflict("complaint already assigned", map[string]any{"complaint_id": complaintID})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	limit := defaultWorkingDaysLimit
	if input.CategoryID != nil {
		category, err := s.lookups.GetCategory(ctx, *input.CategoryID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewValidationError("unknown category", map[string]any{"category_id": *input.CategoryID})
			}
			return nil, apperrors.MapError(err)
		}
		if category.WorkingDaysLimit != nil && *category.WorkingDaysLimit > 0 {
			limit = *category.WorkingDaysLimit
		}
	}

	referral := s.now()
	status := input.Status
	if status == "" {
		status = domain.AssignmentStatusOpen
	}

	var followUp *string
	if strings.TrimSpace(input.FollowUp) != "" {
		followUp = &input.FollowUp
	}

	assignment := &domain.Assignment{
		ComplaintID:  complaintID,
		UserID:       input.UserID,
		ProjectID:    input.ProjectID,
		ChannelID:    input.ChannelID,
		CategoryID:   input.CategoryID,
		ReferralDate: referral,
		DueDate:      workday.DueDate(referral, limit),
		FollowUp:     followUp,
		Status:       status,
		Sensitive:    input.Sensitive,
	}

	if err := s.assignments.Create(ctx, assignment); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("complaint already assigned", map[string]any{"complaint_id": complaintID})
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, actor.UserID, events.Event{
		ID:          uuid.NewString(),
		Type:        events.EventComplaintAssigned,
		ComplaintID: complaintID,
		Timestamp:   s.now(),
		Payload: events.ComplaintAssignedPayload{
			AssigneeUserID: assignment.UserID,
			CategoryID:     assignment.CategoryID,
			DueDate:        assignment.DueDate,
			Sensitive:      assignment.Sensitive,
		},
	})

	return assignment, nil
}

func (s *AssignmentService) publish(ctx context.Context, actorID int64, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ActorID = &actorID
	_ = s.dispatcher.Publish(ctx, event)
}
