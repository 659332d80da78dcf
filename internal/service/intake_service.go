package service

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cfm-kit/complaint-service/internal/domain"
	"github.com/cfm-kit/complaint-service/internal/events"
	"github.com/cfm-kit/complaint-service/internal/repository"
	"github.com/cfm-kit/complaint-service/internal/storage"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

// IntakeService validates and persists public complaint submissions.
type IntakeService struct {
	complaints repository.ComplaintRepository
	files      *storage.FileStore
	dispatcher events.Dispatcher
}

// IntakeDependencies bundles collaborators.
type IntakeDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	FileStore     *storage.FileStore
	Dispatcher    events.Dispatcher
}

// NewIntakeService creates the service.
func NewIntakeService(deps IntakeDependencies) *IntakeService {
	return &IntakeService{
		complaints: deps.ComplaintRepo,
		files:      deps.FileStore,
		dispatcher: deps.Dispatcher,
	}
}

// ComplaintInput carries the intake form fields. Nil reference ids mean the
// submitter left the cascade unset; validity of set ids is enforced by the
// store's foreign keys.
type ComplaintInput struct {
	Name                string
	GenderID            *int64
	Age                 *int
	Phone               string
	Email               string
	GovernorateID       *int64
	DistrictID          *int64
	SubDistrictID       *int64
	CommunityID         *int64
	VillageCampFacility string
	Activity            string
	Complaint           string
	ChannelID           *int64
	ProjectID           *int64
}

// Submit stores the complaint and its optional attachment atomically and
// returns the public tracking token. An invalid attachment aborts the whole
// submission before anything is persisted.
func (s *IntakeService) Submit(ctx context.Context, input ComplaintInput, attachment *multipart.FileHeader) (string, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Complaint) == "" {
		return "", apperrors.NewValidationError("name and complaint are required", nil)
	}

	// Attachment validation and storage happen before any database write.
	var attachmentRow *domain.Attachment
	storedName := ""
	if attachment != nil {
		name, err := s.files.Save(attachment)
		if err != nil {
			return "", err
		}
		storedName = name
		attachmentRow = &domain.Attachment{FilePath: name}
	}

	complaint := &domain.Complaint{
		TrackingID:          NewTrackingID(),
		Name:                input.Name,
		GenderID:            input.GenderID,
		Age:                 input.Age,
		Phone:               input.Phone,
		Email:               input.Email,
		GovernorateID:       input.GovernorateID,
		DistrictID:          input.DistrictID,
		SubDistrictID:       input.SubDistrictID,
		CommunityID:         input.CommunityID,
		VillageCampFacility: input.VillageCampFacility,
		Activity:            input.Activity,
		Complaint:           input.Complaint,
		ChannelID:           input.ChannelID,
		ProjectID:           input.ProjectID,
	}

	if err := s.complaints.CreateWithAttachment(ctx, complaint, attachmentRow); err != nil {
		// The stored file has no row pointing at it once the transaction
		// rolled back; remove it.
		_ = s.files.Remove(storedName)
		return "", apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		ID:          uuid.NewString(),
		Type:        events.EventComplaintSubmitted,
		ComplaintID: complaint.ID,
		Timestamp:   time.Now(),
		Payload: events.ComplaintSubmittedPayload{
			TrackingID:    complaint.TrackingID,
			HasAttachment: attachmentRow != nil,
		},
	})

	return complaint.TrackingID, nil
}

func (s *IntakeService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// NewTrackingID derives a short public token from a random UUID: its first
// hyphen-separated group, 8 hex characters.
func NewTrackingID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
