package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cfm-kit/complaint-service/internal/api/dto"
	"github.com/cfm-kit/complaint-service/internal/domain"
	"github.com/cfm-kit/complaint-service/internal/service"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

// PublicHandler serves the unauthenticated surface: complaint submission,
// tracking, and the cascading location lookups that drive the intake form.
type PublicHandler struct {
	intake    *service.IntakeService
	tracking  *service.TrackingService
	directory *service.DirectoryService
}

// NewPublicHandler constructs handler.
func NewPublicHandler(intake *service.IntakeService, tracking *service.TrackingService, directory *service.DirectoryService) *PublicHandler {
	return &PublicHandler{intake: intake, tracking: tracking, directory: directory}
}

// SubmitComplaint handles POST /submit (multipart form).
func (h *PublicHandler) SubmitComplaint(c *fiber.Ctx) error {
	var req dto.SubmitComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.ComplaintInput{
		Name:                req.Name,
		GenderID:            req.GenderID,
		Age:                 req.Age,
		Phone:               req.Phone,
		Email:               req.Email,
		GovernorateID:       req.GovernorateID,
		DistrictID:          req.DistrictID,
		SubDistrictID:       req.SubDistrictID,
		CommunityID:         req.CommunityID,
		VillageCampFacility: req.VillageCampFacility,
		Activity:            req.Activity,
		Complaint:           req.Complaint,
		ChannelID:           req.ChannelID,
		ProjectID:           req.ProjectID,
	}

	// The attachment is optional; FormFile errors simply mean none was sent.
	attachment, err := c.FormFile("attachment")
	if err != nil {
		attachment = nil
	}

	trackingID, err := h.intake.Submit(c.UserContext(), input, attachment)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.SubmitComplaintResponse{TrackingID: trackingID}})
}

// Track handles GET /track/:trackingID.
func (h *PublicHandler) Track(c *fiber.Ctx) error {
	status, err := h.tracking.TrackByPublicID(c.UserContext(), c.Params("trackingID"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TrackResponse{
		TrackingID:   status.TrackingID,
		Name:         status.Name,
		Phone:        status.Phone,
		CreatedAt:    status.CreatedAt,
		Status:       status.Status,
		FollowUp:     status.FollowUp,
		Sensitive:    status.Sensitive,
		AssignedTo:   status.AssignedTo,
		ResponseText: status.ResponseText,
		ResponseDate: status.ResponseDate,
	}})
}

// Districts handles GET /api/districts/:governorateID.
func (h *PublicHandler) Districts(c *fiber.Ctx) error {
	id, err := parseID(c.Params("governorateID"))
	if err != nil {
		return err
	}
	list, err := h.directory.Districts(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(lookupItems(list))
}

// SubDistricts handles GET /api/sub-districts/:districtID.
func (h *PublicHandler) SubDistricts(c *fiber.Ctx) error {
	id, err := parseID(c.Params("districtID"))
	if err != nil {
		return err
	}
	list, err := h.directory.SubDistricts(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(lookupItems(list))
}

// Communities handles GET /api/communities/:subDistrictID.
func (h *PublicHandler) Communities(c *fiber.Ctx) error {
	id, err := parseID(c.Params("subDistrictID"))
	if err != nil {
		return err
	}
	list, err := h.directory.Communities(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(lookupItems(list))
}

// FormLookups handles GET /api/form-lookups, bundling the reference sets the
// intake form needs up front.
func (h *PublicHandler) FormLookups(c *fiber.Ctx) error {
	lookups, err := h.directory.IntakeFormLookups(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"genders":      lookupItems(lookups.Genders),
		"channels":     lookupItems(lookups.Channels),
		"projects":     projectItems(lookups.Projects),
		"governorates": lookupItems(lookups.Governorates),
	}})
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"id": raw})
	}
	return id, nil
}

func lookupItems(list []domain.Lookup) []dto.LookupItem {
	items := make([]dto.LookupItem, 0, len(list))
	for _, l := range list {
		items = append(items, dto.LookupItem{ID: l.ID, Name: l.Name})
	}
	return items
}

func projectItems(list []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProjectItem{
			ID:        p.ID,
			ShortName: p.ShortName,
			Donor:     p.Donor,
			Code:      p.Code,
			Sector:    p.Sector,
			Title:     p.Title,
		})
	}
	return items
}
