package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cfm-kit/complaint-service/internal/api/dto"
	"github.com/cfm-kit/complaint-service/internal/auth"
	"github.com/cfm-kit/complaint-service/internal/domain"
	"github.com/cfm-kit/complaint-service/internal/repository"
	"github.com/cfm-kit/complaint-service/internal/service"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

// AdminHandler serves the administrator complaint views and assignment.
type AdminHandler struct {
	admin       *service.AdminService
	assignments *service.AssignmentService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(admin *service.AdminService, assignments *service.AssignmentService) *AdminHandler {
	return &AdminHandler{admin: admin, assignments: assignments}
}

// ListComplaints handles GET /admin/complaints.
func (h *AdminHandler) ListComplaints(c *fiber.Ctx) error {
	filter := parseComplaintQuery(c)
	records, err := h.admin.ListComplaints(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.ComplaintRecordResponse, 0, len(records))
	for i := range records {
		items = append(items, recordResponse(&records[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ComplaintDetail handles GET /admin/complaints/:id.
func (h *AdminHandler) ComplaintDetail(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return err
	}
	record, err := h.admin.ComplaintDetail(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": recordResponse(record)})
}

// AssignForm handles GET /admin/complaints/:id/assign, loading the complaint
// and the selectable references. Already-assigned complaints answer 409.
func (h *AdminHandler) AssignForm(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return err
	}
	form, err := h.assignments.FormData(c.UserContext(), id)
	if err != nil {
		return err
	}

	users := make([]dto.UserResponse, 0, len(form.Users))
	for _, u := range form.Users {
		users = append(users, userResponse(&u))
	}
	categories := make([]dto.CategoryItem, 0, len(form.Categories))
	for _, cat := range form.Categories {
		categories = append(categories, dto.CategoryItem{ID: cat.ID, Name: cat.Name, WorkingDaysLimit: cat.WorkingDaysLimit})
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"complaint_id": form.Complaint.ID,
		"tracking_id":  form.Complaint.TrackingID,
		"users":        users,
		"projects":     projectItems(form.Projects),
		"channels":     lookupItems(form.Channels),
		"categories":   categories,
	}})
}

// Assign handles POST /admin/complaints/:id/assign.
func (h *AdminHandler) Assign(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	id, err := parseID(c.Params("id"))
	if err != nil {
		return err
	}

	var req dto.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserID <= 0 {
		return apperrors.NewValidationError("user_id required", nil)
	}

	assignment, err := h.assignments.Assign(c.UserContext(), principal, id, service.AssignInput{
		UserID:     req.UserID,
		ProjectID:  req.ProjectID,
		ChannelID:  req.ChannelID,
		CategoryID: req.CategoryID,
		FollowUp:   req.FollowUp,
		Status:     domain.AssignmentStatus(req.Status),
		Sensitive:  req.Sensitive,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.AssignmentResponse{
		ComplaintID:  assignment.ComplaintID,
		UserID:       assignment.UserID,
		ReferralDate: assignment.ReferralDate,
		DueDate:      assignment.DueDate,
		Status:       string(assignment.Status),
		Sensitive:    assignment.Sensitive,
	}})
}

func parseComplaintQuery(c *fiber.Ctx) repository.ComplaintFilter {
	filter := repository.ComplaintFilter{}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if gov := c.Query("governorate_id"); gov != "" {
		if id, err := strconv.ParseInt(gov, 10, 64); err == nil {
			filter.GovernorateID = &id
		}
	}
	if sensitive := c.Query("sensitive"); sensitive != "" {
		if v, err := strconv.ParseBool(sensitive); err == nil {
			filter.Sensitive = &v
		}
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		filter.SearchTerm = &search
	}
	return filter
}

func recordResponse(rec *domain.ComplaintRecord) dto.ComplaintRecordResponse {
	return dto.ComplaintRecordResponse{
		ID:               rec.ID,
		CreatedAt:        rec.CreatedAt,
		TrackingID:       rec.TrackingID,
		Name:             rec.Name,
		Gender:           rec.Gender,
		Age:              rec.Age,
		Phone:            rec.Phone,
		Email:            rec.Email,
		Governorate:      rec.Governorate,
		District:         rec.District,
		SubDistrict:      rec.SubDistrict,
		Community:        rec.Community,
		VillageCamp:      rec.VillageCamp,
		ProjectShortName: rec.ProjectShortName,
		ProjectDonor:     rec.ProjectDonor,
		ProjectCode:      rec.ProjectCode,
		ProjectSector:    rec.ProjectSector,
		Category:         rec.Category,
		FollowUp:         rec.FollowUp,
		Status:           rec.Status,
		Sensitive:        rec.Sensitive,
		Attachment:       rec.AttachmentPath,
		AssignedTo:       rec.AssignedTo,
		Channel:          rec.Channel,
		Activity:         rec.Activity,
		Complaint:        rec.Complaint,
		ResponseText:     rec.ResponseText,
		ResponseDate:     rec.ResponseDate,
		ReferralDate:     rec.ReferralDate,
	}
}
