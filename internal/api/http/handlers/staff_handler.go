package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cfm-kit/complaint-service/internal/api/dto"
	"github.com/cfm-kit/complaint-service/internal/auth"
	"github.com/cfm-kit/complaint-service/internal/domain"
	"github.com/cfm-kit/complaint-service/internal/service"
	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

// StaffHandler serves the assignee-facing dashboard and response flow.
type StaffHandler struct {
	responses *service.ResponseService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(responses *service.ResponseService) *StaffHandler {
	return &StaffHandler{responses: responses}
}

// Dashboard handles GET /dashboard.
func (h *StaffHandler) Dashboard(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	list, err := h.responses.Dashboard(c.UserContext(), principal)
	if err != nil {
		return err
	}
	items := make([]dto.AssignedComplaintResponse, 0, len(list))
	for i := range list {
		items = append(items, assignedComplaintResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ComplaintDetail handles GET /staff/complaints/:id.
func (h *StaffHandler) ComplaintDetail(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	id, err := parseID(c.Params("id"))
	if err != nil {
		return err
	}
	record, err := h.responses.ComplaintDetail(c.UserContext(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": recordResponse(record)})
}

// Respond handles POST /staff/respond.
func (h *StaffHandler) Respond(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.RespondRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ComplaintID <= 0 {
		return apperrors.NewValidationError("complaint_id required", nil)
	}

	response, err := h.responses.Respond(c.UserContext(), principal, req.ComplaintID, req.ResponseText)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"complaint_id": response.ComplaintID,
		"created_at":   response.CreatedAt,
	}})
}

func assignedComplaintResponse(ac *domain.AssignedComplaint) dto.AssignedComplaintResponse {
	return dto.AssignedComplaintResponse{
		ComplaintID:  ac.ComplaintID,
		CreatedAt:    ac.CreatedAt,
		Governorate:  ac.Governorate,
		District:     ac.District,
		SubDistrict:  ac.SubDistrict,
		Community:    ac.Community,
		VillageCamp:  ac.VillageCamp,
		ProjectShort: ac.ProjectShort,
		ProjectDonor: ac.ProjectDonor,
		Category:     ac.Category,
		Sensitive:    ac.Sensitive,
		ReferralDate: ac.ReferralDate,
		DueDate:      ac.DueDate,
		FollowUp:     ac.FollowUp,
		Status:       string(ac.Status),
		Activity:     ac.Activity,
		Complaint:    ac.Complaint,
		ResponseText: ac.ResponseText,
		ResponseDate: ac.ResponseDate,
	}
}
