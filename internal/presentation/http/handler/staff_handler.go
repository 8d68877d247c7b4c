package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alisinasultani/citycenter-api/internal/application/service"
	"github.com/alisinasultani/citycenter-api/internal/domain/repository"
	"github.com/alisinasultani/citycenter-api/internal/presentation/http/dto/request"
	"github.com/alisinasultani/citycenter-api/internal/presentation/http/dto/response"
)

// StaffHandler handles staff directory HTTP requests
type StaffHandler struct {
	staffService *service.StaffService
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// Create handles POST /staff
func (h *StaffHandler) Create(c *gin.Context) {
	var req request.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	staff, err := h.staffService.CreateStaff(c.Request.Context(), &service.CreateStaffInput{
		Name:       req.Name,
		LastName:   req.LastName,
		FatherName: req.FatherName,
		Position:   req.Position,
		Phone:      req.Phone,
		Salary:     req.Salary,
		Picture:    req.Picture,
		HiredAt:    req.HiredAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Staff member created", staff)
}

// List handles GET /staff
func (h *StaffHandler) List(c *gin.Context) {
	params := PaginationFromQuery(c)

	filter := repository.StaffFilter{
		Search:   c.Query("search"),
		Position: c.Query("position"),
	}
	if raw := c.Query("is_active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &active
		}
	}

	result, err := h.staffService.ListStaff(c.Request.Context(), filter, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Staff retrieved", result)
}

// Get handles GET /staff/:id
func (h *StaffHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	staff, err := h.staffService.GetStaff(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff member retrieved", staff)
}

// Update handles PATCH /staff/:id
func (h *StaffHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	staff, err := h.staffService.UpdateStaff(c.Request.Context(), id, &service.UpdateStaffInput{
		Name:       req.Name,
		LastName:   req.LastName,
		FatherName: req.FatherName,
		Position:   req.Position,
		Phone:      req.Phone,
		Salary:     req.Salary,
		Picture:    req.Picture,
		IsActive:   req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff member updated", staff)
}

// Delete handles DELETE /staff/:id
func (h *StaffHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.staffService.DeleteStaff(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
