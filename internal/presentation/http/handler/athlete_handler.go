package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alisinasultani/citycenter-api/internal/application/service"
	"github.com/alisinasultani/citycenter-api/internal/domain/repository"
	"github.com/alisinasultani/citycenter-api/internal/presentation/http/dto/request"
	"github.com/alisinasultani/citycenter-api/internal/presentation/http/dto/response"
)

// AthleteHandler handles athlete directory and fee HTTP requests
type AthleteHandler struct {
	athleteService *service.AthleteService
}

// NewAthleteHandler creates a new athlete handler
func NewAthleteHandler(athleteService *service.AthleteService) *AthleteHandler {
	return &AthleteHandler{athleteService: athleteService}
}

// Create handles POST /athletes
func (h *AthleteHandler) Create(c *gin.Context) {
	var req request.CreateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	athlete, err := h.athleteService.CreateAthlete(c.Request.Context(), &service.CreateAthleteInput{
		Name:       req.Name,
		LastName:   req.LastName,
		FatherName: req.FatherName,
		Phone:      req.Phone,
		Sport:      req.Sport,
		Picture:    req.Picture,
		JoinedAt:   req.JoinedAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Athlete created", athlete)
}

// List handles GET /athletes
func (h *AthleteHandler) List(c *gin.Context) {
	params := PaginationFromQuery(c)

	filter := repository.AthleteFilter{
		Search: c.Query("search"),
		Sport:  c.Query("sport"),
	}
	if raw := c.Query("is_active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &active
		}
	}

	result, err := h.athleteService.ListAthletes(c.Request.Context(), filter, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Athletes retrieved", result)
}

// Get handles GET /athletes/:id
func (h *AthleteHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	athlete, err := h.athleteService.GetAthlete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Athlete retrieved", athlete)
}

// Update handles PATCH /athletes/:id
func (h *AthleteHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	athlete, err := h.athleteService.UpdateAthlete(c.Request.Context(), id, &service.UpdateAthleteInput{
		Name:       req.Name,
		LastName:   req.LastName,
		FatherName: req.FatherName,
		Phone:      req.Phone,
		Sport:      req.Sport,
		Picture:    req.Picture,
		IsActive:   req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Athlete updated", athlete)
}

// Delete handles DELETE /athletes/:id
func (h *AthleteHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.athleteService.DeleteAthlete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// RecordFee handles POST /athletes/:id/fees
func (h *AthleteHandler) RecordFee(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.RecordFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	fee, err := h.athleteService.RecordFee(c.Request.Context(), &service.RecordFeeInput{
		AthleteID: id,
		Year:      req.Year,
		Month:     req.Month,
		Fee:       req.Fee,
		Taken:     req.Taken,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Fee recorded", fee)
}

// ListFees handles GET /athletes/:id/fees
func (h *AthleteHandler) ListFees(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	fees, err := h.athleteService.ListFees(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fees retrieved", fees)
}

// ListFeesByPeriod handles GET /fees
func (h *AthleteHandler) ListFeesByPeriod(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year <= 0 {
		response.BadRequest(c, "A valid year is required")
		return
	}
	month := c.Query("month")
	if month == "" {
		response.BadRequest(c, "Month is required")
		return
	}

	fees, err := h.athleteService.ListFeesByPeriod(c.Request.Context(), year, month)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fees retrieved", fees)
}

// UpdateFee handles PATCH /fees/:feeID
func (h *AthleteHandler) UpdateFee(c *gin.Context) {
	feeID, ok := ParseIDParam(c, "feeID")
	if !ok {
		return
	}

	var req request.UpdateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	fee, err := h.athleteService.UpdateFee(c.Request.Context(), feeID, &service.UpdateFeeInput{
		Fee:   req.Fee,
		Taken: req.Taken,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fee updated", fee)
}

// DeleteFee handles DELETE /fees/:feeID
func (h *AthleteHandler) DeleteFee(c *gin.Context) {
	feeID, ok := ParseIDParam(c, "feeID")
	if !ok {
		return
	}

	if err := h.athleteService.DeleteFee(c.Request.Context(), feeID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
