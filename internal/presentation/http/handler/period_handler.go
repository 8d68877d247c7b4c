package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alisinasultani/citycenter-api/internal/application/service"
	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
	"github.com/alisinasultani/citycenter-api/internal/ledger"
	"github.com/alisinasultani/citycenter-api/internal/presentation/http/dto/request"
	"github.com/alisinasultani/citycenter-api/internal/presentation/http/dto/response"
	"github.com/alisinasultani/citycenter-api/pkg/pagination"
)

// PeriodHandler handles billing period HTTP requests. The same handler serves
// every billing kind; routes bind each method to a kind.
type PeriodHandler struct {
	periodService *service.PeriodService
}

// NewPeriodHandler creates a new period handler
func NewPeriodHandler(periodService *service.PeriodService) *PeriodHandler {
	return &PeriodHandler{periodService: periodService}
}

// Create handles POST /{kind}
func (h *PeriodHandler) Create(kind enum.BillingKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreatePeriodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}

		period, err := h.periodService.CreatePeriod(c.Request.Context(), &service.CreatePeriodInput{
			Kind:  kind,
			Scope: req.Scope,
			Year:  req.Year,
			Month: req.Month,
		})
		if err != nil {
			response.Error(c, err)
			return
		}

		response.Created(c, "Billing period created", response.NewPeriodResponse(period))
	}
}

// List handles GET /{kind}
func (h *PeriodHandler) List(kind enum.BillingKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := PaginationFromQuery(c)

		filter := ledger.Range{
			StartMonth: c.Query("start_month"),
			EndMonth:   c.Query("end_month"),
		}
		if raw := c.Query("year"); raw != "" {
			if year, err := strconv.Atoi(raw); err == nil {
				filter.Year = &year
			}
		}
		if scope := c.Query("scope"); scope != "" {
			filter.Scope = &scope
		}

		result, err := h.periodService.ListPeriods(c.Request.Context(), kind, filter, params)
		if err != nil {
			response.Error(c, err)
			return
		}

		page := pagination.NewPaginatedResult(response.NewPeriodListResponse(result.Items), result.Pagination)
		response.SuccessWithPagination(c, 200, "Billing periods retrieved", page)
	}
}

// Get handles GET /{kind}/:id
func (h *PeriodHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	period, err := h.periodService.GetPeriod(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Billing period retrieved", response.NewPeriodResponse(period))
}

// Submit handles PATCH /{kind}/:id. The body carries the full edited ledger;
// only entries that actually changed are written.
func (h *PeriodHandler) Submit(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.SubmitLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	period, err := h.periodService.SubmitLedger(c.Request.Context(), &service.SubmitLedgerInput{
		PeriodID: id,
		Entries:  req.Ledger,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ledger updated", response.NewPeriodResponse(period))
}

// AddPayee handles POST /{kind}/:id/payees
func (h *PeriodHandler) AddPayee(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.AddPayeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payeeID, err := uuid.Parse(req.PayeeID)
	if err != nil {
		response.BadRequest(c, "Invalid payee ID")
		return
	}

	period, err := h.periodService.AddPayee(c.Request.Context(), id, payeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payee added", response.NewPeriodResponse(period))
}

// EditField handles PATCH /{kind}/:id/entry
func (h *PeriodHandler) EditField(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.EditEntryFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	period, err := h.periodService.EditEntryField(c.Request.Context(), id, req.PayeeID, req.Field, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Entry updated", response.NewPeriodResponse(period))
}

// Totals handles GET /{kind}/:id/totals
func (h *PeriodHandler) Totals(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	totals, err := h.periodService.GetTotals(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Totals computed", totals)
}

// Delete handles DELETE /{kind}/:id
func (h *PeriodHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.periodService.DeletePeriod(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
