package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alisinasultani/citycenter-api/internal/application/service"
	"github.com/alisinasultani/citycenter-api/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Get handles GET /receipts/:periodID/:payeeID
func (h *ReceiptHandler) Get(c *gin.Context) {
	periodID, ok := ParseIDParam(c, "periodID")
	if !ok {
		return
	}
	payeeID := c.Param("payeeID")

	receipt, err := h.receiptService.BuildReceipt(c.Request.Context(), periodID, payeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt built", receipt)
}

// PDF handles GET /receipts/:periodID/:payeeID/pdf
func (h *ReceiptHandler) PDF(c *gin.Context) {
	periodID, ok := ParseIDParam(c, "periodID")
	if !ok {
		return
	}
	payeeID := c.Param("payeeID")

	data, err := h.receiptService.RenderPDF(c.Request.Context(), periodID, payeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("receipt-%s-%s.pdf", periodID, payeeID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// Print handles POST /receipts/:periodID/:payeeID/print
func (h *ReceiptHandler) Print(c *gin.Context) {
	periodID, ok := ParseIDParam(c, "periodID")
	if !ok {
		return
	}
	payeeID := c.Param("payeeID")

	if err := h.receiptService.Print(c.Request.Context(), periodID, payeeID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", nil)
}
