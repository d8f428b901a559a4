package api

import (
	"errors"
	"net/http"

	reqdto "booking-platform/internal/handler/dto/request"
	resdto "booking-platform/internal/handler/dto/response"
	"booking-platform/internal/handler/httperr"
	"booking-platform/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	invoiceUseCase usecase.InvoiceUseCase
}

func NewInvoiceHandler(invoiceUseCase usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUseCase: invoiceUseCase,
	}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req reqdto.CreateInvoiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	inv, err := h.invoiceUseCase.CreateInvoice(c.Request.Context(), params)
	if err != nil {
		writeSlotError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoice(inv))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid invoice ID format", nil)
		return
	}

	inv, err := h.invoiceUseCase.GetInvoice(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrInvoiceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Invoice not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoice(inv))
}
