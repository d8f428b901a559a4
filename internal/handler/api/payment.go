package api

import (
	"errors"
	"net/http"

	reqdto "booking-platform/internal/handler/dto/request"
	resdto "booking-platform/internal/handler/dto/response"
	"booking-platform/internal/handler/httperr"
	"booking-platform/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	invoiceUseCase usecase.InvoiceUseCase
}

func NewPaymentHandler(invoiceUseCase usecase.InvoiceUseCase) *PaymentHandler {
	return &PaymentHandler{
		invoiceUseCase: invoiceUseCase,
	}
}

// RecordPayment accepts the gateway callback. The attempt is stored whatever
// its status; only a successful payment covering the deposit advances the
// invoice toward booking creation.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req reqdto.RecordPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment status", nil)
		return
	}

	payment, err := h.invoiceUseCase.RecordPayment(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvoiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Invoice not found", nil)
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPayment(payment))
}
