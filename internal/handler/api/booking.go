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

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var req reqdto.ConfirmBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	b, err := h.bookingUseCase.ConfirmBooking(c.Request.Context(), params)
	if err != nil {
		writeSlotError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	b, err := h.bookingUseCase.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// writeSlotError maps the shared slot-targeting failures of booking and
// invoice creation.
func writeSlotError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNoRule):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No rules exist for the given date", nil)
	case errors.Is(err, usecase.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No slot exists at the given checkin time", nil)
	case errors.Is(err, usecase.ErrInsufficientCapacity):
		httperr.AbortWithError(c, http.StatusConflict, err, "Not enough spaces available in the slot", nil)
	case errors.Is(err, usecase.ErrAmbiguousRule):
		httperr.AbortWithError(c, http.StatusConflict, err, "Multiple rules match the given date", nil)
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
