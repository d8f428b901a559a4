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

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
	locationID          int64
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase, locationID int64) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUseCase: availabilityUseCase,
		locationID:          locationID,
	}
}

func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	date, err := reqdto.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	slots, err := h.availabilityUseCase.CheckAvailability(c.Request.Context(), h.locationID, date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoRule):
			// An unconfigured date is not an error to the caller; a bare
			// string distinguishes it from a closed day's empty list.
			c.JSON(http.StatusOK, "no rules exist for the given date")
		case errors.Is(err, usecase.ErrAmbiguousRule):
			httperr.AbortWithError(c, http.StatusConflict, err, "Multiple rules match the given date", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlots(slots))
}
