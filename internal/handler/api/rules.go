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

type RuleHandler struct {
	ruleUseCase usecase.RuleUseCase
}

func NewRuleHandler(ruleUseCase usecase.RuleUseCase) *RuleHandler {
	return &RuleHandler{
		ruleUseCase: ruleUseCase,
	}
}

func (h *RuleHandler) CreateDefaultRule(c *gin.Context) {
	var req reqdto.DefaultRuleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	weekday, err := req.Weekday()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid weekday", nil)
		return
	}

	rule, err := h.ruleUseCase.CreateDefaultRule(c.Request.Context(), weekday, req.Day.Month, req.ToRule())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDefaultRule(rule))
}

func (h *RuleHandler) UpdateDefaultRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rule ID format", nil)
		return
	}

	var req reqdto.DefaultRuleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	weekday, err := req.Weekday()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid weekday", nil)
		return
	}

	rule, err := h.ruleUseCase.UpdateDefaultRule(c.Request.Context(), id, weekday, req.Day.Month, req.ToRule())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDefaultRule(rule))
}

func (h *RuleHandler) DeleteDefaultRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rule ID format", nil)
		return
	}

	if err := h.ruleUseCase.DeleteDefaultRule(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *RuleHandler) CreateCustomRule(c *gin.Context) {
	var req reqdto.CustomRuleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	date, err := req.ParsedDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	rule, err := h.ruleUseCase.CreateCustomRule(c.Request.Context(), date, req.ToRule())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomRule(rule))
}

func (h *RuleHandler) UpdateCustomRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rule ID format", nil)
		return
	}

	var req reqdto.CustomRuleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	date, err := req.ParsedDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	rule, err := h.ruleUseCase.UpdateCustomRule(c.Request.Context(), id, date, req.ToRule())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomRule(rule))
}

func (h *RuleHandler) DeleteCustomRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rule ID format", nil)
		return
	}

	if err := h.ruleUseCase.DeleteCustomRule(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *RuleHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrRuleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Rule not found", nil)
	case errors.Is(err, usecase.ErrDuplicateRule):
		httperr.AbortWithError(c, http.StatusConflict, err, "A rule already exists for this scope", nil)
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
