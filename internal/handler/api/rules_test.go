//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking-platform/internal/domain/schedule"
	"booking-platform/internal/handler/api"
	"booking-platform/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubRuleUseCase struct {
	defaultRule *schedule.DefaultRule
	customRule  *schedule.CustomRule
	err         error
}

func (s *stubRuleUseCase) CreateDefaultRule(_ context.Context, weekday schedule.Weekday, month *int, rule schedule.Rule) (*schedule.DefaultRule, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.defaultRule = &schedule.DefaultRule{ID: uuid.New(), Weekday: weekday, Month: month, Rule: rule}
	return s.defaultRule, nil
}

func (s *stubRuleUseCase) UpdateDefaultRule(_ context.Context, id uuid.UUID, weekday schedule.Weekday, month *int, rule schedule.Rule) (*schedule.DefaultRule, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.defaultRule = &schedule.DefaultRule{ID: id, Weekday: weekday, Month: month, Rule: rule}
	return s.defaultRule, nil
}

func (s *stubRuleUseCase) DeleteDefaultRule(_ context.Context, _ uuid.UUID) error {
	return s.err
}

func (s *stubRuleUseCase) CreateCustomRule(_ context.Context, date time.Time, rule schedule.Rule) (*schedule.CustomRule, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.customRule = &schedule.CustomRule{ID: uuid.New(), Date: schedule.DateOnly(date), Rule: rule}
	return s.customRule, nil
}

func (s *stubRuleUseCase) UpdateCustomRule(_ context.Context, id uuid.UUID, date time.Time, rule schedule.Rule) (*schedule.CustomRule, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.customRule = &schedule.CustomRule{ID: id, Date: schedule.DateOnly(date), Rule: rule}
	return s.customRule, nil
}

func (s *stubRuleUseCase) DeleteCustomRule(_ context.Context, _ uuid.UUID) error {
	return s.err
}

type RuleHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	stub   *stubRuleUseCase
}

func (s *RuleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.stub = &stubRuleUseCase{}

	handler := api.NewRuleHandler(s.stub)
	s.router.POST("/api/v1/defaultRule", handler.CreateDefaultRule)
	s.router.PUT("/api/v1/defaultRule/:id", handler.UpdateDefaultRule)
	s.router.DELETE("/api/v1/defaultRule/:id", handler.DeleteDefaultRule)
	s.router.POST("/api/v1/customRule", handler.CreateCustomRule)
	s.router.PUT("/api/v1/customRule/:id", handler.UpdateCustomRule)
	s.router.DELETE("/api/v1/customRule/:id", handler.DeleteCustomRule)
}

func TestRuleHandlerSuite(t *testing.T) {
	suite.Run(t, new(RuleHandlerTestSuite))
}

func (s *RuleHandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func defaultRuleBody() map[string]any {
	return map[string]any{
		"day":                        map[string]any{"weekday": "mon"},
		"first_checkin":              map[string]any{"hours": 9, "minutes": 30},
		"last_checkin":               map[string]any{"hours": 15, "minutes": 30},
		"lunch_break":                true,
		"lunch_break_from":           map[string]any{"hours": 12, "minutes": 30},
		"lunch_break_duration":       30,
		"slot_default_duration":      60,
		"slot_default_spaces":        10,
		"slot_default_deposit_price": 50,
		"slot_default_invoice_price": 200,
		"location_id":                1,
	}
}

func (s *RuleHandlerTestSuite) TestCreateDefaultRule() {
	w := s.do(http.MethodPost, "/api/v1/defaultRule", defaultRuleBody())
	s.Equal(http.StatusOK, w.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.NotEmpty(body["_id"])
	s.Equal("mon", body["day"].(map[string]any)["weekday"])
	s.Equal(float64(60), body["slot_default_duration"])
}

func (s *RuleHandlerTestSuite) TestCreateDefaultRuleBadWeekday() {
	body := defaultRuleBody()
	body["day"] = map[string]any{"weekday": "someday"}

	w := s.do(http.MethodPost, "/api/v1/defaultRule", body)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RuleHandlerTestSuite) TestCreateDefaultRuleDuplicateScope() {
	s.stub.err = usecase.ErrDuplicateRule

	w := s.do(http.MethodPost, "/api/v1/defaultRule", defaultRuleBody())
	s.Equal(http.StatusConflict, w.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	errObj, ok := body["error"].(map[string]any)
	s.Require().True(ok, "errors carry the enveloped message shape")
	s.Equal("A rule already exists for this scope", errObj["message"])
}

func (s *RuleHandlerTestSuite) TestUpdateDefaultRuleKeepsID() {
	id := uuid.New()

	w := s.do(http.MethodPut, "/api/v1/defaultRule/"+id.String(), defaultRuleBody())
	s.Equal(http.StatusOK, w.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(id.String(), body["_id"])
}

func (s *RuleHandlerTestSuite) TestUpdateDefaultRuleNotFound() {
	s.stub.err = usecase.ErrRuleNotFound

	w := s.do(http.MethodPut, "/api/v1/defaultRule/"+uuid.NewString(), defaultRuleBody())
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RuleHandlerTestSuite) TestDeleteDefaultRule() {
	w := s.do(http.MethodDelete, "/api/v1/defaultRule/"+uuid.NewString(), nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RuleHandlerTestSuite) TestDeleteDefaultRuleBadID() {
	w := s.do(http.MethodDelete, "/api/v1/defaultRule/not-a-uuid", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RuleHandlerTestSuite) TestCreateCustomRule() {
	body := defaultRuleBody()
	delete(body, "day")
	body["date"] = "2019-06-10"

	w := s.do(http.MethodPost, "/api/v1/customRule", body)
	s.Equal(http.StatusOK, w.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.NotEmpty(resp["_id"])
	s.Equal("2019-06-10", resp["date"])
}

func (s *RuleHandlerTestSuite) TestCreateCustomRuleBadDate() {
	body := defaultRuleBody()
	delete(body, "day")
	body["date"] = "10/06/2019"

	w := s.do(http.MethodPost, "/api/v1/customRule", body)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RuleHandlerTestSuite) TestCreateCustomRuleValidationFailure() {
	s.stub.err = usecase.ErrDomainValidationFailed

	body := defaultRuleBody()
	delete(body, "day")
	body["date"] = "2019-06-10"

	w := s.do(http.MethodPost, "/api/v1/customRule", body)
	s.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (s *RuleHandlerTestSuite) TestDeleteCustomRuleNotFound() {
	s.stub.err = usecase.ErrRuleNotFound

	w := s.do(http.MethodDelete, "/api/v1/customRule/"+uuid.NewString(), nil)
	s.Equal(http.StatusNotFound, w.Code)
}
