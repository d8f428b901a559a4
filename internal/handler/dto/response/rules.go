package response

import (
	"booking-platform/internal/domain/schedule"

	"github.com/google/uuid"
)

type DayScopeResponse struct {
	Weekday string `json:"weekday"`
	Month   *int   `json:"month,omitempty"`
}

type DefaultRuleResponse struct {
	ID                      uuid.UUID          `json:"_id"`
	Day                     DayScopeResponse   `json:"day"`
	Closed                  bool               `json:"closed"`
	FirstCheckin            schedule.TimeOfDay `json:"first_checkin"`
	LastCheckin             schedule.TimeOfDay `json:"last_checkin"`
	LunchBreak              bool               `json:"lunch_break"`
	LunchBreakFrom          schedule.TimeOfDay `json:"lunch_break_from"`
	LunchBreakDuration      int                `json:"lunch_break_duration"`
	SlotDefaultDuration     int                `json:"slot_default_duration"`
	SlotDefaultSpaces       int                `json:"slot_default_spaces"`
	SlotDefaultDepositPrice int64              `json:"slot_default_deposit_price"`
	SlotDefaultInvoicePrice int64              `json:"slot_default_invoice_price"`
	LocationID              int64              `json:"location_id"`
}

type CustomRuleResponse struct {
	ID                      uuid.UUID          `json:"_id"`
	Date                    string             `json:"date"`
	Closed                  bool               `json:"closed"`
	FirstCheckin            schedule.TimeOfDay `json:"first_checkin"`
	LastCheckin             schedule.TimeOfDay `json:"last_checkin"`
	LunchBreak              bool               `json:"lunch_break"`
	LunchBreakFrom          schedule.TimeOfDay `json:"lunch_break_from"`
	LunchBreakDuration      int                `json:"lunch_break_duration"`
	SlotDefaultDuration     int                `json:"slot_default_duration"`
	SlotDefaultSpaces       int                `json:"slot_default_spaces"`
	SlotDefaultDepositPrice int64              `json:"slot_default_deposit_price"`
	SlotDefaultInvoicePrice int64              `json:"slot_default_invoice_price"`
	LocationID              int64              `json:"location_id"`
}

func FromDefaultRule(d *schedule.DefaultRule) *DefaultRuleResponse {
	return &DefaultRuleResponse{
		ID:                      d.ID,
		Day:                     DayScopeResponse{Weekday: string(d.Weekday), Month: d.Month},
		Closed:                  d.Rule.Closed,
		FirstCheckin:            d.Rule.FirstCheckin,
		LastCheckin:             d.Rule.LastCheckin,
		LunchBreak:              d.Rule.LunchBreak,
		LunchBreakFrom:          d.Rule.LunchBreakFrom,
		LunchBreakDuration:      d.Rule.LunchBreakDuration,
		SlotDefaultDuration:     d.Rule.SlotDuration,
		SlotDefaultSpaces:       d.Rule.SlotSpaces,
		SlotDefaultDepositPrice: d.Rule.SlotDepositPrice,
		SlotDefaultInvoicePrice: d.Rule.SlotInvoicePrice,
		LocationID:              d.Rule.LocationID,
	}
}

func FromCustomRule(c *schedule.CustomRule) *CustomRuleResponse {
	return &CustomRuleResponse{
		ID:                      c.ID,
		Date:                    c.Date.Format("2006-01-02"),
		Closed:                  c.Rule.Closed,
		FirstCheckin:            c.Rule.FirstCheckin,
		LastCheckin:             c.Rule.LastCheckin,
		LunchBreak:              c.Rule.LunchBreak,
		LunchBreakFrom:          c.Rule.LunchBreakFrom,
		LunchBreakDuration:      c.Rule.LunchBreakDuration,
		SlotDefaultDuration:     c.Rule.SlotDuration,
		SlotDefaultSpaces:       c.Rule.SlotSpaces,
		SlotDefaultDepositPrice: c.Rule.SlotDepositPrice,
		SlotDefaultInvoicePrice: c.Rule.SlotInvoicePrice,
		LocationID:              c.Rule.LocationID,
	}
}
