package request

import (
	"time"

	"booking-platform/internal/domain/schedule"
)

// DayScope selects which recurring weekday (optionally within one month) a
// default rule governs.
type DayScope struct {
	Weekday string `json:"weekday" binding:"required"`
	Month   *int   `json:"month,omitempty"`
}

type DefaultRuleRequest struct {
	Day                     DayScope           `json:"day" binding:"required"`
	Closed                  bool               `json:"closed"`
	FirstCheckin            schedule.TimeOfDay `json:"first_checkin"`
	LastCheckin             schedule.TimeOfDay `json:"last_checkin"`
	LunchBreak              bool               `json:"lunch_break"`
	LunchBreakFrom          schedule.TimeOfDay `json:"lunch_break_from"`
	LunchBreakDuration      int                `json:"lunch_break_duration"`
	SlotDefaultDuration     int                `json:"slot_default_duration" binding:"required"`
	SlotDefaultSpaces       int                `json:"slot_default_spaces" binding:"required"`
	SlotDefaultDepositPrice int64              `json:"slot_default_deposit_price"`
	SlotDefaultInvoicePrice int64              `json:"slot_default_invoice_price"`
	LocationID              int64              `json:"location_id" binding:"required"`
}

func (r DefaultRuleRequest) Weekday() (schedule.Weekday, error) {
	return schedule.NewWeekday(r.Day.Weekday)
}

func (r DefaultRuleRequest) ToRule() schedule.Rule {
	return schedule.Rule{
		Closed:             r.Closed,
		FirstCheckin:       r.FirstCheckin,
		LastCheckin:        r.LastCheckin,
		LunchBreak:         r.LunchBreak,
		LunchBreakFrom:     r.LunchBreakFrom,
		LunchBreakDuration: r.LunchBreakDuration,
		SlotDuration:       r.SlotDefaultDuration,
		SlotSpaces:         r.SlotDefaultSpaces,
		SlotDepositPrice:   r.SlotDefaultDepositPrice,
		SlotInvoicePrice:   r.SlotDefaultInvoicePrice,
		LocationID:         r.LocationID,
	}
}

type CustomRuleRequest struct {
	Date                    string             `json:"date" binding:"required"`
	Closed                  bool               `json:"closed"`
	FirstCheckin            schedule.TimeOfDay `json:"first_checkin"`
	LastCheckin             schedule.TimeOfDay `json:"last_checkin"`
	LunchBreak              bool               `json:"lunch_break"`
	LunchBreakFrom          schedule.TimeOfDay `json:"lunch_break_from"`
	LunchBreakDuration      int                `json:"lunch_break_duration"`
	SlotDefaultDuration     int                `json:"slot_default_duration" binding:"required"`
	SlotDefaultSpaces       int                `json:"slot_default_spaces" binding:"required"`
	SlotDefaultDepositPrice int64              `json:"slot_default_deposit_price"`
	SlotDefaultInvoicePrice int64              `json:"slot_default_invoice_price"`
	LocationID              int64              `json:"location_id" binding:"required"`
}

func (r CustomRuleRequest) ParsedDate() (time.Time, error) {
	return ParseDate(r.Date)
}

func (r CustomRuleRequest) ToRule() schedule.Rule {
	return schedule.Rule{
		Closed:             r.Closed,
		FirstCheckin:       r.FirstCheckin,
		LastCheckin:        r.LastCheckin,
		LunchBreak:         r.LunchBreak,
		LunchBreakFrom:     r.LunchBreakFrom,
		LunchBreakDuration: r.LunchBreakDuration,
		SlotDuration:       r.SlotDefaultDuration,
		SlotSpaces:         r.SlotDefaultSpaces,
		SlotDepositPrice:   r.SlotDefaultDepositPrice,
		SlotInvoicePrice:   r.SlotDefaultInvoicePrice,
		LocationID:         r.LocationID,
	}
}
