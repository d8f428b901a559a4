package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCheckinWindow = errors.New("first checkin must be before last checkin")
	ErrLunchOutsideWindow   = errors.New("lunch break must fall within the checkin window")
	ErrInvalidSlotDuration  = errors.New("slot duration must be positive")
	ErrInvalidSlotSpaces    = errors.New("slot spaces must be positive")
	ErrNegativePrice        = errors.New("price cannot be negative")
)

// Rule is the resolved availability policy governing a single date. It is
// either a CustomRule's values or a DefaultRule's values, never a merge of
// the two.
type Rule struct {
	Closed             bool
	FirstCheckin       TimeOfDay
	LastCheckin        TimeOfDay
	LunchBreak         bool
	LunchBreakFrom     TimeOfDay
	LunchBreakDuration int
	SlotDuration       int
	SlotSpaces         int
	SlotDepositPrice   int64
	SlotInvoicePrice   int64
	LocationID         int64
}

func (r Rule) Validate() error {
	if r.Closed {
		return nil
	}
	if !r.FirstCheckin.Before(r.LastCheckin) {
		return ErrInvalidCheckinWindow
	}
	if r.SlotDuration <= 0 {
		return ErrInvalidSlotDuration
	}
	if r.SlotSpaces <= 0 {
		return ErrInvalidSlotSpaces
	}
	if r.SlotDepositPrice < 0 || r.SlotInvoicePrice < 0 {
		return ErrNegativePrice
	}
	if r.LunchBreak {
		from := r.LunchBreakFrom.MinutesFromMidnight()
		if from < r.FirstCheckin.MinutesFromMidnight() || from > r.LastCheckin.MinutesFromMidnight() {
			return ErrLunchOutsideWindow
		}
		if r.LunchBreakDuration <= 0 {
			return ErrInvalidSlotDuration
		}
	}
	return nil
}

// DefaultRule is the recurring weekly policy for one weekday, optionally
// restricted to a single month.
type DefaultRule struct {
	ID        uuid.UUID
	Weekday   Weekday
	Month     *int
	Rule      Rule
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewDefaultRule(weekday Weekday, month *int, rule Rule) (*DefaultRule, error) {
	if !weekday.IsValid() {
		return nil, ErrInvalidWeekday
	}
	if month != nil && (*month < 1 || *month > 12) {
		return nil, ErrInvalidMonth
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return &DefaultRule{
		ID:      uuid.New(),
		Weekday: weekday,
		Month:   month,
		Rule:    rule,
	}, nil
}

// AppliesTo reports whether the rule governs the given date, ignoring any
// higher-precedence custom rule.
func (d *DefaultRule) AppliesTo(date time.Time) bool {
	if WeekdayOf(date) != d.Weekday {
		return false
	}
	if d.Month != nil && int(date.Month()) != *d.Month {
		return false
	}
	return true
}

// CustomRule fully overrides the default rule for one exact date. Deleting it
// reverts the date to whatever DefaultRule would otherwise resolve.
type CustomRule struct {
	ID        uuid.UUID
	Date      time.Time
	Rule      Rule
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCustomRule(date time.Time, rule Rule) (*CustomRule, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return &CustomRule{
		ID:   uuid.New(),
		Date: DateOnly(date),
		Rule: rule,
	}, nil
}
