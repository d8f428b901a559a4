package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("time of day out of range")
	ErrInvalidWeekday   = errors.New("invalid weekday")
	ErrInvalidMonth     = errors.New("month must be between 1 and 12")
)

// TimeOfDay is a wall-clock time local to the location, carried on the wire
// as a {hours, minutes} object.
type TimeOfDay struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

func NewTimeOfDay(hours, minutes int) (TimeOfDay, error) {
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{Hours: hours, Minutes: minutes}, nil
}

// TimeOfDayFromMinutes converts minutes-since-midnight back into a TimeOfDay.
// Out-of-range input is clamped to the same day.
func TimeOfDayFromMinutes(total int) TimeOfDay {
	if total < 0 {
		total = 0
	}
	total %= 24 * 60
	return TimeOfDay{Hours: total / 60, Minutes: total % 60}
}

func (t TimeOfDay) MinutesFromMidnight() int {
	return t.Hours*60 + t.Minutes
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.MinutesFromMidnight() < other.MinutesFromMidnight()
}

func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.Hours == other.Hours && t.Minutes == other.Minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}

type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
	Sunday    Weekday = "sun"
)

func NewWeekday(value string) (Weekday, error) {
	w := Weekday(strings.ToLower(strings.TrimSpace(value)))
	if !w.IsValid() {
		return "", ErrInvalidWeekday
	}
	return w, nil
}

func (w Weekday) IsValid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	default:
		return false
	}
}

func (w Weekday) String() string {
	return string(w)
}

// WeekdayOf maps a calendar date onto the rule weekday vocabulary.
func WeekdayOf(date time.Time) Weekday {
	switch date.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// DateOnly strips the clock component; rules and bookings are keyed by
// calendar date, local to the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
