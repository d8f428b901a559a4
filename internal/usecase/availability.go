package usecase

import (
	"context"
	"errors"
	"time"

	"booking-platform/internal/domain/schedule"
	"booking-platform/internal/infra"
	"booking-platform/internal/pkg/errs"
)

var (
	ErrNoRule        = errors.New("no rules exist for the given date")
	ErrAmbiguousRule = errors.New("multiple default rules match the given date")
	ErrSlotNotFound  = errors.New("no slot exists at the given checkin time")
)

type RuleReader interface {
	FindCustomFor(ctx context.Context, locationID int64, date time.Time) (*schedule.CustomRule, error)
	FindDefaultsFor(ctx context.Context, locationID int64, date time.Time) ([]*schedule.DefaultRule, error)
}

type ConsumptionReader interface {
	ConsumedForDate(ctx context.Context, locationID int64, date time.Time) (map[int]int, error)
}

type AvailabilityUseCase interface {
	// CheckAvailability returns the date's bookable slots with remaining
	// capacity, ordered by checkin time. ErrNoRule distinguishes an
	// unconfigured date from a closed one (which yields an empty slice).
	CheckAvailability(ctx context.Context, locationID int64, date time.Time) ([]schedule.Slot, error)
	// ResolveSlot finds the single slot starting at checkin, capacity
	// annotated, or ErrSlotNotFound.
	ResolveSlot(ctx context.Context, locationID int64, date time.Time, checkin schedule.TimeOfDay) (*schedule.Slot, error)
}

type availabilityUseCaseImpl struct {
	rules  RuleReader
	ledger ConsumptionReader
}

func NewAvailabilityUseCase(rules RuleReader, ledger ConsumptionReader) AvailabilityUseCase {
	return &availabilityUseCaseImpl{rules: rules, ledger: ledger}
}

func (u *availabilityUseCaseImpl) CheckAvailability(ctx context.Context, locationID int64, date time.Time) ([]schedule.Slot, error) {
	rule, err := u.resolveRule(ctx, locationID, date)
	if err != nil {
		return nil, err
	}

	slots := schedule.GenerateSlots(date, rule)
	if len(slots) == 0 {
		return slots, nil
	}

	consumed, err := u.ledger.ConsumedForDate(ctx, locationID, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read consumed capacity")
	}

	for i := range slots {
		available := slots[i].SpacesTotal - consumed[slots[i].CheckinTime.MinutesFromMidnight()]
		if available < 0 {
			// Overbooking guard: never report negative availability.
			available = 0
		}
		slots[i].SpacesAvailable = available
	}
	return slots, nil
}

func (u *availabilityUseCaseImpl) ResolveSlot(ctx context.Context, locationID int64, date time.Time, checkin schedule.TimeOfDay) (*schedule.Slot, error) {
	slots, err := u.CheckAvailability(ctx, locationID, date)
	if err != nil {
		return nil, err
	}
	slot := schedule.FindSlot(slots, checkin)
	if slot == nil {
		return nil, ErrSlotNotFound
	}
	return slot, nil
}

// resolveRule applies override precedence: a custom rule for the exact date
// wins wholesale; otherwise the weekday default applies, with a
// month-restricted default more specific than an unrestricted one. Two
// defaults at the same specificity are a configuration defect, not a
// tie to break silently.
func (u *availabilityUseCaseImpl) resolveRule(ctx context.Context, locationID int64, date time.Time) (schedule.Rule, error) {
	custom, err := u.rules.FindCustomFor(ctx, locationID, date)
	if err == nil {
		return custom.Rule, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return schedule.Rule{}, errs.Wrap(err, "failed to look up custom rule")
	}

	defaults, err := u.rules.FindDefaultsFor(ctx, locationID, date)
	if err != nil {
		return schedule.Rule{}, errs.Wrap(err, "failed to look up default rules")
	}

	var monthScoped, general []*schedule.DefaultRule
	for _, d := range defaults {
		if d.Month != nil {
			monthScoped = append(monthScoped, d)
		} else {
			general = append(general, d)
		}
	}

	switch {
	case len(monthScoped) > 1 || (len(monthScoped) == 0 && len(general) > 1):
		return schedule.Rule{}, ErrAmbiguousRule
	case len(monthScoped) == 1:
		return monthScoped[0].Rule, nil
	case len(general) == 1:
		return general[0].Rule, nil
	default:
		return schedule.Rule{}, ErrNoRule
	}
}
