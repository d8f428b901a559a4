//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"booking-platform/internal/domain/schedule"
	"booking-platform/internal/infra"
	"booking-platform/internal/pkg/errs"
	"booking-platform/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRuleReader struct {
	custom   *schedule.CustomRule
	defaults []*schedule.DefaultRule
	err      error
}

func (f *fakeRuleReader) FindCustomFor(_ context.Context, _ int64, _ time.Time) (*schedule.CustomRule, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.custom == nil {
		return nil, infra.WrapRepoErr("custom rule not found", errs.New("no rows"), infra.KindNotFound)
	}
	return f.custom, nil
}

func (f *fakeRuleReader) FindDefaultsFor(_ context.Context, _ int64, _ time.Time) ([]*schedule.DefaultRule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.defaults, nil
}

type fakeConsumption struct {
	consumed map[int]int
	err      error
}

func (f *fakeConsumption) ConsumedForDate(_ context.Context, _ int64, _ time.Time) (map[int]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.consumed, nil
}

var mondayInJune = time.Date(2019, 6, 3, 0, 0, 0, 0, time.UTC)

func baseRule() schedule.Rule {
	return schedule.Rule{
		FirstCheckin:       schedule.TimeOfDay{Hours: 9, Minutes: 30},
		LastCheckin:        schedule.TimeOfDay{Hours: 15, Minutes: 30},
		LunchBreak:         true,
		LunchBreakFrom:     schedule.TimeOfDay{Hours: 12, Minutes: 30},
		LunchBreakDuration: 30,
		SlotDuration:       60,
		SlotSpaces:         10,
		SlotDepositPrice:   50,
		SlotInvoicePrice:   200,
		LocationID:         1,
	}
}

func defaultRule(t *testing.T, month *int, rule schedule.Rule) *schedule.DefaultRule {
	t.Helper()
	d, err := schedule.NewDefaultRule(schedule.Monday, month, rule)
	require.NoError(t, err)
	return d
}

func customRule(t *testing.T, rule schedule.Rule) *schedule.CustomRule {
	t.Helper()
	c, err := schedule.NewCustomRule(mondayInJune, rule)
	require.NoError(t, err)
	return c
}

func TestCheckAvailabilityNoRule(t *testing.T) {
	uc := usecase.NewAvailabilityUseCase(&fakeRuleReader{}, &fakeConsumption{})

	_, err := uc.CheckAvailability(context.Background(), 1, mondayInJune)
	assert.ErrorIs(t, err, usecase.ErrNoRule)
}

func TestCheckAvailabilityClosedDayIsEmptyNotError(t *testing.T) {
	rule := baseRule()
	rule.Closed = true
	uc := usecase.NewAvailabilityUseCase(
		&fakeRuleReader{defaults: []*schedule.DefaultRule{defaultRule(t, nil, rule)}},
		&fakeConsumption{},
	)

	slots, err := uc.CheckAvailability(context.Background(), 1, mondayInJune)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestCheckAvailabilityCustomRuleWins(t *testing.T) {
	custom := baseRule()
	custom.FirstCheckin = schedule.TimeOfDay{Hours: 6, Minutes: 30}
	custom.LastCheckin = schedule.TimeOfDay{Hours: 14, Minutes: 30}
	custom.SlotSpaces = 15

	uc := usecase.NewAvailabilityUseCase(
		&fakeRuleReader{
			custom:   customRule(t, custom),
			defaults: []*schedule.DefaultRule{defaultRule(t, nil, baseRule())},
		},
		&fakeConsumption{},
	)

	slots, err := uc.CheckAvailability(context.Background(), 1, mondayInJune)
	require.NoError(t, err)
	assert.Len(t, slots, 8, "custom rule replaces the default wholesale")
	assert.Equal(t, 15, slots[0].SpacesTotal)
}

func TestCheckAvailabilityMonthScopedBeatsGeneral(t *testing.T) {
	june := 6
	monthRule := baseRule()
	monthRule.SlotSpaces = 3

	uc := usecase.NewAvailabilityUseCase(
		&fakeRuleReader{defaults: []*schedule.DefaultRule{
			defaultRule(t, nil, baseRule()),
			defaultRule(t, &june, monthRule),
		}},
		&fakeConsumption{},
	)

	slots, err := uc.CheckAvailability(context.Background(), 1, mondayInJune)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, 3, slots[0].SpacesTotal, "month-scoped default is more specific")
}

func TestCheckAvailabilityAmbiguousRules(t *testing.T) {
	june := 6
	uc := usecase.NewAvailabilityUseCase(
		&fakeRuleReader{defaults: []*schedule.DefaultRule{
			defaultRule(t, &june, baseRule()),
			defaultRule(t, &june, baseRule()),
		}},
		&fakeConsumption{},
	)

	_, err := uc.CheckAvailability(context.Background(), 1, mondayInJune)
	assert.ErrorIs(t, err, usecase.ErrAmbiguousRule)
}

func TestCheckAvailabilitySubtractsConsumption(t *testing.T) {
	checkin1030 := (10 * 60) + 30
	uc := usecase.NewAvailabilityUseCase(
		&fakeRuleReader{defaults: []*schedule.DefaultRule{defaultRule(t, nil, baseRule())}},
		&fakeConsumption{consumed: map[int]int{checkin1030: 4}},
	)

	slots, err := uc.CheckAvailability(context.Background(), 1, mondayInJune)
	require.NoError(t, err)

	for _, s := range slots {
		if s.CheckinTime.MinutesFromMidnight() == checkin1030 {
			assert.Equal(t, 6, s.SpacesAvailable)
		} else {
			assert.Equal(t, 10, s.SpacesAvailable)
		}
	}
}

func TestCheckAvailabilityClampsAtZero(t *testing.T) {
	checkin930 := (9 * 60) + 30
	uc := usecase.NewAvailabilityUseCase(
		&fakeRuleReader{defaults: []*schedule.DefaultRule{defaultRule(t, nil, baseRule())}},
		&fakeConsumption{consumed: map[int]int{checkin930: 14}},
	)

	slots, err := uc.CheckAvailability(context.Background(), 1, mondayInJune)
	require.NoError(t, err)
	assert.Equal(t, 0, slots[0].SpacesAvailable, "availability never goes negative")
}

func TestResolveSlot(t *testing.T) {
	uc := usecase.NewAvailabilityUseCase(
		&fakeRuleReader{defaults: []*schedule.DefaultRule{defaultRule(t, nil, baseRule())}},
		&fakeConsumption{},
	)

	slot, err := uc.ResolveSlot(context.Background(), 1, mondayInJune, schedule.TimeOfDay{Hours: 10, Minutes: 30})
	require.NoError(t, err)
	assert.Equal(t, 10, slot.SpacesAvailable)

	_, err = uc.ResolveSlot(context.Background(), 1, mondayInJune, schedule.TimeOfDay{Hours: 10, Minutes: 45})
	assert.ErrorIs(t, err, usecase.ErrSlotNotFound)

	_, err = uc.ResolveSlot(context.Background(), 1, mondayInJune, schedule.TimeOfDay{Hours: 12, Minutes: 30})
	assert.ErrorIs(t, err, usecase.ErrSlotNotFound, "lunch slots do not exist")
}
