//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"booking-platform/internal/domain/schedule"
	"booking-platform/internal/infra"
	"booking-platform/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRuleStore struct {
	defaults map[uuid.UUID]*schedule.DefaultRule
	customs  map[uuid.UUID]*schedule.CustomRule

	duplicateOnCreate bool
}

func newFakeRuleStore() *fakeRuleStore {
	return &fakeRuleStore{
		defaults: map[uuid.UUID]*schedule.DefaultRule{},
		customs:  map[uuid.UUID]*schedule.CustomRule{},
	}
}

func (f *fakeRuleStore) CreateDefault(_ context.Context, rule *schedule.DefaultRule) error {
	if f.duplicateOnCreate {
		return infra.WrapRepoErr("default rule already exists for this weekday scope", nil, infra.KindDuplicateKey)
	}
	f.defaults[rule.ID] = rule
	return nil
}

func (f *fakeRuleStore) UpdateDefault(_ context.Context, rule *schedule.DefaultRule) error {
	if _, ok := f.defaults[rule.ID]; !ok {
		return infra.WrapRepoErr("default rule not found", nil, infra.KindNotFound)
	}
	f.defaults[rule.ID] = rule
	return nil
}

func (f *fakeRuleStore) DeleteDefault(_ context.Context, id uuid.UUID) error {
	if _, ok := f.defaults[id]; !ok {
		return infra.WrapRepoErr("default rule not found", nil, infra.KindNotFound)
	}
	delete(f.defaults, id)
	return nil
}

func (f *fakeRuleStore) FindDefaultByID(_ context.Context, id uuid.UUID) (*schedule.DefaultRule, error) {
	rule, ok := f.defaults[id]
	if !ok {
		return nil, infra.WrapRepoErr("default rule not found", nil, infra.KindNotFound)
	}
	return rule, nil
}

func (f *fakeRuleStore) CreateCustom(_ context.Context, rule *schedule.CustomRule) error {
	if f.duplicateOnCreate {
		return infra.WrapRepoErr("custom rule already exists for this date", nil, infra.KindDuplicateKey)
	}
	f.customs[rule.ID] = rule
	return nil
}

func (f *fakeRuleStore) UpdateCustom(_ context.Context, rule *schedule.CustomRule) error {
	if _, ok := f.customs[rule.ID]; !ok {
		return infra.WrapRepoErr("custom rule not found", nil, infra.KindNotFound)
	}
	f.customs[rule.ID] = rule
	return nil
}

func (f *fakeRuleStore) DeleteCustom(_ context.Context, id uuid.UUID) error {
	if _, ok := f.customs[id]; !ok {
		return infra.WrapRepoErr("custom rule not found", nil, infra.KindNotFound)
	}
	delete(f.customs, id)
	return nil
}

func (f *fakeRuleStore) FindCustomFor(_ context.Context, locationID int64, date time.Time) (*schedule.CustomRule, error) {
	day := schedule.DateOnly(date)
	for _, rule := range f.customs {
		if rule.Rule.LocationID == locationID && rule.Date.Equal(day) {
			return rule, nil
		}
	}
	return nil, infra.WrapRepoErr("custom rule not found", nil, infra.KindNotFound)
}

func (f *fakeRuleStore) FindDefaultsFor(_ context.Context, locationID int64, date time.Time) ([]*schedule.DefaultRule, error) {
	var result []*schedule.DefaultRule
	for _, rule := range f.defaults {
		if rule.Rule.LocationID == locationID && rule.AppliesTo(date) {
			result = append(result, rule)
		}
	}
	return result, nil
}

func mondayRule() schedule.Rule {
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

func TestCreateDefaultRule(t *testing.T) {
	store := newFakeRuleStore()
	uc := usecase.NewRuleUseCase(store)

	created, err := uc.CreateDefaultRule(context.Background(), schedule.Monday, nil, mondayRule())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, schedule.Monday, created.Weekday)
	assert.Len(t, store.defaults, 1)
}

func TestCreateDefaultRuleRejectsInvalidWindow(t *testing.T) {
	store := newFakeRuleStore()
	uc := usecase.NewRuleUseCase(store)

	rule := mondayRule()
	rule.FirstCheckin = schedule.TimeOfDay{Hours: 16}

	_, err := uc.CreateDefaultRule(context.Background(), schedule.Monday, nil, rule)
	assert.ErrorIs(t, err, usecase.ErrDomainValidationFailed)
	assert.Empty(t, store.defaults)
}

func TestCreateDefaultRuleDuplicateScope(t *testing.T) {
	store := newFakeRuleStore()
	store.duplicateOnCreate = true
	uc := usecase.NewRuleUseCase(store)

	_, err := uc.CreateDefaultRule(context.Background(), schedule.Monday, nil, mondayRule())
	assert.ErrorIs(t, err, usecase.ErrDuplicateRule)
}

func TestUpdateDefaultRule(t *testing.T) {
	store := newFakeRuleStore()
	uc := usecase.NewRuleUseCase(store)

	created, err := uc.CreateDefaultRule(context.Background(), schedule.Monday, nil, mondayRule())
	require.NoError(t, err)

	changed := mondayRule()
	changed.LunchBreak = false

	updated, err := uc.UpdateDefaultRule(context.Background(), created.ID, schedule.Monday, nil, changed)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.False(t, updated.Rule.LunchBreak)
}

func TestUpdateDefaultRuleNotFound(t *testing.T) {
	uc := usecase.NewRuleUseCase(newFakeRuleStore())

	_, err := uc.UpdateDefaultRule(context.Background(), uuid.New(), schedule.Monday, nil, mondayRule())
	assert.ErrorIs(t, err, usecase.ErrRuleNotFound)
}

func TestDeleteDefaultRule(t *testing.T) {
	store := newFakeRuleStore()
	uc := usecase.NewRuleUseCase(store)

	created, err := uc.CreateDefaultRule(context.Background(), schedule.Monday, nil, mondayRule())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteDefaultRule(context.Background(), created.ID))
	assert.Empty(t, store.defaults)

	assert.ErrorIs(t, uc.DeleteDefaultRule(context.Background(), created.ID), usecase.ErrRuleNotFound)
}

func TestCreateCustomRuleNormalizesDate(t *testing.T) {
	store := newFakeRuleStore()
	uc := usecase.NewRuleUseCase(store)

	noon := time.Date(2019, 6, 10, 12, 41, 7, 0, time.UTC)
	created, err := uc.CreateCustomRule(context.Background(), noon, mondayRule())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, 6, 10, 0, 0, 0, 0, time.UTC), created.Date)
}

func TestUpdateCustomRuleNotFound(t *testing.T) {
	uc := usecase.NewRuleUseCase(newFakeRuleStore())

	_, err := uc.UpdateCustomRule(context.Background(), uuid.New(), time.Date(2019, 6, 10, 0, 0, 0, 0, time.UTC), mondayRule())
	assert.ErrorIs(t, err, usecase.ErrRuleNotFound)
}

func TestDeleteCustomRuleRevertsToDefault(t *testing.T) {
	store := newFakeRuleStore()
	uc := usecase.NewRuleUseCase(store)

	_, err := uc.CreateDefaultRule(context.Background(), schedule.Monday, nil, mondayRule())
	require.NoError(t, err)

	override := mondayRule()
	override.Closed = true
	monday := time.Date(2019, 6, 3, 0, 0, 0, 0, time.UTC)
	custom, err := uc.CreateCustomRule(context.Background(), monday, override)
	require.NoError(t, err)

	require.NoError(t, uc.DeleteCustomRule(context.Background(), custom.ID))

	_, err = store.FindCustomFor(context.Background(), 1, monday)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	defaults, err := store.FindDefaultsFor(context.Background(), 1, monday)
	require.NoError(t, err)
	assert.Len(t, defaults, 1)
}
