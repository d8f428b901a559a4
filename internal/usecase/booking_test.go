//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"booking-platform/internal/domain/billing"
	"booking-platform/internal/domain/booking"
	"booking-platform/internal/domain/schedule"
	"booking-platform/internal/infra"
	"booking-platform/internal/pkg/errs"
	"booking-platform/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAvailability struct {
	slot *schedule.Slot
	err  error
}

func (f *fakeAvailability) CheckAvailability(_ context.Context, _ int64, _ time.Time) ([]schedule.Slot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []schedule.Slot{*f.slot}, nil
}

func (f *fakeAvailability) ResolveSlot(_ context.Context, _ int64, _ time.Time, _ schedule.TimeOfDay) (*schedule.Slot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.slot, nil
}

type fakeBookingRepo struct {
	created   *booking.Booking
	createErr error
	stored    *booking.Booking
}

func (f *fakeBookingRepo) CreateWithCapacity(_ context.Context, b *booking.Booking, _ int) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = b
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, _ uuid.UUID) (*booking.Booking, error) {
	if f.stored == nil {
		return nil, infra.WrapRepoErr("booking not found", errs.New("no rows"), infra.KindNotFound)
	}
	return f.stored, nil
}

func availableSlot(available int) *schedule.Slot {
	return &schedule.Slot{
		Date:            mondayInJune,
		CheckinTime:     schedule.TimeOfDay{Hours: 10, Minutes: 30},
		Duration:        60,
		SpacesTotal:     10,
		SpacesAvailable: available,
		DepositPrice:    50,
		InvoicePrice:    200,
		LocationID:      1,
	}
}

func confirmParams(spaces int) usecase.ConfirmBookingParams {
	return usecase.ConfirmBookingParams{
		LocationID:     1,
		Date:           mondayInJune,
		CheckinTime:    schedule.TimeOfDay{Hours: 10, Minutes: 30},
		NumberOfSpaces: spaces,
		Contact:        booking.Contact{Name: "John Doe", Email: "john@example.com"},
	}
}

func TestConfirmBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := usecase.NewBookingUseCase(repo, &fakeAvailability{slot: availableSlot(10)})

	b, err := uc.ConfirmBooking(context.Background(), confirmParams(2))
	require.NoError(t, err)
	assert.Equal(t, 2, b.NumberOfSpaces)
	assert.Same(t, b, repo.created)
}

func TestConfirmBookingConsumptionFromLineItems(t *testing.T) {
	credit, err := billing.NewCredit(time.Now(), "slot", "Slot reservation", 4, 800)
	require.NoError(t, err)

	params := confirmParams(0)
	params.LineItems = []billing.LineItem{credit}

	uc := usecase.NewBookingUseCase(&fakeBookingRepo{}, &fakeAvailability{slot: availableSlot(10)})
	b, err := uc.ConfirmBooking(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 4, b.NumberOfSpaces)
}

func TestConfirmBookingInsufficientCapacity(t *testing.T) {
	uc := usecase.NewBookingUseCase(&fakeBookingRepo{}, &fakeAvailability{slot: availableSlot(1)})

	_, err := uc.ConfirmBooking(context.Background(), confirmParams(2))
	assert.ErrorIs(t, err, usecase.ErrInsufficientCapacity)
}

func TestConfirmBookingConflictFromRepository(t *testing.T) {
	// The repository reports a conflict when a concurrent booking consumed
	// the remaining capacity after the pre-check.
	repo := &fakeBookingRepo{
		createErr: infra.WrapRepoErr("slot capacity exhausted", errs.New("conflict"), infra.KindConflict),
	}
	uc := usecase.NewBookingUseCase(repo, &fakeAvailability{slot: availableSlot(10)})

	_, err := uc.ConfirmBooking(context.Background(), confirmParams(2))
	assert.ErrorIs(t, err, usecase.ErrInsufficientCapacity)
}

func TestConfirmBookingPropagatesSlotErrors(t *testing.T) {
	uc := usecase.NewBookingUseCase(&fakeBookingRepo{}, &fakeAvailability{err: usecase.ErrSlotNotFound})

	_, err := uc.ConfirmBooking(context.Background(), confirmParams(1))
	assert.ErrorIs(t, err, usecase.ErrSlotNotFound)
}

func TestConfirmBookingValidationFailure(t *testing.T) {
	params := confirmParams(1)
	params.Contact = booking.Contact{}

	uc := usecase.NewBookingUseCase(&fakeBookingRepo{}, &fakeAvailability{slot: availableSlot(10)})
	_, err := uc.ConfirmBooking(context.Background(), params)
	assert.ErrorIs(t, err, usecase.ErrDomainValidationFailed)
}

func TestGetBooking(t *testing.T) {
	stored, err := booking.NewBooking(nil, 1, mondayInJune, schedule.TimeOfDay{Hours: 10, Minutes: 30}, 1,
		booking.Contact{Name: "Jane", Email: "jane@example.com"}, false, 0, nil)
	require.NoError(t, err)

	uc := usecase.NewBookingUseCase(&fakeBookingRepo{stored: stored}, &fakeAvailability{})
	got, err := uc.GetBooking(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)

	uc = usecase.NewBookingUseCase(&fakeBookingRepo{}, &fakeAvailability{})
	_, err = uc.GetBooking(context.Background(), uuid.New())
	assert.ErrorIs(t, err, usecase.ErrBookingNotFound)
}
