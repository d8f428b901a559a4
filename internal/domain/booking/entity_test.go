//go:build unit

package booking_test

import (
	"testing"
	"time"

	"booking-platform/internal/domain/billing"
	"booking-platform/internal/domain/booking"
	"booking-platform/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDate    = time.Date(2019, 6, 3, 0, 0, 0, 0, time.UTC)
	testCheckin = schedule.TimeOfDay{Hours: 10, Minutes: 30}
	testContact = booking.Contact{Name: "John Doe", Email: "john@example.com", Phone: "0123456789"}
)

func TestNewBooking(t *testing.T) {
	b, err := booking.NewBooking(nil, 1, testDate, testCheckin, 2, testContact, false, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, b.NumberOfSpaces)
	assert.Equal(t, booking.StatusConfirmed, b.Status)
	assert.True(t, b.IsActive())
}

func TestNewBookingFallsBackToCreditQuantity(t *testing.T) {
	credit, err := billing.NewCredit(time.Now(), "slot", "Slot reservation", 3, 600)
	require.NoError(t, err)

	b, err := booking.NewBooking(nil, 1, testDate, testCheckin, 0, testContact, true, 150,
		[]billing.LineItem{credit})
	require.NoError(t, err)
	assert.Equal(t, 3, b.NumberOfSpaces, "consumption falls back to summed credit quantities")
}

func TestNewBookingRejectsZeroConsumption(t *testing.T) {
	_, err := booking.NewBooking(nil, 1, testDate, testCheckin, 0, testContact, false, 0, nil)
	assert.ErrorIs(t, err, booking.ErrNoSpacesRequested)

	debit := billing.NewDebit(time.Now(), "slot", "Deposit payment", 100)
	_, err = booking.NewBooking(nil, 1, testDate, testCheckin, 0, testContact, false, 0,
		[]billing.LineItem{debit})
	assert.ErrorIs(t, err, booking.ErrNoSpacesRequested, "debit-only ledgers consume nothing")
}

func TestNewBookingRequiresContact(t *testing.T) {
	_, err := booking.NewBooking(nil, 1, testDate, testCheckin, 1, booking.Contact{Email: "a@b.c"}, false, 0, nil)
	assert.ErrorIs(t, err, booking.ErrMissingContact)

	_, err = booking.NewBooking(nil, 1, testDate, testCheckin, 1, booking.Contact{Name: "Jane"}, false, 0, nil)
	assert.ErrorIs(t, err, booking.ErrMissingContact)
}

func TestNewBookingRejectsUnknownLineItemType(t *testing.T) {
	bad := billing.LineItem{Type: "refund", Quantity: 1}
	_, err := booking.NewBooking(nil, 1, testDate, testCheckin, 1, testContact, false, 0,
		[]billing.LineItem{bad})
	assert.ErrorIs(t, err, billing.ErrInvalidLineItemType)
}

func TestNewBookingNormalizesDate(t *testing.T) {
	noon := time.Date(2019, 6, 3, 12, 15, 0, 0, time.UTC)
	b, err := booking.NewBooking(nil, 1, noon, testCheckin, 1, testContact, false, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, testDate, b.Date)
}
