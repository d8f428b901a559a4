//go:build unit

package invoice_test

import (
	"testing"
	"time"

	"booking-platform/internal/domain/billing"
	"booking-platform/internal/domain/booking"
	"booking-platform/internal/domain/invoice"
	"booking-platform/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testContact = booking.Contact{Name: "John Doe", Email: "john@example.com"}

func testSlot() schedule.Slot {
	return schedule.Slot{
		Date:            time.Date(2019, 6, 3, 0, 0, 0, 0, time.UTC),
		CheckinTime:     schedule.TimeOfDay{Hours: 10, Minutes: 30},
		Duration:        60,
		SpacesTotal:     10,
		SpacesAvailable: 10,
		DepositPrice:    50,
		InvoicePrice:    200,
		LocationID:      1,
	}
}

func TestNewInvoice(t *testing.T) {
	now := time.Date(2019, 6, 1, 9, 0, 0, 0, time.UTC)

	inv, err := invoice.NewInvoice(testSlot(), 5, testContact, nil, now)
	require.NoError(t, err)

	assert.Equal(t, int64(250), inv.DepositPrice, "deposit is per-space price times spaces")
	assert.False(t, inv.Paid)
	assert.Nil(t, inv.BookingID)

	require.Len(t, inv.LineItems, 1, "a fresh invoice carries only the opening credit")
	credit := inv.LineItems[0]
	assert.Equal(t, billing.Credit, credit.Type)
	assert.Equal(t, 5, credit.Quantity)
	assert.Equal(t, int64(1000), credit.Amount, "credit carries the full invoice price")
}

func TestNewInvoiceValidation(t *testing.T) {
	now := time.Now()

	_, err := invoice.NewInvoice(testSlot(), 0, testContact, nil, now)
	assert.ErrorIs(t, err, invoice.ErrNoSpacesRequested)

	_, err = invoice.NewInvoice(testSlot(), 1, booking.Contact{}, nil, now)
	assert.ErrorIs(t, err, invoice.ErrMissingContact)
}

func TestCoversDeposit(t *testing.T) {
	inv, err := invoice.NewInvoice(testSlot(), 5, testContact, nil, time.Now())
	require.NoError(t, err)

	assert.True(t, inv.CoversDeposit(250))
	assert.True(t, inv.CoversDeposit(300), "overpayment still settles the deposit")
	assert.False(t, inv.CoversDeposit(249), "partial payment never settles")
}

func TestDebitForDeposit(t *testing.T) {
	inv, err := invoice.NewInvoice(testSlot(), 5, testContact, nil, time.Now())
	require.NoError(t, err)

	at := time.Date(2019, 6, 2, 12, 0, 0, 0, time.UTC)
	debit := inv.DebitForDeposit(at)
	assert.Equal(t, billing.Debit, debit.Type)
	assert.Equal(t, inv.DepositPrice, debit.Amount)
	assert.Equal(t, at, debit.Timestamp)
}

func TestDepositSettled(t *testing.T) {
	inv, err := invoice.NewInvoice(testSlot(), 5, testContact, nil, time.Now())
	require.NoError(t, err)

	assert.False(t, inv.DepositSettled(), "opening credit alone settles nothing")

	inv.LineItems = append(inv.LineItems, inv.DebitForDeposit(time.Now()))
	assert.True(t, inv.DepositSettled(), "a debit on the ledger settles the deposit")

	inv, err = invoice.NewInvoice(testSlot(), 5, testContact, nil, time.Now())
	require.NoError(t, err)
	inv.Paid = true
	assert.True(t, inv.DepositSettled(), "a completed booking settles the deposit")
}

func TestNewPaymentStatus(t *testing.T) {
	for _, s := range []string{"pending", "successful", "failed"} {
		got, err := invoice.NewPaymentStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(got))
	}

	_, err := invoice.NewPaymentStatus("declined")
	assert.ErrorIs(t, err, invoice.ErrInvalidPaymentStatus)
}

func TestPaymentSucceeded(t *testing.T) {
	id := uuid.New()

	p, err := invoice.NewPayment(id, "credit_card", 250, invoice.PaymentSuccessful)
	require.NoError(t, err)
	assert.True(t, p.Succeeded())
	assert.Equal(t, id, p.InvoiceID)

	p, err = invoice.NewPayment(id, "credit_card", 250, invoice.PaymentFailed)
	require.NoError(t, err)
	assert.False(t, p.Succeeded())
}
