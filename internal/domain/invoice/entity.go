package invoice

import (
	"errors"
	"time"

	"booking-platform/internal/domain/billing"
	"booking-platform/internal/domain/booking"
	"booking-platform/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrNoSpacesRequested = errors.New("invoice must reserve at least one space")
	ErrMissingContact    = errors.New("invoice requires a contact name and email")
)

const slotLineItemCode = "slot"

// Addon is an extra the customer attached to the booking. The addon
// catalogue lives elsewhere; the pipeline carries these through opaquely.
type Addon struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
}

// Invoice holds the deposit demand raised against a slot. A credit line item
// is recorded at creation and a debit appended when a qualifying payment
// lands; BookingID stays nil until the asynchronous booking creation
// completes.
type Invoice struct {
	ID             uuid.UUID
	LocationID     int64
	Date           time.Time
	CheckinTime    schedule.TimeOfDay
	NumberOfSpaces int
	Contact        booking.Contact
	Addons         []Addon
	DepositPrice   int64
	Paid           bool
	BookingID      *uuid.UUID
	LineItems      []billing.LineItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewInvoice raises an invoice against the given slot. The deposit is the
// slot's per-space deposit times the spaces reserved, and the opening credit
// carries the full invoice price for the same quantity.
func NewInvoice(
	slot schedule.Slot,
	numberOfSpaces int,
	contact booking.Contact,
	addons []Addon,
	now time.Time,
) (*Invoice, error) {
	if numberOfSpaces <= 0 {
		return nil, ErrNoSpacesRequested
	}
	if contact.Name == "" || contact.Email == "" {
		return nil, ErrMissingContact
	}

	credit, err := billing.NewCredit(
		now,
		slotLineItemCode,
		"Slot reservation",
		numberOfSpaces,
		slot.InvoicePrice*int64(numberOfSpaces),
	)
	if err != nil {
		return nil, err
	}

	return &Invoice{
		ID:             uuid.New(),
		LocationID:     slot.LocationID,
		Date:           slot.Date,
		CheckinTime:    slot.CheckinTime,
		NumberOfSpaces: numberOfSpaces,
		Contact:        contact,
		Addons:         addons,
		DepositPrice:   slot.DepositPrice * int64(numberOfSpaces),
		Paid:           false,
		BookingID:      nil,
		LineItems:      []billing.LineItem{credit},
	}, nil
}

// CoversDeposit reports whether a payment of the given amount settles the
// deposit in full. Partial payments never trigger booking creation.
func (i *Invoice) CoversDeposit(amount int64) bool {
	return amount >= i.DepositPrice
}

// DepositSettled reports whether the deposit debit already sits on the
// ledger, or booking creation has completed. Repeat payments never accrue a
// second debit.
func (i *Invoice) DepositSettled() bool {
	if i.Paid {
		return true
	}
	for _, item := range i.LineItems {
		if item.Type == billing.Debit {
			return true
		}
	}
	return false
}

// DebitForDeposit is the ledger entry appended once the deposit is paid.
func (i *Invoice) DebitForDeposit(at time.Time) billing.LineItem {
	return billing.NewDebit(at, slotLineItemCode, "Deposit payment", i.DepositPrice)
}
