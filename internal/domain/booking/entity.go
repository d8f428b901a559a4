package booking

import (
	"errors"
	"time"

	"booking-platform/internal/domain/billing"
	"booking-platform/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrNoSpacesRequested = errors.New("booking must consume at least one space")
	ErrMissingContact    = errors.New("booking requires a contact name and email")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Contact is the customer the reservation is held for.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Booking is a confirmed reservation consuming capacity from one slot.
// InvoiceID is either a reference into the invoice pipeline or, for manual
// walk-in entries, an opaque caller-supplied token.
type Booking struct {
	ID             uuid.UUID
	InvoiceID      *string
	LocationID     int64
	Date           time.Time
	CheckinTime    schedule.TimeOfDay
	NumberOfSpaces int
	Contact        Contact
	Paid           bool
	DepositPrice   int64
	LineItems      []billing.LineItem
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewBooking validates and constructs a confirmed booking. When the caller
// supplies no explicit space count, consumption falls back to the summed
// quantity of credit line items.
func NewBooking(
	invoiceID *string,
	locationID int64,
	date time.Time,
	checkin schedule.TimeOfDay,
	numberOfSpaces int,
	contact Contact,
	paid bool,
	depositPrice int64,
	items []billing.LineItem,
) (*Booking, error) {
	if numberOfSpaces <= 0 {
		numberOfSpaces = billing.CreditQuantity(items)
	}
	if numberOfSpaces <= 0 {
		return nil, ErrNoSpacesRequested
	}
	if contact.Name == "" || contact.Email == "" {
		return nil, ErrMissingContact
	}
	for _, it := range items {
		if !it.Type.IsValid() {
			return nil, billing.ErrInvalidLineItemType
		}
	}

	return &Booking{
		ID:             uuid.New(),
		InvoiceID:      invoiceID,
		LocationID:     locationID,
		Date:           schedule.DateOnly(date),
		CheckinTime:    checkin,
		NumberOfSpaces: numberOfSpaces,
		Contact:        contact,
		Paid:           paid,
		DepositPrice:   depositPrice,
		LineItems:      items,
		Status:         StatusConfirmed,
	}, nil
}

func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}
