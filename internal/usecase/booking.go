package usecase

import (
	"context"
	"errors"
	"time"

	"booking-platform/internal/domain/billing"
	"booking-platform/internal/domain/booking"
	"booking-platform/internal/domain/schedule"
	"booking-platform/internal/infra"
	"booking-platform/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInsufficientCapacity = errors.New("not enough spaces available in the slot")
)

type BookingRepository interface {
	CreateWithCapacity(ctx context.Context, b *booking.Booking, spacesTotal int) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

// ConfirmBookingParams carries both pipeline payloads and manual walk-in
// entries; InvoiceID is opaque for the latter.
type ConfirmBookingParams struct {
	InvoiceID      *string
	LocationID     int64
	Date           time.Time
	CheckinTime    schedule.TimeOfDay
	NumberOfSpaces int
	Contact        booking.Contact
	Paid           bool
	DepositPrice   int64
	LineItems      []billing.LineItem
}

type BookingUseCase interface {
	ConfirmBooking(ctx context.Context, params ConfirmBookingParams) (*booking.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	bookings     BookingRepository
	availability AvailabilityUseCase
}

func NewBookingUseCase(bookings BookingRepository, availability AvailabilityUseCase) BookingUseCase {
	return &bookingUseCaseImpl{bookings: bookings, availability: availability}
}

// ConfirmBooking validates the target slot and persists the booking. The
// capacity check is pushed down into the repository so that concurrent
// confirmations for the same slot serialize on one check-then-write.
func (u *bookingUseCaseImpl) ConfirmBooking(ctx context.Context, params ConfirmBookingParams) (*booking.Booking, error) {
	slot, err := u.availability.ResolveSlot(ctx, params.LocationID, params.Date, params.CheckinTime)
	if err != nil {
		return nil, err
	}

	entity, err := booking.NewBooking(
		params.InvoiceID,
		params.LocationID,
		params.Date,
		params.CheckinTime,
		params.NumberOfSpaces,
		params.Contact,
		params.Paid,
		params.DepositPrice,
		params.LineItems,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	if entity.NumberOfSpaces > slot.SpacesAvailable {
		return nil, ErrInsufficientCapacity
	}

	if err := u.bookings.CreateWithCapacity(ctx, entity, slot.SpacesTotal); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrInsufficientCapacity
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := u.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return b, nil
}
