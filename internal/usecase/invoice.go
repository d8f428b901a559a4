package usecase

import (
	"context"
	"errors"
	"time"

	"booking-platform/internal/domain/billing"
	"booking-platform/internal/domain/booking"
	"booking-platform/internal/domain/invoice"
	"booking-platform/internal/domain/schedule"
	"booking-platform/internal/infra"
	"booking-platform/internal/pkg/clock"
	"booking-platform/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

type InvoiceRepository interface {
	Create(ctx context.Context, inv *invoice.Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error)
	AppendLineItem(ctx context.Context, id uuid.UUID, item billing.LineItem) error
	LinkBooking(ctx context.Context, id, bookingID uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *invoice.Payment) error
}

type BookingJobEnqueuer interface {
	Enqueue(ctx context.Context, invoiceID uuid.UUID) error
}

type CreateInvoiceParams struct {
	LocationID     int64
	Date           time.Time
	CheckinTime    schedule.TimeOfDay
	NumberOfSpaces int
	Contact        booking.Contact
	Addons         []invoice.Addon
}

type RecordPaymentParams struct {
	InvoiceID uuid.UUID
	Method    string
	AmountDue int64
	Status    invoice.PaymentStatus
}

type InvoiceUseCase interface {
	// CreateInvoice raises a deposit invoice against the matching slot.
	CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*invoice.Invoice, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error)
	// RecordPayment persists the attempt unconditionally; a successful
	// payment covering the deposit appends the debit entry and enqueues
	// asynchronous booking creation. Callers observe completion by polling
	// the invoice until booking_id is set.
	RecordPayment(ctx context.Context, params RecordPaymentParams) (*invoice.Payment, error)
	// CompleteBooking links the created booking back onto the invoice; the
	// booking job worker calls this once confirmBooking succeeds.
	CompleteBooking(ctx context.Context, invoiceID, bookingID uuid.UUID) error
}

type invoiceUseCaseImpl struct {
	invoices     InvoiceRepository
	payments     PaymentRepository
	jobs         BookingJobEnqueuer
	availability AvailabilityUseCase
	clock        clock.Clock
}

func NewInvoiceUseCase(
	invoices InvoiceRepository,
	payments PaymentRepository,
	jobs BookingJobEnqueuer,
	availability AvailabilityUseCase,
	clock clock.Clock,
) InvoiceUseCase {
	return &invoiceUseCaseImpl{
		invoices:     invoices,
		payments:     payments,
		jobs:         jobs,
		availability: availability,
		clock:        clock,
	}
}

func (u *invoiceUseCaseImpl) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*invoice.Invoice, error) {
	slot, err := u.availability.ResolveSlot(ctx, params.LocationID, params.Date, params.CheckinTime)
	if err != nil {
		return nil, err
	}
	if slot.SpacesAvailable < params.NumberOfSpaces {
		return nil, ErrInsufficientCapacity
	}

	entity, err := invoice.NewInvoice(*slot, params.NumberOfSpaces, params.Contact, params.Addons, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	if err := u.invoices.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (u *invoiceUseCaseImpl) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	inv, err := u.invoices.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, errs.Wrap(err, "failed to find invoice")
	}
	return inv, nil
}

func (u *invoiceUseCaseImpl) RecordPayment(ctx context.Context, params RecordPaymentParams) (*invoice.Payment, error) {
	inv, err := u.GetInvoice(ctx, params.InvoiceID)
	if err != nil {
		return nil, err
	}

	payment, err := invoice.NewPayment(params.InvoiceID, params.Method, params.AmountDue, params.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	if err := u.payments.Create(ctx, payment); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !payment.Succeeded() || !inv.CoversDeposit(payment.AmountDue) {
		// A failed or partial payment leaves the invoice unpaid; the
		// attempt itself is already on record.
		return payment, nil
	}
	if inv.DepositSettled() {
		// A repeat settlement is recorded but never mutates the ledger;
		// the deposit debit stays singular.
		return payment, nil
	}

	if err := u.invoices.AppendLineItem(ctx, inv.ID, inv.DebitForDeposit(u.clock.Now())); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := u.jobs.Enqueue(ctx, inv.ID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return payment, nil
}

func (u *invoiceUseCaseImpl) CompleteBooking(ctx context.Context, invoiceID, bookingID uuid.UUID) error {
	if err := u.invoices.LinkBooking(ctx, invoiceID, bookingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInvoiceNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
