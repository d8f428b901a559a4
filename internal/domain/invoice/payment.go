package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidPaymentStatus = errors.New("invalid payment status")

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentSuccessful PaymentStatus = "successful"
	PaymentFailed     PaymentStatus = "failed"
)

func NewPaymentStatus(value string) (PaymentStatus, error) {
	s := PaymentStatus(value)
	switch s {
	case PaymentPending, PaymentSuccessful, PaymentFailed:
		return s, nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}

// Payment is an immutable record of one payment attempt against an invoice.
// Card details are handled by the external gateway; only the method name is
// kept for the audit trail.
type Payment struct {
	ID        uuid.UUID
	InvoiceID uuid.UUID
	Method    string
	AmountDue int64
	Status    PaymentStatus
	CreatedAt time.Time
}

func NewPayment(invoiceID uuid.UUID, method string, amountDue int64, status PaymentStatus) (*Payment, error) {
	if !status.IsTerminalOrPending() {
		return nil, ErrInvalidPaymentStatus
	}
	return &Payment{
		ID:        uuid.New(),
		InvoiceID: invoiceID,
		Method:    method,
		AmountDue: amountDue,
		Status:    status,
	}, nil
}

func (s PaymentStatus) IsTerminalOrPending() bool {
	switch s {
	case PaymentPending, PaymentSuccessful, PaymentFailed:
		return true
	default:
		return false
	}
}

func (p *Payment) Succeeded() bool {
	return p.Status == PaymentSuccessful
}
