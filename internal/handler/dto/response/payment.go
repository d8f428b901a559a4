package response

import (
	"time"

	"booking-platform/internal/domain/invoice"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	InvoiceID     uuid.UUID `json:"invoice_id"`
	PaymentMethod string    `json:"payment_method"`
	AmountDue     int64     `json:"amount_due"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromPayment(p *invoice.Payment) *PaymentResponse {
	return &PaymentResponse{
		PaymentID:     p.ID,
		InvoiceID:     p.InvoiceID,
		PaymentMethod: p.Method,
		AmountDue:     p.AmountDue,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
	}
}
