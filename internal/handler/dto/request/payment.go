package request

import (
	"encoding/json"

	"booking-platform/internal/domain/invoice"
	"booking-platform/internal/usecase"

	"github.com/google/uuid"
)

type RecordPaymentRequest struct {
	InvoiceID     uuid.UUID `json:"invoice_id" binding:"required"`
	PaymentMethod string    `json:"payment_method" binding:"required"`
	// Card details go straight to the external gateway and are never
	// persisted here.
	CreditCardDetails json.RawMessage `json:"credit_card_details,omitempty"`
	AmountDue         int64           `json:"amount_due" binding:"required"`
	Status            string          `json:"status" binding:"required"`
}

func (r RecordPaymentRequest) ToParams() (usecase.RecordPaymentParams, error) {
	status, err := invoice.NewPaymentStatus(r.Status)
	if err != nil {
		return usecase.RecordPaymentParams{}, err
	}
	return usecase.RecordPaymentParams{
		InvoiceID: r.InvoiceID,
		Method:    r.PaymentMethod,
		AmountDue: r.AmountDue,
		Status:    status,
	}, nil
}
