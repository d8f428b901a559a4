package request

import (
	"time"

	"booking-platform/internal/domain/billing"
	"booking-platform/internal/domain/booking"
	"booking-platform/internal/domain/schedule"
	"booking-platform/internal/usecase"
)

// LineItemRequest accepts both wire spellings for the entry amount: pipeline
// payloads carry a computed amount, manual entries may give a unit
// invoice_price instead.
type LineItemRequest struct {
	Type         string    `json:"type" binding:"required"`
	Timestamp    time.Time `json:"timestamp"`
	Code         string    `json:"code"`
	Label        string    `json:"label"`
	Quantity     int       `json:"quantity" binding:"required"`
	Amount       int64     `json:"amount,omitempty"`
	InvoicePrice int64     `json:"invoice_price,omitempty"`
}

func (r LineItemRequest) ToDomain() billing.LineItem {
	amount := r.Amount
	if amount == 0 {
		amount = r.InvoicePrice * int64(r.Quantity)
	}
	return billing.LineItem{
		Type:      billing.LineItemType(r.Type),
		Timestamp: r.Timestamp,
		Code:      r.Code,
		Label:     r.Label,
		Quantity:  r.Quantity,
		Amount:    amount,
	}
}

type ConfirmBookingRequest struct {
	LocationID     int64              `json:"location_id" binding:"required"`
	InvoiceID      *string            `json:"invoice_id,omitempty"`
	Name           string             `json:"name" binding:"required"`
	Email          string             `json:"email" binding:"required"`
	Phone          string             `json:"phone"`
	NumberOfSpaces int                `json:"number_of_spaces,omitempty"`
	CheckinTime    schedule.TimeOfDay `json:"checkin_time"`
	Date           string             `json:"date" binding:"required"`
	Paid           bool               `json:"paid"`
	LineItems      []LineItemRequest  `json:"line_items"`
	DepositPrice   int64              `json:"deposit_price"`
}

func (r ConfirmBookingRequest) ToParams() (usecase.ConfirmBookingParams, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return usecase.ConfirmBookingParams{}, err
	}

	items := make([]billing.LineItem, len(r.LineItems))
	for i, it := range r.LineItems {
		items[i] = it.ToDomain()
	}

	return usecase.ConfirmBookingParams{
		InvoiceID:      r.InvoiceID,
		LocationID:     r.LocationID,
		Date:           date,
		CheckinTime:    r.CheckinTime,
		NumberOfSpaces: r.NumberOfSpaces,
		Contact: booking.Contact{
			Name:  r.Name,
			Email: r.Email,
			Phone: r.Phone,
		},
		Paid:         r.Paid,
		DepositPrice: r.DepositPrice,
		LineItems:    items,
	}, nil
}
