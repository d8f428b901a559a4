package response

import (
	"time"

	"booking-platform/internal/domain/billing"
	"booking-platform/internal/domain/invoice"
	"booking-platform/internal/domain/schedule"

	"github.com/google/uuid"
)

type InvoiceResponse struct {
	InvoiceID      uuid.UUID          `json:"invoice_id"`
	LocationID     int64              `json:"location_id"`
	Date           string             `json:"date"`
	CheckinTime    schedule.TimeOfDay `json:"checkin_time"`
	NumberOfSpaces int                `json:"number_of_spaces"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Phone          string             `json:"phone,omitempty"`
	Addons         []invoice.Addon    `json:"addons"`
	DepositPrice   int64              `json:"deposit_price"`
	Paid           bool               `json:"paid"`
	BookingID      *uuid.UUID         `json:"booking_id,omitempty"`
	LineItems      []billing.LineItem `json:"line_items"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromInvoice(inv *invoice.Invoice) *InvoiceResponse {
	addons := inv.Addons
	if addons == nil {
		addons = []invoice.Addon{}
	}
	return &InvoiceResponse{
		InvoiceID:      inv.ID,
		LocationID:     inv.LocationID,
		Date:           inv.Date.Format("2006-01-02"),
		CheckinTime:    inv.CheckinTime,
		NumberOfSpaces: inv.NumberOfSpaces,
		Name:           inv.Contact.Name,
		Email:          inv.Contact.Email,
		Phone:          inv.Contact.Phone,
		Addons:         addons,
		DepositPrice:   inv.DepositPrice,
		Paid:           inv.Paid,
		BookingID:      inv.BookingID,
		LineItems:      inv.LineItems,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}
