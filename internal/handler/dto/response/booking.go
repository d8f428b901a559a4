package response

import (
	"time"

	"booking-platform/internal/domain/billing"
	"booking-platform/internal/domain/booking"
	"booking-platform/internal/domain/schedule"

	"github.com/google/uuid"
)

type BookingResponse struct {
	BookingID      uuid.UUID          `json:"booking_id"`
	InvoiceID      *string            `json:"invoice_id,omitempty"`
	LocationID     int64              `json:"location_id"`
	Date           string             `json:"date"`
	CheckinTime    schedule.TimeOfDay `json:"checkin_time"`
	NumberOfSpaces int                `json:"number_of_spaces"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Phone          string             `json:"phone,omitempty"`
	Paid           bool               `json:"paid"`
	DepositPrice   int64              `json:"deposit_price"`
	LineItems      []billing.LineItem `json:"line_items"`
	Status         string             `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		BookingID:      b.ID,
		InvoiceID:      b.InvoiceID,
		LocationID:     b.LocationID,
		Date:           b.Date.Format("2006-01-02"),
		CheckinTime:    b.CheckinTime,
		NumberOfSpaces: b.NumberOfSpaces,
		Name:           b.Contact.Name,
		Email:          b.Contact.Email,
		Phone:          b.Contact.Phone,
		Paid:           b.Paid,
		DepositPrice:   b.DepositPrice,
		LineItems:      b.LineItems,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
