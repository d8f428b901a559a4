package response

import "booking-platform/internal/domain/schedule"

// SlotResponse reports one bookable window. number_of_spaces is the REMAINING
// capacity after confirmed bookings, not the configured total.
type SlotResponse struct {
	Date           string             `json:"date"`
	CheckinTime    schedule.TimeOfDay `json:"checkin_time"`
	Duration       int                `json:"duration"`
	NumberOfSpaces int                `json:"number_of_spaces"`
	SpacesTotal    int                `json:"spaces_total"`
	DepositPrice   int64              `json:"deposit_price"`
	InvoicePrice   int64              `json:"invoice_price"`
	LocationID     int64              `json:"location_id"`
}

func FromSlot(s schedule.Slot) SlotResponse {
	return SlotResponse{
		Date:           s.Date.Format("2006-01-02"),
		CheckinTime:    s.CheckinTime,
		Duration:       s.Duration,
		NumberOfSpaces: s.SpacesAvailable,
		SpacesTotal:    s.SpacesTotal,
		DepositPrice:   s.DepositPrice,
		InvoicePrice:   s.InvoicePrice,
		LocationID:     s.LocationID,
	}
}

func FromSlots(slots []schedule.Slot) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = FromSlot(s)
	}
	return out
}
