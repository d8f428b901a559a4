package request

import (
	"booking-platform/internal/domain/booking"
	"booking-platform/internal/domain/invoice"
	"booking-platform/internal/domain/schedule"
	"booking-platform/internal/usecase"
)

type AddonRequest struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
}

type CreateInvoiceRequest struct {
	LocationID     int64              `json:"location_id" binding:"required"`
	Name           string             `json:"name" binding:"required"`
	Email          string             `json:"email" binding:"required"`
	Phone          string             `json:"phone"`
	NumberOfSpaces int                `json:"number_of_spaces" binding:"required"`
	Addons         []AddonRequest     `json:"addons"`
	CheckinTime    schedule.TimeOfDay `json:"checkin_time"`
	Date           string             `json:"date" binding:"required"`
}

func (r CreateInvoiceRequest) ToParams() (usecase.CreateInvoiceParams, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return usecase.CreateInvoiceParams{}, err
	}

	addons := make([]invoice.Addon, len(r.Addons))
	for i, a := range r.Addons {
		addons[i] = invoice.Addon{Code: a.Code, Label: a.Label, Quantity: a.Quantity}
	}

	return usecase.CreateInvoiceParams{
		LocationID:     r.LocationID,
		Date:           date,
		CheckinTime:    r.CheckinTime,
		NumberOfSpaces: r.NumberOfSpaces,
		Contact: booking.Contact{
			Name:  r.Name,
			Email: r.Email,
			Phone: r.Phone,
		},
		Addons: addons,
	}, nil
}
