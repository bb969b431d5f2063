package request

import (
	"roomhub/internal/domain/booking"
)

type CreateBookingRequest struct {
	CatalogID  string `json:"catalogId"`
	Title      string `json:"title"`
	Price      string `json:"price"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalId"`
	Email      string `json:"email,omitempty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Note       string `json:"note,omitempty"`
}

func (r CreateBookingRequest) ToFields() booking.Fields {
	return booking.Fields{
		PropertyID:    r.CatalogID,
		PropertyTitle: r.Title,
		PropertyPrice: r.Price,
		Name:          r.Name,
		Phone:         r.Phone,
		NationalID:    r.NationalID,
		Email:         r.Email,
		Date:          r.Date,
		Time:          r.Time,
		Note:          r.Note,
	}
}

type ConfirmBookingRequest struct {
	Actor string `json:"actor"`
}

type CancelBookingRequest struct {
	Actor  string `json:"actor"`
	Reason string `json:"reason,omitempty"`
}
