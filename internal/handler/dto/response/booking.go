package response

import (
	"time"

	"roomhub/internal/domain/booking"
)

type BookingResponse struct {
	ID            int    `json:"id"`
	CatalogID     string `json:"catalogId"`
	Title         string `json:"title"`
	PropertyPrice string `json:"property_price"`

	Name       string `json:"name"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalId"`
	Email      string `json:"email,omitempty"`

	Date   string `json:"date"`
	Time   string `json:"time"`
	Note   string `json:"note,omitempty"`
	Status string `json:"status"`

	CreatedAt    time.Time  `json:"created_at"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
	ConfirmedBy  string     `json:"confirmed_by,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy  string     `json:"cancelled_by,omitempty"`
	CancelReason string     `json:"cancel_reason,omitempty"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		CatalogID:     b.PropertyID,
		Title:         b.PropertyTitle,
		PropertyPrice: b.PropertyPrice,
		Name:          b.CustomerName,
		Phone:         b.CustomerPhone,
		NationalID:    b.CustomerNationalID,
		Email:         b.CustomerEmail,
		Date:          b.VisitDate,
		Time:          b.VisitTime,
		Note:          b.Note,
		Status:        b.Status.String(),
		CreatedAt:     b.CreatedAt,
		ConfirmedAt:   b.ConfirmedAt,
		ConfirmedBy:   b.ConfirmedBy,
		CancelledAt:   b.CancelledAt,
		CancelledBy:   b.CancelledBy,
		CancelReason:  b.CancelReason,
	}
}
