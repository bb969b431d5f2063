package booking

import (
	"errors"
	"time"
)

var ErrInvalidTransition = errors.New("status does not permit this transition")

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// Booking is a customer's request to visit a catalog property. PropertyID
// references a catalog entry id but is deliberately unchecked: the booking
// and catalog documents evolve independently.
type Booking struct {
	ID            int    `json:"id"`
	PropertyID    string `json:"property_id"`
	PropertyTitle string `json:"property_title"`
	// PropertyPrice is the normalized price string ("1500000" or
	// "1500000 - 2500000"), never the raw marked-up storefront value.
	PropertyPrice string `json:"property_price"`

	CustomerName       string `json:"customer_name"`
	CustomerPhone      string `json:"customer_phone"`
	CustomerNationalID string `json:"customer_national_id"`
	CustomerEmail      string `json:"customer_email,omitempty"`

	VisitDate string `json:"visit_date"`
	VisitTime string `json:"visit_time"`
	Note      string `json:"note,omitempty"`

	Status Status `json:"status"`

	CreatedAt    time.Time  `json:"created_at"`
	ConfirmedAt  *time.Time `json:"confirmed_at"`
	ConfirmedBy  string     `json:"confirmed_by,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at"`
	CancelledBy  string     `json:"cancelled_by,omitempty"`
	CancelReason string     `json:"cancel_reason,omitempty"`
}

type Fields struct {
	PropertyID    string
	PropertyTitle string
	PropertyPrice string
	Name          string
	Phone         string
	NationalID    string
	Email         string
	Date          string
	Time          string
	Note          string
}

// New validates required fields (named after their request keys) and
// builds a pending booking with the price already normalized.
func New(f Fields, now time.Time) (*Booking, error) {
	required := []struct {
		name  string
		empty bool
	}{
		{"catalogId", f.PropertyID == ""},
		{"title", f.PropertyTitle == ""},
		{"name", f.Name == ""},
		{"phone", f.Phone == ""},
		{"nationalId", f.NationalID == ""},
		{"date", f.Date == ""},
		{"time", f.Time == ""},
	}
	for _, field := range required {
		if field.empty {
			return nil, &MissingFieldError{Field: field.name}
		}
	}

	return &Booking{
		PropertyID:         f.PropertyID,
		PropertyTitle:      f.PropertyTitle,
		PropertyPrice:      NormalizePrice(f.PropertyPrice),
		CustomerName:       f.Name,
		CustomerPhone:      f.Phone,
		CustomerNationalID: f.NationalID,
		CustomerEmail:      f.Email,
		VisitDate:          f.Date,
		VisitTime:          f.Time,
		Note:               f.Note,
		Status:             StatusPending,
		CreatedAt:          now,
	}, nil
}

// Confirm deliberately has no status precondition beyond existence: the
// storefront allows re-confirming, and tightening that here would change
// observable behavior. Cancel is the only guarded edge.
func (b *Booking) Confirm(actor string, now time.Time) {
	b.Status = StatusConfirmed
	b.ConfirmedAt = &now
	b.ConfirmedBy = actor
}

func (b *Booking) Cancel(actor, reason string, now time.Time) error {
	if !b.Status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	b.Status = StatusCancelled
	b.CancelledAt = &now
	b.CancelledBy = actor
	b.CancelReason = reason
	return nil
}
