package listing

import (
	"errors"
	"time"
)

var (
	ErrInvalidTransition = errors.New("status does not permit this transition")
	ErrNotOwner          = errors.New("actor does not own this listing")
)

// MissingFieldError names the first required field absent from a create
// request so the caller can surface it.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// Listing is a partner-submitted rental unit moving through moderation.
// Fields are exported and JSON-tagged because the document store persists
// the record as-is.
type Listing struct {
	ID          int      `json:"id"`
	PartnerID   string   `json:"partner_id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Price       int      `json:"price"`
	Area        string   `json:"area"`
	MaxPeople   int      `json:"max_people"`
	Address     string   `json:"address"`
	District    string   `json:"district"`
	City        string   `json:"city"`
	Distance    string   `json:"distance,omitempty"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`

	Status Status `json:"status"`

	CreatedAt         time.Time  `json:"created_at"`
	ApprovedAt        *time.Time `json:"approved_at"`
	ApprovedBy        string     `json:"approved_by,omitempty"`
	RejectedReason    string     `json:"rejected_reason,omitempty"`
	DeleteRequestedAt *time.Time `json:"delete_requested_at,omitempty"`
	DeleteReason      string     `json:"delete_reason,omitempty"`
	DeleteOutcome     string     `json:"delete_outcome,omitempty"`
}

// Fields carries the partner-supplied descriptive attributes of a listing.
type Fields struct {
	Title       string
	Type        string
	Price       int
	Area        string
	MaxPeople   int
	Address     string
	District    string
	City        string
	Distance    string
	Images      []string
	Amenities   []string
	Description string
}

// New validates the required descriptive fields and builds a pending
// listing. The id is assigned later, inside the store's critical section.
func New(partnerID string, f Fields, now time.Time) (*Listing, error) {
	required := []struct {
		name  string
		empty bool
	}{
		{"owner", partnerID == ""},
		{"title", f.Title == ""},
		{"type", f.Type == ""},
		{"price", f.Price == 0},
		{"area", f.Area == ""},
		{"address", f.Address == ""},
	}
	for _, field := range required {
		if field.empty {
			return nil, &MissingFieldError{Field: field.name}
		}
	}

	maxPeople := f.MaxPeople
	if maxPeople < 1 {
		maxPeople = 1
	}
	images := f.Images
	if images == nil {
		images = []string{}
	}
	amenities := f.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &Listing{
		PartnerID:   partnerID,
		Title:       f.Title,
		Type:        f.Type,
		Price:       f.Price,
		Area:        f.Area,
		MaxPeople:   maxPeople,
		Address:     f.Address,
		District:    f.District,
		City:        f.City,
		Distance:    f.Distance,
		Images:      images,
		Amenities:   amenities,
		Description: f.Description,
		Status:      StatusPending,
		CreatedAt:   now,
	}, nil
}

func (l *Listing) Approve(moderator string, now time.Time) error {
	// delete_pending → approved is also a legal edge (delete-request
	// rejection), so approval checks the source state, not just the table.
	if l.Status != StatusPending || !l.Status.CanTransitionTo(StatusApproved) {
		return ErrInvalidTransition
	}
	l.Status = StatusApproved
	l.ApprovedAt = &now
	l.ApprovedBy = moderator
	return nil
}

func (l *Listing) Reject(moderator, reason string, now time.Time) error {
	if !l.Status.CanTransitionTo(StatusRejected) {
		return ErrInvalidTransition
	}
	l.Status = StatusRejected
	l.ApprovedAt = &now
	l.ApprovedBy = moderator
	l.RejectedReason = reason
	return nil
}

func (l *Listing) RequestDelete(owner, reason string, now time.Time) error {
	if owner != l.PartnerID {
		return ErrNotOwner
	}
	if !l.Status.CanTransitionTo(StatusDeletePending) {
		return ErrInvalidTransition
	}
	l.Status = StatusDeletePending
	l.DeleteRequestedAt = &now
	l.DeleteReason = reason
	return nil
}

// MarkDeleteApproved validates the final edge before the record is
// physically removed from the store.
func (l *Listing) MarkDeleteApproved() error {
	if !l.Status.CanTransitionTo(StatusRemoved) {
		return ErrInvalidTransition
	}
	l.Status = StatusRemoved
	return nil
}

// RejectDelete returns a delete_pending listing to approved. The request
// metadata stays on the record, with the outcome noted, so the partner can
// see the moderator's decision.
func (l *Listing) RejectDelete(moderator string) error {
	if l.Status != StatusDeletePending {
		return ErrInvalidTransition
	}
	l.Status = StatusApproved
	l.DeleteOutcome = "rejected_by_" + moderator
	return nil
}

func (l *Listing) IsApproved() bool {
	return l.Status == StatusApproved
}
