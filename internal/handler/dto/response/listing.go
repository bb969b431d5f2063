package response

import (
	"time"

	"roomhub/internal/domain/listing"
)

type ListingResponse struct {
	ID          int      `json:"id"`
	Owner       string   `json:"owner"`
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
	Status      string   `json:"status"`

	CreatedAt         time.Time  `json:"created_at"`
	ApprovedAt        *time.Time `json:"approved_at,omitempty"`
	ApprovedBy        string     `json:"approved_by,omitempty"`
	RejectedReason    string     `json:"rejected_reason,omitempty"`
	DeleteRequestedAt *time.Time `json:"delete_requested_at,omitempty"`
	DeleteReason      string     `json:"delete_reason,omitempty"`
}

func FromListing(l *listing.Listing) *ListingResponse {
	return &ListingResponse{
		ID:                l.ID,
		Owner:             l.PartnerID,
		Title:             l.Title,
		Type:              l.Type,
		Price:             l.Price,
		Area:              l.Area,
		MaxPeople:         l.MaxPeople,
		Address:           l.Address,
		District:          l.District,
		City:              l.City,
		Distance:          l.Distance,
		Images:            l.Images,
		Amenities:         l.Amenities,
		Description:       l.Description,
		Status:            l.Status.String(),
		CreatedAt:         l.CreatedAt,
		ApprovedAt:        l.ApprovedAt,
		ApprovedBy:        l.ApprovedBy,
		RejectedReason:    l.RejectedReason,
		DeleteRequestedAt: l.DeleteRequestedAt,
		DeleteReason:      l.DeleteReason,
	}
}
