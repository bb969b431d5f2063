package request

import (
	"roomhub/internal/domain/listing"
)

type CreateListingRequest struct {
	Owner       string   `json:"owner"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Price       int      `json:"price"`
	Area        string   `json:"area"`
	MaxPeople   int      `json:"max_people"`
	Address     string   `json:"address"`
	District    string   `json:"district"`
	City        string   `json:"city"`
	Distance    string   `json:"distance"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
}

func (r CreateListingRequest) ToFields() listing.Fields {
	return listing.Fields{
		Title:       r.Title,
		Type:        r.Type,
		Price:       r.Price,
		Area:        r.Area,
		MaxPeople:   r.MaxPeople,
		Address:     r.Address,
		District:    r.District,
		City:        r.City,
		Distance:    r.Distance,
		Images:      r.Images,
		Amenities:   r.Amenities,
		Description: r.Description,
	}
}

// ModerateListingRequest covers approve, reject and delete moderation
// calls; reason is only meaningful for rejections.
type ModerateListingRequest struct {
	Moderator string `json:"moderator"`
	Reason    string `json:"reason,omitempty"`
}

type RequestDeleteRequest struct {
	Owner  string `json:"owner"`
	Reason string `json:"reason,omitempty"`
}
