// Package catalog holds the public, customer-facing projection of
// approved listings. Entries are derived state only: they are created and
// destroyed by listing moderation, never directly.
package catalog

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"

	"roomhub/internal/domain/listing"
	"roomhub/internal/pkg/catalogid"
)

// Entry mirrors the storefront data format, JSON keys included ("loai",
// "img"), so the existing frontend can consume the catalog file directly.
type Entry struct {
	ID          string     `json:"id"`
	Loai        string     `json:"loai"`
	Title       string     `json:"title"`
	Address     string     `json:"address"`
	Price       string     `json:"price"`
	Img         []string   `json:"img"`
	Description string     `json:"description"`
	IsNew       bool       `json:"is_new"`
	ApprovedAt  *time.Time `json:"approved_at"`
	Area        string     `json:"area"`
	Amenities   []string   `json:"amenities"`
	MaxPeople   int        `json:"max_people"`
	Views       int        `json:"views"`
}

// NewEntryFromListing builds the public projection of an approved
// listing. Same-named fields (Title, Description, Area, Amenities,
// MaxPeople, ApprovedAt) are copied structurally; the rest is display
// formatting.
func NewEntryFromListing(l listing.Listing) Entry {
	var e Entry
	_ = copier.Copy(&e, &l)

	e.ID = catalogid.FromListing(l.ID)
	e.Loai = l.Type
	e.Address = fmt.Sprintf("<strong>Địa chỉ:</strong> %s, %s, %s", l.Address, l.District, l.City)
	e.Price = fmt.Sprintf("<strong>Giá:</strong> %s VND/tháng", formatThousands(l.Price))
	e.Img = l.Images
	e.IsNew = true
	e.Views = 0
	return e
}

// formatThousands renders 1500000 as "1.500.000" (Vietnamese grouping).
func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, '.')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
