package usecase

import (
	"path/filepath"

	"roomhub/internal/domain/booking"
	"roomhub/internal/domain/catalog"
	"roomhub/internal/domain/listing"
	"roomhub/internal/infra/docstore"
	"roomhub/internal/pkg/config"
)

// One store per collection; each is its own unit of persistence and its
// own critical section. Cross-collection atomicity (listing approval plus
// catalog projection) is the listing use case's job, not the stores'.
type (
	ListingStore = *docstore.Store[docstore.Data[listing.Listing]]
	BookingStore = *docstore.Store[docstore.Data[booking.Booking]]
	CatalogStore = *docstore.Store[[]catalog.Entry]
	VisitStore   = *docstore.Store[VisitStats]
)

func NewListingStore(cfg config.Config) ListingStore {
	return docstore.NewCollection[listing.Listing](filepath.Join(cfg.Data.Dir, "listings.json"))
}

func NewBookingStore(cfg config.Config) BookingStore {
	return docstore.NewCollection[booking.Booking](filepath.Join(cfg.Data.Dir, "bookings.json"))
}

// The catalog is a flat list of public entries, not a counter-backed
// collection: its ids are derived from listing ids.
func NewCatalogStore(cfg config.Config) CatalogStore {
	return docstore.NewStore(filepath.Join(cfg.Data.Dir, "catalog.json"), func() []catalog.Entry {
		return []catalog.Entry{}
	})
}

func NewVisitStore(cfg config.Config) VisitStore {
	return docstore.NewStore(filepath.Join(cfg.Data.Dir, "visitor_stats.json"), func() VisitStats {
		return VisitStats{}
	})
}
