package usecase

import (
	"context"
	"iter"

	"roomhub/internal/domain/catalog"
	"roomhub/internal/domain/listing"
	"roomhub/internal/pkg/catalogid"
	"roomhub/internal/pkg/errs"
)

// CatalogProjector mirrors approved listings into the public catalog and
// removes them on final deletion. It is invoked from inside the listing
// use case's critical section, so a listing transition and its projection
// are never observed half-applied.
type CatalogProjector struct {
	store CatalogStore
}

func NewCatalogProjector(store CatalogStore) *CatalogProjector {
	return &CatalogProjector{store: store}
}

// Project inserts the public entry at the head of the catalog so the most
// recently approved listing displays first.
func (p *CatalogProjector) Project(l listing.Listing) error {
	entry := catalog.NewEntryFromListing(l)
	err := p.store.Update(func(entries *[]catalog.Entry) error {
		*entries = append([]catalog.Entry{entry}, *entries...)
		return nil
	})
	if err != nil {
		return errs.Mark(err, ErrStoreFailed)
	}
	return nil
}

// Unproject removes the entry derived from the given listing. Absence is
// not an error: the listing may never have been approved.
func (p *CatalogProjector) Unproject(listingID int) error {
	target := catalogid.FromListing(listingID)
	err := p.store.Update(func(entries *[]catalog.Entry) error {
		kept := (*entries)[:0]
		for _, e := range *entries {
			if e.ID != target {
				kept = append(kept, e)
			}
		}
		*entries = kept
		return nil
	})
	if err != nil {
		return errs.Mark(err, ErrStoreFailed)
	}
	return nil
}

func (p *CatalogProjector) IncrementView(ctx context.Context, catalogID string) (int, error) {
	views := 0
	err := p.store.Update(func(entries *[]catalog.Entry) error {
		for i := range *entries {
			if (*entries)[i].ID == catalogID {
				(*entries)[i].Views++
				views = (*entries)[i].Views
				return nil
			}
		}
		return ErrCatalogEntryNotFound
	})
	if err != nil {
		return 0, translateErr(err)
	}
	return views, nil
}

// List yields the catalog in stored order (most recently approved first).
func (p *CatalogProjector) List(ctx context.Context) (iter.Seq[catalog.Entry], error) {
	var snapshot []catalog.Entry
	err := p.store.View(func(entries *[]catalog.Entry) error {
		snapshot = append(snapshot, *entries...)
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}
	return func(yield func(catalog.Entry) bool) {
		for _, e := range snapshot {
			if !yield(e) {
				return
			}
		}
	}, nil
}
