package usecase

import (
	"context"
	"iter"
	"log/slog"
	"sort"
	"sync"

	"roomhub/internal/domain/listing"
	"roomhub/internal/infra/docstore"
	"roomhub/internal/pkg/clock"
	"roomhub/internal/pkg/errs"
)

type ListingFilter struct {
	Status string
	Owner  string
}

type ListingUseCase interface {
	Create(ctx context.Context, owner string, fields listing.Fields) (*listing.Listing, error)
	Get(ctx context.Context, id int) (*listing.Listing, error)
	Approve(ctx context.Context, id int, moderator string) (*listing.Listing, error)
	Reject(ctx context.Context, id int, moderator, reason string) (*listing.Listing, error)
	RequestDelete(ctx context.Context, id int, owner, reason string) (*listing.Listing, error)
	RejectDelete(ctx context.Context, id int, moderator string) (*listing.Listing, error)
	ApproveDelete(ctx context.Context, id int, moderator string) error
	HardDelete(ctx context.Context, id int, moderator string) error
	List(ctx context.Context, filter ListingFilter) (iter.Seq[listing.Listing], error)
}

type listingUseCaseImpl struct {
	// mu serializes every moderation operation end to end. The listing
	// store has its own lock, but approval and deletion also touch the
	// catalog store, and those two writes must not interleave with
	// another moderation call's.
	mu        sync.Mutex
	listings  ListingStore
	projector *CatalogProjector
	clock     clock.Clock
}

func NewListingUseCase(listings ListingStore, projector *CatalogProjector, clk clock.Clock) ListingUseCase {
	return &listingUseCaseImpl{
		listings:  listings,
		projector: projector,
		clock:     clk,
	}
}

func (u *listingUseCaseImpl) Create(ctx context.Context, owner string, fields listing.Fields) (*listing.Listing, error) {
	entity, err := listing.New(owner, fields, u.clock.Now())
	if err != nil {
		return nil, translateErr(err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	err = u.listings.Update(func(d *docstore.Data[listing.Listing]) error {
		entity.ID = d.AllocID()
		d.Records = append(d.Records, *entity)
		return nil
	})
	if err != nil {
		return nil, translateErr(err)
	}
	return entity, nil
}

func (u *listingUseCaseImpl) Get(ctx context.Context, id int) (*listing.Listing, error) {
	var found *listing.Listing
	err := u.listings.View(func(d *docstore.Data[listing.Listing]) error {
		if i := indexByID(d.Records, id); i >= 0 {
			rec := d.Records[i]
			found = &rec
			return nil
		}
		return ErrListingNotFound
	})
	if err != nil {
		return nil, translateErr(err)
	}
	return found, nil
}

func (u *listingUseCaseImpl) Approve(ctx context.Context, id int, moderator string) (*listing.Listing, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	approved, err := u.mutate(id, func(l *listing.Listing) error {
		return l.Approve(moderator, u.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	if err := u.projector.Project(*approved); err != nil {
		return nil, err
	}
	return approved, nil
}

func (u *listingUseCaseImpl) Reject(ctx context.Context, id int, moderator, reason string) (*listing.Listing, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.mutate(id, func(l *listing.Listing) error {
		return l.Reject(moderator, reason, u.clock.Now())
	})
}

func (u *listingUseCaseImpl) RequestDelete(ctx context.Context, id int, owner, reason string) (*listing.Listing, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.mutate(id, func(l *listing.Listing) error {
		return l.RequestDelete(owner, reason, u.clock.Now())
	})
}

func (u *listingUseCaseImpl) RejectDelete(ctx context.Context, id int, moderator string) (*listing.Listing, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.mutate(id, func(l *listing.Listing) error {
		return l.RejectDelete(moderator)
	})
}

// ApproveDelete removes the listing record entirely and unprojects its
// catalog entry. Removed listings leave no tombstone behind.
func (u *listingUseCaseImpl) ApproveDelete(ctx context.Context, id int, moderator string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	err := u.listings.Update(func(d *docstore.Data[listing.Listing]) error {
		i := indexByID(d.Records, id)
		if i < 0 {
			return ErrListingNotFound
		}
		if err := d.Records[i].MarkDeleteApproved(); err != nil {
			return err
		}
		d.Records = append(d.Records[:i], d.Records[i+1:]...)
		return nil
	})
	if err != nil {
		return translateErr(err)
	}

	slog.Info("listing removed after approved delete request", "listing_id", id, "moderator", moderator)
	return u.projector.Unproject(id)
}

// HardDelete is the administrative override: no status precondition, same
// cleanup as an approved delete request.
func (u *listingUseCaseImpl) HardDelete(ctx context.Context, id int, moderator string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	err := u.listings.Update(func(d *docstore.Data[listing.Listing]) error {
		i := indexByID(d.Records, id)
		if i < 0 {
			return ErrListingNotFound
		}
		d.Records = append(d.Records[:i], d.Records[i+1:]...)
		return nil
	})
	if err != nil {
		return translateErr(err)
	}

	slog.Info("listing force removed", "listing_id", id, "moderator", moderator)
	return u.projector.Unproject(id)
}

// List yields matching listings most recently created first. The sequence
// is a one-shot view over a snapshot taken inside the store's lock.
func (u *listingUseCaseImpl) List(ctx context.Context, filter ListingFilter) (iter.Seq[listing.Listing], error) {
	var snapshot []listing.Listing
	err := u.listings.View(func(d *docstore.Data[listing.Listing]) error {
		snapshot = append(snapshot, d.Records...)
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].CreatedAt.After(snapshot[j].CreatedAt)
	})

	return func(yield func(listing.Listing) bool) {
		for _, rec := range snapshot {
			if filter.Status != "" && rec.Status.String() != filter.Status {
				continue
			}
			if filter.Owner != "" && rec.PartnerID != filter.Owner {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}, nil
}

// mutate applies fn to the identified record inside the listing store's
// critical section and returns the updated copy.
func (u *listingUseCaseImpl) mutate(id int, fn func(*listing.Listing) error) (*listing.Listing, error) {
	var updated listing.Listing
	err := u.listings.Update(func(d *docstore.Data[listing.Listing]) error {
		i := indexByID(d.Records, id)
		if i < 0 {
			return ErrListingNotFound
		}
		if err := fn(&d.Records[i]); err != nil {
			return err
		}
		updated = d.Records[i]
		return nil
	})
	if err != nil {
		return nil, translateErr(err)
	}
	return &updated, nil
}

func indexByID(records []listing.Listing, id int) int {
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}
	return -1
}
