package usecase

import (
	"context"
	"iter"
	"log/slog"
	"sort"

	"roomhub/internal/domain/booking"
	"roomhub/internal/domain/listing"
	"roomhub/internal/infra/docstore"
	"roomhub/internal/pkg/catalogid"
	"roomhub/internal/pkg/clock"
	"roomhub/internal/pkg/errs"
)

type BookingFilter struct {
	Status   string
	Property string
	Partner  string
}

type BookingUseCase interface {
	Create(ctx context.Context, fields booking.Fields) (*booking.Booking, error)
	Confirm(ctx context.Context, id int, actor string) (*booking.Booking, error)
	Cancel(ctx context.Context, id int, actor, reason string) (*booking.Booking, error)
	List(ctx context.Context, filter BookingFilter) (iter.Seq[booking.Booking], error)
}

type bookingUseCaseImpl struct {
	bookings BookingStore
	listings ListingStore
	clock    clock.Clock
}

func NewBookingUseCase(bookings BookingStore, listings ListingStore, clk clock.Clock) BookingUseCase {
	return &bookingUseCaseImpl{
		bookings: bookings,
		listings: listings,
		clock:    clk,
	}
}

func (u *bookingUseCaseImpl) Create(ctx context.Context, fields booking.Fields) (*booking.Booking, error) {
	entity, err := booking.New(fields, u.clock.Now())
	if err != nil {
		return nil, translateErr(err)
	}

	// Explicit policy: a malformed price degrades to "0" instead of
	// failing the booking.
	if entity.PropertyPrice == "0" && fields.PropertyPrice != "" {
		slog.Warn("booking price did not normalize, storing 0",
			"raw_price", fields.PropertyPrice, "property_id", fields.PropertyID)
	}
	// The property reference is deliberately unchecked against the
	// catalog, but an id that cannot have come from it is worth noting.
	if !catalogid.IsDerived(fields.PropertyID) {
		slog.Warn("booking references a non-catalog property id", "property_id", fields.PropertyID)
	}

	err = u.bookings.Update(func(d *docstore.Data[booking.Booking]) error {
		entity.ID = d.AllocID()
		d.Records = append(d.Records, *entity)
		return nil
	})
	if err != nil {
		return nil, translateErr(err)
	}
	return entity, nil
}

func (u *bookingUseCaseImpl) Confirm(ctx context.Context, id int, actor string) (*booking.Booking, error) {
	return u.mutate(id, func(b *booking.Booking) error {
		b.Confirm(actor, u.clock.Now())
		return nil
	})
}

func (u *bookingUseCaseImpl) Cancel(ctx context.Context, id int, actor, reason string) (*booking.Booking, error) {
	return u.mutate(id, func(b *booking.Booking) error {
		return b.Cancel(actor, reason, u.clock.Now())
	})
}

// List yields matching bookings most recently created first. A partner
// filter narrows the view to confirmed bookings on catalog entries derived
// from that partner's approved listings: unconfirmed requests stay out of
// partner aggregate views on purpose.
func (u *bookingUseCaseImpl) List(ctx context.Context, filter BookingFilter) (iter.Seq[booking.Booking], error) {
	var partnerProperties map[string]bool
	if filter.Partner != "" {
		ids, err := u.partnerCatalogIDs(filter.Partner)
		if err != nil {
			return nil, err
		}
		partnerProperties = ids
	}

	var snapshot []booking.Booking
	err := u.bookings.View(func(d *docstore.Data[booking.Booking]) error {
		snapshot = append(snapshot, d.Records...)
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].CreatedAt.After(snapshot[j].CreatedAt)
	})

	return func(yield func(booking.Booking) bool) {
		for _, rec := range snapshot {
			if partnerProperties != nil {
				if !partnerProperties[rec.PropertyID] || rec.Status != booking.StatusConfirmed {
					continue
				}
			}
			if filter.Status != "" && rec.Status.String() != filter.Status {
				continue
			}
			if filter.Property != "" && rec.PropertyID != filter.Property {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}, nil
}

func (u *bookingUseCaseImpl) partnerCatalogIDs(partner string) (map[string]bool, error) {
	ids := map[string]bool{}
	err := u.listings.View(func(d *docstore.Data[listing.Listing]) error {
		for _, rec := range d.Records {
			if rec.PartnerID == partner && rec.IsApproved() {
				ids[catalogid.FromListing(rec.ID)] = true
			}
		}
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}
	return ids, nil
}

func (u *bookingUseCaseImpl) mutate(id int, fn func(*booking.Booking) error) (*booking.Booking, error) {
	var updated booking.Booking
	err := u.bookings.Update(func(d *docstore.Data[booking.Booking]) error {
		for i := range d.Records {
			if d.Records[i].ID == id {
				if err := fn(&d.Records[i]); err != nil {
					return err
				}
				updated = d.Records[i]
				return nil
			}
		}
		return ErrBookingNotFound
	})
	if err != nil {
		return nil, translateErr(err)
	}
	return &updated, nil
}
