//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"roomhub/internal/domain/booking"
	"roomhub/internal/pkg/clock"
	"roomhub/internal/pkg/config"
	"roomhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	bookings usecase.BookingUseCase
	listings usecase.ListingUseCase
	clock    *clock.MockClock
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	cfg := config.NewTestConfig(t.TempDir())
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	listingStore := usecase.NewListingStore(cfg)
	projector := usecase.NewCatalogProjector(usecase.NewCatalogStore(cfg))
	return &bookingFixture{
		bookings: usecase.NewBookingUseCase(usecase.NewBookingStore(cfg), listingStore, clk),
		listings: usecase.NewListingUseCase(listingStore, projector, clk),
		clock:    clk,
	}
}

func sampleBooking(propertyID string) booking.Fields {
	return booking.Fields{
		PropertyID:    propertyID,
		PropertyTitle: "Phòng A",
		PropertyPrice: "1.5 - 2.5 triệu",
		Name:          "Nguyen A",
		Phone:         "0900000000",
		NationalID:    "123",
		Date:          "2024-01-15",
		Time:          "09:00",
	}
}

func (f *bookingFixture) collect(t *testing.T, filter usecase.BookingFilter) []booking.Booking {
	t.Helper()
	seq, err := f.bookings.List(context.Background(), filter)
	require.NoError(t, err)
	var out []booking.Booking
	for b := range seq {
		out = append(out, b)
	}
	return out
}

func TestBookingCreate(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	created, err := f.bookings.Create(ctx, sampleBooking("new_1"))
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, booking.StatusPending, created.Status)
	assert.Equal(t, "1500000 - 2500000", created.PropertyPrice)

	t.Run("validation failure surfaces as validation error", func(t *testing.T) {
		fields := sampleBooking("new_1")
		fields.Phone = ""
		_, err := f.bookings.Create(ctx, fields)
		assert.ErrorIs(t, err, usecase.ErrValidation)
	})

	t.Run("unparseable price degrades to zero", func(t *testing.T) {
		fields := sampleBooking("new_1")
		fields.PropertyPrice = "thỏa thuận"
		created, err := f.bookings.Create(ctx, fields)
		require.NoError(t, err)
		assert.Equal(t, "0", created.PropertyPrice)
	})
}

func TestBookingConfirmAndCancel(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	created, err := f.bookings.Create(ctx, sampleBooking("new_1"))
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	confirmed, err := f.bookings.Confirm(ctx, created.ID, "partner#00001")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, confirmed.Status)
	assert.Equal(t, "partner#00001", confirmed.ConfirmedBy)

	cancelled, err := f.bookings.Cancel(ctx, created.ID, "customer", "đổi lịch")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, cancelled.Status)
	assert.Equal(t, "đổi lịch", cancelled.CancelReason)
	require.NotNil(t, cancelled.ConfirmedAt)

	_, err = f.bookings.Cancel(ctx, created.ID, "customer", "again")
	assert.ErrorIs(t, err, usecase.ErrInvalidTransition)

	_, err = f.bookings.Confirm(ctx, 99, "partner#00001")
	assert.ErrorIs(t, err, usecase.ErrBookingNotFound)
}

func TestBookingListFilters(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	first, err := f.bookings.Create(ctx, sampleBooking("new_1"))
	require.NoError(t, err)
	f.clock.Advance(time.Minute)
	second, err := f.bookings.Create(ctx, sampleBooking("new_2"))
	require.NoError(t, err)
	f.clock.Advance(time.Minute)
	third, err := f.bookings.Create(ctx, sampleBooking("new_1"))
	require.NoError(t, err)

	_, err = f.bookings.Confirm(ctx, second.ID, "partner#00001")
	require.NoError(t, err)

	all := f.collect(t, usecase.BookingFilter{})
	require.Len(t, all, 3)
	assert.Equal(t, []int{third.ID, second.ID, first.ID}, []int{all[0].ID, all[1].ID, all[2].ID})

	byProperty := f.collect(t, usecase.BookingFilter{Property: "new_1"})
	require.Len(t, byProperty, 2)

	confirmed := f.collect(t, usecase.BookingFilter{Status: "confirmed"})
	require.Len(t, confirmed, 1)
	assert.Equal(t, second.ID, confirmed[0].ID)
}

func TestBookingPartnerFilter(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	// Partner one has an approved listing (catalog id new_1), partner two a
	// pending one (never projected).
	mine, err := f.listings.Create(ctx, "partner#00001", sampleFields("Phòng A"))
	require.NoError(t, err)
	_, err = f.listings.Approve(ctx, mine.ID, "f1")
	require.NoError(t, err)
	_, err = f.listings.Create(ctx, "partner#00002", sampleFields("Phòng B"))
	require.NoError(t, err)

	confirmedMine, err := f.bookings.Create(ctx, sampleBooking("new_1"))
	require.NoError(t, err)
	_, err = f.bookings.Confirm(ctx, confirmedMine.ID, "partner#00001")
	require.NoError(t, err)

	// Pending on the partner's own property: excluded.
	_, err = f.bookings.Create(ctx, sampleBooking("new_1"))
	require.NoError(t, err)

	// Confirmed but on someone else's property: excluded.
	other, err := f.bookings.Create(ctx, sampleBooking("new_2"))
	require.NoError(t, err)
	_, err = f.bookings.Confirm(ctx, other.ID, "partner#00002")
	require.NoError(t, err)

	got := f.collect(t, usecase.BookingFilter{Partner: "partner#00001"})
	require.Len(t, got, 1)
	assert.Equal(t, confirmedMine.ID, got[0].ID)

	assert.Empty(t, f.collect(t, usecase.BookingFilter{Partner: "partner#00099"}))
}

// Full walkthrough: listing submission through approval, booking against
// the projected catalog entry, confirmation and cancellation.
func TestBookingEndToEnd(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	created, err := f.listings.Create(ctx, "partner#00001", sampleFields("Phòng A"))
	require.NoError(t, err)
	_, err = f.listings.Approve(ctx, created.ID, "f1")
	require.NoError(t, err)

	b, err := f.bookings.Create(ctx, sampleBooking("new_1"))
	require.NoError(t, err)
	assert.Equal(t, "1500000 - 2500000", b.PropertyPrice)

	_, err = f.bookings.Confirm(ctx, b.ID, "partner#00001")
	require.NoError(t, err)

	done, err := f.bookings.Cancel(ctx, b.ID, "customer", "đổi lịch")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, done.Status)
	assert.Equal(t, "đổi lịch", done.CancelReason)
	require.NotNil(t, done.ConfirmedAt)
	require.NotNil(t, done.CancelledAt)
}
