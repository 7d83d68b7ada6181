package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/models"
)

func day(offset int) time.Time {
	return time.Now().Truncate(time.Hour).AddDate(0, 0, offset)
}

func TestCreateBookingValidation(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner", "owner@example.com")
	booker := env.addUser(t, "booker", "booker@example.com")
	available := env.addItem(t, owner.ID, "drill", true)
	unavailable := env.addItem(t, owner.ID, "ladder", false)

	ctx := context.Background()

	t.Run("unknown booker", func(t *testing.T) {
		_, err := env.bookingSvc.CreateBooking(ctx, 999, models.CreateBookingRequest{
			ItemID: available.ID, Start: day(1), End: day(2),
		})
		assert.ErrorIs(t, err, models.ErrUserNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := env.bookingSvc.CreateBooking(ctx, booker.ID, models.CreateBookingRequest{
			ItemID: 999, Start: day(1), End: day(2),
		})
		assert.ErrorIs(t, err, models.ErrItemNotFound)
	})

	t.Run("unavailable item", func(t *testing.T) {
		_, err := env.bookingSvc.CreateBooking(ctx, booker.ID, models.CreateBookingRequest{
			ItemID: unavailable.ID, Start: day(1), End: day(2),
		})
		assert.ErrorIs(t, err, models.ErrItemUnavailable)
	})

	t.Run("start not before end", func(t *testing.T) {
		_, err := env.bookingSvc.CreateBooking(ctx, booker.ID, models.CreateBookingRequest{
			ItemID: available.ID, Start: day(2), End: day(1),
		})
		assert.ErrorIs(t, err, models.ErrInvalidPeriod)

		_, err = env.bookingSvc.CreateBooking(ctx, booker.ID, models.CreateBookingRequest{
			ItemID: available.ID, Start: day(1), End: day(1),
		})
		assert.ErrorIs(t, err, models.ErrInvalidPeriod)
	})

	t.Run("success creates waiting booking", func(t *testing.T) {
		booking, err := env.bookingSvc.CreateBooking(ctx, booker.ID, models.CreateBookingRequest{
			ItemID: available.ID, Start: day(1), End: day(2),
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusWaiting, booking.Status)
		assert.Equal(t, available.ID, booking.Item.ID)
		assert.Equal(t, booker.Name, booking.Booker.Name)
	})
}

func TestCreateBookingOverlap(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner", "owner@example.com")
	booker := env.addUser(t, "booker", "booker@example.com")
	other := env.addUser(t, "other", "other@example.com")
	item := env.addItem(t, owner.ID, "drill", true)

	ctx := context.Background()

	// Approved booking on days 11..15.
	approved := env.addBooking(t, booker.ID, item.ID, day(11), day(15))
	env.approve(t, owner.ID, approved.ID)

	cases := []struct {
		name       string
		start, end time.Time
		wantErr    error
	}{
		{"inside", day(12), day(13), models.ErrBookingOverlap},
		{"straddles start", day(10), day(12), models.ErrBookingOverlap},
		{"straddles end", day(14), day(16), models.ErrBookingOverlap},
		{"covers", day(10), day(16), models.ErrBookingOverlap},
		{"touches end boundary", day(15), day(16), models.ErrBookingOverlap},
		{"touches start boundary", day(9), day(11), models.ErrBookingOverlap},
		{"before", day(8), day(10), nil},
		{"after", day(16), day(18), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.bookingSvc.CreateBooking(ctx, other.ID, models.CreateBookingRequest{
				ItemID: item.ID, Start: tc.start, End: tc.end,
			})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateBookingWaitingDoesNotBlock(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner", "owner@example.com")
	booker := env.addUser(t, "booker", "booker@example.com")
	other := env.addUser(t, "other", "other@example.com")
	item := env.addItem(t, owner.ID, "drill", true)

	// A WAITING booking does not reserve the period.
	env.addBooking(t, booker.ID, item.ID, day(1), day(3))
	_, err := env.bookingSvc.CreateBooking(context.Background(), other.ID, models.CreateBookingRequest{
		ItemID: item.ID, Start: day(2), End: day(4),
	})
	assert.NoError(t, err)
}

func TestApproveBooking(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner", "owner@example.com")
	booker := env.addUser(t, "booker", "booker@example.com")
	stranger := env.addUser(t, "stranger", "stranger@example.com")
	item := env.addItem(t, owner.ID, "drill", true)

	ctx := context.Background()
	booking := env.addBooking(t, booker.ID, item.ID, day(1), day(2))

	t.Run("unknown booking", func(t *testing.T) {
		_, err := env.bookingSvc.ApproveBooking(ctx, owner.ID, 999, true)
		assert.ErrorIs(t, err, models.ErrBookingNotFound)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		_, err := env.bookingSvc.ApproveBooking(ctx, stranger.ID, booking.ID, true)
		assert.ErrorIs(t, err, models.ErrAccessDenied)

		_, err = env.bookingSvc.ApproveBooking(ctx, booker.ID, booking.ID, true)
		assert.ErrorIs(t, err, models.ErrAccessDenied)
	})

	t.Run("owner rejects", func(t *testing.T) {
		decided, err := env.bookingSvc.ApproveBooking(ctx, owner.ID, booking.ID, false)
		require.NoError(t, err)
		assert.Equal(t, models.StatusRejected, decided.Status)
	})

	t.Run("decided booking cannot be re-decided", func(t *testing.T) {
		_, err := env.bookingSvc.ApproveBooking(ctx, owner.ID, booking.ID, true)
		assert.ErrorIs(t, err, models.ErrBookingDecided)
	})
}

func TestGetBookingsByUserStates(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner", "owner@example.com")
	booker := env.addUser(t, "booker", "booker@example.com")
	itemA := env.addItem(t, owner.ID, "drill", true)
	itemB := env.addItem(t, owner.ID, "ladder", true)
	itemC := env.addItem(t, owner.ID, "saw", true)

	ctx := context.Background()

	past := env.addBooking(t, booker.ID, itemA.ID, day(-10), day(-5))
	env.approve(t, owner.ID, past.ID)
	current := env.addBooking(t, booker.ID, itemB.ID, day(-1), day(1))
	env.approve(t, owner.ID, current.ID)
	future := env.addBooking(t, booker.ID, itemC.ID, day(5), day(10))
	rejected, err := env.bookingSvc.ApproveBooking(ctx, owner.ID, future.ID, false)
	require.NoError(t, err)
	waiting := env.addBooking(t, booker.ID, itemC.ID, day(20), day(25))

	listIDs := func(state models.BookingState) []int {
		bookings, err := env.bookingSvc.GetBookingsByUser(ctx, booker.ID, booker.ID, state)
		require.NoError(t, err)
		ids := make([]int, 0, len(bookings))
		for _, b := range bookings {
			ids = append(ids, b.ID)
		}
		return ids
	}

	assert.ElementsMatch(t, []int{past.ID, current.ID, rejected.ID, waiting.ID}, listIDs(models.StateAll))
	assert.ElementsMatch(t, []int{past.ID}, listIDs(models.StatePast))
	assert.ElementsMatch(t, []int{current.ID}, listIDs(models.StateCurrent))
	assert.ElementsMatch(t, []int{rejected.ID, waiting.ID}, listIDs(models.StateFuture))
	assert.ElementsMatch(t, []int{waiting.ID}, listIDs(models.StateWaiting))
	assert.ElementsMatch(t, []int{rejected.ID}, listIDs(models.StateRejected))

	t.Run("requester must match subject", func(t *testing.T) {
		_, err := env.bookingSvc.GetBookingsByUser(ctx, booker.ID, owner.ID, models.StateAll)
		assert.ErrorIs(t, err, models.ErrAccessDenied)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := env.bookingSvc.GetBookingsByUser(ctx, 999, 999, models.StateAll)
		assert.ErrorIs(t, err, models.ErrUserNotFound)
	})

	t.Run("owner variant sees all item bookings", func(t *testing.T) {
		bookings, err := env.bookingSvc.GetBookingsForOwner(ctx, owner.ID, models.StateAll)
		require.NoError(t, err)
		assert.Len(t, bookings, 4)
	})
}

func TestLastAndNextBookingLookup(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner", "owner@example.com")
	booker := env.addUser(t, "booker", "booker@example.com")
	item := env.addItem(t, owner.ID, "drill", true)

	ctx := context.Background()
	now := time.Now()

	t.Run("absent bookings yield nil", func(t *testing.T) {
		last, err := env.bookings.GetLastBookingForItem(ctx, item.ID, now)
		require.NoError(t, err)
		assert.Nil(t, last)
		next, err := env.bookings.GetNextBookingForItem(ctx, item.ID, now)
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	older := env.addBooking(t, booker.ID, item.ID, day(-20), day(-15))
	env.approve(t, owner.ID, older.ID)
	recent := env.addBooking(t, booker.ID, item.ID, day(-10), day(-5))
	env.approve(t, owner.ID, recent.ID)
	soon := env.addBooking(t, booker.ID, item.ID, day(5), day(10))
	env.approve(t, owner.ID, soon.ID)
	later := env.addBooking(t, booker.ID, item.ID, day(15), day(20))
	env.approve(t, owner.ID, later.ID)

	last, err := env.bookings.GetLastBookingForItem(ctx, item.ID, now)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, recent.ID, last.ID)

	next, err := env.bookings.GetNextBookingForItem(ctx, item.ID, now)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, soon.ID, next.ID)
}
