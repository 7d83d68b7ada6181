package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shareit/internal/models"
	"shareit/internal/repositories"
)

type testEnv struct {
	users    *repositories.MemoryUserRepository
	items    *repositories.MemoryItemRepository
	bookings *repositories.MemoryBookingRepository
	comments *repositories.MemoryCommentRepository
	requests *repositories.MemoryRequestRepository

	userSvc    *UserService
	itemSvc    *ItemService
	bookingSvc *BookingService
	requestSvc *RequestService
}

func newTestEnv() *testEnv {
	users := repositories.NewMemoryUserRepository()
	items := repositories.NewMemoryItemRepository()
	bookings := repositories.NewMemoryBookingRepository(func(itemID int) (int, bool) {
		item, err := items.GetItemByID(context.Background(), itemID)
		if err != nil {
			return 0, false
		}
		return item.OwnerID, true
	})
	comments := repositories.NewMemoryCommentRepository()
	requests := repositories.NewMemoryRequestRepository()

	return &testEnv{
		users:    users,
		items:    items,
		bookings: bookings,
		comments: comments,
		requests: requests,
		userSvc:  &UserService{UserRepo: users},
		itemSvc: &ItemService{
			ItemRepo:    items,
			UserRepo:    users,
			BookingRepo: bookings,
			CommentRepo: comments,
		},
		bookingSvc: &BookingService{
			BookingRepo: bookings,
			UserRepo:    users,
			ItemRepo:    items,
		},
		requestSvc: &RequestService{
			RequestRepo: requests,
			UserRepo:    users,
		},
	}
}

func (e *testEnv) addUser(t *testing.T, name, email string) models.User {
	t.Helper()
	user, err := e.userSvc.CreateUser(context.Background(), models.User{Name: name, Email: email})
	require.NoError(t, err)
	return user
}

func (e *testEnv) addItem(t *testing.T, ownerID int, name string, available bool) models.Item {
	t.Helper()
	item, err := e.itemSvc.CreateItem(context.Background(), ownerID, models.Item{
		Name:        name,
		Description: name + " description",
		Available:   available,
	})
	require.NoError(t, err)
	return item
}

func (e *testEnv) addBooking(t *testing.T, bookerID, itemID int, start, end time.Time) models.Booking {
	t.Helper()
	booking, err := e.bookingSvc.CreateBooking(context.Background(), bookerID, models.CreateBookingRequest{
		ItemID: itemID,
		Start:  start,
		End:    end,
	})
	require.NoError(t, err)
	return booking
}

func (e *testEnv) approve(t *testing.T, ownerID, bookingID int) models.Booking {
	t.Helper()
	booking, err := e.bookingSvc.ApproveBooking(context.Background(), ownerID, bookingID, true)
	require.NoError(t, err)
	return booking
}
