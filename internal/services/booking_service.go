package services

import (
	"context"
	"time"

	"shareit/internal/models"
)

// BookingRepo is the storage capability for the booking ledger. CreateBooking
// must perform the approved-overlap check and the insert atomically and
// return models.ErrBookingOverlap when the check fails.
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	GetBookingByID(ctx context.Context, id int) (models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int, status models.BookingStatus) error
	GetBookingsByBookerID(ctx context.Context, bookerID int) ([]models.Booking, error)
	GetBookingsByOwnerID(ctx context.Context, ownerID int) ([]models.Booking, error)
	GetLastBookingForItem(ctx context.Context, itemID int, now time.Time) (*models.BookingShort, error)
	GetNextBookingForItem(ctx context.Context, itemID int, now time.Time) (*models.BookingShort, error)
	HasFinishedApprovedBooking(ctx context.Context, bookerID, itemID int, now time.Time) (bool, error)
}

type BookingService struct {
	BookingRepo BookingRepo
	UserRepo    UserRepo
	ItemRepo    ItemRepo
}

// CreateBooking validates booker, item and period and persists a WAITING
// booking. A period that merely touches the boundary of an existing approved
// booking is rejected: the overlap test is inclusive on both ends.
func (s *BookingService) CreateBooking(ctx context.Context, bookerID int, req models.CreateBookingRequest) (models.Booking, error) {
	if !req.Start.Before(req.End) {
		return models.Booking{}, models.ErrInvalidPeriod
	}
	booker, err := s.UserRepo.GetUserByID(ctx, bookerID)
	if err != nil {
		return models.Booking{}, err
	}
	item, err := s.ItemRepo.GetItemByID(ctx, req.ItemID)
	if err != nil {
		return models.Booking{}, err
	}
	if !item.Available {
		return models.Booking{}, models.ErrItemUnavailable
	}

	booking := models.Booking{
		Start:    req.Start,
		End:      req.End,
		Status:   models.StatusWaiting,
		ItemID:   item.ID,
		BookerID: booker.ID,
		Item:     models.ItemSummary{ID: item.ID, Name: item.Name},
		Booker:   models.UserSummary{ID: booker.ID, Name: booker.Name},
	}
	return s.BookingRepo.CreateBooking(ctx, booking)
}

// ApproveBooking decides a WAITING booking. Only the owner of the booked item
// may decide it, and a decided booking cannot be decided again.
func (s *BookingService) ApproveBooking(ctx context.Context, userID, bookingID int, approved bool) (models.Booking, error) {
	booking, err := s.BookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	item, err := s.ItemRepo.GetItemByID(ctx, booking.ItemID)
	if err != nil {
		return models.Booking{}, err
	}
	if item.OwnerID != userID {
		return models.Booking{}, models.ErrAccessDenied
	}
	if booking.Status != models.StatusWaiting {
		return models.Booking{}, models.ErrBookingDecided
	}

	status := models.StatusRejected
	if approved {
		status = models.StatusApproved
	}
	if err := s.BookingRepo.UpdateBookingStatus(ctx, booking.ID, status); err != nil {
		return models.Booking{}, err
	}
	booking.Status = status
	return booking, nil
}

func (s *BookingService) GetBookingByID(ctx context.Context, id int) (models.Booking, error) {
	return s.BookingRepo.GetBookingByID(ctx, id)
}

// GetBookingsByUser lists bookings made by userID filtered by state. The
// requester must be the subject of the listing.
func (s *BookingService) GetBookingsByUser(ctx context.Context, userID, requesterID int, state models.BookingState) ([]models.Booking, error) {
	if userID != requesterID {
		return nil, models.ErrAccessDenied
	}
	if _, err := s.UserRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	bookings, err := s.BookingRepo.GetBookingsByBookerID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return filterBookingsByState(bookings, state, time.Now()), nil
}

// GetBookingsForOwner lists bookings for items owned by ownerID filtered by
// state.
func (s *BookingService) GetBookingsForOwner(ctx context.Context, ownerID int, state models.BookingState) ([]models.Booking, error) {
	if _, err := s.UserRepo.GetUserByID(ctx, ownerID); err != nil {
		return nil, err
	}
	bookings, err := s.BookingRepo.GetBookingsByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return filterBookingsByState(bookings, state, time.Now()), nil
}

// filterBookingsByState evaluates a state selector against now. CURRENT means
// start < now < end, PAST means end < now, FUTURE means start > now;
// WAITING and REJECTED match on status.
func filterBookingsByState(bookings []models.Booking, state models.BookingState, now time.Time) []models.Booking {
	if state == models.StateAll {
		return bookings
	}
	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		switch state {
		case models.StateCurrent:
			if b.Start.Before(now) && b.End.After(now) {
				filtered = append(filtered, b)
			}
		case models.StatePast:
			if b.End.Before(now) {
				filtered = append(filtered, b)
			}
		case models.StateFuture:
			if b.Start.After(now) {
				filtered = append(filtered, b)
			}
		case models.StateWaiting:
			if b.Status == models.StatusWaiting {
				filtered = append(filtered, b)
			}
		case models.StateRejected:
			if b.Status == models.StatusRejected {
				filtered = append(filtered, b)
			}
		}
	}
	return filtered
}
