package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"shareit/internal/models"
)

// MemoryBookingRepository holds bookings and, unlike the SQL store, an
// item-owner index supplied by the lookup callback so owner listings work
// without joins.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[int]models.Booking
	nextID   int

	// OwnerOf resolves an item to its owner for GetBookingsByOwnerID.
	OwnerOf func(itemID int) (int, bool)
}

func NewMemoryBookingRepository(ownerOf func(itemID int) (int, bool)) *MemoryBookingRepository {
	return &MemoryBookingRepository{
		bookings: make(map[int]models.Booking),
		nextID:   1,
		OwnerOf:  ownerOf,
	}
}

// CreateBooking rejects periods overlapping an approved booking of the same
// item. The check and insert run under one lock, mirroring the SQL store's
// transaction.
func (r *MemoryBookingRepository) CreateBooking(_ context.Context, booking models.Booking) (models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.bookings {
		if existing.ItemID != booking.ItemID || existing.Status != models.StatusApproved {
			continue
		}
		if !existing.Start.After(booking.End) && !existing.End.Before(booking.Start) {
			return models.Booking{}, models.ErrBookingOverlap
		}
	}
	booking.ID = r.nextID
	r.nextID++
	booking.CreatedAt = time.Now()
	r.bookings[booking.ID] = booking
	return booking, nil
}

func (r *MemoryBookingRepository) GetBookingByID(_ context.Context, id int) (models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	booking, ok := r.bookings[id]
	if !ok {
		return models.Booking{}, models.ErrBookingNotFound
	}
	return booking, nil
}

func (r *MemoryBookingRepository) UpdateBookingStatus(_ context.Context, id int, status models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return models.ErrBookingNotFound
	}
	booking.Status = status
	r.bookings[id] = booking
	return nil
}

func (r *MemoryBookingRepository) GetBookingsByBookerID(_ context.Context, bookerID int) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var bookings []models.Booking
	for _, booking := range r.bookings {
		if booking.BookerID == bookerID {
			bookings = append(bookings, booking)
		}
	}
	sortBookingsByStartDesc(bookings)
	return bookings, nil
}

func (r *MemoryBookingRepository) GetBookingsByOwnerID(_ context.Context, ownerID int) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var bookings []models.Booking
	for _, booking := range r.bookings {
		if owner, ok := r.OwnerOf(booking.ItemID); ok && owner == ownerID {
			bookings = append(bookings, booking)
		}
	}
	sortBookingsByStartDesc(bookings)
	return bookings, nil
}

func (r *MemoryBookingRepository) GetLastBookingForItem(_ context.Context, itemID int, now time.Time) (*models.BookingShort, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var last *models.Booking
	for _, booking := range r.bookings {
		b := booking
		if b.ItemID != itemID || b.Status != models.StatusApproved || !b.End.Before(now) {
			continue
		}
		if last == nil || b.End.After(last.End) {
			last = &b
		}
	}
	return toBookingShort(last), nil
}

func (r *MemoryBookingRepository) GetNextBookingForItem(_ context.Context, itemID int, now time.Time) (*models.BookingShort, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var next *models.Booking
	for _, booking := range r.bookings {
		b := booking
		if b.ItemID != itemID || b.Status != models.StatusApproved || !b.Start.After(now) {
			continue
		}
		if next == nil || b.Start.Before(next.Start) {
			next = &b
		}
	}
	return toBookingShort(next), nil
}

func (r *MemoryBookingRepository) HasFinishedApprovedBooking(_ context.Context, bookerID, itemID int, now time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, booking := range r.bookings {
		if booking.BookerID == bookerID && booking.ItemID == itemID &&
			booking.Status == models.StatusApproved && booking.End.Before(now) {
			return true, nil
		}
	}
	return false, nil
}

func sortBookingsByStartDesc(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].Start.After(bookings[j].Start) })
}

func toBookingShort(b *models.Booking) *models.BookingShort {
	if b == nil {
		return nil
	}
	return &models.BookingShort{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End}
}
