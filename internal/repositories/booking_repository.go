package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shareit/internal/models"
)

type BookingRepository struct {
	DB *sql.DB
}

const bookingColumns = `b.id, b.start_date, b.end_date, b.status, b.item_id, b.booker_id, b.created_at,
	i.id, i.name, u.id, u.name`

// CreateBooking checks for an overlapping approved booking and inserts the
// new row inside one transaction, so concurrent callers cannot both pass the
// check. The overlap predicate is inclusive on both ends: a booking that
// merely touches the boundary instant of an approved one is rejected.
func (r *BookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Booking{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var overlaps int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings
		WHERE item_id = ? AND status = 'APPROVED' AND start_date <= ? AND end_date >= ?
		FOR UPDATE`,
		booking.ItemID, booking.End, booking.Start).Scan(&overlaps)
	if err != nil {
		return models.Booking{}, err
	}
	if overlaps > 0 {
		err = models.ErrBookingOverlap
		return models.Booking{}, err
	}

	res, execErr := tx.ExecContext(ctx, `INSERT INTO bookings (start_date, end_date, status, item_id, booker_id, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())`,
		booking.Start, booking.End, booking.Status, booking.ItemID, booking.BookerID)
	if execErr != nil {
		err = execErr
		return models.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, err
	}
	if err = tx.Commit(); err != nil {
		return models.Booking{}, err
	}
	return r.GetBookingByID(ctx, int(id))
}

func (r *BookingRepository) GetBookingByID(ctx context.Context, id int) (models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE b.id = ?`
	var b models.Booking
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.Start, &b.End, &b.Status, &b.ItemID, &b.BookerID, &b.CreatedAt,
		&b.Item.ID, &b.Item.Name, &b.Booker.ID, &b.Booker.Name,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, models.ErrBookingNotFound
	}
	return b, err
}

func (r *BookingRepository) UpdateBookingStatus(ctx context.Context, id int, status models.BookingStatus) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE bookings SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return models.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) GetBookingsByBookerID(ctx context.Context, bookerID int) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE b.booker_id = ?
		ORDER BY b.start_date DESC`
	rows, err := r.DB.QueryContext(ctx, query, bookerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *BookingRepository) GetBookingsByOwnerID(ctx context.Context, ownerID int) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE i.owner_id = ?
		ORDER BY b.start_date DESC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

// GetLastBookingForItem returns the most recent approved booking that already
// ended, or nil when the item has none.
func (r *BookingRepository) GetLastBookingForItem(ctx context.Context, itemID int, now time.Time) (*models.BookingShort, error) {
	query := `SELECT id, booker_id, start_date, end_date FROM bookings
		WHERE item_id = ? AND status = 'APPROVED' AND end_date < ?
		ORDER BY end_date DESC LIMIT 1`
	return r.getBookingShort(ctx, query, itemID, now)
}

// GetNextBookingForItem returns the soonest approved booking that has not
// started yet, or nil when the item has none.
func (r *BookingRepository) GetNextBookingForItem(ctx context.Context, itemID int, now time.Time) (*models.BookingShort, error) {
	query := `SELECT id, booker_id, start_date, end_date FROM bookings
		WHERE item_id = ? AND status = 'APPROVED' AND start_date > ?
		ORDER BY start_date ASC LIMIT 1`
	return r.getBookingShort(ctx, query, itemID, now)
}

func (r *BookingRepository) HasFinishedApprovedBooking(ctx context.Context, bookerID, itemID int, now time.Time) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM bookings
		WHERE booker_id = ? AND item_id = ? AND status = 'APPROVED' AND end_date < ?`
	if err := r.DB.QueryRowContext(ctx, query, bookerID, itemID, now).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingRepository) getBookingShort(ctx context.Context, query string, itemID int, now time.Time) (*models.BookingShort, error) {
	var short models.BookingShort
	err := r.DB.QueryRowContext(ctx, query, itemID, now).Scan(&short.ID, &short.BookerID, &short.Start, &short.End)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &short, nil
}

func scanBookings(rows *sql.Rows) ([]models.Booking, error) {
	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(
			&b.ID, &b.Start, &b.End, &b.Status, &b.ItemID, &b.BookerID, &b.CreatedAt,
			&b.Item.ID, &b.Item.Name, &b.Booker.ID, &b.Booker.Name,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
