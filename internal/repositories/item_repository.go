package repositories

import (
	"context"
	"database/sql"
	"errors"

	"shareit/internal/models"
)

type ItemRepository struct {
	DB *sql.DB
}

func (r *ItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `INSERT INTO items (name, description, available, owner_id, created_at) VALUES (?, ?, ?, ?, NOW())`
	res, err := r.DB.ExecContext(ctx, query, item.Name, item.Description, item.Available, item.OwnerID)
	if err != nil {
		return models.Item{}, err
	}
	id, _ := res.LastInsertId()
	item.ID = int(id)
	return r.GetItemByID(ctx, item.ID)
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	var item models.Item
	query := `SELECT id, name, description, available, owner_id, created_at, updated_at FROM items WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Available, &item.OwnerID, &item.CreatedAt, &item.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, models.ErrItemNotFound
	}
	return item, err
}

func (r *ItemRepository) GetItemsByOwnerID(ctx context.Context, ownerID, limit, offset int) ([]models.Item, error) {
	query := `SELECT id, name, description, available, owner_id, created_at, updated_at
	          FROM items WHERE owner_id = ? ORDER BY id LIMIT ? OFFSET ?`
	rows, err := r.DB.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *ItemRepository) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `UPDATE items SET name = ?, description = ?, available = ?, updated_at = NOW() WHERE id = ?`
	if _, err := r.DB.ExecContext(ctx, query, item.Name, item.Description, item.Available, item.ID); err != nil {
		return models.Item{}, err
	}
	return r.GetItemByID(ctx, item.ID)
}

func (r *ItemRepository) DeleteItem(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return models.ErrItemNotFound
	}
	return nil
}

// SearchItems matches text case-insensitively against name or description,
// restricted to available items. Blank queries are handled by the service.
func (r *ItemRepository) SearchItems(ctx context.Context, text string) ([]models.Item, error) {
	pattern := "%" + text + "%"
	query := `SELECT id, name, description, available, owner_id, created_at, updated_at
	          FROM items
	          WHERE available = TRUE
	            AND (LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?))
	          ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]models.Item, error) {
	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Available, &item.OwnerID, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
