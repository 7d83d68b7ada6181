package repositories

import (
	"context"
	"database/sql"
	"errors"

	"shareit/internal/models"
)

type RequestRepository struct {
	DB *sql.DB
}

func (r *RequestRepository) CreateRequest(ctx context.Context, request models.ItemRequest) (models.ItemRequest, error) {
	query := `INSERT INTO requests (description, requester_id, created_at) VALUES (?, ?, ?)`
	res, err := r.DB.ExecContext(ctx, query, request.Description, request.RequesterID, request.Created)
	if err != nil {
		return models.ItemRequest{}, err
	}
	id, _ := res.LastInsertId()
	request.ID = int(id)
	return request, nil
}

func (r *RequestRepository) GetRequestByID(ctx context.Context, id int) (models.ItemRequest, error) {
	var request models.ItemRequest
	query := `SELECT id, description, requester_id, created_at FROM requests WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&request.ID, &request.Description, &request.RequesterID, &request.Created)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ItemRequest{}, models.ErrRequestNotFound
	}
	return request, err
}

func (r *RequestRepository) GetRequestsByRequesterID(ctx context.Context, requesterID int) ([]models.ItemRequest, error) {
	query := `SELECT id, description, requester_id, created_at FROM requests WHERE requester_id = ? ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, requesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *RequestRepository) GetRequestsExcludingRequesterID(ctx context.Context, requesterID int) ([]models.ItemRequest, error) {
	query := `SELECT id, description, requester_id, created_at FROM requests WHERE requester_id <> ? ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, requesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func scanRequests(rows *sql.Rows) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	for rows.Next() {
		var request models.ItemRequest
		if err := rows.Scan(&request.ID, &request.Description, &request.RequesterID, &request.Created); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}
