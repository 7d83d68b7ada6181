package repositories

import (
	"context"
	"database/sql"

	"shareit/internal/models"
)

type CommentRepository struct {
	DB *sql.DB
}

func (r *CommentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	query := `INSERT INTO comments (text, item_id, author_id, created_at) VALUES (?, ?, ?, ?)`
	res, err := r.DB.ExecContext(ctx, query, comment.Text, comment.ItemID, comment.AuthorID, comment.Created)
	if err != nil {
		return models.Comment{}, err
	}
	id, _ := res.LastInsertId()
	comment.ID = int(id)
	return comment, nil
}

func (r *CommentRepository) GetCommentsByItemID(ctx context.Context, itemID int) ([]models.Comment, error) {
	query := `SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created_at
	          FROM comments c
	          JOIN users u ON u.id = c.author_id
	          WHERE c.item_id = ?
	          ORDER BY c.created_at`
	rows, err := r.DB.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.Text, &comment.ItemID, &comment.AuthorID, &comment.AuthorName, &comment.Created); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}
