package repositories

import (
	"context"
	"sort"
	"sync"

	"shareit/internal/models"
)

type MemoryCommentRepository struct {
	mu       sync.RWMutex
	comments map[int]models.Comment
	nextID   int
}

func NewMemoryCommentRepository() *MemoryCommentRepository {
	return &MemoryCommentRepository{comments: make(map[int]models.Comment), nextID: 1}
}

func (r *MemoryCommentRepository) CreateComment(_ context.Context, comment models.Comment) (models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.ID = r.nextID
	r.nextID++
	r.comments[comment.ID] = comment
	return comment, nil
}

func (r *MemoryCommentRepository) GetCommentsByItemID(_ context.Context, itemID int) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var comments []models.Comment
	for _, comment := range r.comments {
		if comment.ItemID == itemID {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].Created.Before(comments[j].Created) })
	return comments, nil
}
