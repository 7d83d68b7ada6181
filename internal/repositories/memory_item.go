package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"shareit/internal/models"
)

type MemoryItemRepository struct {
	mu     sync.RWMutex
	items  map[int]models.Item
	nextID int
}

func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{items: make(map[int]models.Item), nextID: 1}
}

func (r *MemoryItemRepository) CreateItem(_ context.Context, item models.Item) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	item.CreatedAt = time.Now()
	r.items[item.ID] = item
	return item, nil
}

func (r *MemoryItemRepository) GetItemByID(_ context.Context, id int) (models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return models.Item{}, models.ErrItemNotFound
	}
	return item, nil
}

func (r *MemoryItemRepository) GetItemsByOwnerID(_ context.Context, ownerID, limit, offset int) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []models.Item
	for _, item := range r.items {
		if item.OwnerID == ownerID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	if offset >= len(items) {
		return []models.Item{}, nil
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (r *MemoryItemRepository) UpdateItem(_ context.Context, item models.Item) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[item.ID]
	if !ok {
		return models.Item{}, models.ErrItemNotFound
	}
	now := time.Now()
	item.OwnerID = stored.OwnerID
	item.CreatedAt = stored.CreatedAt
	item.UpdatedAt = &now
	r.items[item.ID] = item
	return item, nil
}

func (r *MemoryItemRepository) DeleteItem(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return models.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *MemoryItemRepository) SearchItems(_ context.Context, text string) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(text)
	var items []models.Item
	for _, item := range r.items {
		if !item.Available {
			continue
		}
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}
