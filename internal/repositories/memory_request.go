package repositories

import (
	"context"
	"sort"
	"sync"

	"shareit/internal/models"
)

type MemoryRequestRepository struct {
	mu       sync.RWMutex
	requests map[int]models.ItemRequest
	nextID   int
}

func NewMemoryRequestRepository() *MemoryRequestRepository {
	return &MemoryRequestRepository{requests: make(map[int]models.ItemRequest), nextID: 1}
}

func (r *MemoryRequestRepository) CreateRequest(_ context.Context, request models.ItemRequest) (models.ItemRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request.ID = r.nextID
	r.nextID++
	r.requests[request.ID] = request
	return request, nil
}

func (r *MemoryRequestRepository) GetRequestByID(_ context.Context, id int) (models.ItemRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	request, ok := r.requests[id]
	if !ok {
		return models.ItemRequest{}, models.ErrRequestNotFound
	}
	return request, nil
}

func (r *MemoryRequestRepository) GetRequestsByRequesterID(_ context.Context, requesterID int) ([]models.ItemRequest, error) {
	return r.filter(func(req models.ItemRequest) bool { return req.RequesterID == requesterID })
}

func (r *MemoryRequestRepository) GetRequestsExcludingRequesterID(_ context.Context, requesterID int) ([]models.ItemRequest, error) {
	return r.filter(func(req models.ItemRequest) bool { return req.RequesterID != requesterID })
}

func (r *MemoryRequestRepository) filter(keep func(models.ItemRequest) bool) ([]models.ItemRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var requests []models.ItemRequest
	for _, request := range r.requests {
		if keep(request) {
			requests = append(requests, request)
		}
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].Created.After(requests[j].Created) })
	return requests, nil
}
