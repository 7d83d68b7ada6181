package repositories

import (
	"context"
	"sync"
	"time"

	"shareit/internal/models"
)

// MemoryUserRepository is a mutex-guarded map store. The memory repositories
// back the service tests and serve as a single-process reference
// implementation; the maps are owned exclusively by the store and values are
// copied in and out.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[int]models.User
	nextID int
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[int]models.User), nextID: 1}
}

func (r *MemoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return models.User{}, models.ErrDuplicateEmail
		}
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return user, nil
}

func (r *MemoryUserRepository) GetUserByID(_ context.Context, id int) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return user, nil
}

func (r *MemoryUserRepository) GetUsers(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *MemoryUserRepository) UpdateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	for id, existing := range r.users {
		if id != user.ID && existing.Email == user.Email {
			return models.User{}, models.ErrDuplicateEmail
		}
	}
	now := time.Now()
	user.CreatedAt = stored.CreatedAt
	user.UpdatedAt = &now
	r.users[user.ID] = user
	return user, nil
}

func (r *MemoryUserRepository) DeleteUser(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return models.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}
