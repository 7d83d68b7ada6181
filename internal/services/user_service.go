package services

import (
	"context"

	"shareit/internal/models"
)

// UserRepo is the storage capability the user service depends on. It is
// implemented by the MySQL repository and by an in-memory map store used in
// tests.
type UserRepo interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int) (models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int) error
}

type UserService struct {
	UserRepo UserRepo
}

func (s *UserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return s.UserRepo.CreateUser(ctx, user)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.UserRepo.GetUsers(ctx)
}

// UpdateUser applies a partial update: nil fields leave stored values
// unchanged. Email uniqueness is re-checked by the store on write.
func (s *UserService) UpdateUser(ctx context.Context, id int, upd models.UpdateUserRequest) (models.User, error) {
	existing, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if upd.Name != nil {
		existing.Name = *upd.Name
	}
	if upd.Email != nil {
		existing.Email = *upd.Email
	}
	return s.UserRepo.UpdateUser(ctx, existing)
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.UserRepo.DeleteUser(ctx, id)
}
