package services

import (
	"context"
	"time"

	"shareit/internal/models"
)

// RequestRepo is the storage capability for the request board.
type RequestRepo interface {
	CreateRequest(ctx context.Context, request models.ItemRequest) (models.ItemRequest, error)
	GetRequestByID(ctx context.Context, id int) (models.ItemRequest, error)
	GetRequestsByRequesterID(ctx context.Context, requesterID int) ([]models.ItemRequest, error)
	GetRequestsExcludingRequesterID(ctx context.Context, requesterID int) ([]models.ItemRequest, error)
}

type RequestService struct {
	RequestRepo RequestRepo
	UserRepo    UserRepo
}

// CreateRequest stamps the requester and the server clock; both are immutable
// afterwards.
func (s *RequestService) CreateRequest(ctx context.Context, userID int, description string) (models.ItemRequest, error) {
	requester, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil {
		return models.ItemRequest{}, err
	}
	request := models.ItemRequest{
		Description: description,
		RequesterID: requester.ID,
		Created:     time.Now(),
	}
	return s.RequestRepo.CreateRequest(ctx, request)
}

func (s *RequestService) GetRequestByID(ctx context.Context, id int) (models.ItemRequest, error) {
	return s.RequestRepo.GetRequestByID(ctx, id)
}

func (s *RequestService) GetRequestsByUser(ctx context.Context, userID int) ([]models.ItemRequest, error) {
	if _, err := s.UserRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.RequestRepo.GetRequestsByRequesterID(ctx, userID)
}

func (s *RequestService) GetRequestsExcludingUser(ctx context.Context, userID int) ([]models.ItemRequest, error) {
	if _, err := s.UserRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.RequestRepo.GetRequestsExcludingRequesterID(ctx, userID)
}
