package services

import (
	"context"
	"strings"
	"time"

	"shareit/internal/models"
)

// ItemRepo is the storage capability for the item catalog.
type ItemRepo interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItemByID(ctx context.Context, id int) (models.Item, error)
	GetItemsByOwnerID(ctx context.Context, ownerID, limit, offset int) ([]models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, id int) error
	SearchItems(ctx context.Context, text string) ([]models.Item, error)
}

// CommentRepo stores item feedback left by past bookers.
type CommentRepo interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	GetCommentsByItemID(ctx context.Context, itemID int) ([]models.Comment, error)
}

type ItemService struct {
	ItemRepo    ItemRepo
	UserRepo    UserRepo
	BookingRepo BookingRepo
	CommentRepo CommentRepo
}

func (s *ItemService) CreateItem(ctx context.Context, ownerID int, item models.Item) (models.Item, error) {
	owner, err := s.UserRepo.GetUserByID(ctx, ownerID)
	if err != nil {
		return models.Item{}, err
	}
	item.OwnerID = owner.ID
	return s.ItemRepo.CreateItem(ctx, item)
}

// UpdateItem applies a partial update. Only the owner may modify the listing;
// nil fields keep the stored value.
func (s *ItemService) UpdateItem(ctx context.Context, userID, itemID int, upd models.UpdateItemRequest) (models.Item, error) {
	existing, err := s.ItemRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return models.Item{}, err
	}
	if existing.OwnerID != userID {
		return models.Item{}, models.ErrAccessDenied
	}
	if upd.Name != nil {
		existing.Name = *upd.Name
	}
	if upd.Description != nil {
		existing.Description = *upd.Description
	}
	if upd.Available != nil {
		existing.Available = *upd.Available
	}
	return s.ItemRepo.UpdateItem(ctx, existing)
}

// GetItemByID returns the item with its full comment list. When the viewer is
// the owner the last and next approved bookings are attached as well.
func (s *ItemService) GetItemByID(ctx context.Context, userID, itemID int) (models.Item, error) {
	item, err := s.ItemRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return models.Item{}, err
	}
	comments, err := s.CommentRepo.GetCommentsByItemID(ctx, itemID)
	if err != nil {
		return models.Item{}, err
	}
	item.Comments = comments
	if item.OwnerID == userID {
		if err := s.attachBookings(ctx, &item); err != nil {
			return models.Item{}, err
		}
	}
	return item, nil
}

// GetItemsByOwner returns the owner's dashboard: each item enriched with its
// last and next approved booking.
func (s *ItemService) GetItemsByOwner(ctx context.Context, ownerID, limit, offset int) ([]models.Item, error) {
	if _, err := s.UserRepo.GetUserByID(ctx, ownerID); err != nil {
		return nil, err
	}
	items, err := s.ItemRepo.GetItemsByOwnerID(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if err := s.attachBookings(ctx, &items[i]); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// SearchItems matches text case-insensitively against name or description of
// available items. A blank query returns an empty result, not the catalog.
func (s *ItemService) SearchItems(ctx context.Context, text string) ([]models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []models.Item{}, nil
	}
	return s.ItemRepo.SearchItems(ctx, text)
}

func (s *ItemService) DeleteItem(ctx context.Context, userID, itemID int) error {
	item, err := s.ItemRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.OwnerID != userID {
		return models.ErrAccessDenied
	}
	return s.ItemRepo.DeleteItem(ctx, itemID)
}

// AddComment attaches feedback to an item. The author must have an approved
// booking for the item whose end has already passed.
func (s *ItemService) AddComment(ctx context.Context, userID, itemID int, text string) (models.Comment, error) {
	author, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil {
		return models.Comment{}, err
	}
	item, err := s.ItemRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return models.Comment{}, err
	}
	eligible, err := s.BookingRepo.HasFinishedApprovedBooking(ctx, author.ID, item.ID, time.Now())
	if err != nil {
		return models.Comment{}, err
	}
	if !eligible {
		return models.Comment{}, models.ErrCommentNotAllowed
	}

	comment := models.Comment{
		Text:       text,
		ItemID:     item.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Created:    time.Now(),
	}
	return s.CommentRepo.CreateComment(ctx, comment)
}

func (s *ItemService) attachBookings(ctx context.Context, item *models.Item) error {
	now := time.Now()
	last, err := s.BookingRepo.GetLastBookingForItem(ctx, item.ID, now)
	if err != nil {
		return err
	}
	next, err := s.BookingRepo.GetNextBookingForItem(ctx, item.ID, now)
	if err != nil {
		return err
	}
	item.LastBooking = last
	item.NextBooking = next
	return nil
}
