package models

import (
	"time"
)

// ItemRequest is a "wanted" post for an item nobody has listed yet.
type ItemRequest struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	RequesterID int       `json:"requester_id"`
	Created     time.Time `json:"created"`
}
