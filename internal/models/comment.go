package models

import (
	"time"
)

type Comment struct {
	ID         int       `json:"id"`
	Text       string    `json:"text"`
	ItemID     int       `json:"item_id"`
	AuthorID   int       `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}
