package models

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

type Booking struct {
	ID        int           `json:"id"`
	Start     time.Time     `json:"start"`
	End       time.Time     `json:"end"`
	Status    BookingStatus `json:"status"`
	ItemID    int           `json:"item_id"`
	BookerID  int           `json:"booker_id"`
	Item      ItemSummary   `json:"item"`
	Booker    UserSummary   `json:"booker"`
	CreatedAt time.Time     `json:"created_at"`
}

// BookingShort is the compact shape attached to items on owner dashboards.
type BookingShort struct {
	ID       int       `json:"id"`
	BookerID int       `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CreateBookingRequest struct {
	ItemID int       `json:"item_id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// BookingState selects a temporal or status slice of a booking list.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState maps a query value to a state selector. An empty value
// means ALL.
func ParseBookingState(s string) (BookingState, error) {
	switch BookingState(strings.ToUpper(strings.TrimSpace(s))) {
	case "", StateAll:
		return StateAll, nil
	case StateCurrent:
		return StateCurrent, nil
	case StatePast:
		return StatePast, nil
	case StateFuture:
		return StateFuture, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateRejected:
		return StateRejected, nil
	}
	return "", ErrUnknownState
}
