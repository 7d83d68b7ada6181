package models

import (
	"errors"
)

var (
	ErrUserNotFound    = errors.New("models: user not found")
	ErrItemNotFound    = errors.New("models: item not found")
	ErrBookingNotFound = errors.New("models: booking not found")
	ErrRequestNotFound = errors.New("models: request not found")

	ErrDuplicateEmail = errors.New("models: duplicate email")

	ErrAccessDenied = errors.New("models: access denied")

	ErrItemUnavailable   = errors.New("models: item is unavailable for booking")
	ErrBookingOverlap    = errors.New("models: booking overlaps an approved booking")
	ErrBookingDecided    = errors.New("models: booking has already been decided")
	ErrInvalidPeriod     = errors.New("models: booking start must be before end")
	ErrCommentNotAllowed = errors.New("models: user has no finished approved booking for item")
	ErrUnknownState      = errors.New("models: unknown booking state")
)
