package services

import "errors"

// Sentinel domain errors, matched with errors.Is in the controllers.
var (
	ErrNotFound         = errors.New("record not found")
	ErrRoomUnavailable  = errors.New("room is not available")
	ErrBookingNotActive = errors.New("booking is not active")
	ErrRoomNotDirty     = errors.New("room is not awaiting cleaning")
	ErrInvalidAmount    = errors.New("amount must be positive")
)
