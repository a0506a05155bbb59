package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrInvalidTransition = errors.New("booking is not awaiting this approval stage")
	ErrSlotConflict      = errors.New("time slots conflict with an approved booking")
)

var (
	ErrValidation = errors.New("validation error")
)
