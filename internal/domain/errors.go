package domain

import "errors"

var (
	ErrTripNotFound    = errors.New("trip not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrSeatUnavailable = errors.New("seat is already booked")
	ErrSelectionFull   = errors.New("selection is full (max 6 seats)")
	ErrEmptySelection  = errors.New("no seats selected")
)

var (
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	ErrNoSuchAccount  = errors.New("no account found with this email")
	ErrBadCredentials = errors.New("incorrect password")
)

var (
	ErrValidation = errors.New("validation error")
)
