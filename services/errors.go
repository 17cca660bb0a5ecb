package services

import (
	"errors"
	"fmt"
)

// Every failed booking operation wraps exactly one of these kinds.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

var (
	ErrBookingNotFound = fmt.Errorf("%w: booking", ErrNotFound)
	ErrRoomNotFound    = fmt.Errorf("%w: room", ErrNotFound)

	ErrRoomFull          = fmt.Errorf("%w: room is full", ErrForbidden)
	ErrTicketNotEligible = fmt.Errorf("%w: ticket does not allow hotel booking", ErrForbidden)
	ErrAlreadyBooked     = fmt.Errorf("%w: user already has a booking", ErrForbidden)
	ErrNoBooking         = fmt.Errorf("%w: user has no booking", ErrForbidden)
	ErrBookingMismatch   = fmt.Errorf("%w: booking does not belong to user", ErrForbidden)
)
