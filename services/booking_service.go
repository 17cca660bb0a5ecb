// services/booking_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/models"
	"hotel-booking/repositories"

	"gorm.io/gorm"
)

// BookingService owns the rules for who may book which room. It keeps no
// state between calls; every check reads the store again.
type BookingService struct {
	Bookings    repositories.BookingStore
	Enrollments repositories.EnrollmentStore
	Tickets     repositories.TicketStore
}

func NewBookingService(
	bookings repositories.BookingStore,
	enrollments repositories.EnrollmentStore,
	tickets repositories.TicketStore,
) *BookingService {
	return &BookingService{Bookings: bookings, Enrollments: enrollments, Tickets: tickets}
}

// GetBooking returns the user's booking with its room embedded.
func (s *BookingService) GetBooking(ctx context.Context, userID uint) (*models.Booking, error) {
	booking, err := s.Bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// CreateBooking books roomID for the user. Checks run in this order and the
// first failure wins: room exists, room has space, ticket allows a hotel
// stay, user has no booking yet.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID uint) (*models.Booking, error) {
	room, err := s.Bookings.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	full, err := isFull(ctx, s.Bookings, room, 0)
	if err != nil {
		return nil, err
	}
	if full {
		return nil, ErrRoomFull
	}

	canBook, err := s.CanUserBook(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !canBook {
		return nil, ErrTicketNotEligible
	}

	hasBooking, err := s.UserHasBooking(ctx, userID)
	if err != nil {
		return nil, err
	}
	if hasBooking {
		return nil, ErrAlreadyBooked
	}

	var created *models.Booking
	err = s.Bookings.Transaction(ctx, func(tx repositories.BookingStore) error {
		if err := recheckCapacity(ctx, tx, roomID, 0); err != nil {
			return err
		}
		booking, err := tx.Create(ctx, userID, roomID)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyBooked
		}
		if err != nil {
			return err
		}
		created = booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateBooking moves the user's booking bookingID to roomID. Checks run in
// this order: room exists, room has space, user has a booking, that booking
// is bookingID. Ticket eligibility is not checked again.
func (s *BookingService) UpdateBooking(ctx context.Context, userID, bookingID, roomID uint) (*models.Booking, error) {
	room, err := s.Bookings.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	current, err := s.Bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	full, err := isFull(ctx, s.Bookings, room, ownSlot(current, roomID))
	if err != nil {
		return nil, err
	}
	if full {
		return nil, ErrRoomFull
	}

	if current == nil {
		return nil, ErrNoBooking
	}
	if current.ID != bookingID {
		return nil, ErrBookingMismatch
	}

	var updated *models.Booking
	err = s.Bookings.Transaction(ctx, func(tx repositories.BookingStore) error {
		if err := recheckCapacity(ctx, tx, roomID, ownSlot(current, roomID)); err != nil {
			return err
		}
		booking, err := tx.UpdateRoom(ctx, bookingID, roomID)
		if err != nil {
			return err
		}
		updated = booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *BookingService) RoomExists(ctx context.Context, roomID uint) (bool, error) {
	room, err := s.Bookings.FindRoomByID(ctx, roomID)
	if err != nil {
		return false, err
	}
	return room != nil, nil
}

// IsRoomFull reports whether the room already holds as many bookings as its
// capacity. A missing room is reported as ErrRoomNotFound.
func (s *BookingService) IsRoomFull(ctx context.Context, roomID uint) (bool, error) {
	room, err := s.Bookings.FindRoomByID(ctx, roomID)
	if err != nil {
		return false, err
	}
	if room == nil {
		return false, ErrRoomNotFound
	}
	return isFull(ctx, s.Bookings, room, 0)
}

// CanUserBook holds when the user has an enrollment whose ticket is paid,
// in-person and includes the hotel.
func (s *BookingService) CanUserBook(ctx context.Context, userID uint) (bool, error) {
	enrollment, err := s.Enrollments.FindByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	if enrollment == nil {
		return false, nil
	}

	ticket, err := s.Tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return false, err
	}
	if ticket == nil {
		return false, nil
	}
	return ticket.AllowsHotelBooking(), nil
}

func (s *BookingService) UserHasBooking(ctx context.Context, userID uint) (bool, error) {
	booking, err := s.Bookings.FindByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	return booking != nil, nil
}

// UserOwnsBooking compares the user's current booking with bookingID. A user
// without a booking owns nothing.
func (s *BookingService) UserOwnsBooking(ctx context.Context, userID, bookingID uint) (bool, error) {
	booking, err := s.Bookings.FindByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	return booking != nil && booking.ID == bookingID, nil
}

// isFull compares the room's bookings, minus the ones the caller already
// holds there, against its capacity. Equal counts as full.
func isFull(ctx context.Context, store repositories.BookingStore, room *models.Room, held int64) (bool, error) {
	count, err := store.CountByRoomID(ctx, room.ID)
	if err != nil {
		return false, err
	}
	return count-held >= int64(room.Capacity), nil
}

// recheckCapacity locks the room row and counts again inside the write transaction.
func recheckCapacity(ctx context.Context, tx repositories.BookingStore, roomID uint, held int64) error {
	room, err := tx.FindRoomByIDForUpdate(ctx, roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return ErrRoomNotFound
	}
	full, err := isFull(ctx, tx, room, held)
	if err != nil {
		return fmt.Errorf("recheck room %d: %w", roomID, err)
	}
	if full {
		return ErrRoomFull
	}
	return nil
}

// ownSlot is 1 when the user's booking already sits in roomID.
func ownSlot(current *models.Booking, roomID uint) int64 {
	if current != nil && current.RoomID == roomID {
		return 1
	}
	return 0
}
