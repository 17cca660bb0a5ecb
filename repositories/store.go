// Package repositories holds the gorm accessors behind the booking flow. Every
// lookup reports absence as a nil entity with a nil error; only store
// failures come back as errors.
package repositories

import (
	"context"

	"hotel-booking/models"
)

// BookingStore reads and writes bookings and the rooms they point at.
type BookingStore interface {
	FindByUserID(ctx context.Context, userID uint) (*models.Booking, error)
	Create(ctx context.Context, userID, roomID uint) (*models.Booking, error)
	UpdateRoom(ctx context.Context, bookingID, roomID uint) (*models.Booking, error)
	FindRoomByID(ctx context.Context, roomID uint) (*models.Room, error)
	// FindRoomByIDForUpdate locks the room row until the surrounding transaction ends.
	FindRoomByIDForUpdate(ctx context.Context, roomID uint) (*models.Room, error)
	CountByRoomID(ctx context.Context, roomID uint) (int64, error)
	Transaction(ctx context.Context, fn func(tx BookingStore) error) error
}

type EnrollmentStore interface {
	FindByUserID(ctx context.Context, userID uint) (*models.Enrollment, error)
}

type TicketStore interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID uint) (*models.Ticket, error)
}

var (
	_ BookingStore    = (*BookingRepository)(nil)
	_ EnrollmentStore = (*EnrollmentRepository)(nil)
	_ TicketStore     = (*TicketRepository)(nil)
)
