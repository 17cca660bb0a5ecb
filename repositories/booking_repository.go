package repositories

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

// FindByUserID returns the user's booking with its room, or nil when the user has none.
func (r *BookingRepository) FindByUserID(ctx context.Context, userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.DB.WithContext(ctx).
		Preload("Room").
		Where("user_id = ?", userID).
		First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find booking by user %d: %w", userID, err)
	}
	return &booking, nil
}

func (r *BookingRepository) Create(ctx context.Context, userID, roomID uint) (*models.Booking, error) {
	booking := models.Booking{UserID: userID, RoomID: roomID}
	if err := r.DB.WithContext(ctx).Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &booking, nil
}

// UpdateRoom points the booking at roomID and returns the stored row.
func (r *BookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID uint) (*models.Booking, error) {
	db := r.DB.WithContext(ctx)
	if err := db.Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("room_id", roomID).Error; err != nil {
		return nil, fmt.Errorf("update booking %d: %w", bookingID, err)
	}

	var booking models.Booking
	if err := db.First(&booking, bookingID).Error; err != nil {
		return nil, fmt.Errorf("reload booking %d: %w", bookingID, err)
	}
	return &booking, nil
}

func (r *BookingRepository) FindRoomByID(ctx context.Context, roomID uint) (*models.Room, error) {
	return r.findRoom(r.DB.WithContext(ctx), roomID)
}

func (r *BookingRepository) FindRoomByIDForUpdate(ctx context.Context, roomID uint) (*models.Room, error) {
	return r.findRoom(r.DB.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), roomID)
}

func (r *BookingRepository) findRoom(db *gorm.DB, roomID uint) (*models.Room, error) {
	// ids start at 1; 0 is what an unparseable roomId becomes
	if roomID == 0 {
		return nil, nil
	}
	var room models.Room
	err := db.Where("id = ?", roomID).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find room %d: %w", roomID, err)
	}
	return &room, nil
}

func (r *BookingRepository) CountByRoomID(ctx context.Context, roomID uint) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).
		Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count bookings for room %d: %w", roomID, err)
	}
	return count, nil
}

// Transaction runs fn against a repository bound to a single database transaction.
func (r *BookingRepository) Transaction(ctx context.Context, fn func(tx BookingStore) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingRepository{DB: tx})
	})
}
