package repositories

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/models"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

// FindByUserID returns the user's enrollment with its address, or nil.
func (r *EnrollmentRepository) FindByUserID(ctx context.Context, userID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.DB.WithContext(ctx).
		Preload("Address").
		Where("user_id = ?", userID).
		First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find enrollment by user %d: %w", userID, err)
	}
	return &enrollment, nil
}
