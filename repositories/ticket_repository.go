package repositories

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/models"

	"gorm.io/gorm"
)

type TicketRepository struct {
	DB *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{DB: db}
}

// FindByEnrollmentID returns the enrollment's ticket with its type, or nil.
func (r *TicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.DB.WithContext(ctx).
		Preload("TicketType").
		Where("enrollment_id = ?", enrollmentID).
		First(&ticket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find ticket by enrollment %d: %w", enrollmentID, err)
	}
	return &ticket, nil
}
