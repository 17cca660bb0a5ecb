package config

import (
	"log"
	"time"

	"hotel-booking/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DemoUserEmail    = "demo@hotel.local"
	demoUserPassword = "demo1234"
)

// SeedDatabase creates a demo user able to book plus a hotel with rooms.
// It does nothing once any user exists.
func SeedDatabase(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		log.Println("Seed skipped: users already present")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		user := models.User{Email: DemoUserEmail, Password: string(hash)}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		enrollment := models.Enrollment{
			Name:     "Demo Guest",
			CPF:      "00000000000",
			Birthday: datatypes.Date(time.Date(1990, time.January, 15, 0, 0, 0, 0, time.UTC)),
			Phone:    "+55 21 99999-0000",
			UserID:   user.ID,
			Address: &models.Address{
				CEP:          "20000-000",
				Street:       "Rua das Flores",
				City:         "Rio de Janeiro",
				State:        "RJ",
				Number:       "100",
				Neighborhood: "Centro",
			},
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}

		ticketType := models.TicketType{Name: "In-person with hotel", Price: 600, IncludesHotel: true}
		if err := tx.Create(&ticketType).Error; err != nil {
			return err
		}
		ticket := models.Ticket{TicketTypeID: ticketType.ID, EnrollmentID: enrollment.ID, Status: models.TicketStatusPaid}
		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}

		hotel := models.Hotel{
			Name:  "Driven Resort",
			Image: "https://images.example.com/driven-resort.jpg",
			Rooms: []models.Room{
				{Name: "101", Capacity: 1},
				{Name: "102", Capacity: 2},
				{Name: "103", Capacity: 3},
			},
		}
		if err := tx.Create(&hotel).Error; err != nil {
			return err
		}

		log.Printf("Seeded demo user %s, hotel %q with %d rooms", user.Email, hotel.Name, len(hotel.Rooms))
		return nil
	})
}
