// Package testutil opens throwaway SQLite databases with the production
// schema and inserts fixtures into them.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"hotel-booking/config"
	"hotel-booking/models"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewTestDB returns a migrated in-memory database private to the test.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), config.GormConfig("silent"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func CreateUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	var n int64
	db.Model(&models.User{}).Count(&n)
	user := models.User{Email: fmt.Sprintf("user%d@test.local", n+1), Password: "x"}
	mustCreate(t, db, &user)
	return user
}

func CreateEnrollmentWithAddress(t *testing.T, db *gorm.DB, user models.User) models.Enrollment {
	t.Helper()
	enrollment := models.Enrollment{
		Name:     "Guest",
		CPF:      "12345678909",
		Birthday: datatypes.Date(time.Date(1995, time.March, 3, 0, 0, 0, 0, time.UTC)),
		Phone:    "21999990000",
		UserID:   user.ID,
		Address: &models.Address{
			CEP:          "01000-000",
			Street:       "Avenida Paulista",
			City:         "São Paulo",
			State:        "SP",
			Number:       "1000",
			Neighborhood: "Bela Vista",
		},
	}
	mustCreate(t, db, &enrollment)
	return enrollment
}

func CreateTicketType(t *testing.T, db *gorm.DB, isRemote, includesHotel bool) models.TicketType {
	t.Helper()
	tt := models.TicketType{Name: "Ticket", Price: 300, IsRemote: isRemote, IncludesHotel: includesHotel}
	mustCreate(t, db, &tt)
	return tt
}

// CreateTicketTypeWithHotel is the only kind of ticket type that can book a room.
func CreateTicketTypeWithHotel(t *testing.T, db *gorm.DB) models.TicketType {
	t.Helper()
	return CreateTicketType(t, db, false, true)
}

func CreateTicket(t *testing.T, db *gorm.DB, enrollmentID, ticketTypeID uint, status models.TicketStatus) models.Ticket {
	t.Helper()
	ticket := models.Ticket{EnrollmentID: enrollmentID, TicketTypeID: ticketTypeID, Status: status}
	mustCreate(t, db, &ticket)
	return ticket
}

// CreateEligibleUser returns a user holding a paid, in-person ticket with hotel.
func CreateEligibleUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := CreateUser(t, db)
	enrollment := CreateEnrollmentWithAddress(t, db, user)
	tt := CreateTicketTypeWithHotel(t, db)
	CreateTicket(t, db, enrollment.ID, tt.ID, models.TicketStatusPaid)
	return user
}

func CreateHotel(t *testing.T, db *gorm.DB) models.Hotel {
	t.Helper()
	hotel := models.Hotel{Name: "Hotel", Image: "https://images.example.com/hotel.jpg"}
	mustCreate(t, db, &hotel)
	return hotel
}

func CreateRoomWithHotelID(t *testing.T, db *gorm.DB, hotelID uint, capacity int) models.Room {
	t.Helper()
	room := models.Room{Name: "Room", Capacity: capacity, HotelID: hotelID}
	mustCreate(t, db, &room)
	return room
}

func CreateBookingWithRoom(t *testing.T, db *gorm.DB, roomID, userID uint) models.Booking {
	t.Helper()
	booking := models.Booking{RoomID: roomID, UserID: userID}
	mustCreate(t, db, &booking)
	return booking
}
