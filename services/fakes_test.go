package services

import (
	"context"
	"sync"

	"hotel-booking/models"
	"hotel-booking/repositories"

	"gorm.io/gorm"
)

type fakeBookingStore struct {
	mu       sync.Mutex
	rooms    map[uint]models.Room
	bookings []models.Booking
	nextID   uint
	err      error
	txCalls  int
	locks    []uint
}

func newFakeBookingStore(rooms ...models.Room) *fakeBookingStore {
	f := &fakeBookingStore{rooms: map[uint]models.Room{}, nextID: 1}
	for _, r := range rooms {
		f.rooms[r.ID] = r
	}
	return f
}

func (f *fakeBookingStore) addBooking(userID, roomID uint) models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := models.Booking{ID: f.nextID, UserID: userID, RoomID: roomID}
	f.nextID++
	f.bookings = append(f.bookings, b)
	return b
}

func (f *fakeBookingStore) FindByUserID(_ context.Context, userID uint) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.bookings {
		if b.UserID == userID {
			if room, ok := f.rooms[b.RoomID]; ok {
				b.Room = &room
			}
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingStore) Create(_ context.Context, userID, roomID uint) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.UserID == userID {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	b := models.Booking{ID: f.nextID, UserID: userID, RoomID: roomID}
	f.nextID++
	f.bookings = append(f.bookings, b)
	return &b, nil
}

func (f *fakeBookingStore) UpdateRoom(_ context.Context, bookingID, roomID uint) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			f.bookings[i].RoomID = roomID
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookingStore) FindRoomByID(_ context.Context, roomID uint) (*models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	room, ok := f.rooms[roomID]
	if !ok {
		return nil, nil
	}
	return &room, nil
}

func (f *fakeBookingStore) FindRoomByIDForUpdate(ctx context.Context, roomID uint) (*models.Room, error) {
	f.mu.Lock()
	f.locks = append(f.locks, roomID)
	f.mu.Unlock()
	return f.FindRoomByID(ctx, roomID)
}

func (f *fakeBookingStore) CountByRoomID(_ context.Context, roomID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, b := range f.bookings {
		if b.RoomID == roomID {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingStore) Transaction(_ context.Context, fn func(tx repositories.BookingStore) error) error {
	f.mu.Lock()
	f.txCalls++
	f.mu.Unlock()
	return fn(f)
}

func (f *fakeBookingStore) roomOf(bookingID uint) uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == bookingID {
			return b.RoomID
		}
	}
	return 0
}

type fakeEnrollmentStore struct {
	byUser map[uint]models.Enrollment
	err    error
}

func (f *fakeEnrollmentStore) FindByUserID(_ context.Context, userID uint) (*models.Enrollment, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.byUser[userID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

type fakeTicketStore struct {
	byEnrollment map[uint]models.Ticket
}

func (f *fakeTicketStore) FindByEnrollmentID(_ context.Context, enrollmentID uint) (*models.Ticket, error) {
	t, ok := f.byEnrollment[enrollmentID]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

var hotelTicket = models.TicketType{ID: 1, Name: "In-person + hotel", IncludesHotel: true}

// eligibility builds enrollment and ticket stores where every listed user
// holds the given ticket.
func eligibility(status models.TicketStatus, tt models.TicketType, userIDs ...uint) (*fakeEnrollmentStore, *fakeTicketStore) {
	enrollments := &fakeEnrollmentStore{byUser: map[uint]models.Enrollment{}}
	tickets := &fakeTicketStore{byEnrollment: map[uint]models.Ticket{}}
	for i, userID := range userIDs {
		enrollmentID := uint(100 + i)
		enrollments.byUser[userID] = models.Enrollment{ID: enrollmentID, UserID: userID}
		tickets.byEnrollment[enrollmentID] = models.Ticket{
			ID:           uint(200 + i),
			EnrollmentID: enrollmentID,
			Status:       status,
			TicketType:   tt,
		}
	}
	return enrollments, tickets
}
