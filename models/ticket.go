package models

import "time"

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

// TicketType decides whether a ticket is in-person and whether it covers a hotel stay.
type TicketType struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"column:name;size:255" json:"name"`
	Price         int    `gorm:"column:price" json:"price"`
	IsRemote      bool   `gorm:"column:is_remote" json:"isRemote"`
	IncludesHotel bool   `gorm:"column:includes_hotel" json:"includesHotel"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Ticket struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	TicketTypeID uint         `gorm:"column:ticket_type_id;index" json:"ticketTypeId"`
	EnrollmentID uint         `gorm:"column:enrollment_id;index" json:"enrollmentId"`
	Status       TicketStatus `gorm:"column:status;size:16;default:'RESERVED'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TicketType TicketType  `gorm:"foreignKey:TicketTypeID;references:ID" json:"TicketType"`
	Enrollment *Enrollment `gorm:"foreignKey:EnrollmentID;references:ID" json:"-"`
}

// AllowsHotelBooking reports whether the ticket is paid, in-person and includes a hotel stay.
func (t Ticket) AllowsHotelBooking() bool {
	return t.Status == TicketStatusPaid && !t.TicketType.IsRemote && t.TicketType.IncludesHotel
}
