package models

import "time"

// Room capacity is the maximum number of bookings the room accepts at once.
type Room struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"column:name;size:255" json:"name"`
	Capacity int    `gorm:"column:capacity" json:"capacity"`
	HotelID  uint   `gorm:"column:hotel_id;index" json:"hotelId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Hotel *Hotel `gorm:"foreignKey:HotelID;references:ID" json:"-"`
}
