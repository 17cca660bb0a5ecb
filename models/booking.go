package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// one booking per user; the unique index backs the check in the service
	UserID uint `gorm:"column:user_id;uniqueIndex" json:"userId"`
	RoomID uint `gorm:"column:room_id;index" json:"roomId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Room *Room `gorm:"foreignKey:RoomID;references:ID" json:"Room,omitempty"`
}
