package models

import "time"

type Hotel struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"column:name;size:255" json:"name"`
	Image string `gorm:"column:image;size:512" json:"image"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"Rooms,omitempty"`
}
