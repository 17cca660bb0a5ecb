package models

import (
	"time"

	"gorm.io/datatypes"
)

// Enrollment is the user's registration for the event. A user has at most one.
type Enrollment struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	Name     string         `gorm:"column:name;size:255" json:"name"`
	CPF      string         `gorm:"column:cpf;size:20" json:"cpf"`
	Birthday datatypes.Date `gorm:"column:birthday" json:"birthday"`
	Phone    string         `gorm:"column:phone;size:32" json:"phone"`
	UserID   uint           `gorm:"column:user_id;uniqueIndex" json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User    *User    `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Address *Address `gorm:"foreignKey:EnrollmentID" json:"Address,omitempty"`
}

type Address struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	CEP           string `gorm:"column:cep;size:16" json:"cep"`
	Street        string `gorm:"column:street;size:255" json:"street"`
	City          string `gorm:"column:city;size:255" json:"city"`
	State         string `gorm:"column:state;size:64" json:"state"`
	Number        string `gorm:"column:number;size:32" json:"number"`
	Neighborhood  string `gorm:"column:neighborhood;size:255" json:"neighborhood"`
	AddressDetail string `gorm:"column:address_detail;size:255" json:"addressDetail,omitempty"`
	EnrollmentID  uint   `gorm:"column:enrollment_id;uniqueIndex" json:"enrollmentId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
