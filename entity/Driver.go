package entity

import (
	"gorm.io/gorm"
)

type Driver struct {
	gorm.Model
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	ContactNumber string `json:"contact_number"`
	LicenseNumber string `json:"license_number"`

	UnitID *uint `json:"unit"`
}
