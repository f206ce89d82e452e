package entity

import (
	"gorm.io/gorm"
)

type Dispatcher struct {
	gorm.Model
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Nickname      string `json:"nickname"`
	ContactNumber string `json:"contact_number"`
	EmailAddress  string `json:"email_address"`
}
