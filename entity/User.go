package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `json:"email" gorm:"uniqueIndex"`
	Password  string `json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// role resolves to a capability set at login
	Role string `json:"role"`
}
