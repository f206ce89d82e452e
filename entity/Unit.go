package entity

import (
	"gorm.io/gorm"
)

// Unit groups the trucks, trailers and drivers that run together. The load
// workflow only reads units; assignment edits happen elsewhere.
type Unit struct {
	gorm.Model
	UnitNumber string `json:"unit_number"`
	TeamID     *uint  `json:"team"`

	// first-in-list is the active assignment, so ordering matters
	Trucks   []Truck   `json:"truck" gorm:"foreignKey:UnitID"`
	Trailers []Trailer `json:"trailer" gorm:"foreignKey:UnitID"`
	Drivers  []Driver  `json:"driver" gorm:"foreignKey:UnitID"`
}
