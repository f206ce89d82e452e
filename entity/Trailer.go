package entity

import (
	"gorm.io/gorm"
)

type Trailer struct {
	gorm.Model
	TrailerNumber string `json:"trailer_number"`
	// cargo type; same value set as load equipment types
	Type        string `json:"type"`
	Make        string `json:"make"`
	Year        int    `json:"year"`
	PlateNumber string `json:"plate_number"`

	UnitID *uint `json:"unit"`
}
