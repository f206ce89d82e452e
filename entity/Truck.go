package entity

import (
	"gorm.io/gorm"
)

type Truck struct {
	gorm.Model
	UnitNumber  string `json:"unit_number"`
	Make        string `json:"make"`
	TruckModel  string `json:"model" gorm:"column:truck_model"`
	Year        int    `json:"year"`
	PlateNumber string `json:"plate_number"`
	VIN         string `json:"vin" gorm:"column:vin"`

	UnitID *uint `json:"unit"`
}
