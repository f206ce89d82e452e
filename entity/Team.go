package entity

import (
	"gorm.io/gorm"
)

type Team struct {
	gorm.Model
	Name string `json:"name"`

	Units []Unit `json:"-" gorm:"foreignKey:TeamID"`
}
