package entity

import (
	"gorm.io/gorm"
)

// Stop is an ordered waypoint on a load. Carried on the record for detail
// views; the stage workflow never mutates stops.
type Stop struct {
	gorm.Model
	LoadID   uint   `json:"load"`
	Sequence int    `json:"sequence"`
	StopType string `json:"stop_type"` // PICKUP or DELIVERY
	Location string `json:"location"`
	Date     string `json:"date"`
}
