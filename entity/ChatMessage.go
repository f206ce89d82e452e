package entity

import (
	"gorm.io/gorm"
)

// ChatMessage is one entry in a load's transcript. Append-only; ordering is
// by CreatedAt ascending.
type ChatMessage struct {
	gorm.Model
	LoadID  uint   `json:"load"`
	Message string `json:"message"`

	UserID uint `json:"user"`
	User   User `json:"-"` // preload for sender display only
}
