package entity

import (
	"gorm.io/gorm"
)

// Document is a file attached to a load. Append-only.
type Document struct {
	gorm.Model
	LoadID uint `json:"load"`

	FilePath     string `json:"file"`
	OriginalName string `json:"original_name"`
	ContentType  string `json:"content_type"`
	SizeBytes    int64  `json:"size_bytes"`

	UploadedByID uint `json:"uploaded_by"`
}
