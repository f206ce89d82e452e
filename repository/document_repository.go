package repository

import (
	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db}
}

func (r *DocumentRepository) Create(doc *entity.Document) error {
	return r.db.Create(doc).Error
}

func (r *DocumentRepository) FindByLoad(loadID uint) ([]entity.Document, error) {
	var docs []entity.Document
	err := r.db.
		Where("load_id = ?", loadID).
		Order("created_at ASC").
		Find(&docs).Error
	return docs, err
}
