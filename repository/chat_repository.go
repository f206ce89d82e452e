package repository

import (
	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db}
}

func (r *ChatRepository) CreateMessage(msg *entity.ChatMessage) error {
	return r.db.Create(msg).Error
}

func (r *ChatRepository) FindMessagesByLoad(loadID uint) ([]entity.ChatMessage, error) {
	var msgs []entity.ChatMessage
	err := r.db.
		Preload("User").
		Where("load_id = ?", loadID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}
