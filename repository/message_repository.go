package repository

import (
	"dmscreen/models"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// FindByCampaign returns a campaign's full message history, oldest first.
func (r *MessageRepository) FindByCampaign(campaignID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("campaign_id = ?", campaignID).
		Preload("Sender").
		Order("time").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}
