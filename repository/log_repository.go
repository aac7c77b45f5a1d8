package repository

import (
	"errors"

	"dmscreen/models"

	"gorm.io/gorm"
)

type LogRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

func (r *LogRepository) FindByCampaign(campaignID uint) ([]models.Log, error) {
	var logs []models.Log
	err := r.db.Where("campaign_id = ?", campaignID).
		Preload("Creator").
		Order("time").
		Find(&logs).Error
	return logs, err
}

func (r *LogRepository) FindByID(id uint) (*models.Log, error) {
	var logEntry models.Log
	err := r.db.First(&logEntry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &logEntry, nil
}

func (r *LogRepository) Create(logEntry *models.Log) error {
	return r.db.Create(logEntry).Error
}

func (r *LogRepository) Delete(logEntry *models.Log) error {
	return r.db.Delete(logEntry).Error
}
