package repository

import (
	"errors"

	"dmscreen/models"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) FindByID(id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.First(&campaign, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *CampaignRepository) FindByUser(userID uint) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&campaigns).Error
	return campaigns, err
}

// FindJoined returns campaigns the user participates in through one of its
// player characters, excluding campaigns the user owns.
func (r *CampaignRepository) FindJoined(userID uint) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.
		Joins("JOIN players ON players.campaign_id = campaigns.id").
		Where("players.user_id = ? AND campaigns.user_id <> ?", userID, userID).
		Distinct().
		Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

func (r *CampaignRepository) Delete(campaign *models.Campaign) error {
	return r.db.Delete(campaign).Error
}

// SaveJoinCode inserts or replaces the campaign's single join code row.
func (r *CampaignRepository) SaveJoinCode(code *models.CampaignJoinCode) error {
	return r.db.Save(code).Error
}

func (r *CampaignRepository) FindJoinCode(code string) (*models.CampaignJoinCode, error) {
	var joinCode models.CampaignJoinCode
	err := r.db.Where("code = ?", code).First(&joinCode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &joinCode, nil
}

func (r *CampaignRepository) FindJoinCodeByCampaign(campaignID uint) (*models.CampaignJoinCode, error) {
	var joinCode models.CampaignJoinCode
	err := r.db.Where("campaign_id = ?", campaignID).First(&joinCode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &joinCode, nil
}
