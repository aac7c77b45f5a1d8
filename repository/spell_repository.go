package repository

import (
	"errors"

	"dmscreen/models"

	"gorm.io/gorm"
)

type SpellRepository struct {
	db *gorm.DB
}

func NewSpellRepository(db *gorm.DB) *SpellRepository {
	return &SpellRepository{db: db}
}

func (r *SpellRepository) FindByID(id uint) (*models.Spell, error) {
	var spell models.Spell
	err := r.db.First(&spell, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &spell, nil
}

// FindVisible returns the base game spells plus the campaign's own spells.
// A nil campaign ID restricts the result to base game spells.
func (r *SpellRepository) FindVisible(campaignID *uint) ([]models.Spell, error) {
	var spells []models.Spell
	query := r.db.Order("name")
	if campaignID != nil {
		query = query.Where("campaign_id IS NULL OR campaign_id = ?", *campaignID)
	} else {
		query = query.Where("campaign_id IS NULL")
	}
	err := query.Find(&spells).Error
	return spells, err
}

func (r *SpellRepository) Create(spell *models.Spell) error {
	return r.db.Create(spell).Error
}

func (r *SpellRepository) Delete(spell *models.Spell) error {
	return r.db.Delete(spell).Error
}
