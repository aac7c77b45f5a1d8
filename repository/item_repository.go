package repository

import (
	"errors"

	"dmscreen/models"

	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) FindByID(id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindVisible returns the base game items plus the campaign's own items.
func (r *ItemRepository) FindVisible(campaignID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("campaign_id IS NULL OR campaign_id = ?", campaignID).
		Order("name").
		Find(&items).Error
	return items, err
}

func (r *ItemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

func (r *ItemRepository) Delete(item *models.Item) error {
	return r.db.Delete(item).Error
}

func (r *ItemRepository) CreateWeapon(weapon *models.Weapon) error {
	return r.db.Create(weapon).Error
}

func (r *ItemRepository) FindWeaponByItem(itemID uint) (*models.Weapon, error) {
	var weapon models.Weapon
	err := r.db.Where("item_id = ?", itemID).First(&weapon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &weapon, nil
}
